package types

// Assignable reports whether a value of type source may be used where
// target is expected (directional, not necessarily symmetric).
func Assignable(source, target Type) bool {
	if source == nil || target == nil {
		return false
	}

	if su, ok := source.(*Union); ok {
		for _, alt := range su.Alternatives {
			if !Assignable(alt, target) {
				return false
			}
		}
		return true
	}

	if source.Kind() == KindUnknown || target.Kind() == KindUnknown {
		return true
	}

	if source.Equals(target) {
		return true
	}

	if tu, ok := target.(*Union); ok {
		for _, alt := range tu.Alternatives {
			if Assignable(source, alt) {
				return true
			}
		}
		return false
	}

	switch s := source.(type) {
	case *Array:
		t, ok := target.(*Array)
		return ok && Assignable(s.Element, t.Element)
	case *Promise:
		t, ok := target.(*Promise)
		return ok && Assignable(s.Resolve, t.Resolve)
	case *Object:
		t, ok := target.(*Object)
		if !ok {
			return false
		}
		for _, tf := range t.Fields {
			sf, found := s.Field(tf.Name)
			if !found || !Assignable(sf, tf.Type) {
				return false
			}
		}
		return true
	}

	return false
}
