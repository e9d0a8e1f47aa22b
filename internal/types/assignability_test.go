package types

import "testing"

func TestAssignablePrimitives(t *testing.T) {
	tests := []struct {
		name   string
		source Type
		target Type
		want   bool
	}{
		{"number to number", Number, Number, true},
		{"number to string", Number, String, false},
		{"unknown to number", Unknown, Number, true},
		{"number to unknown", Number, Unknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Assignable(tt.source, tt.target); got != tt.want {
				t.Errorf("Assignable(%s, %s) = %v, want %v", tt.source, tt.target, got, tt.want)
			}
		})
	}
}

func TestAssignableUnionSource(t *testing.T) {
	u := &Union{Alternatives: []Type{Number, String}}
	if !Assignable(u, &Union{Alternatives: []Type{String, Number}}) {
		t.Error("expected union of number|string assignable to union of string|number")
	}
	if Assignable(u, Number) {
		t.Error("a union source should not be assignable to a single-alt target unless every alt matches")
	}
}

func TestAssignableUnionTarget(t *testing.T) {
	target := &Union{Alternatives: []Type{Number, String}}
	if !Assignable(Number, target) {
		t.Error("expected number assignable to number|string")
	}
	if Assignable(Boolean, target) {
		t.Error("expected boolean not assignable to number|string")
	}
}

func TestAssignableArrays(t *testing.T) {
	numbers := &Array{Element: Number}
	strings := &Array{Element: String}
	if !Assignable(numbers, &Array{Element: Number}) {
		t.Error("expected number[] assignable to number[]")
	}
	if Assignable(numbers, strings) {
		t.Error("expected number[] not assignable to string[]")
	}
}

func TestAssignableObjectsStructural(t *testing.T) {
	wide := &Object{Fields: []Field{{Name: "level", Type: Number}, {Name: "name", Type: String}}}
	narrow := &Object{Fields: []Field{{Name: "level", Type: Number}}}
	if !Assignable(wide, narrow) {
		t.Error("expected a wider object assignable to a narrower target (structural)")
	}
	if Assignable(narrow, wide) {
		t.Error("expected a narrower object not assignable to a wider target")
	}
}

func TestAssignablePromise(t *testing.T) {
	a := &Promise{Resolve: Number}
	b := &Promise{Resolve: Number}
	c := &Promise{Resolve: String}
	if !Assignable(a, b) {
		t.Error("expected Promise<number> assignable to Promise<number>")
	}
	if Assignable(a, c) {
		t.Error("expected Promise<number> not assignable to Promise<string>")
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	r := NewRegistry()
	spell := &Object{Name: "Spell", Fields: []Field{{Name: "level", Type: Number}}}
	r.Register("Spell", spell)

	got, ok := r.Lookup("Spell")
	if !ok {
		t.Fatal("expected Spell to be registered")
	}
	if got != Type(spell) {
		t.Error("expected Lookup to return the same pointer that was registered")
	}

	if _, ok := r.Lookup("Missing"); ok {
		t.Error("expected Missing to be absent")
	}
}
