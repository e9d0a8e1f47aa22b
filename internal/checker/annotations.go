package checker

import (
	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/types"
)

// ResolveAnnotation exposes annotation resolution against a bare registry,
// for callers that need to turn a surface type (e.g. from a --context JSON
// file) into a semantic Type without running a full Checker over a program.
func ResolveAnnotation(ann *ast.TypeAnnotation, registry *types.Registry) (types.Type, error) {
	c := &Checker{registry: registry}
	return c.resolveAnnotation(ann)
}

// resolveAnnotation converts a surface TypeAnnotation into a semantic Type,
// looking up References in the custom-type registry. This is the
// annotationToType operation referenced by spec.md §8's idempotency law.
func (c *Checker) resolveAnnotation(ann *ast.TypeAnnotation) (types.Type, error) {
	switch ann.Kind {
	case ast.AnnotationPrimitive:
		switch ann.Primitive {
		case "number":
			return types.Number, nil
		case "string":
			return types.String, nil
		case "boolean":
			return types.Boolean, nil
		case "null":
			return types.Null, nil
		}
		return types.Unknown, nil

	case ast.AnnotationArray:
		elem, err := c.resolveAnnotation(ann.Element)
		if err != nil {
			return nil, err
		}
		return &types.Array{Element: elem}, nil

	case ast.AnnotationObject:
		fields := make([]types.Field, 0, len(ann.Fields))
		for _, f := range ann.Fields {
			ft, err := c.resolveAnnotation(f.Type)
			if err != nil {
				return nil, err
			}
			fields = append(fields, types.Field{Name: f.Name, Type: ft})
		}
		return &types.Object{Fields: fields}, nil

	case ast.AnnotationUnion:
		alts := make([]types.Type, 0, len(ann.Alts))
		for _, a := range ann.Alts {
			at, err := c.resolveAnnotation(a)
			if err != nil {
				return nil, err
			}
			alts = append(alts, at)
		}
		return &types.Union{Alternatives: alts}, nil

	case ast.AnnotationReference:
		if t, ok := c.registry.Lookup(ann.Reference); ok {
			return t, nil
		}
		// An unresolved reference behaves like an unresolved identifier
		// elsewhere in the checker (spec.md §4.3): fall back to Unknown
		// rather than aborting the compile.
		return types.Unknown, nil

	case ast.AnnotationPromise:
		resolve, err := c.resolveAnnotation(ann.Resolve)
		if err != nil {
			return nil, err
		}
		return &types.Promise{Resolve: resolve}, nil
	}
	return types.Unknown, nil
}
