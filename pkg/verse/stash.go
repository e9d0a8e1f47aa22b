package verse

import (
	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/types"
)

// stashObjectTypes walks a checked program and, for every object literal
// whose immediate syntactic context carries a Reference annotation (a
// VarDecl's own type, or the return annotation of its enclosing FuncDecl)
// whose name is in registry, stashes the referenced name on the literal so
// the emitter can inject
// `_type`. It needs no scope information: the annotation is read straight
// off the AST, not inferred, so it is safe to run as a second pass after
// checking has already popped every scope.
func stashObjectTypes(program *ast.Program, registry *types.Registry) {
	stashStatements(program.Statements, registry)
}

func stashStatements(stmts []ast.Statement, registry *types.Registry) {
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.VarDecl:
			stashAnnotated(n.Value, n.Type, registry)
		case *ast.FuncDecl:
			stashReturnsIn(n.Body, n.ReturnType, registry)
			stashStatements(n.Body, registry)
		case *ast.If:
			stashStatements(n.Then, registry)
			stashStatements(n.Else, registry)
		case *ast.For:
			stashStatements(n.Body, registry)
		}
	}
}

// stashReturnsIn applies ret to every Return reachable through stmts
// without crossing into a nested FuncDecl's own body, mirroring the
// checker's return-collection boundary.
func stashReturnsIn(stmts []ast.Statement, ret *ast.TypeAnnotation, registry *types.Registry) {
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.Return:
			if n.Value != nil {
				stashAnnotated(n.Value, ret, registry)
			}
		case *ast.If:
			stashReturnsIn(n.Then, ret, registry)
			stashReturnsIn(n.Else, ret, registry)
		case *ast.For:
			stashReturnsIn(n.Body, ret, registry)
		}
	}
}

func stashAnnotated(value ast.Expression, ann *ast.TypeAnnotation, registry *types.Registry) {
	if ann == nil || ann.Kind != ast.AnnotationReference {
		return
	}
	obj, ok := value.(*ast.Object)
	if !ok {
		return
	}
	if _, exists := registry.Lookup(ann.Reference); exists {
		obj.InferredName = ann.Reference
	}
}
