package emitter

import (
	"strconv"
	"strings"

	"github.com/BardsBallad/Verse/internal/ast"
)

func (e *Emitter) emitExpression(expr ast.Expression) string {
	switch n := expr.(type) {
	case *ast.Literal:
		return e.emitLiteral(n)
	case *ast.Identifier:
		if e.inAsync() && !e.isDeclared(n.Name) {
			return "await " + n.Name
		}
		return n.Name
	case *ast.Binary:
		return e.emitExpression(n.Left) + " " + n.Operator + " " + e.emitExpression(n.Right)
	case *ast.Unary:
		return n.Operator + e.emitExpression(n.Operand)
	case *ast.Await:
		return "await " + e.emitExpression(n.Argument)
	case *ast.Call:
		return e.emitChain(n)
	case *ast.Member:
		return e.emitChain(n)
	case *ast.Array:
		return e.emitArray(n)
	case *ast.Object:
		return e.emitObjectLiteral(n, n.InferredName)
	case *ast.Conditional:
		return e.emitExpression(n.Test) + " ? " + e.emitExpression(n.Then) + " : " + e.emitExpression(n.Else)
	case *ast.Arrow:
		return e.emitArrow(n)
	case *ast.Assignment:
		return e.emitAssignment(n)
	}
	return ""
}

func (e *Emitter) emitLiteral(n *ast.Literal) string {
	switch n.Kind {
	case ast.LiteralNumber:
		return strconv.FormatFloat(n.Number, 'g', -1, 64)
	case ast.LiteralString:
		// Emitted verbatim between double quotes: a known limitation (no
		// re-escaping of embedded quote characters).
		return `"` + n.String + `"`
	case ast.LiteralBool:
		if n.Bool {
			return "true"
		}
		return "false"
	case ast.LiteralNull:
		return "null"
	}
	return ""
}

func (e *Emitter) emitArray(n *ast.Array) string {
	parts := make([]string, len(n.Elements))
	for i, el := range n.Elements {
		parts[i] = e.emitExpression(el)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func hasTypeField(n *ast.Object) bool {
	for _, f := range n.Fields {
		if f.Key == "_type" {
			return true
		}
	}
	return false
}

// emitObjectLiteral renders an object literal, injecting a leading
// `_type: "<injectName>"` field when injectName is non-empty and the
// literal does not already declare one.
func (e *Emitter) emitObjectLiteral(n *ast.Object, injectName string) string {
	var parts []string
	if injectName != "" && !hasTypeField(n) {
		parts = append(parts, `_type: "`+injectName+`"`)
	}
	for _, f := range n.Fields {
		parts = append(parts, f.Key+": "+e.emitExpression(f.Value))
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (e *Emitter) emitArrow(n *ast.Arrow) string {
	e.pushScope()
	for _, p := range n.Params {
		e.define(p)
	}
	e.pushAsync(n.Async)
	body := e.emitExpression(n.Body)
	e.popAsync()
	e.popScope()

	prefix := ""
	if n.Async {
		prefix = "async "
	}
	return prefix + "(" + strings.Join(n.Params, ", ") + ") => " + body
}

func (e *Emitter) emitAssignment(n *ast.Assignment) string {
	return e.emitAssignmentTarget(n.Target) + " = " + e.emitExpression(n.Value)
}

// emitAssignmentTarget emits an assignment's LHS. An identifier target is
// never awaited. A Member target awaits only its root identifier, if that
// root is undeclared and we are in async context; no other segment of the
// chain is ever awaited, since the result must remain an assignable
// location.
func (e *Emitter) emitAssignmentTarget(target ast.Expression) string {
	switch t := target.(type) {
	case *ast.Identifier:
		return t.Name
	case *ast.Member:
		root, nodes := flattenChain(t)
		var sb strings.Builder
		sb.WriteString(e.emitChainRoot(root))
		for _, nd := range nodes {
			e.writeChainNode(&sb, nd)
		}
		return sb.String()
	}
	return e.emitExpression(target)
}

func (e *Emitter) emitArgs(args []ast.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = e.emitExpression(a)
	}
	return strings.Join(parts, ", ")
}
