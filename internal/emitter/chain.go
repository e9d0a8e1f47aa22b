package emitter

import (
	"strings"

	"github.com/BardsBallad/Verse/internal/ast"
)

type chainNodeKind int

const (
	chainDot chainNodeKind = iota
	chainIndex
	chainCall
)

type chainNode struct {
	kind           chainNodeKind
	name           string           // chainDot
	indexExpr      ast.Expression   // chainIndex
	isNumericIndex bool             // chainIndex
	args           []ast.Expression // chainCall
}

// flattenChain unwraps a Member/Call chain into its root expression and an
// ordered list of access operations, innermost first.
func flattenChain(expr ast.Expression) (ast.Expression, []chainNode) {
	switch n := expr.(type) {
	case *ast.Member:
		root, nodes := flattenChain(n.Object)
		if n.Computed {
			isNum := false
			if lit, ok := n.Property.(*ast.Literal); ok {
				isNum = lit.Kind == ast.LiteralNumber
			}
			nodes = append(nodes, chainNode{kind: chainIndex, indexExpr: n.Property, isNumericIndex: isNum})
		} else if id, ok := n.Property.(*ast.Identifier); ok {
			nodes = append(nodes, chainNode{kind: chainDot, name: id.Name})
		}
		return root, nodes
	case *ast.Call:
		root, nodes := flattenChain(n.Callee)
		nodes = append(nodes, chainNode{kind: chainCall, args: n.Args})
		return root, nodes
	default:
		return expr, nil
	}
}

func (e *Emitter) writeChainNode(sb *strings.Builder, nd chainNode) {
	switch nd.kind {
	case chainDot:
		sb.WriteString(".")
		sb.WriteString(nd.name)
	case chainIndex:
		sb.WriteString("[")
		sb.WriteString(e.emitExpression(nd.indexExpr))
		sb.WriteString("]")
	case chainCall:
		sb.WriteString("(")
		sb.WriteString(e.emitArgs(nd.args))
		sb.WriteString(")")
	}
}

// emitChainRoot emits a chain's root expression, parenthesizing it as
// `(await root)` when root is an undeclared identifier in async context.
func (e *Emitter) emitChainRoot(root ast.Expression) string {
	if id, ok := root.(*ast.Identifier); ok && e.inAsync() && !e.isDeclared(id.Name) {
		return "(await " + id.Name + ")"
	}
	return e.emitExpression(root)
}

// emitChain renders a Member or Call expression rooted at expr. When that
// root is an undeclared identifier in async context, exactly one of
// spec.md §4.4's two await placements applies: a trailing numeric index
// awaits the whole chain up to (not including) the index, so the awaited
// value is the array being indexed; every other case — a plain property
// chain, a call on a known array method, or a bare call — awaits only the
// root identifier itself, with the remaining segments appended normally
// (per §8 scenario 2: "the awaited base is before `.filter`").
func (e *Emitter) emitChain(expr ast.Expression) string {
	root, nodes := flattenChain(expr)
	if len(nodes) == 0 {
		return e.emitExpression(expr)
	}

	id, isID := root.(*ast.Identifier)
	needsAwait := isID && e.inAsync() && !e.isDeclared(id.Name)
	if !needsAwait {
		var sb strings.Builder
		sb.WriteString(e.emitExpression(root))
		for _, nd := range nodes {
			e.writeChainNode(&sb, nd)
		}
		return sb.String()
	}

	last := nodes[len(nodes)-1]
	if last.kind == chainIndex && last.isNumericIndex {
		var prefix strings.Builder
		prefix.WriteString(id.Name)
		for _, nd := range nodes[:len(nodes)-1] {
			e.writeChainNode(&prefix, nd)
		}
		var sb strings.Builder
		sb.WriteString("(await ")
		sb.WriteString(prefix.String())
		sb.WriteString(")")
		e.writeChainNode(&sb, last)
		return sb.String()
	}

	var sb strings.Builder
	sb.WriteString("(await ")
	sb.WriteString(id.Name)
	sb.WriteString(")")
	for _, nd := range nodes {
		e.writeChainNode(&sb, nd)
	}
	return sb.String()
}
