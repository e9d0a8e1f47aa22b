package ast

import (
	"fmt"
	"strings"
)

// Dump renders a Program as an indented debug tree, for the CLI's parse
// subcommand. It walks the concrete node types directly rather than using
// reflection, so the output stays stable as the tree grows.
func Dump(program *Program) string {
	var sb strings.Builder
	for _, s := range program.Statements {
		dumpStatement(&sb, s, 0)
	}
	return sb.String()
}

func indentLine(sb *strings.Builder, depth int, format string, args ...any) {
	sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(sb, format, args...)
	sb.WriteString("\n")
}

func dumpStatement(sb *strings.Builder, s Statement, depth int) {
	switch n := s.(type) {
	case *VarDecl:
		kind := "let"
		if n.Const {
			kind = "const"
		}
		indentLine(sb, depth, "VarDecl(%s %s)", kind, n.Name)
		dumpExpression(sb, n.Value, depth+1)
	case *FuncDecl:
		async := ""
		if n.Async {
			async = "async "
		}
		indentLine(sb, depth, "FuncDecl(%s%s)", async, n.Name)
		for _, st := range n.Body {
			dumpStatement(sb, st, depth+1)
		}
	case *TypeDecl:
		indentLine(sb, depth, "TypeDecl(%s)", n.Name)
	case *InterfaceDecl:
		indentLine(sb, depth, "InterfaceDecl(%s)", n.Name)
	case *Return:
		indentLine(sb, depth, "Return")
		if n.Value != nil {
			dumpExpression(sb, n.Value, depth+1)
		}
	case *If:
		indentLine(sb, depth, "If")
		dumpExpression(sb, n.Condition, depth+1)
		indentLine(sb, depth+1, "Then")
		for _, st := range n.Then {
			dumpStatement(sb, st, depth+2)
		}
		if len(n.Else) > 0 {
			indentLine(sb, depth+1, "Else")
			for _, st := range n.Else {
				dumpStatement(sb, st, depth+2)
			}
		}
	case *For:
		await := ""
		if n.Await {
			await = "await "
		}
		indentLine(sb, depth, "For(%s%s)", await, n.Var)
		dumpExpression(sb, n.Iterable, depth+1)
		for _, st := range n.Body {
			dumpStatement(sb, st, depth+1)
		}
	case *ExprStmt:
		indentLine(sb, depth, "ExprStmt")
		dumpExpression(sb, n.Expr, depth+1)
	default:
		indentLine(sb, depth, "%T", n)
	}
}

func dumpExpression(sb *strings.Builder, e Expression, depth int) {
	switch n := e.(type) {
	case *Literal:
		switch n.Kind {
		case LiteralNumber:
			indentLine(sb, depth, "Literal(%v)", n.Number)
		case LiteralString:
			indentLine(sb, depth, "Literal(%q)", n.String)
		case LiteralBool:
			indentLine(sb, depth, "Literal(%v)", n.Bool)
		default:
			indentLine(sb, depth, "Literal(null)")
		}
	case *Identifier:
		indentLine(sb, depth, "Identifier(%s)", n.Name)
	case *Binary:
		indentLine(sb, depth, "Binary(%s)", n.Operator)
		dumpExpression(sb, n.Left, depth+1)
		dumpExpression(sb, n.Right, depth+1)
	case *Unary:
		indentLine(sb, depth, "Unary(%s)", n.Operator)
		dumpExpression(sb, n.Operand, depth+1)
	case *Await:
		indentLine(sb, depth, "Await")
		dumpExpression(sb, n.Argument, depth+1)
	case *Call:
		indentLine(sb, depth, "Call")
		dumpExpression(sb, n.Callee, depth+1)
		for _, a := range n.Args {
			dumpExpression(sb, a, depth+1)
		}
	case *Member:
		indentLine(sb, depth, "Member(computed=%v)", n.Computed)
		dumpExpression(sb, n.Object, depth+1)
		dumpExpression(sb, n.Property, depth+1)
	case *Array:
		indentLine(sb, depth, "Array")
		for _, el := range n.Elements {
			dumpExpression(sb, el, depth+1)
		}
	case *Object:
		indentLine(sb, depth, "Object")
		for _, f := range n.Fields {
			indentLine(sb, depth+1, "Field(%s)", f.Key)
			dumpExpression(sb, f.Value, depth+2)
		}
	case *Conditional:
		indentLine(sb, depth, "Conditional")
		dumpExpression(sb, n.Test, depth+1)
		dumpExpression(sb, n.Then, depth+1)
		dumpExpression(sb, n.Else, depth+1)
	case *Arrow:
		async := ""
		if n.Async {
			async = "async "
		}
		indentLine(sb, depth, "Arrow(%s%s)", async, strings.Join(n.Params, ","))
		dumpExpression(sb, n.Body, depth+1)
	case *Assignment:
		indentLine(sb, depth, "Assignment")
		dumpExpression(sb, n.Target, depth+1)
		dumpExpression(sb, n.Value, depth+1)
	default:
		indentLine(sb, depth, "%T", n)
	}
}
