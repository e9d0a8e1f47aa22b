package emitter

import (
	"strings"

	"github.com/BardsBallad/Verse/internal/ast"
)

// Emit renders program as target-language source text, one statement per
// line, in source declaration order.
func Emit(program *ast.Program) string {
	e := New()
	return e.emitBlock(program.Statements)
}

func (e *Emitter) emitBlock(stmts []ast.Statement) string {
	var lines []string
	for _, s := range stmts {
		if line := e.emitStatement(s); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func (e *Emitter) emitStatement(s ast.Statement) string {
	switch n := s.(type) {
	case *ast.TypeDecl:
		return ""
	case *ast.InterfaceDecl:
		return ""
	case *ast.VarDecl:
		return e.emitVarDecl(n)
	case *ast.FuncDecl:
		return e.emitFuncDecl(n)
	case *ast.Return:
		return e.emitReturn(n)
	case *ast.If:
		return e.emitIf(n)
	case *ast.For:
		return e.emitFor(n)
	case *ast.ExprStmt:
		return e.emitExpression(n.Expr)
	}
	return ""
}

// emitVarDeclValue applies the `_type` injection rule: when the
// declaration's annotation is a bare Reference and the value is an object
// literal with no stashed inferred name of its own, the declared reference
// name is used instead.
func (e *Emitter) emitVarDeclValue(n *ast.VarDecl) string {
	if obj, ok := n.Value.(*ast.Object); ok {
		name := obj.InferredName
		if name == "" && n.Type != nil && n.Type.Kind == ast.AnnotationReference {
			name = n.Type.Reference
		}
		return e.emitObjectLiteral(obj, name)
	}
	return e.emitExpression(n.Value)
}

func (e *Emitter) emitVarDecl(n *ast.VarDecl) string {
	keyword := "let"
	if n.Const {
		keyword = "const"
	}
	value := e.emitVarDeclValue(n)
	e.define(n.Name)
	return keyword + " " + n.Name + " = " + value
}

func (e *Emitter) emitFuncDecl(n *ast.FuncDecl) string {
	e.define(n.Name)

	e.pushScope()
	paramNames := make([]string, len(n.Params))
	for i, p := range n.Params {
		paramNames[i] = p.Name
		e.define(p.Name)
	}
	e.pushAsync(n.Async)
	body := e.emitBlock(n.Body)
	e.popAsync()
	e.popScope()

	var sb strings.Builder
	if n.Async {
		sb.WriteString("async ")
	}
	sb.WriteString("function ")
	sb.WriteString(n.Name)
	sb.WriteString("(")
	sb.WriteString(strings.Join(paramNames, ", "))
	sb.WriteString(") {\n")
	sb.WriteString(indent(body))
	sb.WriteString("\n}")
	return sb.String()
}

func (e *Emitter) emitReturn(n *ast.Return) string {
	if n.Value == nil {
		return "return"
	}
	return "return " + e.emitExpression(n.Value)
}

func (e *Emitter) emitIf(n *ast.If) string {
	cond := e.emitExpression(n.Condition)
	thenBody := e.emitBlock(n.Then)

	var sb strings.Builder
	sb.WriteString("if (")
	sb.WriteString(cond)
	sb.WriteString(") {\n")
	sb.WriteString(indent(thenBody))
	sb.WriteString("\n}")
	if n.Else != nil {
		elseBody := e.emitBlock(n.Else)
		sb.WriteString(" else {\n")
		sb.WriteString(indent(elseBody))
		sb.WriteString("\n}")
	}
	return sb.String()
}

func (e *Emitter) emitFor(n *ast.For) string {
	iter := e.emitExpression(n.Iterable)

	e.pushScope()
	e.define(n.Var)
	body := e.emitBlock(n.Body)
	e.popScope()

	keyword := "for"
	if n.Await {
		keyword = "for await"
	}

	var sb strings.Builder
	sb.WriteString(keyword)
	sb.WriteString("(const ")
	sb.WriteString(n.Var)
	sb.WriteString(" of ")
	sb.WriteString(iter)
	sb.WriteString(") {\n")
	sb.WriteString(indent(body))
	sb.WriteString("\n}")
	return sb.String()
}
