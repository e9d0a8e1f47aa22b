package parser

import (
	"testing"

	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/lexer"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	program, err := Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return program
}

func TestParseVarDecl(t *testing.T) {
	program := mustParse(t, `let x = 42`)
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	decl, ok := program.Statements[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected *ast.VarDecl, got %T", program.Statements[0])
	}
	if decl.Const || decl.Name != "x" {
		t.Errorf("expected let x, got const=%v name=%s", decl.Const, decl.Name)
	}
	lit, ok := decl.Value.(*ast.Literal)
	if !ok || lit.Kind != ast.LiteralNumber || lit.Number != 42 {
		t.Errorf("expected literal 42, got %#v", decl.Value)
	}
}

func TestParseConstWithTypeAnnotation(t *testing.T) {
	program := mustParse(t, `const level: number = 3`)
	decl := program.Statements[0].(*ast.VarDecl)
	if !decl.Const {
		t.Error("expected const")
	}
	if decl.Type == nil || decl.Type.Kind != ast.AnnotationPrimitive || decl.Type.Primitive != "number" {
		t.Errorf("expected primitive number annotation, got %#v", decl.Type)
	}
}

func TestParseFuncDecl(t *testing.T) {
	program := mustParse(t, `
	async fn cast(name: string) -> Promise<number> {
		return 1
	}`)
	fn, ok := program.Statements[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("expected *ast.FuncDecl, got %T", program.Statements[0])
	}
	if !fn.Async || fn.Name != "cast" {
		t.Errorf("expected async cast, got async=%v name=%s", fn.Async, fn.Name)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "name" {
		t.Errorf("expected single param 'name', got %#v", fn.Params)
	}
	if fn.ReturnType == nil || fn.ReturnType.Kind != ast.AnnotationPromise {
		t.Errorf("expected Promise return annotation, got %#v", fn.ReturnType)
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	program := mustParse(t, `let x = 1 + 2 * 3`)
	decl := program.Statements[0].(*ast.VarDecl)
	bin, ok := decl.Value.(*ast.Binary)
	if !ok || bin.Operator != "+" {
		t.Fatalf("expected top-level '+', got %#v", decl.Value)
	}
	right, ok := bin.Right.(*ast.Binary)
	if !ok || right.Operator != "*" {
		t.Fatalf("expected right side '*', got %#v", bin.Right)
	}
}

func TestParseMemberAndCallChain(t *testing.T) {
	program := mustParse(t, `let x = casting.spells.filter(s)`)
	decl := program.Statements[0].(*ast.VarDecl)
	call, ok := decl.Value.(*ast.Call)
	if !ok {
		t.Fatalf("expected *ast.Call, got %T", decl.Value)
	}
	member, ok := call.Callee.(*ast.Member)
	if !ok || member.Computed {
		t.Fatalf("expected dotted member callee, got %#v", call.Callee)
	}
}

func TestParseArrowFunction(t *testing.T) {
	program := mustParse(t, `let f = async x => x + 1`)
	decl := program.Statements[0].(*ast.VarDecl)
	arrow, ok := decl.Value.(*ast.Arrow)
	if !ok {
		t.Fatalf("expected *ast.Arrow, got %T", decl.Value)
	}
	if !arrow.Async || len(arrow.Params) != 1 || arrow.Params[0] != "x" {
		t.Errorf("expected async single-param arrow x, got %#v", arrow)
	}
}

func TestParseIfElse(t *testing.T) {
	program := mustParse(t, `
	if x > 1 {
		return 1
	} else {
		return 2
	}`)
	ifStmt, ok := program.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", program.Statements[0])
	}
	if len(ifStmt.Then) != 1 || len(ifStmt.Else) != 1 {
		t.Errorf("expected one statement in each branch, got then=%d else=%d", len(ifStmt.Then), len(ifStmt.Else))
	}
}

func TestParseForAwaitOf(t *testing.T) {
	program := mustParse(t, `
	for await s in spells {
		return s
	}`)
	forStmt, ok := program.Statements[0].(*ast.For)
	if !ok {
		t.Fatalf("expected *ast.For, got %T", program.Statements[0])
	}
	if !forStmt.Await || forStmt.Var != "s" {
		t.Errorf("expected await loop over 's', got %#v", forStmt)
	}
}

func TestParseObjectLiteral(t *testing.T) {
	program := mustParse(t, `let x = { level: 1, name: "fire" }`)
	decl := program.Statements[0].(*ast.VarDecl)
	obj, ok := decl.Value.(*ast.Object)
	if !ok || len(obj.Fields) != 2 {
		t.Fatalf("expected 2-field object literal, got %#v", decl.Value)
	}
	if obj.Fields[0].Key != "level" || obj.Fields[1].Key != "name" {
		t.Errorf("expected keys level, name, got %#v", obj.Fields)
	}
}

func TestParseTypeDecl(t *testing.T) {
	program := mustParse(t, `type Spell = { level: number }`)
	decl, ok := program.Statements[0].(*ast.TypeDecl)
	if !ok || decl.Name != "Spell" {
		t.Fatalf("expected TypeDecl Spell, got %#v", program.Statements[0])
	}
}

func TestParseErrorReportsLine(t *testing.T) {
	tokens, err := lexer.Tokenize("let x =\nlet")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	_, err = Parse(tokens)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Line != 2 {
		t.Errorf("expected error on line 2, got %d", perr.Line)
	}
}
