package checker

import (
	"testing"

	"github.com/BardsBallad/Verse/internal/lexer"
	"github.com/BardsBallad/Verse/internal/parser"
	"github.com/BardsBallad/Verse/internal/types"
)

func inferReturnType(t *testing.T, src string, contextTypes map[string]types.Type) (types.Type, error) {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	c := New(contextTypes, types.NewRegistry())
	return c.InferReturnType(program)
}

func TestInferReturnTypeLiteral(t *testing.T) {
	rt, err := inferReturnType(t, `return 42`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.String() != "number" {
		t.Errorf("expected number, got %s", rt.String())
	}
}

func TestInferReturnTypeMergesBranches(t *testing.T) {
	rt, err := inferReturnType(t, `
	if true {
		return 1
	} else {
		return "x"
	}`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.Kind() != types.KindUnion {
		t.Fatalf("expected a union return type, got %s (%T)", rt.String(), rt)
	}
}

func TestVarDeclTypeMismatchIsError(t *testing.T) {
	_, err := inferReturnType(t, `let x: string = 1`, nil)
	if err == nil {
		t.Fatal("expected a type error")
	}
	if _, ok := err.(*TypeError); !ok {
		t.Fatalf("expected *TypeError, got %T", err)
	}
}

func TestAsyncFunctionWrapsReturnInPromise(t *testing.T) {
	rt, err := inferReturnType(t, `
	async fn cast() {
		return 1
	}
	return cast()`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	promise, ok := rt.(*types.Promise)
	if !ok {
		t.Fatalf("expected calling an async function to yield a Promise, got %s (%T)", rt.String(), rt)
	}
	if promise.Resolve.String() != "number" {
		t.Errorf("expected Promise<number>, got %s", rt.String())
	}
}

func TestAwaitOutsideAsyncIsError(t *testing.T) {
	_, err := inferReturnType(t, `
	fn sync() {
		return await 1
	}
	return sync()`, nil)
	if err == nil {
		t.Fatal("expected an error for await outside an async context")
	}
}

func TestTopLevelAwaitIsAllowed(t *testing.T) {
	contextTypes := map[string]types.Type{
		"casting": &types.Promise{Resolve: types.Number},
	}
	rt, err := inferReturnType(t, `return await casting`, contextTypes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.String() != "number" {
		t.Errorf("expected number, got %s", rt.String())
	}
}

func TestArrayMethodFilterPreservesElementType(t *testing.T) {
	contextTypes := map[string]types.Type{
		"spells": &types.Array{Element: types.Number},
	}
	rt, err := inferReturnType(t, `return spells.filter(s => s > 1)`, contextTypes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, ok := rt.(*types.Array)
	if !ok || arr.Element.String() != "number" {
		t.Fatalf("expected number[], got %s", rt.String())
	}
}

func TestTypeDeclRegistersNamedObject(t *testing.T) {
	tokens, err := lexer.Tokenize(`
	type Spell = { level: number }
	let s: Spell = { level: 1 }
	return s`)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	c := New(nil, types.NewRegistry())
	rt, err := c.InferReturnType(program)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.String() != "Spell" {
		t.Errorf("expected Spell, got %s", rt.String())
	}
}
