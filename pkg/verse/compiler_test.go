package verse

import (
	"testing"

	"github.com/BardsBallad/Verse/internal/types"
	"github.com/gkampitakis/go-snaps/snaps"
)

func TestMain(m *testing.M) {
	snaps.Clean(m)
}

func TestCompileSimpleReturn(t *testing.T) {
	c := New(nil)
	result := c.Compile(`return 1 + 2`)
	if !result.OK {
		t.Fatalf("expected success, got error: %s", result.Error())
	}
	if result.ReturnType != "number" {
		t.Errorf("expected returnType number, got %s", result.ReturnType)
	}
	snaps.MatchSnapshot(t, "simple_return_code", result.Code)
}

func TestCompileLexicalErrorIsReported(t *testing.T) {
	c := New(nil)
	result := c.Compile(`let x = @`)
	if result.OK {
		t.Fatal("expected failure for an illegal character")
	}
	if result.Err.Stage.String() != "lexical" {
		t.Errorf("expected lexical stage, got %s", result.Err.Stage.String())
	}
}

func TestCompileSyntaxErrorIsReported(t *testing.T) {
	c := New(nil)
	result := c.Compile("let x =\nlet")
	if result.OK {
		t.Fatal("expected failure for a syntax error")
	}
	if result.Err.Stage.String() != "syntactic" {
		t.Errorf("expected syntactic stage, got %s", result.Err.Stage.String())
	}
}

func TestCompileSemanticErrorIsReported(t *testing.T) {
	c := New(nil)
	result := c.Compile(`let x: string = 1`)
	if result.OK {
		t.Fatal("expected failure for a type mismatch")
	}
	if result.Err.Stage.String() != "semantic" {
		t.Errorf("expected semantic stage, got %s", result.Err.Stage.String())
	}
}

func TestCompileHostContextAwaitsUndeclaredGlobal(t *testing.T) {
	c := New(map[string]types.Type{
		"casting": &types.Array{Element: types.Number},
	})
	result := c.Compile(`
	const filtered = casting.filter(s => s > 1)
	return filtered`)
	if !result.OK {
		t.Fatalf("expected success, got error: %s", result.Error())
	}
	snaps.MatchSnapshot(t, "host_context_filter_code", result.Code)
}

func TestCompileObjectLiteralInjectsTypeViaFuncReturnAnnotation(t *testing.T) {
	c := New(nil)
	result := c.Compile(`
	type Spell = { level: number }
	fn makeSpell() -> Spell {
		return { level: 1 }
	}
	return makeSpell()`)
	if !result.OK {
		t.Fatalf("expected success, got error: %s", result.Error())
	}
	snaps.MatchSnapshot(t, "func_return_type_injection_code", result.Code)
}

func TestRegisterFunctionSeedsContext(t *testing.T) {
	c := New(nil)
	c.RegisterFunction("double", []types.Type{types.Number}, types.Number, false)
	result := c.Compile(`return double(2)`)
	if !result.OK {
		t.Fatalf("expected success, got error: %s", result.Error())
	}
	if result.ReturnType != "number" {
		t.Errorf("expected number, got %s", result.ReturnType)
	}
}

func TestRegisterTypeIsVisibleToSubsequentCompile(t *testing.T) {
	c := New(nil)
	spellType := CreateObjectType("Spell", []types.Field{{Name: "level", Type: types.Number}})
	c.RegisterType("Spell", spellType)

	result := c.Compile(`
	let s: Spell = { level: 1 }
	return s`)
	if !result.OK {
		t.Fatalf("expected success, got error: %s", result.Error())
	}
	if result.ReturnType != "Spell" {
		t.Errorf("expected Spell, got %s", result.ReturnType)
	}
}
