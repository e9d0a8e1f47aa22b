package emitter

import (
	"testing"

	"github.com/BardsBallad/Verse/internal/lexer"
	"github.com/BardsBallad/Verse/internal/parser"
)

func emitSource(t *testing.T, src string) string {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return Emit(program)
}

func TestEmitVarDeclLiteral(t *testing.T) {
	got := emitSource(t, `let x = 42`)
	want := "let x = 42"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitUndeclaredIdentifierAwaitsAtTopLevel(t *testing.T) {
	got := emitSource(t, `return casting`)
	want := "return await casting"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitDeclaredIdentifierIsNeverAwaited(t *testing.T) {
	got := emitSource(t, `
	let casting = 1
	return casting`)
	want := "let casting = 1\nreturn casting"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitChainAwaitsOnlyRoot(t *testing.T) {
	got := emitSource(t, `let filtered = casting.spells.filter(s)`)
	want := `let filtered = (await casting).spells.filter(await s)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitNumericIndexAwaitsWholePrefix(t *testing.T) {
	got := emitSource(t, `let first = casting.spells[0]`)
	want := `let first = (await casting.spells)[0]`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitDeclaredParamChainIsNotAwaited(t *testing.T) {
	got := emitSource(t, `
	fn describe(casting) {
		return casting.spells.filter(s)
	}`)
	want := "function describe(casting) {\n  return casting.spells.filter(s)\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitTypeAndInterfaceDeclsAreErased(t *testing.T) {
	got := emitSource(t, `
	type Spell = { level: number }
	interface Caster { name: string }
	let x = 1`)
	want := "let x = 1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitObjectLiteralInjectsTypeFromAnnotation(t *testing.T) {
	got := emitSource(t, `let s: Spell = { level: 1 }`)
	want := `let s = { _type: "Spell", level: 1 }`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitObjectLiteralWithOwnTypeFieldIsNotDoubled(t *testing.T) {
	got := emitSource(t, `let s: Spell = { _type: "Custom", level: 1 }`)
	want := `let s = { _type: "Custom", level: 1 }`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitAsyncFunctionAndForAwait(t *testing.T) {
	got := emitSource(t, `
	async fn loadSpells() {
		for await s in spells {
			return s
		}
	}`)
	want := "async function loadSpells() {\n  for await(const s of await spells) {\n    return s\n  }\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitArrowFunction(t *testing.T) {
	got := emitSource(t, `let double = x => x * 2`)
	want := `let double = (x) => x * 2`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
