package errors

import (
	"strings"
	"testing"

	"github.com/BardsBallad/Verse/internal/lexer"
)

func TestErrorEmbedsLineForRegex(t *testing.T) {
	e := New(Semantic, "Cannot assign string to number", "", lexer.Position{Line: 3, Column: 12})
	got := e.Error()
	want := "Cannot assign string to number at line 3"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestErrorWithoutPositionOmitsLineSuffix(t *testing.T) {
	e := New(Internal, "unexpected nil program", "", lexer.Position{})
	if e.Error() != "unexpected nil program" {
		t.Errorf("got %q", e.Error())
	}
}

func TestFormatRendersCaretUnderColumn(t *testing.T) {
	source := "return spell.level + \"x\""
	e := New(Semantic, "Cannot assign string to number", source, lexer.Position{Line: 1, Column: 22})
	out := e.Format(false)

	if !strings.Contains(out, "Error at line 1, column 22") {
		t.Errorf("expected a position header, got %q", out)
	}
	if !strings.Contains(out, "1 | "+source) {
		t.Errorf("expected a gutter-prefixed source line, got %q", out)
	}
	if !strings.Contains(out, "Cannot assign string to number") {
		t.Errorf("expected the message, got %q", out)
	}
}

func TestFormatWithColorWrapsCaretAndMessage(t *testing.T) {
	e := New(Semantic, "boom", "x", lexer.Position{Line: 1, Column: 1})
	out := e.Format(true)
	if !strings.Contains(out, "\033[1;31m") || !strings.Contains(out, "\033[1m") {
		t.Errorf("expected ANSI color codes, got %q", out)
	}
}

func TestStageString(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{Lexical, "lexical"},
		{Syntactic, "syntactic"},
		{Semantic, "semantic"},
		{Internal, "internal"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}
