// Package errors formats Verse compile errors with a caret-annotated
// source excerpt, in the classification spec.md §7 lays out: Lexical,
// Syntactic, Semantic, and Internal.
package errors

import (
	"fmt"
	"strings"

	"github.com/BardsBallad/Verse/internal/lexer"
)

// Stage classifies where a CompilerError originated.
type Stage int

const (
	Lexical Stage = iota
	Syntactic
	Semantic
	Internal
)

func (s Stage) String() string {
	switch s {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntactic"
	case Semantic:
		return "semantic"
	default:
		return "internal"
	}
}

// CompilerError is the single error type the façade surfaces to hosts: one
// free-form message plus enough context to render a caret diagnostic.
type CompilerError struct {
	Stage   Stage
	Message string
	Source  string
	Pos     lexer.Position
}

func New(stage Stage, message, source string, pos lexer.Position) *CompilerError {
	return &CompilerError{Stage: stage, Message: message, Source: source, Pos: pos}
}

// Error satisfies the error interface; it embeds "at line N" so host
// integrations can regex the position back out, per spec.md §6.
func (e *CompilerError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s at line %d", e.Message, e.Pos.Line)
	}
	return e.Message
}

// Format renders a multi-line diagnostic: a position header, the offending
// source line with a line-number gutter, a caret under the column, and the
// message. If color is true, the caret and message are wrapped in ANSI
// bold/red codes.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error at line %d, column %d\n", e.Pos.Line, e.Pos.Column))

	if line := e.sourceLine(e.Pos.Line); line != "" {
		gutter := fmt.Sprintf("%3d | ", e.Pos.Line)
		sb.WriteString(gutter)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(gutter)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (e *CompilerError) sourceLine(n int) string {
	if e.Source == "" || n < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}
