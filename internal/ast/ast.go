// Package ast defines the Verse abstract syntax tree: a single tagged-variant
// tree shared by the parser, checker and emitter.
package ast

import (
	"github.com/BardsBallad/Verse/internal/lexer"
)

// Node is the base interface every AST node implements.
type Node interface {
	Pos() lexer.Position
}

// Statement is any node that can appear directly in a statement list.
type Statement interface {
	Node
	statementNode()
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of the tree: an ordered list of statements.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

// Param is a single typed function/arrow parameter.
type Param struct {
	Name string
	Type *TypeAnnotation // nil if unannotated
}
