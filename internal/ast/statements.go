package ast

import (
	"github.com/BardsBallad/Verse/internal/lexer"
	"github.com/BardsBallad/Verse/internal/types"
)

// TypeDecl is `type Name = <annotation>`.
type TypeDecl struct {
	Token lexer.Token
	Name  string
	Type  *TypeAnnotation
}

func (d *TypeDecl) statementNode()      {}
func (d *TypeDecl) Pos() lexer.Position { return d.Token.Pos() }

// InterfaceDecl is `interface Name { field: Type, ... }`.
type InterfaceDecl struct {
	Token  lexer.Token
	Name   string
	Fields []ObjectFieldAnn // ordered
}

func (d *InterfaceDecl) statementNode()      {}
func (d *InterfaceDecl) Pos() lexer.Position { return d.Token.Pos() }

// VarDecl is `let|const name (: Type)? = value`.
type VarDecl struct {
	Token    lexer.Token
	Name     string
	Const    bool
	Type     *TypeAnnotation // nil if unannotated
	Value    Expression
	Inferred types.Type // set by checker: the type eventually bound for Name
}

func (d *VarDecl) statementNode()      {}
func (d *VarDecl) Pos() lexer.Position { return d.Token.Pos() }

// Return is `return <expr>?`.
type Return struct {
	Token lexer.Token
	Value Expression // nil for a bare `return`
}

func (r *Return) statementNode()      {}
func (r *Return) Pos() lexer.Position { return r.Token.Pos() }

// ExprStmt wraps a bare expression used as a statement.
type ExprStmt struct {
	Token lexer.Token
	Expr  Expression
}

func (s *ExprStmt) statementNode()      {}
func (s *ExprStmt) Pos() lexer.Position { return s.Token.Pos() }
