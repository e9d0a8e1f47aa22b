package ast

import "github.com/BardsBallad/Verse/internal/lexer"

// If is `if <cond> { ... } (else { ... })?`.
type If struct {
	Token     lexer.Token
	Condition Expression
	Then      []Statement
	Else      []Statement // nil if no else branch
}

func (n *If) statementNode()      {}
func (n *If) Pos() lexer.Position { return n.Token.Pos() }

// For is `for (await)? ident in <iterable> { ... }`.
type For struct {
	Token    lexer.Token
	Await    bool
	Var      string
	Iterable Expression
	Body     []Statement
}

func (n *For) statementNode()      {}
func (n *For) Pos() lexer.Position { return n.Token.Pos() }
