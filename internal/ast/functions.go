package ast

import "github.com/BardsBallad/Verse/internal/lexer"

// FuncDecl is `async? fn name(params) (-> Type)? { body }`.
type FuncDecl struct {
	Token      lexer.Token
	Name       string
	Params     []Param
	ReturnType *TypeAnnotation // nil if unannotated
	Body       []Statement
	Async      bool
}

func (f *FuncDecl) statementNode()      {}
func (f *FuncDecl) Pos() lexer.Position { return f.Token.Pos() }

// Arrow is an arrow-function expression: `(params) => body` or `param => body`.
type Arrow struct {
	Token  lexer.Token
	Params []string
	Body   Expression
	Async  bool
}

func (a *Arrow) expressionNode()      {}
func (a *Arrow) Pos() lexer.Position { return a.Token.Pos() }
