// Package parser implements Verse's recursive-descent, Pratt-style parser.
//
// The grammar and precedence table are specified in spec.md §4.2. There is
// no error recovery: the first parse error aborts the whole Parse call,
// wrapped in a *ParseError carrying the offending token's line.
package parser

import (
	"fmt"

	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/lexer"
)

// Precedence levels, lowest to highest, per spec.md §4.2.
const (
	_ int = iota
	LOWEST
	ASSIGNMENT  // =
	CONDITIONAL // ?:
	LOGICAL_OR  // ||
	LOGICAL_AND // &&
	EQUALITY    // == !=
	RELATIONAL  // < <= > >=
	ADDITIVE    // + -
	MULTIPLIC   // * / %
	UNARY       // ! - await
	CALL_MEMBER // f(...) a.b a[b]
)

var precedences = map[lexer.TokenKind]int{
	lexer.ASSIGN:     ASSIGNMENT,
	lexer.QUESTION:   CONDITIONAL,
	lexer.OR:         LOGICAL_OR,
	lexer.AND:        LOGICAL_AND,
	lexer.EQ:         EQUALITY,
	lexer.NOT_EQ:     EQUALITY,
	lexer.LESS:       RELATIONAL,
	lexer.LESS_EQ:    RELATIONAL,
	lexer.GREATER:    RELATIONAL,
	lexer.GREATER_EQ: RELATIONAL,
	lexer.PLUS:       ADDITIVE,
	lexer.MINUS:      ADDITIVE,
	lexer.STAR:       MULTIPLIC,
	lexer.SLASH:      MULTIPLIC,
	lexer.PERCENT:    MULTIPLIC,
	lexer.LPAREN:     CALL_MEMBER,
	lexer.DOT:        CALL_MEMBER,
	lexer.LBRACK:     CALL_MEMBER,
}

// ParseError is the single error type this package returns: a message plus
// the line of the offending token, per spec.md §7's syntactic-error shape.
type ParseError struct {
	Message string
	Line    int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d", e.Message, e.Line)
}

type prefixParseFn func() (ast.Expression, error)
type infixParseFn func(ast.Expression) (ast.Expression, error)

// Parser consumes a token stream produced by lexer.Tokenize and builds an
// *ast.Program.
type Parser struct {
	tokens  []lexer.Token
	pos     int
	prefix  map[lexer.TokenKind]prefixParseFn
	infix   map[lexer.TokenKind]infixParseFn
}

// New creates a Parser over tokens (which must already be EOF-terminated).
func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens}

	p.prefix = map[lexer.TokenKind]prefixParseFn{
		lexer.NUMBER:  p.parseNumberLiteral,
		lexer.STRING:  p.parseStringLiteral,
		lexer.TRUE:    p.parseBoolLiteral,
		lexer.FALSE:   p.parseBoolLiteral,
		lexer.NULL:    p.parseNullLiteral,
		lexer.IDENT:   p.parseIdentifierOrArrow,
		lexer.ASYNC:   p.parseAsyncArrow,
		lexer.LPAREN:  p.parseGroupedOrArrow,
		lexer.LBRACK:  p.parseArrayLiteral,
		lexer.LBRACE:  p.parseObjectLiteral,
		lexer.BANG:    p.parseUnary,
		lexer.MINUS:   p.parseUnary,
		lexer.AWAIT:   p.parseAwait,
	}

	p.infix = map[lexer.TokenKind]infixParseFn{
		lexer.PLUS:       p.parseBinary,
		lexer.MINUS:      p.parseBinary,
		lexer.STAR:       p.parseBinary,
		lexer.SLASH:      p.parseBinary,
		lexer.PERCENT:    p.parseBinary,
		lexer.EQ:         p.parseBinary,
		lexer.NOT_EQ:     p.parseBinary,
		lexer.LESS:       p.parseBinary,
		lexer.LESS_EQ:    p.parseBinary,
		lexer.GREATER:    p.parseBinary,
		lexer.GREATER_EQ: p.parseBinary,
		lexer.AND:        p.parseBinary,
		lexer.OR:         p.parseBinary,
		lexer.ASSIGN:     p.parseAssignment,
		lexer.QUESTION:   p.parseConditional,
		lexer.LPAREN:     p.parseCall,
		lexer.DOT:        p.parseDotMember,
		lexer.LBRACK:     p.parseIndexMember,
	}

	return p
}

// Parse parses the full token stream into a Program.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	return New(tokens).ParseProgram()
}

func (p *Parser) cur() lexer.Token  { return p.tokens[p.pos] }
func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}
func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) curIs(k lexer.TokenKind) bool  { return p.cur().Kind == k }
func (p *Parser) peekIs(k lexer.TokenKind) bool { return p.peek().Kind == k }

func (p *Parser) expect(k lexer.TokenKind, what string) (lexer.Token, error) {
	if !p.curIs(k) {
		return lexer.Token{}, &ParseError{
			Message: fmt.Sprintf("Expected %s, got %s", what, p.cur().Kind),
			Line:    p.cur().Line,
		}
	}
	return p.advance(), nil
}

func peekPrecedence(p *Parser) int {
	if pr, ok := precedences[p.cur().Kind]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram parses statement* until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.curIs(lexer.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Kind {
	case lexer.TYPE:
		return p.parseTypeDecl()
	case lexer.INTERFACE:
		return p.parseInterfaceDecl()
	case lexer.LET, lexer.CONST:
		return p.parseVarDecl()
	case lexer.ASYNC, lexer.FN:
		if p.curIs(lexer.ASYNC) && p.peekIs(lexer.FN) {
			return p.parseFuncDecl()
		}
		if p.curIs(lexer.FN) {
			return p.parseFuncDecl()
		}
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.IF:
		return p.parseIf()
	case lexer.FOR:
		return p.parseFor()
	}
	return p.parseExprStmt()
}

func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for !p.curIs(lexer.RBRACE) {
		if p.curIs(lexer.EOF) {
			return nil, &ParseError{Message: "Unexpected token EOF, expected '}'", Line: p.cur().Line}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.advance() // consume '}'
	return stmts, nil
}

func (p *Parser) parseExprStmt() (ast.Statement, error) {
	tok := p.cur()
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Token: tok, Expr: expr}, nil
}

// parseExpression implements Pratt-style precedence climbing: parse a
// prefix expression, then repeatedly fold in infix operators whose
// precedence exceeds the caller's minimum.
func (p *Parser) parseExpression(precedence int) (ast.Expression, error) {
	prefixFn, ok := p.prefix[p.cur().Kind]
	if !ok {
		return nil, &ParseError{
			Message: fmt.Sprintf("Unexpected token %s", p.cur().Kind),
			Line:    p.cur().Line,
		}
	}
	left, err := prefixFn()
	if err != nil {
		return nil, err
	}

	for precedence < peekPrecedence(p) {
		infixFn, ok := p.infix[p.cur().Kind]
		if !ok {
			return left, nil
		}
		left, err = infixFn(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}
