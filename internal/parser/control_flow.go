package parser

import (
	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/lexer"
)

// statementStarters are tokens that can never begin an expression, used to
// detect a bare `return` with no value.
var statementStarters = map[lexer.TokenKind]bool{
	lexer.RBRACE: true,
	lexer.EOF:    true,
}

func startsExpression(k lexer.TokenKind) bool {
	return !statementStarters[k]
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	tok := p.advance() // consume 'return'
	ret := &ast.Return{Token: tok}
	if startsExpression(p.cur().Kind) {
		val, err := p.parseExpression(ASSIGNMENT)
		if err != nil {
			return nil, err
		}
		ret.Value = val
	}
	return ret, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	tok := p.advance() // consume 'if'
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	thenBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node := &ast.If{Token: tok, Condition: cond, Then: thenBody}
	if p.curIs(lexer.ELSE) {
		p.advance()
		elseBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Else = elseBody
	}
	return node, nil
}

func (p *Parser) parseFor() (ast.Statement, error) {
	tok := p.advance() // consume 'for'
	await := false
	if p.curIs(lexer.AWAIT) {
		p.advance()
		await = true
	}
	varTok, err := p.expect(lexer.IDENT, "loop variable")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IN, "'in'"); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{Token: tok, Await: await, Var: varTok.Lexeme, Iterable: iterable, Body: body}, nil
}
