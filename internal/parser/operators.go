package parser

import (
	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/lexer"
)

func (p *Parser) parseUnary() (ast.Expression, error) {
	tok := p.advance()
	operand, err := p.parseExpression(UNARY)
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Token: tok, Operator: tok.Lexeme, Operand: operand}, nil
}

func (p *Parser) parseAwait() (ast.Expression, error) {
	tok := p.advance()
	arg, err := p.parseExpression(UNARY)
	if err != nil {
		return nil, err
	}
	return &ast.Await{Token: tok, Argument: arg}, nil
}

func (p *Parser) parseBinary(left ast.Expression) (ast.Expression, error) {
	tok := p.advance()
	prec := precedences[tok.Kind]
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Token: tok, Operator: tok.Lexeme, Left: left, Right: right}, nil
}

// parseAssignment is right-associative: the RHS is parsed at one less than
// ASSIGNMENT precedence so a chain `a = b = c` recurses into the RHS rather
// than folding left.
func (p *Parser) parseAssignment(target ast.Expression) (ast.Expression, error) {
	tok := p.advance()
	value, err := p.parseExpression(ASSIGNMENT - 1)
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Token: tok, Target: target, Value: value}, nil
}

// parseConditional is right-associative for the same reason as assignment.
func (p *Parser) parseConditional(test ast.Expression) (ast.Expression, error) {
	tok := p.advance() // consume '?'
	thenExpr, err := p.parseExpression(CONDITIONAL - 1)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON, "':'"); err != nil {
		return nil, err
	}
	elseExpr, err := p.parseExpression(CONDITIONAL - 1)
	if err != nil {
		return nil, err
	}
	return &ast.Conditional{Token: tok, Test: test, Then: thenExpr, Else: elseExpr}, nil
}
