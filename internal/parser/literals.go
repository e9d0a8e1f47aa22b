package parser

import (
	"fmt"
	"strconv"

	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/lexer"
)

func (p *Parser) parseNumberLiteral() (ast.Expression, error) {
	tok := p.advance()
	v, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		return nil, &ParseError{Message: fmt.Sprintf("Invalid number literal %q", tok.Lexeme), Line: tok.Line}
	}
	return &ast.Literal{Token: tok, Kind: ast.LiteralNumber, Number: v}, nil
}

func (p *Parser) parseStringLiteral() (ast.Expression, error) {
	tok := p.advance()
	return &ast.Literal{Token: tok, Kind: ast.LiteralString, String: tok.Lexeme}, nil
}

func (p *Parser) parseBoolLiteral() (ast.Expression, error) {
	tok := p.advance()
	return &ast.Literal{Token: tok, Kind: ast.LiteralBool, Bool: tok.Kind == lexer.TRUE}, nil
}

func (p *Parser) parseNullLiteral() (ast.Expression, error) {
	tok := p.advance()
	return &ast.Literal{Token: tok, Kind: ast.LiteralNull}, nil
}

// parseIdentifierOrArrow resolves the `x => expr` vs. plain identifier
// ambiguity with one token of lookahead: an identifier immediately
// followed by `=>` starts a single-parameter arrow function.
func (p *Parser) parseIdentifierOrArrow() (ast.Expression, error) {
	if p.peekIs(lexer.FAT_ARROW) {
		tok := p.cur()
		name := p.advance().Lexeme
		p.advance() // consume =>
		body, err := p.parseExpression(ASSIGNMENT)
		if err != nil {
			return nil, err
		}
		return &ast.Arrow{Token: tok, Params: []string{name}, Body: body}, nil
	}
	tok := p.advance()
	return &ast.Identifier{Token: tok, Name: tok.Lexeme}, nil
}

func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	tok := p.advance() // consume '['
	arr := &ast.Array{Token: tok}
	for !p.curIs(lexer.RBRACK) {
		el, err := p.parseExpression(ASSIGNMENT)
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, el)
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RBRACK, "']'"); err != nil {
		return nil, err
	}
	return arr, nil
}

func (p *Parser) parseObjectLiteral() (ast.Expression, error) {
	tok := p.advance() // consume '{'
	obj := &ast.Object{Token: tok}
	for !p.curIs(lexer.RBRACE) {
		keyTok, err := p.expect(lexer.IDENT, "field name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON, "':'"); err != nil {
			return nil, err
		}
		val, err := p.parseExpression(ASSIGNMENT)
		if err != nil {
			return nil, err
		}
		obj.Fields = append(obj.Fields, ast.ObjectField{Key: keyTok.Lexeme, Value: val})
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return obj, nil
}
