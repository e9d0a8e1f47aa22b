package parser

import (
	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/lexer"
)

func (p *Parser) parseCall(callee ast.Expression) (ast.Expression, error) {
	tok := p.advance() // consume '('
	call := &ast.Call{Token: tok, Callee: callee}
	for !p.curIs(lexer.RPAREN) {
		arg, err := p.parseExpression(ASSIGNMENT)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return call, nil
}

// parseDotMember parses `object.name`, lowering to a non-computed Member
// whose Property is an Identifier.
func (p *Parser) parseDotMember(object ast.Expression) (ast.Expression, error) {
	tok := p.advance() // consume '.'
	nameTok, err := p.expect(lexer.IDENT, "property name")
	if err != nil {
		return nil, err
	}
	prop := &ast.Identifier{Token: nameTok, Name: nameTok.Lexeme}
	return &ast.Member{Token: tok, Object: object, Property: prop, Computed: false}, nil
}

// parseIndexMember parses `object[expr]`. A literal index is lowered to a
// computed Member whose Property is that Literal node, unchanged; any other
// computed index expression is rejected.
func (p *Parser) parseIndexMember(object ast.Expression) (ast.Expression, error) {
	tok := p.advance() // consume '['
	index, err := p.parseExpression(ASSIGNMENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RBRACK, "']'"); err != nil {
		return nil, err
	}

	lit, ok := index.(*ast.Literal)
	if !ok {
		return nil, &ParseError{
			Message: "Complex computed member access not yet supported",
			Line:    tok.Line,
		}
	}
	return &ast.Member{Token: tok, Object: object, Property: lit, Computed: true}, nil
}
