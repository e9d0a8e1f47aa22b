package parser

import (
	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/lexer"
)

// parseGroupedOrArrow resolves the `(a, b) => body` vs. `(expr)` ambiguity
// with a single backtrack anchor at the opening paren: speculatively scan
// for a parameter list followed by `=>`, and if that fails, rewind and
// parse an ordinary grouped expression.
func (p *Parser) parseGroupedOrArrow() (ast.Expression, error) {
	mark := p.pos
	if params, ok := p.tryParseArrowParams(); ok {
		tok := p.tokens[mark]
		p.advance() // consume '=>'
		body, err := p.parseExpression(ASSIGNMENT)
		if err != nil {
			return nil, err
		}
		return &ast.Arrow{Token: tok, Params: params, Body: body}, nil
	}
	p.pos = mark
	return p.parseGrouped()
}

func (p *Parser) parseGrouped() (ast.Expression, error) {
	p.advance() // consume '('
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return expr, nil
}

// tryParseArrowParams attempts to consume `(ident (, ident)*) =>` from the
// current LPAREN. It leaves the cursor positioned at `=>` on success, or
// anywhere on failure (the caller must restore the mark).
func (p *Parser) tryParseArrowParams() ([]string, bool) {
	if !p.curIs(lexer.LPAREN) {
		return nil, false
	}
	p.advance()

	var params []string
	for !p.curIs(lexer.RPAREN) {
		if !p.curIs(lexer.IDENT) {
			return nil, false
		}
		params = append(params, p.advance().Lexeme)
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if !p.curIs(lexer.RPAREN) {
		return nil, false
	}
	p.advance() // consume ')'
	if !p.curIs(lexer.FAT_ARROW) {
		return nil, false
	}
	return params, true
}

// parseAsyncArrow handles `async x => ...` and `async (a, b) => ...`, and
// falls back to an async function declaration statement context is handled
// by the statement dispatcher; this prefix fn only ever fires in
// expression position.
func (p *Parser) parseAsyncArrow() (ast.Expression, error) {
	tok := p.advance() // consume 'async'

	if p.curIs(lexer.LPAREN) {
		mark := p.pos
		if params, ok := p.tryParseArrowParams(); ok {
			p.advance() // consume '=>'
			body, err := p.parseExpression(ASSIGNMENT)
			if err != nil {
				return nil, err
			}
			return &ast.Arrow{Token: tok, Params: params, Body: body, Async: true}, nil
		}
		p.pos = mark
		return nil, &ParseError{Message: "Expected arrow function parameters after 'async'", Line: tok.Line}
	}

	if p.curIs(lexer.IDENT) && p.peekIs(lexer.FAT_ARROW) {
		name := p.advance().Lexeme
		p.advance() // consume '=>'
		body, err := p.parseExpression(ASSIGNMENT)
		if err != nil {
			return nil, err
		}
		return &ast.Arrow{Token: tok, Params: []string{name}, Body: body, Async: true}, nil
	}

	return nil, &ParseError{Message: "Expected arrow function after 'async'", Line: tok.Line}
}
