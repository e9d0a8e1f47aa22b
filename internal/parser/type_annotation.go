package parser

import (
	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/lexer"
)

var primitiveNames = map[string]bool{
	"number":  true,
	"string":  true,
	"boolean": true,
}

// ParseTypeAnnotation parses tokens as a standalone type expression, e.g.
// a --context JSON value's type-annotation source ("Spell[]", "number |
// string"). tokens must already be EOF-terminated, as from lexer.Tokenize.
func ParseTypeAnnotation(tokens []lexer.Token) (*ast.TypeAnnotation, error) {
	return New(tokens).parseTypeAnnotation()
}

// parseTypeAnnotation parses a type position per spec.md §4.2: a
// union-with-`|` of postfix-`[]`-qualified primary type terms, where a
// primary term is Promise<T>, an inline object `{ k: T, ... }`, a
// primitive keyword, or a bare reference identifier.
func (p *Parser) parseTypeAnnotation() (*ast.TypeAnnotation, error) {
	first, err := p.parsePostfixTypeTerm()
	if err != nil {
		return nil, err
	}
	if !p.curIs(lexer.PIPE) {
		return first, nil
	}

	tok := first.Token
	union := &ast.TypeAnnotation{Token: tok, Kind: ast.AnnotationUnion, Alts: []*ast.TypeAnnotation{first}}
	for p.curIs(lexer.PIPE) {
		p.advance()
		next, err := p.parsePostfixTypeTerm()
		if err != nil {
			return nil, err
		}
		union.Alts = append(union.Alts, next)
	}
	return union, nil
}

func (p *Parser) parsePostfixTypeTerm() (*ast.TypeAnnotation, error) {
	term, err := p.parseTypeTerm()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.LBRACK) {
		tok := p.advance()
		if _, err := p.expect(lexer.RBRACK, "']'"); err != nil {
			return nil, err
		}
		term = &ast.TypeAnnotation{Token: tok, Kind: ast.AnnotationArray, Element: term}
	}
	return term, nil
}

func (p *Parser) parseTypeTerm() (*ast.TypeAnnotation, error) {
	switch {
	case p.curIs(lexer.LBRACE):
		return p.parseInlineObjectType()
	case p.curIs(lexer.NULL):
		tok := p.advance()
		return &ast.TypeAnnotation{Token: tok, Kind: ast.AnnotationPrimitive, Primitive: "null"}, nil
	case p.curIs(lexer.IDENT):
		tok := p.cur()
		if tok.Lexeme == "Promise" && p.peekIs(lexer.LESS) {
			p.advance() // consume 'Promise'
			p.advance() // consume '<'
			resolve, err := p.parseTypeAnnotation()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.GREATER, "'>'"); err != nil {
				return nil, err
			}
			return &ast.TypeAnnotation{Token: tok, Kind: ast.AnnotationPromise, Resolve: resolve}, nil
		}
		p.advance()
		if primitiveNames[tok.Lexeme] {
			return &ast.TypeAnnotation{Token: tok, Kind: ast.AnnotationPrimitive, Primitive: tok.Lexeme}, nil
		}
		return &ast.TypeAnnotation{Token: tok, Kind: ast.AnnotationReference, Reference: tok.Lexeme}, nil
	}
	return nil, &ParseError{Message: "Expected a type", Line: p.cur().Line}
}

func (p *Parser) parseInlineObjectType() (*ast.TypeAnnotation, error) {
	tok := p.advance() // consume '{'
	ann := &ast.TypeAnnotation{Token: tok, Kind: ast.AnnotationObject}
	for !p.curIs(lexer.RBRACE) {
		nameTok, err := p.expect(lexer.IDENT, "field name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON, "':'"); err != nil {
			return nil, err
		}
		fieldType, err := p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
		ann.Fields = append(ann.Fields, ast.ObjectFieldAnn{Name: nameTok.Lexeme, Type: fieldType})
		if p.curIs(lexer.COMMA) {
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return ann, nil
}
