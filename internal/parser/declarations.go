package parser

import (
	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/lexer"
)

func (p *Parser) parseTypeDecl() (ast.Statement, error) {
	tok := p.advance() // consume 'type'
	nameTok, err := p.expect(lexer.IDENT, "type name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN, "'='"); err != nil {
		return nil, err
	}
	ann, err := p.parseTypeAnnotation()
	if err != nil {
		return nil, err
	}
	return &ast.TypeDecl{Token: tok, Name: nameTok.Lexeme, Type: ann}, nil
}

func (p *Parser) parseInterfaceDecl() (ast.Statement, error) {
	tok := p.advance() // consume 'interface'
	nameTok, err := p.expect(lexer.IDENT, "interface name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	decl := &ast.InterfaceDecl{Token: tok, Name: nameTok.Lexeme}
	for !p.curIs(lexer.RBRACE) {
		fieldTok, err := p.expect(lexer.IDENT, "field name")
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
		decl.Fields = append(decl.Fields, ast.ObjectFieldAnn{Name: fieldTok.Lexeme, Type: fieldType})
		if p.curIs(lexer.COMMA) {
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) parseVarDecl() (ast.Statement, error) {
	tok := p.advance() // consume 'let' or 'const'
	isConst := tok.Kind == lexer.CONST
	nameTok, err := p.expect(lexer.IDENT, "variable name")
	if err != nil {
		return nil, err
	}
	var ann *ast.TypeAnnotation
	if p.curIs(lexer.COLON) {
		p.advance()
		ann, err = p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.ASSIGN, "'='"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(ASSIGNMENT)
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{Token: tok, Name: nameTok.Lexeme, Const: isConst, Type: ann, Value: value}, nil
}

func (p *Parser) parseFuncDecl() (ast.Statement, error) {
	var tok lexer.Token
	async := false
	if p.curIs(lexer.ASYNC) {
		tok = p.advance()
		async = true
	}
	if !p.curIs(lexer.FN) {
		return nil, &ParseError{Message: "Expected 'fn'", Line: p.cur().Line}
	}
	if !async {
		tok = p.cur()
	}
	p.advance() // consume 'fn'

	nameTok, err := p.expect(lexer.IDENT, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var params []ast.Param
	for !p.curIs(lexer.RPAREN) {
		paramTok, err := p.expect(lexer.IDENT, "parameter name")
		if err != nil {
			return nil, err
		}
		param := ast.Param{Name: paramTok.Lexeme}
		if p.curIs(lexer.COLON) {
			p.advance()
			param.Type, err = p.parseTypeAnnotation()
			if err != nil {
				return nil, err
			}
		}
		params = append(params, param)
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}

	var retType *ast.TypeAnnotation
	if p.curIs(lexer.ARROW) {
		p.advance()
		retType, err = p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FuncDecl{
		Token:      tok,
		Name:       nameTok.Lexeme,
		Params:     params,
		ReturnType: retType,
		Body:       body,
		Async:      async,
	}, nil
}
