package parser

import (
	"github.com/funvibe/rlang/internal/analyzer"
	"github.com/funvibe/rlang/internal/token"
	"github.com/funvibe/rlang/internal/typesystem"
)

// parseMetaType parses
//
//	Type | Term itype | Formula iatom* | Schema ( mtype* ) mtype | ( mtype )
func (p *Parser) parseMetaType() (typesystem.MetaType, error) {
	switch p.curToken.Type {
	case token.META_TYPE:
		return typesystem.MType{}, nil

	case token.META_TERM:
		p.nextToken()
		t, err := p.parseInternalType()
		if err != nil {
			return nil, err
		}
		return typesystem.MTerm{Type: t}, nil

	case token.META_FORMULA:
		var args []typesystem.InternalType
		for p.peekIsTypeAtom() {
			p.nextToken()
			t, err := p.parseTypeAtom()
			if err != nil {
				return nil, err
			}
			args = append(args, t)
		}
		return typesystem.MFormula{Args: typesystem.ArgsFromSource(args)}, nil

	case token.META_SCHEMA:
		if err := p.expectPeek(token.LPAREN); err != nil {
			return nil, err
		}
		var params []typesystem.MetaType
		for !p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			m, err := p.parseMetaType()
			if err != nil {
				return nil, err
			}
			params = append(params, m)
		}
		p.nextToken() // )
		p.nextToken()
		ret, err := p.parseMetaType()
		if err != nil {
			return nil, err
		}
		return typesystem.MSchema{Params: typesystem.ParamsFromSource(params), Ret: ret}, nil

	case token.LPAREN:
		p.nextToken()
		m, err := p.parseMetaType()
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.RPAREN); err != nil {
			return nil, err
		}
		return m, nil

	default:
		return nil, p.unexpected(p.curToken, token.META_TYPE, token.META_TERM, token.META_FORMULA, token.META_SCHEMA, token.LPAREN)
	}
}

// peekIsTypeAtom: a parenthesis that opens a meta-type ends a Formula
// argument list instead of continuing it.
func (p *Parser) peekIsTypeAtom() bool {
	if p.peekTokenIs(token.IDENT) {
		return true
	}
	return p.peekTokenIs(token.LPAREN) && !token.IsMetaKeyword(p.secondPeek().Type)
}

// parseInternalType parses iatom ('->' itype)?; arrows associate right.
func (p *Parser) parseInternalType() (typesystem.InternalType, error) {
	arg, err := p.parseTypeAtom()
	if err != nil {
		return nil, err
	}
	if !p.peekTokenIs(token.ARROW) {
		return arg, nil
	}
	p.nextToken()
	p.nextToken()
	ret, err := p.parseInternalType()
	if err != nil {
		return nil, err
	}
	return typesystem.TFunc{Arg: arg, Ret: ret}, nil
}

func (p *Parser) parseTypeAtom() (typesystem.InternalType, error) {
	switch p.curToken.Type {
	case token.IDENT:
		return analyzer.NamedType(p.ident(), p.ctx.Locals, p.ctx.Globals, p.curLocation())
	case token.LPAREN:
		p.nextToken()
		t, err := p.parseInternalType()
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.RPAREN); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, p.unexpected(p.curToken, token.IDENT, token.LPAREN)
	}
}
