package parser

import (
	"fmt"

	"github.com/funvibe/rlang/internal/ast"
	"github.com/funvibe/rlang/internal/diagnostics"
	"github.com/funvibe/rlang/internal/token"
	"github.com/funvibe/rlang/internal/typesystem"
)

func (p *Parser) parseStatement() error {
	switch p.curToken.Type {
	case token.TYPE:
		return p.parseTypeStatement()
	case token.LET:
		return p.parseLetStatement()
	case token.DEF:
		return p.parseDefStatement()
	case token.AXIOM:
		return p.parseAxiomStatement()
	case token.SECTION:
		return p.parseSection()
	default:
		return p.unexpected(p.curToken, token.TYPE, token.LET, token.DEF, token.AXIOM, token.SECTION)
	}
}

// type o;
func (p *Parser) parseTypeStatement() error {
	if err := p.expectPeek(token.IDENT); err != nil {
		return err
	}
	id, loc := p.ident(), p.curLocation()
	if err := p.expectPeek(token.SEMICOLON); err != nil {
		return err
	}
	val := ast.TypeValue{Type: typesystem.TNamed{Name: typesystem.Global(id)}}
	_, err := p.ctx.Globals.InsertObject(id, typesystem.MType{}, val, loc)
	return err
}

// let a : Term o;
// let b : Term o = a;
func (p *Parser) parseLetStatement() error {
	id, loc, mtype, err := p.parseSignature()
	if err != nil {
		return err
	}
	if err := p.expectPeek(token.SEMICOLON, token.ASSIGN); err != nil {
		return err
	}
	if p.curTokenIs(token.SEMICOLON) {
		_, err = p.ctx.Globals.InsertObjectNoVal(id, mtype, loc)
		return err
	}
	val, err := p.parseAssignedValue(mtype)
	if err != nil {
		return err
	}
	_, err = p.ctx.Globals.InsertObject(id, mtype, val, loc)
	return err
}

// def a : Term o = b;
// Gives a value to a name declared earlier without one.
func (p *Parser) parseDefStatement() error {
	id, loc, mtype, err := p.parseSignature()
	if err != nil {
		return err
	}
	if err := p.expectPeek(token.ASSIGN); err != nil {
		return err
	}
	val, err := p.parseAssignedValue(mtype)
	if err != nil {
		return err
	}
	_, err = p.ctx.Globals.InsertObjectAnyType(id, mtype, val, loc)
	return err
}

// parseSignature reads `IDENT : mtype` after a let/def keyword.
func (p *Parser) parseSignature() (int, diagnostics.FileLocation, typesystem.MetaType, error) {
	if err := p.expectPeek(token.IDENT); err != nil {
		return 0, diagnostics.FileLocation{}, nil, err
	}
	id, loc := p.ident(), p.curLocation()
	if err := p.expectPeek(token.COLON); err != nil {
		return 0, loc, nil, err
	}
	p.nextToken()
	mtype, err := p.parseMetaType()
	return id, loc, mtype, err
}

// parseAssignedValue reads `value ;` with curToken on the `=`.
func (p *Parser) parseAssignedValue(mtype typesystem.MetaType) (ast.MetaValue, error) {
	p.nextToken()
	val, err := p.parseValue(mtype)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.SEMICOLON); err != nil {
		return nil, err
	}
	return val, nil
}

// axiom refl : schema T : Type. forall x : T. Eq x x;
func (p *Parser) parseAxiomStatement() error {
	if err := p.expectPeek(token.IDENT); err != nil {
		return err
	}
	id, name, loc := p.ident(), p.curToken.Lexeme, p.curLocation()
	if err := p.expectPeek(token.COLON); err != nil {
		return err
	}
	p.nextToken()
	sb, err := p.parseSchema()
	if err != nil {
		return err
	}
	if !sb.IsWffSchema() {
		return diagnostics.New(diagnostics.UnboundTheorem{}, sb.Location())
	}
	if err := p.expectPeek(token.SEMICOLON); err != nil {
		return err
	}
	if prev, ok := p.ctx.Globals.FindEquivalentTheorem(sb.Value()); ok {
		prevName, _ := p.ctx.Globals.Name(prev)
		p.ctx.Warn(fmt.Sprintf("%s: axiom %s restates %s", loc, name, prevName))
	}
	_, err = p.ctx.Globals.InsertTheorem(id, sb.Value(), loc)
	return err
}

// section { stmt* }
// Everything bound inside the braces is dropped at the closing brace.
func (p *Parser) parseSection() error {
	if err := p.expectPeek(token.LBRACE); err != nil {
		return err
	}
	scope := p.ctx.Globals.PushScope()
	err := p.parseBlock()
	if perr := p.ctx.Globals.PopScope(scope); err == nil {
		err = perr
	}
	return err
}

func (p *Parser) parseBlock() error {
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			return p.unexpected(p.curToken, token.RBRACE)
		}
		if err := p.parseStatement(); err != nil {
			return err
		}
		p.ctx.Statements++
		p.nextToken()
	}
	return nil
}
