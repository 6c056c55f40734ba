package parser

import (
	"github.com/funvibe/rlang/internal/analyzer"
	"github.com/funvibe/rlang/internal/ast"
	"github.com/funvibe/rlang/internal/diagnostics"
	"github.com/funvibe/rlang/internal/token"
	"github.com/funvibe/rlang/internal/typesystem"
)

// parseTerm parses juxtaposition: f a (g b) is (f a) (g b).
func (p *Parser) parseTerm() (*analyzer.TermBuilder, error) {
	tb, err := p.parseTermAtom()
	if err != nil {
		return nil, err
	}
	for p.peekIsTermAtom() {
		p.nextToken()
		arg, err := p.parseTermAtom()
		if err != nil {
			return nil, err
		}
		if tb, err = analyzer.ApplyTerm(tb, arg, p.ctx.Globals); err != nil {
			return nil, err
		}
	}
	return tb, nil
}

func (p *Parser) peekIsTermAtom() bool {
	return p.peekTokenIs(token.IDENT) || p.peekTokenIs(token.LPAREN)
}

func (p *Parser) parseTermAtom() (*analyzer.TermBuilder, error) {
	switch p.curToken.Type {
	case token.IDENT:
		return analyzer.Symbol(p.ident(), p.ctx.Locals, p.ctx.Globals, p.curLocation())
	case token.LPAREN:
		p.nextToken()
		tb, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.RPAREN); err != nil {
			return nil, err
		}
		return tb, nil
	default:
		return nil, p.unexpected(p.curToken, token.IDENT, token.LPAREN)
	}
}

// parseFormula parses a quantifier or a right-associative implication chain.
func (p *Parser) parseFormula() (*analyzer.FormulaBuilder, error) {
	if p.curTokenIs(token.FORALL) {
		return p.parseUniversal()
	}
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if !p.peekTokenIs(token.ARROW) {
		return lhs, nil
	}
	p.nextToken()
	p.nextToken()
	rhs, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	return analyzer.Implication(lhs, rhs)
}

// forall x : T. body
func (p *Parser) parseUniversal() (*analyzer.FormulaBuilder, error) {
	loc := p.curLocation()
	if err := p.expectPeek(token.IDENT); err != nil {
		return nil, err
	}
	id, idLoc := p.ident(), p.curLocation()
	if err := p.expectPeek(token.COLON); err != nil {
		return nil, err
	}
	p.nextToken()
	itype, err := p.parseInternalType()
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.DOT); err != nil {
		return nil, err
	}
	binder, err := analyzer.QuantifierPrep(id, itype, p.ctx.Locals, p.ctx.Globals, idLoc)
	if err != nil {
		return nil, err
	}
	p.nextToken()
	body, err := p.parseFormula()
	if err != nil {
		p.ctx.Locals.Close(binder)
		return nil, err
	}
	return analyzer.UniversalQ(binder, body, p.ctx.Locals, loc)
}

func (p *Parser) parseUnary() (*analyzer.FormulaBuilder, error) {
	if p.curTokenIs(token.TILDE) {
		loc := p.curLocation()
		p.nextToken()
		f, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return analyzer.Negation(f, loc)
	}
	fb, err := p.parseFormulaAtom()
	if err != nil {
		return nil, err
	}
	for p.peekIsTermAtom() {
		p.nextToken()
		arg, err := p.parseTermAtom()
		if err != nil {
			return nil, err
		}
		if fb, err = analyzer.ApplyFormula(fb, arg, p.ctx.Globals); err != nil {
			return nil, err
		}
	}
	return fb, nil
}

func (p *Parser) parseFormulaAtom() (*analyzer.FormulaBuilder, error) {
	switch p.curToken.Type {
	case token.FALSE:
		return analyzer.FalseFormula(p.curLocation()), nil
	case token.IDENT:
		return analyzer.Relation(p.ident(), p.ctx.Locals, p.ctx.Globals, p.curLocation())
	case token.LPAREN:
		p.nextToken()
		fb, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.RPAREN); err != nil {
			return nil, err
		}
		return fb, nil
	default:
		return nil, p.unexpected(p.curToken, token.FALSE, token.IDENT, token.LPAREN, token.TILDE, token.FORALL)
	}
}

// parseSchema parses `schema X : mtype. schema` or a plain formula.
func (p *Parser) parseSchema() (*analyzer.FSchemaBuilder, error) {
	if !p.curTokenIs(token.SCHEMA) {
		fb, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		return analyzer.LiftFormula(fb), nil
	}
	loc := p.curLocation()
	if err := p.expectPeek(token.IDENT); err != nil {
		return nil, err
	}
	id, idLoc := p.ident(), p.curLocation()
	if err := p.expectPeek(token.COLON); err != nil {
		return nil, err
	}
	p.nextToken()
	mtype, err := p.parseMetaType()
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.DOT); err != nil {
		return nil, err
	}
	binder, err := analyzer.SchemaPrep(id, mtype, p.ctx.Locals, p.ctx.Globals, idLoc)
	if err != nil {
		return nil, err
	}
	p.nextToken()
	body, err := p.parseSchema()
	if err != nil {
		p.ctx.Locals.Close(binder)
		return nil, err
	}
	return analyzer.CloseSchema(binder, body, p.ctx.Locals, loc)
}

// parseValue reads the right-hand side of a definition; which syntax is
// expected depends on the declared meta-type.
func (p *Parser) parseValue(mtype typesystem.MetaType) (ast.MetaValue, error) {
	g := p.ctx.Globals
	switch want := mtype.(type) {
	case typesystem.MType:
		t, err := p.parseInternalType()
		if err != nil {
			return nil, err
		}
		return ast.TypeValue{Type: t}, nil

	case typesystem.MTerm:
		tb, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if !typesystem.EqualTypes(tb.Type(), want.Type) {
			return nil, diagnostics.New(diagnostics.ITypeMismatch{
				Found:    typesystem.Repr(tb.Type(), g),
				Expected: typesystem.Repr(want.Type, g),
			}, tb.Location())
		}
		return ast.TermValue{Term: tb.Value()}, nil

	case typesystem.MFormula:
		fb, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		got := typesystem.MFormula{Args: fb.ArgTypes()}
		if !typesystem.EqualMeta(got, want) {
			return nil, diagnostics.New(diagnostics.MTypeMismatch{
				Found:    typesystem.ReprMeta(got, g),
				Expected: typesystem.ReprMeta(want, g),
			}, fb.Location())
		}
		return ast.FormulaValue{Formula: fb.Value()}, nil

	case typesystem.MSchema:
		sb, err := p.parseSchema()
		if err != nil {
			return nil, err
		}
		if got := sb.MetaType(); !typesystem.EqualMeta(got, want) {
			return nil, diagnostics.New(diagnostics.MTypeMismatch{
				Found:    typesystem.ReprMeta(got, g),
				Expected: typesystem.ReprMeta(want, g),
			}, sb.Location())
		}
		return ast.SchemaValue{Schema: sb.Value()}, nil

	default:
		return nil, p.unexpected(p.curToken)
	}
}
