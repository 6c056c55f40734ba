package analyzer

import (
	"fmt"

	"github.com/funvibe/rlang/internal/ast"
	"github.com/funvibe/rlang/internal/diagnostics"
	"github.com/funvibe/rlang/internal/symbols"
	"github.com/funvibe/rlang/internal/typesystem"
)

// FormulaBuilder is a formula under construction together with the
// argument types its head relation is still waiting for.
type FormulaBuilder struct {
	argTypes []typesystem.InternalType
	value    ast.Formula
	location diagnostics.FileLocation
}

func (b *FormulaBuilder) Value() ast.Formula                 { return b.value }
func (b *FormulaBuilder) Location() diagnostics.FileLocation { return b.location }

// ArgTypes returns the outstanding argument types in storage order.
func (b *FormulaBuilder) ArgTypes() []typesystem.InternalType {
	return typesystem.CloneTypes(b.argTypes)
}

// IsWff reports that no relation argument is outstanding.
func (b *FormulaBuilder) IsWff() bool { return len(b.argTypes) == 0 }

func FalseFormula(loc diagnostics.FileLocation) *FormulaBuilder {
	return &FormulaBuilder{value: &ast.False{}, location: loc}
}

// Relation resolves id like Symbol does, but requires a Formula binding.
func Relation(id int, locals *symbols.LocalBindings, globals *symbols.Bindings, loc diagnostics.FileLocation) (*FormulaBuilder, error) {
	var ident typesystem.Ident
	var mtype typesystem.MetaType
	if local, ok := locals.Local(id); ok {
		mtype, _ = locals.Type(local)
		ident = typesystem.Local(local)
	} else if mt, ok := globals.Type(id); ok {
		mtype = mt
		ident = typesystem.Global(id)
	} else {
		return nil, diagnostics.New(diagnostics.NoBinding{Ident: nameOf(id, globals)}, loc)
	}
	rel, ok := mtype.(typesystem.MFormula)
	if !ok {
		return nil, diagnostics.New(diagnostics.MTypeMismatch{
			Found:    typesystem.ReprMeta(mtype, globals),
			Expected: "Formula _*",
		}, loc)
	}
	return &FormulaBuilder{
		argTypes: typesystem.CloneTypes(rel.Args),
		value:    &ast.Relation{ID: ident},
		location: loc,
	}, nil
}

// ApplyFormula supplies the next argument of predicate. Arguments are
// consumed from the end of the outstanding list.
func ApplyFormula(predicate *FormulaBuilder, term *TermBuilder, globals *symbols.Bindings) (*FormulaBuilder, error) {
	n := len(predicate.argTypes)
	if n == 0 {
		return nil, diagnostics.New(diagnostics.MTypeMismatch{
			Found:    typesystem.ReprMeta(typesystem.MFormula{}, globals),
			Expected: fmt.Sprintf("Formula %s _", typesystem.Repr(term.itype, globals)),
		}, predicate.location)
	}
	want := predicate.argTypes[n-1]
	if !typesystem.EqualTypes(term.itype, want) {
		return nil, diagnostics.New(diagnostics.ITypeMismatch{
			Found:    typesystem.Repr(term.itype, globals),
			Expected: typesystem.Repr(want, globals),
		}, term.location)
	}
	return &FormulaBuilder{
		argTypes: typesystem.CloneTypes(predicate.argTypes[:n-1]),
		value:    &ast.FormulaApp{Pred: predicate.value, Arg: term.value},
		location: predicate.location,
	}, nil
}

// Implication connects two wffs.
func Implication(lhs, rhs *FormulaBuilder) (*FormulaBuilder, error) {
	if !lhs.IsWff() || !rhs.IsWff() {
		return nil, diagnostics.New(diagnostics.UnboundImplication{}, lhs.location)
	}
	return &FormulaBuilder{
		value:    &ast.Implication{Lhs: lhs.value, Rhs: rhs.value},
		location: lhs.location,
	}, nil
}

// Negation builds ~f, i.e. f -> false.
func Negation(f *FormulaBuilder, loc diagnostics.FileLocation) (*FormulaBuilder, error) {
	if !f.IsWff() {
		return nil, diagnostics.New(diagnostics.UnboundImplication{}, loc)
	}
	return &FormulaBuilder{value: ast.Negate(f.value), location: loc}, nil
}

// QuantifierPrep opens a Term binder for id before the quantifier body is
// built. The returned Binder must be handed to UniversalQ.
func QuantifierPrep(id int, itype typesystem.InternalType, locals *symbols.LocalBindings, globals *symbols.Bindings, loc diagnostics.FileLocation) (symbols.Binder, error) {
	return openBinder(id, typesystem.MTerm{Type: itype}, locals, globals, loc)
}

// UniversalQ closes binder and quantifies body over it.
func UniversalQ(binder symbols.Binder, body *FormulaBuilder, locals *symbols.LocalBindings, loc diagnostics.FileLocation) (*FormulaBuilder, error) {
	mtype, err := locals.Close(binder)
	if err != nil {
		return nil, err
	}
	term, ok := mtype.(typesystem.MTerm)
	if !ok {
		return nil, fmt.Errorf("universal quantifier over #%d: %w", binder.Local(), symbols.ErrBinderMismatch)
	}
	return &FormulaBuilder{
		argTypes: typesystem.CloneTypes(body.argTypes),
		value:    &ast.UniversalQ{Var: binder.Local(), Type: term.Type, Body: body.value},
		location: loc,
	}, nil
}

func openBinder(id int, mtype typesystem.MetaType, locals *symbols.LocalBindings, globals *symbols.Bindings, loc diagnostics.FileLocation) (symbols.Binder, error) {
	if _, bound := locals.Local(id); bound {
		return symbols.Binder{}, diagnostics.New(diagnostics.BindingExists{Ident: nameOf(id, globals)}, loc)
	}
	return locals.Open(id, globals.NewLocal(), mtype)
}
