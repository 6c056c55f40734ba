package analyzer

import (
	"fmt"

	"github.com/funvibe/rlang/internal/ast"
	"github.com/funvibe/rlang/internal/diagnostics"
	"github.com/funvibe/rlang/internal/symbols"
	"github.com/funvibe/rlang/internal/typesystem"
)

// TermBuilder is a well-typed term under construction.
type TermBuilder struct {
	itype    typesystem.InternalType
	value    ast.Term
	location diagnostics.FileLocation
}

func (b *TermBuilder) Type() typesystem.InternalType      { return b.itype }
func (b *TermBuilder) Value() ast.Term                    { return b.value }
func (b *TermBuilder) Location() diagnostics.FileLocation { return b.location }

// Symbol resolves id against the open binders first, then the globals, and
// requires a Term binding.
func Symbol(id int, locals *symbols.LocalBindings, globals *symbols.Bindings, loc diagnostics.FileLocation) (*TermBuilder, error) {
	if local, ok := locals.Local(id); ok {
		mtype, _ := locals.Type(local)
		term, ok := mtype.(typesystem.MTerm)
		if !ok {
			return nil, diagnostics.New(diagnostics.MTypeMismatch{
				Found:    typesystem.ReprMeta(mtype, globals),
				Expected: "Term _",
			}, loc)
		}
		return &TermBuilder{itype: term.Type, value: &ast.Symbol{ID: typesystem.Local(local)}, location: loc}, nil
	}
	mtype, ok := globals.Type(id)
	if !ok {
		return nil, diagnostics.New(diagnostics.NoBinding{Ident: nameOf(id, globals)}, loc)
	}
	term, ok := mtype.(typesystem.MTerm)
	if !ok {
		return nil, diagnostics.New(diagnostics.MTypeMismatch{
			Found:    typesystem.ReprMeta(mtype, globals),
			Expected: "Term _",
		}, loc)
	}
	return &TermBuilder{itype: term.Type, value: &ast.Symbol{ID: typesystem.Global(id)}, location: loc}, nil
}

// ApplyTerm builds function(argument). The head must have an arrow type
// whose domain equals the argument's type.
func ApplyTerm(function, argument *TermBuilder, globals *symbols.Bindings) (*TermBuilder, error) {
	fn, ok := function.itype.(typesystem.TFunc)
	if !ok {
		return nil, diagnostics.New(diagnostics.ITypeMismatch{
			Found:    typesystem.Repr(function.itype, globals),
			Expected: fmt.Sprintf("%s -> _", typesystem.Repr(argument.itype, globals)),
		}, function.location)
	}
	if !typesystem.EqualTypes(fn.Arg, argument.itype) {
		return nil, diagnostics.New(diagnostics.ITypeMismatch{
			Found:    typesystem.Repr(argument.itype, globals),
			Expected: typesystem.Repr(fn.Arg, globals),
		}, argument.location)
	}
	return &TermBuilder{
		itype:    fn.Ret,
		value:    &ast.TermApp{Func: function.value, Arg: argument.value},
		location: function.location,
	}, nil
}

func nameOf(id int, globals *symbols.Bindings) string {
	if name, ok := globals.Name(id); ok {
		return name
	}
	return fmt.Sprintf("$%d", id)
}
