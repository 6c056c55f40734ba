package analyzer

import (
	"github.com/funvibe/rlang/internal/ast"
	"github.com/funvibe/rlang/internal/diagnostics"
	"github.com/funvibe/rlang/internal/symbols"
	"github.com/funvibe/rlang/internal/typesystem"
)

// FSchemaBuilder is a formula schema under construction.
type FSchemaBuilder struct {
	// margTypes collects the meta-types of closed schema binders,
	// innermost first.
	margTypes []typesystem.MetaType
	iargTypes []typesystem.InternalType
	value     ast.FormulaSchema
	location  diagnostics.FileLocation
}

func (b *FSchemaBuilder) Value() ast.FormulaSchema           { return b.value }
func (b *FSchemaBuilder) Location() diagnostics.FileLocation { return b.location }

func (b *FSchemaBuilder) MArgTypes() []typesystem.MetaType {
	out := make([]typesystem.MetaType, len(b.margTypes))
	copy(out, b.margTypes)
	return out
}

// IsWffSchema reports that the underlying formula takes no more terms.
func (b *FSchemaBuilder) IsWffSchema() bool { return len(b.iargTypes) == 0 }

// MetaType is the meta-type a binding defined by this schema would have.
func (b *FSchemaBuilder) MetaType() typesystem.MetaType {
	ret := typesystem.MFormula{Args: typesystem.CloneTypes(b.iargTypes)}
	if len(b.margTypes) == 0 {
		return ret
	}
	return typesystem.MSchema{Params: b.MArgTypes(), Ret: ret}
}

// LiftFormula makes a binder-free schema out of a formula.
func LiftFormula(formula *FormulaBuilder) *FSchemaBuilder {
	return &FSchemaBuilder{
		iargTypes: typesystem.CloneTypes(formula.argTypes),
		value:     &ast.SchemaFormula{Formula: formula.value},
		location:  formula.location,
	}
}

// SchemaPrep opens a binder of any meta-type for id.
func SchemaPrep(id int, mtype typesystem.MetaType, locals *symbols.LocalBindings, globals *symbols.Bindings, loc diagnostics.FileLocation) (symbols.Binder, error) {
	return openBinder(id, mtype, locals, globals, loc)
}

// CloseSchema closes binder and wraps body in a Schema node.
func CloseSchema(binder symbols.Binder, body *FSchemaBuilder, locals *symbols.LocalBindings, loc diagnostics.FileLocation) (*FSchemaBuilder, error) {
	mtype, err := locals.Close(binder)
	if err != nil {
		return nil, err
	}
	margs := make([]typesystem.MetaType, 0, len(body.margTypes)+1)
	margs = append(margs, body.margTypes...)
	margs = append(margs, mtype)
	return &FSchemaBuilder{
		margTypes: margs,
		iargTypes: typesystem.CloneTypes(body.iargTypes),
		value:     &ast.Schema{Var: binder.Local(), MType: mtype, Body: body.value},
		location:  loc,
	}, nil
}
