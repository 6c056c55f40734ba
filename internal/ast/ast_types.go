package ast

import (
	"fmt"

	"github.com/funvibe/rlang/internal/typesystem"
)

// FormulaSchema is a formula under zero or more meta-level binders.
type FormulaSchema interface {
	schemaNode()
	Show(names typesystem.Namer) string
}

// SchemaFormula is the binder-free base case.
type SchemaFormula struct {
	Formula Formula
}

// Schema binds local Var of any meta-type over Body.
type Schema struct {
	Var   int
	MType typesystem.MetaType
	Body  FormulaSchema
}

func (*SchemaFormula) schemaNode() {}
func (*Schema) schemaNode()        {}

func (s *SchemaFormula) Show(names typesystem.Namer) string { return s.Formula.Show(names) }

func (s *Schema) Show(names typesystem.Namer) string {
	return fmt.Sprintf("(schema #%d : %s. %s)", s.Var, typesystem.ReprMeta(s.MType, names), s.Body.Show(names))
}

// Underlying strips every meta binder and returns the inner formula.
func Underlying(s FormulaSchema) Formula {
	for {
		switch n := s.(type) {
		case *Schema:
			s = n.Body
		case *SchemaFormula:
			return n.Formula
		default:
			return nil
		}
	}
}

// MetaValue is the denotation of a defined binding.
type MetaValue interface {
	metaValue()
}

type TypeValue struct{ Type typesystem.InternalType }
type TermValue struct{ Term Term }
type FormulaValue struct{ Formula Formula }
type SchemaValue struct{ Schema FormulaSchema }

func (TypeValue) metaValue()    {}
func (TermValue) metaValue()    {}
func (FormulaValue) metaValue() {}
func (SchemaValue) metaValue()  {}

// ShowValue renders a meta value for logs and the REPL.
func ShowValue(v MetaValue, names typesystem.Namer) string {
	switch val := v.(type) {
	case TypeValue:
		return typesystem.Repr(val.Type, names)
	case TermValue:
		return val.Term.Show(names)
	case FormulaValue:
		return val.Formula.Show(names)
	case SchemaValue:
		return val.Schema.Show(names)
	default:
		return "<undefined>"
	}
}
