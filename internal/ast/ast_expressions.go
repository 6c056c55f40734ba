package ast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/funvibe/rlang/internal/typesystem"
)

// Formula is a logical expression over terms.
type Formula interface {
	formulaNode()
	Show(names typesystem.Namer) string
}

// False is falsum.
type False struct{}

// Relation references a relation symbol, possibly awaiting arguments.
type Relation struct {
	ID typesystem.Ident
}

// FormulaApp supplies one more term argument to a relation.
type FormulaApp struct {
	Pred Formula
	Arg  Term
}

// Implication is Lhs -> Rhs.
type Implication struct {
	Lhs Formula
	Rhs Formula
}

// UniversalQ binds local variable Var of type Type over Body.
type UniversalQ struct {
	Var  int
	Type typesystem.InternalType
	Body Formula
}

func (*False) formulaNode()       {}
func (*Relation) formulaNode()    {}
func (*FormulaApp) formulaNode()  {}
func (*Implication) formulaNode() {}
func (*UniversalQ) formulaNode()  {}

var (
	ErrNotUniversal   = errors.New("formula is not a universal quantification")
	ErrNotImplication = errors.New("formula is not an implication")
)

func (*False) Show(typesystem.Namer) string { return "false" }

func (r *Relation) Show(names typesystem.Namer) string {
	return typesystem.IdentRepr(r.ID, names)
}

func (a *FormulaApp) Show(names typesystem.Namer) string {
	var args []Term
	var f Formula = a
	for {
		app, ok := f.(*FormulaApp)
		if !ok {
			break
		}
		args = append(args, app.Arg)
		f = app.Pred
	}
	parts := []string{showFormulaOperand(f, names)}
	for i := len(args) - 1; i >= 0; i-- {
		parts = append(parts, showTermArg(args[i], names))
	}
	return strings.Join(parts, " ")
}

func (i *Implication) Show(names typesystem.Namer) string {
	return fmt.Sprintf("(%s -> %s)", i.Lhs.Show(names), i.Rhs.Show(names))
}

func (q *UniversalQ) Show(names typesystem.Namer) string {
	return fmt.Sprintf("(forall #%d : %s. %s)", q.Var, typesystem.Repr(q.Type, names), q.Body.Show(names))
}

func showFormulaOperand(f Formula, names typesystem.Namer) string {
	switch f.(type) {
	case *False, *Relation:
		return f.Show(names)
	default:
		return fmt.Sprintf("(%s)", f.Show(names))
	}
}

// Negate returns f -> false.
func Negate(f Formula) Formula {
	return &Implication{Lhs: f, Rhs: &False{}}
}

// Contrapositive turns a -> b into ~b -> ~a.
func Contrapositive(f Formula) (Formula, error) {
	imp, ok := f.(*Implication)
	if !ok {
		return nil, fmt.Errorf("cannot take contrapositive: %w", ErrNotImplication)
	}
	return &Implication{Lhs: Negate(imp.Rhs), Rhs: Negate(imp.Lhs)}, nil
}

// EqualFormulas reports structural (not alpha) equality.
func EqualFormulas(a, b Formula) bool {
	switch x := a.(type) {
	case *False:
		_, ok := b.(*False)
		return ok
	case *Relation:
		y, ok := b.(*Relation)
		return ok && x.ID == y.ID
	case *FormulaApp:
		y, ok := b.(*FormulaApp)
		return ok && EqualFormulas(x.Pred, y.Pred) && EqualTerms(x.Arg, y.Arg)
	case *Implication:
		y, ok := b.(*Implication)
		return ok && EqualFormulas(x.Lhs, y.Lhs) && EqualFormulas(x.Rhs, y.Rhs)
	case *UniversalQ:
		y, ok := b.(*UniversalQ)
		return ok && x.Var == y.Var && typesystem.EqualTypes(x.Type, y.Type) && EqualFormulas(x.Body, y.Body)
	default:
		return a == nil && b == nil
	}
}
