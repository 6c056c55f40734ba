package ast

import (
	"fmt"

	"github.com/funvibe/rlang/internal/typesystem"
)

// SubstituteTerm replaces every occurrence of Local(v) in t with repl.
func SubstituteTerm(t Term, v int, repl Term) Term {
	switch n := t.(type) {
	case *Symbol:
		if n.ID == typesystem.Local(v) {
			return repl
		}
		return n
	case *TermApp:
		return &TermApp{Func: SubstituteTerm(n.Func, v, repl), Arg: SubstituteTerm(n.Arg, v, repl)}
	default:
		return t
	}
}

// SubstituteFormula replaces every free occurrence of Local(v) in f with
// repl. A binder for v shadows it and its body is left alone.
//
// No renaming is done on the way under binders: local ids are minted fresh
// and never reused while their binder is open, so a binder inside f can
// never capture a variable of repl.
func SubstituteFormula(f Formula, v int, repl Term) Formula {
	switch n := f.(type) {
	case *False, *Relation:
		return n
	case *FormulaApp:
		return &FormulaApp{Pred: SubstituteFormula(n.Pred, v, repl), Arg: SubstituteTerm(n.Arg, v, repl)}
	case *Implication:
		return &Implication{Lhs: SubstituteFormula(n.Lhs, v, repl), Rhs: SubstituteFormula(n.Rhs, v, repl)}
	case *UniversalQ:
		if n.Var == v {
			return n
		}
		return &UniversalQ{Var: n.Var, Type: n.Type, Body: SubstituteFormula(n.Body, v, repl)}
	default:
		return f
	}
}

// Instantiate eliminates the outer universal quantifier of f with t.
func Instantiate(f Formula, t Term) (Formula, error) {
	q, ok := f.(*UniversalQ)
	if !ok {
		return nil, fmt.Errorf("cannot instantiate %T: %w", f, ErrNotUniversal)
	}
	return SubstituteFormula(q.Body, q.Var, t), nil
}
