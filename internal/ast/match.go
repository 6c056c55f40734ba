package ast

import "github.com/funvibe/rlang/internal/typesystem"

// Assoc maps local ids of one expression to local ids of another.
type Assoc map[int]int

// MatchTerms reports whether a and b are equal up to a consistent renaming
// of locals. ab and ba are extended in place with every free local pairing
// the match needed.
func MatchTerms(a, b Term, ab, ba Assoc) bool {
	switch x := a.(type) {
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && matchIdent(x.ID, y.ID, ab, ba)
	case *TermApp:
		y, ok := b.(*TermApp)
		return ok && MatchTerms(x.Func, y.Func, ab, ba) && MatchTerms(x.Arg, y.Arg, ab, ba)
	default:
		return false
	}
}

// MatchFormulas is MatchTerms for formulas. Binder pairs are associated for
// the duration of their bodies only.
func MatchFormulas(a, b Formula, ab, ba Assoc) bool {
	switch x := a.(type) {
	case *False:
		_, ok := b.(*False)
		return ok
	case *Relation:
		y, ok := b.(*Relation)
		return ok && matchIdent(x.ID, y.ID, ab, ba)
	case *FormulaApp:
		y, ok := b.(*FormulaApp)
		return ok && MatchFormulas(x.Pred, y.Pred, ab, ba) && MatchTerms(x.Arg, y.Arg, ab, ba)
	case *Implication:
		y, ok := b.(*Implication)
		return ok && MatchFormulas(x.Lhs, y.Lhs, ab, ba) && MatchFormulas(x.Rhs, y.Rhs, ab, ba)
	case *UniversalQ:
		y, ok := b.(*UniversalQ)
		if !ok || !MatchTypes(x.Type, y.Type, ab, ba) {
			return false
		}
		restore := associate(ab, ba, x.Var, y.Var)
		defer restore()
		return MatchFormulas(x.Body, y.Body, ab, ba)
	default:
		return false
	}
}

// MatchSchemas extends MatchFormulas through meta-level binders.
func MatchSchemas(a, b FormulaSchema, ab, ba Assoc) bool {
	switch x := a.(type) {
	case *SchemaFormula:
		y, ok := b.(*SchemaFormula)
		return ok && MatchFormulas(x.Formula, y.Formula, ab, ba)
	case *Schema:
		y, ok := b.(*Schema)
		if !ok || !matchMeta(x.MType, y.MType, ab, ba) {
			return false
		}
		restore := associate(ab, ba, x.Var, y.Var)
		defer restore()
		return MatchSchemas(x.Body, y.Body, ab, ba)
	default:
		return false
	}
}

// MatchTypes compares internal types, renaming type variables bound by
// schema binders through the same association.
func MatchTypes(a, b typesystem.InternalType, ab, ba Assoc) bool {
	switch x := a.(type) {
	case typesystem.TNamed:
		y, ok := b.(typesystem.TNamed)
		return ok && matchIdent(x.Name, y.Name, ab, ba)
	case typesystem.TFunc:
		y, ok := b.(typesystem.TFunc)
		return ok && MatchTypes(x.Arg, y.Arg, ab, ba) && MatchTypes(x.Ret, y.Ret, ab, ba)
	default:
		return false
	}
}

func matchMeta(a, b typesystem.MetaType, ab, ba Assoc) bool {
	switch x := a.(type) {
	case typesystem.MType:
		_, ok := b.(typesystem.MType)
		return ok
	case typesystem.MTerm:
		y, ok := b.(typesystem.MTerm)
		return ok && MatchTypes(x.Type, y.Type, ab, ba)
	case typesystem.MFormula:
		y, ok := b.(typesystem.MFormula)
		if !ok || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !MatchTypes(x.Args[i], y.Args[i], ab, ba) {
				return false
			}
		}
		return true
	case typesystem.MSchema:
		y, ok := b.(typesystem.MSchema)
		if !ok || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if !matchMeta(x.Params[i], y.Params[i], ab, ba) {
				return false
			}
		}
		return matchMeta(x.Ret, y.Ret, ab, ba)
	default:
		return false
	}
}

// matchIdent: globals must be identical; locals must agree with the
// association, or extend it when neither side has been paired yet.
func matchIdent(a, b typesystem.Ident, ab, ba Assoc) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.IsGlobal() {
		return a.N == b.N
	}
	j, okA := ab[a.N]
	i, okB := ba[b.N]
	if okA || okB {
		return okA && okB && j == b.N && i == a.N
	}
	ab[a.N] = b.N
	ba[b.N] = a.N
	return true
}

// associate pairs binder i with binder j and returns a func that puts back
// whatever pairing either id had before.
func associate(ab, ba Assoc, i, j int) func() {
	prevA, hadA := ab[i]
	prevB, hadB := ba[j]
	ab[i] = j
	ba[j] = i
	return func() {
		if hadA {
			ab[i] = prevA
		} else {
			delete(ab, i)
		}
		if hadB {
			ba[j] = prevB
		} else {
			delete(ba, j)
		}
	}
}

// AlphaEquivalentFormulas matches with fresh associations.
func AlphaEquivalentFormulas(a, b Formula) bool {
	return MatchFormulas(a, b, Assoc{}, Assoc{})
}

// AlphaEquivalentSchemas matches with fresh associations.
func AlphaEquivalentSchemas(a, b FormulaSchema) bool {
	return MatchSchemas(a, b, Assoc{}, Assoc{})
}
