package ast

import (
	"errors"
	"testing"

	"github.com/funvibe/rlang/internal/typesystem"
)

type names map[int]string

func (n names) Name(id int) (string, bool) {
	s, ok := n[id]
	return s, ok
}

const (
	idO = iota
	idP
	idQ
	idA
	idB
	idF
)

var testNames = names{idO: "o", idP: "P", idQ: "Q", idA: "a", idB: "b", idF: "f"}

var tO = typesystem.TNamed{Name: typesystem.Global(idO)}

func gsym(n int) *Symbol { return &Symbol{ID: typesystem.Global(n)} }
func lsym(n int) *Symbol { return &Symbol{ID: typesystem.Local(n)} }
func grel(n int) *Relation {
	return &Relation{ID: typesystem.Global(n)}
}

func app(p Formula, args ...Term) Formula {
	for _, a := range args {
		p = &FormulaApp{Pred: p, Arg: a}
	}
	return p
}

func forall(v int, body Formula) *UniversalQ {
	return &UniversalQ{Var: v, Type: tO, Body: body}
}

func TestShow(t *testing.T) {
	tests := []struct {
		name string
		f    Formula
		want string
	}{
		{"false", &False{}, "false"},
		{"relation", grel(idP), "P"},
		{"application", app(grel(idQ), gsym(idA), gsym(idB)), "Q a b"},
		{"nested term", app(grel(idP), &TermApp{Func: gsym(idF), Arg: gsym(idA)}), "P (f a)"},
		{"implication", &Implication{Lhs: app(grel(idP), gsym(idA)), Rhs: &False{}}, "(P a -> false)"},
		{"quantifier", forall(3, app(grel(idP), lsym(3))), "(forall #3 : o. P #3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Show(testNames); got != tt.want {
				t.Errorf("Show() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubstituteWithoutOccurrence(t *testing.T) {
	f := &Implication{Lhs: app(grel(idP), gsym(idA)), Rhs: forall(2, app(grel(idP), lsym(2)))}
	got := SubstituteFormula(f, 9, gsym(idB))
	if !EqualFormulas(got, f) {
		t.Errorf("substituting an absent variable changed %s into %s", f.Show(testNames), got.Show(testNames))
	}
}

func TestSubstituteTerm(t *testing.T) {
	term := &TermApp{Func: gsym(idF), Arg: lsym(1)}
	got := SubstituteTerm(term, 1, gsym(idA))
	want := &TermApp{Func: gsym(idF), Arg: gsym(idA)}
	if !EqualTerms(got, want) {
		t.Errorf("got %s", got.Show(testNames))
	}
	if !EqualTerms(term, &TermApp{Func: gsym(idF), Arg: lsym(1)}) {
		t.Errorf("substitution mutated its input")
	}
}

func TestSubstituteShadowing(t *testing.T) {
	// (P #1) -> forall #1. P #1: only the free occurrence is replaced.
	f := &Implication{
		Lhs: app(grel(idP), lsym(1)),
		Rhs: forall(1, app(grel(idP), lsym(1))),
	}
	got := SubstituteFormula(f, 1, gsym(idA))
	want := &Implication{
		Lhs: app(grel(idP), gsym(idA)),
		Rhs: forall(1, app(grel(idP), lsym(1))),
	}
	if !EqualFormulas(got, want) {
		t.Errorf("got %s", got.Show(testNames))
	}
}

func TestInstantiate(t *testing.T) {
	f := forall(5, &Implication{Lhs: app(grel(idP), lsym(5)), Rhs: app(grel(idQ), lsym(5), gsym(idB))})
	got, err := Instantiate(f, gsym(idA))
	if err != nil {
		t.Fatal(err)
	}
	want := &Implication{Lhs: app(grel(idP), gsym(idA)), Rhs: app(grel(idQ), gsym(idA), gsym(idB))}
	if !EqualFormulas(got, want) {
		t.Errorf("got %s", got.Show(testNames))
	}

	if _, err := Instantiate(app(grel(idP), gsym(idA)), gsym(idA)); !errors.Is(err, ErrNotUniversal) {
		t.Errorf("instantiating a non-quantifier: %v", err)
	}
}

func TestContrapositive(t *testing.T) {
	pa := app(grel(idP), gsym(idA))
	qb := app(grel(idQ), gsym(idB))
	got, err := Contrapositive(&Implication{Lhs: pa, Rhs: qb})
	if err != nil {
		t.Fatal(err)
	}
	want := &Implication{Lhs: Negate(qb), Rhs: Negate(pa)}
	if !EqualFormulas(got, want) {
		t.Errorf("got %s", got.Show(testNames))
	}
	if _, err := Contrapositive(pa); !errors.Is(err, ErrNotImplication) {
		t.Errorf("contrapositive of an atom: %v", err)
	}
}

func TestAlphaEquivalence(t *testing.T) {
	px := func(v int) Formula { return app(grel(idP), lsym(v)) }

	tests := []struct {
		name string
		a, b Formula
		want bool
	}{
		{"reflexive", forall(1, px(1)), forall(1, px(1)), true},
		{"renamed binder", forall(10, px(10)), forall(77, px(77)), true},
		{"different global", app(grel(idP), gsym(idA)), app(grel(idP), gsym(idB)), false},
		{"different shape", forall(1, px(1)), px(1), false},
		{"global vs local", app(grel(idP), gsym(idA)), px(1), false},
		{
			"binder types differ",
			forall(1, px(1)),
			&UniversalQ{Var: 1, Type: typesystem.TFunc{Arg: tO, Ret: tO}, Body: px(1)},
			false,
		},
		{
			"crossed binders",
			forall(1, forall(2, app(grel(idQ), lsym(1), lsym(2)))),
			forall(1, forall(2, app(grel(idQ), lsym(2), lsym(1)))),
			false,
		},
		{
			"consistent renaming of two binders",
			forall(1, forall(2, app(grel(idQ), lsym(1), lsym(2)))),
			forall(8, forall(9, app(grel(idQ), lsym(8), lsym(9)))),
			true,
		},
		{
			"free locals pair up consistently",
			&Implication{Lhs: px(4), Rhs: px(4)},
			&Implication{Lhs: px(6), Rhs: px(7)},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlphaEquivalentFormulas(tt.a, tt.b); got != tt.want {
				t.Errorf("AlphaEquivalentFormulas(%s, %s) = %v", tt.a.Show(testNames), tt.b.Show(testNames), got)
			}
			if got := AlphaEquivalentFormulas(tt.b, tt.a); got != tt.want {
				t.Errorf("not symmetric for %s", tt.name)
			}
		})
	}
}

func TestMatchRestoresAssociation(t *testing.T) {
	ab, ba := Assoc{}, Assoc{}
	if !MatchFormulas(forall(1, app(grel(idP), lsym(1))), forall(2, app(grel(idP), lsym(2))), ab, ba) {
		t.Fatal("expected a match")
	}
	if len(ab) != 0 || len(ba) != 0 {
		t.Errorf("binder pairing leaked out of its body: %v %v", ab, ba)
	}

	// A free local paired before the binder is visible again afterwards.
	ab, ba = Assoc{1: 1}, Assoc{1: 1}
	if !MatchFormulas(forall(1, app(grel(idP), lsym(1))), forall(3, app(grel(idP), lsym(3))), ab, ba) {
		t.Fatal("expected a match")
	}
	if ab[1] != 1 || ba[1] != 1 {
		t.Errorf("prior pairing not restored: %v %v", ab, ba)
	}
	if _, ok := ba[3]; ok {
		t.Errorf("binder #3 still associated")
	}
}

func TestAlphaEquivalentSchemas(t *testing.T) {
	schema := func(x, tv int) FormulaSchema {
		tt := typesystem.TNamed{Name: typesystem.Local(tv)}
		body := &UniversalQ{Var: x, Type: tt, Body: app(grel(idP), lsym(x))}
		return &Schema{Var: tv, MType: typesystem.MType{}, Body: &SchemaFormula{Formula: body}}
	}
	if !AlphaEquivalentSchemas(schema(1, 2), schema(30, 40)) {
		t.Errorf("schemas differing only in binder ids should match")
	}
	other := &Schema{Var: 2, MType: typesystem.MFormula{}, Body: schema(1, 2).(*Schema).Body}
	if AlphaEquivalentSchemas(schema(1, 2), other) {
		t.Errorf("schema binders of different meta-types matched")
	}
	if AlphaEquivalentSchemas(schema(1, 2), &SchemaFormula{Formula: &False{}}) {
		t.Errorf("schema matched a bare formula")
	}
	if f := Underlying(schema(1, 2)); f == nil {
		t.Errorf("Underlying returned nil")
	} else if _, ok := f.(*UniversalQ); !ok {
		t.Errorf("Underlying = %T", f)
	}
}
