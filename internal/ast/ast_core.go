package ast

import (
	"fmt"
	"strings"

	"github.com/funvibe/rlang/internal/typesystem"
)

// Term is an object-level expression: a symbol or a curried application.
// Terms are immutable once built.
type Term interface {
	termNode()
	Show(names typesystem.Namer) string
}

// Symbol references a global constant or a locally bound variable.
type Symbol struct {
	ID typesystem.Ident
}

// TermApp applies Func to a single argument.
type TermApp struct {
	Func Term
	Arg  Term
}

func (*Symbol) termNode()  {}
func (*TermApp) termNode() {}

func (s *Symbol) Show(names typesystem.Namer) string {
	return typesystem.IdentRepr(s.ID, names)
}

func (a *TermApp) Show(names typesystem.Namer) string {
	head, args := spineTerm(a)
	parts := []string{head.Show(names)}
	for _, arg := range args {
		parts = append(parts, showTermArg(arg, names))
	}
	return strings.Join(parts, " ")
}

// spineTerm flattens f a b c into (f, [a b c]).
func spineTerm(t Term) (Term, []Term) {
	var args []Term
	for {
		app, ok := t.(*TermApp)
		if !ok {
			break
		}
		args = append(args, app.Arg)
		t = app.Func
	}
	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}
	return t, args
}

func showTermArg(t Term, names typesystem.Namer) string {
	if _, ok := t.(*TermApp); ok {
		return fmt.Sprintf("(%s)", t.Show(names))
	}
	return t.Show(names)
}

// EqualTerms reports structural (not alpha) equality.
func EqualTerms(a, b Term) bool {
	switch x := a.(type) {
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && x.ID == y.ID
	case *TermApp:
		y, ok := b.(*TermApp)
		return ok && EqualTerms(x.Func, y.Func) && EqualTerms(x.Arg, y.Arg)
	default:
		return a == nil && b == nil
	}
}
