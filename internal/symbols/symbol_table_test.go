package symbols

import (
	"errors"
	"testing"

	"github.com/funvibe/rlang/internal/ast"
	"github.com/funvibe/rlang/internal/diagnostics"
	"github.com/funvibe/rlang/internal/typesystem"
)

var here = diagnostics.NewLocation("test.rl", 1, 1)

func TestIDTable(t *testing.T) {
	ids := NewIDTable()
	if got := ids.ID("o"); got != 0 {
		t.Fatalf("first id = %d, want 0", got)
	}
	if got := ids.ID("P"); got != 1 {
		t.Fatalf("second id = %d, want 1", got)
	}
	if got := ids.ID("o"); got != 0 {
		t.Errorf("re-interning o gave %d, want 0", got)
	}
	if name, ok := ids.Name(1); !ok || name != "P" {
		t.Errorf("Name(1) = %q, %v", name, ok)
	}
	if _, ok := ids.Lookup("nope"); ok {
		t.Errorf("Lookup must not mint")
	}
	if ids.Len() != 2 {
		t.Errorf("Len = %d, want 2", ids.Len())
	}
}

func TestIDTableRemoveIsLIFO(t *testing.T) {
	ids := NewIDTable()
	ids.ID("a")
	ids.ID("b")
	ids.ID("c")

	if err := ids.Remove(0); !errors.Is(err, ErrNonLIFORemoval) {
		t.Fatalf("Remove(0) = %v, want ErrNonLIFORemoval", err)
	}
	if err := ids.Remove(7); !errors.Is(err, ErrUnknownIdentity) {
		t.Fatalf("Remove(7) = %v, want ErrUnknownIdentity", err)
	}
	if err := ids.Remove(2); err != nil {
		t.Fatalf("Remove(2): %v", err)
	}
	if _, ok := ids.Lookup("c"); ok {
		t.Errorf("c should be forgotten")
	}
	if got := ids.ID("d"); got != 2 {
		t.Errorf("reclaimed id = %d, want 2", got)
	}
}

func TestIDTableRollback(t *testing.T) {
	ids := NewIDTable()
	ids.ID("keep")
	mark := ids.Mark()
	ids.ID("x")
	ids.ID("y")
	if err := ids.Rollback(mark); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
	if ids.Len() != 1 {
		t.Errorf("Len after rollback = %d, want 1", ids.Len())
	}
	if _, ok := ids.Lookup("keep"); !ok {
		t.Errorf("keep was rolled back")
	}
}

func TestChainMap(t *testing.T) {
	base := NewChainMap[int, string]()
	if !base.IsEmpty() {
		t.Fatal("new map should be empty")
	}
	base.Insert(1, "base")

	child := base.NewChild()
	if v, ok := child.Get(1); !ok || v != "base" {
		t.Fatalf("child.Get(1) = %q, %v", v, ok)
	}
	if _, ok := child.GetInner(1); ok {
		t.Errorf("GetInner must not fall through")
	}
	child.Insert(1, "child")
	if v, _ := child.Get(1); v != "child" {
		t.Errorf("child does not shadow: %q", v)
	}
	if v, _ := base.Get(1); v != "base" {
		t.Errorf("insert leaked into parent: %q", v)
	}
	if child.Depth() != 1 || base.Depth() != 0 {
		t.Errorf("depths = %d, %d", child.Depth(), base.Depth())
	}

	emptyChild := NewChainMap[int, string]().NewChild()
	if !emptyChild.IsEmpty() {
		t.Errorf("empty chain should report empty")
	}
	if base.NewChild().IsEmpty() {
		t.Errorf("chain with a non-empty ancestor is not empty")
	}

	parent, err := child.Parent()
	if err != nil || parent != base {
		t.Fatalf("Parent() = %p, %v", parent, err)
	}
	if _, err := base.Parent(); !errors.Is(err, ErrBaseScope) {
		t.Errorf("base.Parent() error = %v", err)
	}
}

func TestChainMapMergeAndEach(t *testing.T) {
	base := NewChainMap[int, string]()
	base.Insert(1, "a")
	base.Insert(2, "b")
	child := base.NewChild()
	child.Insert(2, "B")
	child.Insert(3, "C")

	seen := map[int]string{}
	child.Each(func(k int, v string) bool {
		seen[k] = v
		return true
	})
	want := map[int]string{1: "a", 2: "B", 3: "C"}
	for k, v := range want {
		if seen[k] != v {
			t.Errorf("Each saw %d=%q, want %q", k, seen[k], v)
		}
	}

	merged, err := child.Merge()
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if v, _ := merged.GetInner(2); v != "B" {
		t.Errorf("merge should overwrite parent entry, got %q", v)
	}
	if v, _ := merged.GetInner(3); v != "C" {
		t.Errorf("merge lost entry 3, got %q", v)
	}
}

func TestBindingsInsert(t *testing.T) {
	b := NewBindings()
	o := b.ID("o")
	a := b.ID("a")
	oType := typesystem.TNamed{Name: typesystem.Global(o)}

	if _, err := b.InsertObject(o, typesystem.MType{}, ast.TypeValue{Type: oType}, here); err != nil {
		t.Fatalf("InsertObject: %v", err)
	}
	_, err := b.InsertObject(o, typesystem.MType{}, ast.TypeValue{Type: oType}, here)
	if diagnostics.KindName(err) != "BindingExists" {
		t.Fatalf("duplicate insert error = %v", err)
	}

	if _, err := b.InsertObjectNoVal(a, typesystem.MTerm{Type: oType}, here); err != nil {
		t.Fatalf("InsertObjectNoVal: %v", err)
	}
	if _, ok := b.Value(a); ok {
		t.Errorf("declared-only binding must have no value")
	}
	mtype, ok := b.Type(a)
	if !ok || !typesystem.EqualMeta(mtype, typesystem.MTerm{Type: oType}) {
		t.Errorf("Type(a) = %v, %v", mtype, ok)
	}
	if bind, ok := b.TypeValue(a); !ok || !bind.IsDeclaredOnly() {
		t.Errorf("TypeValue(a) = %+v, %v", bind, ok)
	}
}

func TestInsertObjectAnyType(t *testing.T) {
	b := NewBindings()
	o := b.ID("o")
	c := b.ID("c")
	undeclared := b.ID("u")
	oType := typesystem.TNamed{Name: typesystem.Global(o)}
	val := ast.TermValue{Term: &ast.Symbol{ID: typesystem.Global(c)}}

	if _, err := b.InsertObjectAnyType(undeclared, typesystem.MTerm{Type: oType}, val, here); diagnostics.KindName(err) != "NoBinding" {
		t.Errorf("defining an undeclared id: %v", err)
	}

	if _, err := b.InsertObjectNoVal(c, typesystem.MType{}, here); err != nil {
		t.Fatal(err)
	}
	// A declaration may be defined with a different meta-type.
	if _, err := b.InsertObjectAnyType(c, typesystem.MTerm{Type: oType}, val, here); err != nil {
		t.Fatalf("InsertObjectAnyType: %v", err)
	}
	if _, ok := b.Value(c); !ok {
		t.Errorf("c should now be defined")
	}
	if _, err := b.InsertObjectAnyType(c, typesystem.MTerm{Type: oType}, val, here); diagnostics.KindName(err) != "BindingExists" {
		t.Errorf("redefining: %v", err)
	}
}

func TestBindingsScopes(t *testing.T) {
	b := NewBindings()
	o := b.ID("o")
	p := b.ID("p")

	outer := b.PushScope()
	if _, err := b.InsertObjectNoVal(o, typesystem.MType{}, here); err != nil {
		t.Fatal(err)
	}
	inner := b.PushScope()
	// Shadowing in a child scope is allowed.
	if _, err := b.InsertObjectNoVal(o, typesystem.MType{}, here); err != nil {
		t.Fatalf("shadowing insert: %v", err)
	}
	if _, err := b.InsertObjectNoVal(p, typesystem.MType{}, here); err != nil {
		t.Fatal(err)
	}
	local := b.NewLocal()

	if err := b.PopScope(outer); !errors.Is(err, ErrScopeMismatch) {
		t.Fatalf("closing outer before inner: %v", err)
	}
	if err := b.PopScope(inner); err != nil {
		t.Fatalf("PopScope: %v", err)
	}
	if _, ok := b.Type(p); ok {
		t.Errorf("p should be discarded with its scope")
	}
	if _, ok := b.Type(o); !ok {
		t.Errorf("o from the outer scope should survive")
	}
	if b.NewLocal() <= local {
		t.Errorf("local counter must stay monotonic across scopes")
	}
	if err := b.PopScope(inner); !errors.Is(err, ErrScopeMismatch) {
		t.Errorf("double close: %v", err)
	}
	if err := b.CommitScope(outer); err != nil {
		t.Fatalf("CommitScope: %v", err)
	}
	if _, ok := b.Type(o); !ok {
		t.Errorf("committed binding lost")
	}
	if b.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", b.Depth())
	}
}

func TestTheorems(t *testing.T) {
	b := NewBindings()
	p := b.ID("P")
	ax1 := b.ID("ax1")
	ax2 := b.ID("ax2")

	stmt := func(v int) ast.FormulaSchema {
		return &ast.Schema{
			Var:   v,
			MType: typesystem.MFormula{},
			Body: &ast.SchemaFormula{Formula: &ast.Implication{
				Lhs: &ast.Relation{ID: typesystem.Local(v)},
				Rhs: &ast.Relation{ID: typesystem.Global(p)},
			}},
		}
	}

	if _, err := b.InsertTheorem(ax1, stmt(3), here); err != nil {
		t.Fatal(err)
	}
	if _, err := b.InsertTheorem(ax1, stmt(4), here); diagnostics.KindName(err) != "BindingExists" {
		t.Errorf("duplicate theorem: %v", err)
	}
	if _, ok := b.Theorem(ax1); !ok {
		t.Errorf("theorem not stored")
	}

	scope := b.PushScope()
	if _, err := b.InsertTheorem(ax2, stmt(9), here); err != nil {
		t.Fatal(err)
	}
	if id, ok := b.FindEquivalentTheorem(stmt(42)); !ok || id != ax1 {
		t.Errorf("FindEquivalentTheorem = %d, %v; want %d", id, ok, ax1)
	}
	if err := b.PopScope(scope); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Theorem(ax2); ok {
		t.Errorf("theorem from a discarded scope survived")
	}
	other := &ast.SchemaFormula{Formula: &ast.False{}}
	if _, ok := b.FindEquivalentTheorem(other); ok {
		t.Errorf("unrelated statement matched a theorem")
	}
}

func TestLocalBindings(t *testing.T) {
	l := NewLocalBindings()
	mt := typesystem.MTerm{Type: typesystem.TNamed{Name: typesystem.Global(0)}}

	if err := l.Insert(5, 100, mt); err != nil {
		t.Fatal(err)
	}
	if err := l.Insert(5, 101, mt); !errors.Is(err, ErrDuplicateLocal) {
		t.Errorf("duplicate insert: %v", err)
	}
	if local, ok := l.Local(5); !ok || local != 100 {
		t.Errorf("Local(5) = %d, %v", local, ok)
	}
	if id, ok := l.Global(100); !ok || id != 5 {
		t.Errorf("Global(100) = %d, %v", id, ok)
	}
	got, err := l.Remove(100)
	if err != nil || !typesystem.EqualMeta(got, mt) {
		t.Errorf("Remove = %v, %v", got, err)
	}
	if _, err := l.Remove(100); !errors.Is(err, ErrMissingLocal) {
		t.Errorf("second remove: %v", err)
	}
	if !l.IsEmpty() {
		t.Errorf("expected empty locals")
	}
}

func TestBinderGuards(t *testing.T) {
	l := NewLocalBindings()
	other := NewLocalBindings()
	mt := typesystem.MFormula{}

	outer, err := l.Open(1, 10, mt)
	if err != nil {
		t.Fatal(err)
	}
	inner, err := l.Open(2, 11, mt)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.Close(outer); !errors.Is(err, ErrBinderMismatch) {
		t.Errorf("closing outer first: %v", err)
	}
	if _, err := other.Close(inner); !errors.Is(err, ErrBinderMismatch) {
		t.Errorf("closing with a foreign table: %v", err)
	}
	if _, err := l.Close(inner); err != nil {
		t.Errorf("Close(inner): %v", err)
	}
	if _, err := l.Close(outer); err != nil {
		t.Errorf("Close(outer): %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len = %d after closing everything", l.Len())
	}
}
