package symbols

import (
	"fmt"

	"github.com/funvibe/rlang/internal/ast"
	"github.com/funvibe/rlang/internal/diagnostics"
	"github.com/funvibe/rlang/internal/typesystem"
)

// Bindings is the global environment of one run: interned names, the
// scoped value and theorem tables, and the counter minting local ids.
// The name table and the local counter are shared by every scope.
type Bindings struct {
	ids       *IDTable
	nextLocal int
	values    *ChainMap[int, Binding]
	theorems  *ChainMap[int, ast.FormulaSchema]
	depth     int
}

// Scope is the guard returned by PushScope. Only the innermost open scope
// can be closed.
type Scope struct {
	owner *Bindings
	depth int
}

func NewBindings() *Bindings {
	return &Bindings{
		ids:      NewIDTable(),
		values:   NewChainMap[int, Binding](),
		theorems: NewChainMap[int, ast.FormulaSchema](),
	}
}

// NewLocal mints a local id that has never been handed out before.
func (b *Bindings) NewLocal() int {
	id := b.nextLocal
	b.nextLocal++
	return id
}

func (b *Bindings) IDs() *IDTable { return b.ids }

// ID interns name.
func (b *Bindings) ID(name string) int { return b.ids.ID(name) }

// Name implements typesystem.Namer.
func (b *Bindings) Name(id int) (string, bool) { return b.ids.Name(id) }

func (b *Bindings) nameOf(id int) string {
	if name, ok := b.ids.Name(id); ok {
		return name
	}
	return fmt.Sprintf("$%d", id)
}

// Depth is the number of scopes pushed above the base scope.
func (b *Bindings) Depth() int { return b.depth }

// PushScope opens a child scope in the value and theorem tables.
func (b *Bindings) PushScope() Scope {
	b.values = b.values.NewChild()
	b.theorems = b.theorems.NewChild()
	b.depth++
	return Scope{owner: b, depth: b.depth}
}

// PopScope closes s, discarding everything bound inside it.
func (b *Bindings) PopScope(s Scope) error {
	if err := b.checkScope(s); err != nil {
		return err
	}
	values, err := b.values.Parent()
	if err != nil {
		return err
	}
	theorems, err := b.theorems.Parent()
	if err != nil {
		return err
	}
	b.values, b.theorems = values, theorems
	b.depth--
	return nil
}

// CommitScope closes s, keeping its bindings in the enclosing scope.
func (b *Bindings) CommitScope(s Scope) error {
	if err := b.checkScope(s); err != nil {
		return err
	}
	values, err := b.values.Merge()
	if err != nil {
		return err
	}
	theorems, err := b.theorems.Merge()
	if err != nil {
		return err
	}
	b.values, b.theorems = values, theorems
	b.depth--
	return nil
}

func (b *Bindings) checkScope(s Scope) error {
	if s.owner != b || s.depth != b.depth || s.depth == 0 {
		return fmt.Errorf("closing scope %d at depth %d: %w", s.depth, b.depth, ErrScopeMismatch)
	}
	return nil
}

func (b *Bindings) Type(id int) (typesystem.MetaType, bool) {
	bind, ok := b.values.Get(id)
	if !ok {
		return nil, false
	}
	return bind.MType, true
}

// Value returns the definition of id; false also covers declared-only ids.
func (b *Bindings) Value(id int) (ast.MetaValue, bool) {
	bind, ok := b.values.Get(id)
	if !ok || bind.Value == nil {
		return nil, false
	}
	return bind.Value, true
}

func (b *Bindings) TypeValue(id int) (Binding, bool) {
	return b.values.Get(id)
}

func (b *Bindings) Theorem(id int) (ast.FormulaSchema, bool) {
	return b.theorems.Get(id)
}

// InsertObjectNoVal declares id without a definition.
func (b *Bindings) InsertObjectNoVal(id int, mtype typesystem.MetaType, loc diagnostics.FileLocation) (int, error) {
	return b.insertFresh(id, Binding{MType: mtype}, loc)
}

// InsertObject binds id to a defined value.
func (b *Bindings) InsertObject(id int, mtype typesystem.MetaType, val ast.MetaValue, loc diagnostics.FileLocation) (int, error) {
	return b.insertFresh(id, Binding{MType: mtype, Value: val}, loc)
}

func (b *Bindings) insertFresh(id int, bind Binding, loc diagnostics.FileLocation) (int, error) {
	if _, exists := b.values.GetInner(id); exists {
		return 0, diagnostics.New(diagnostics.BindingExists{Ident: b.nameOf(id)}, loc)
	}
	b.values.Insert(id, bind)
	return id, nil
}

// InsertObjectAnyType defines an id that was declared without a value,
// with any meta-type. It fails when id is already defined, and when it was
// never declared at all.
func (b *Bindings) InsertObjectAnyType(id int, mtype typesystem.MetaType, val ast.MetaValue, loc diagnostics.FileLocation) (int, error) {
	prev, ok := b.values.Get(id)
	if !ok {
		return 0, diagnostics.New(diagnostics.NoBinding{Ident: b.nameOf(id)}, loc)
	}
	if !prev.IsDeclaredOnly() {
		return 0, diagnostics.New(diagnostics.BindingExists{Ident: b.nameOf(id)}, loc)
	}
	b.values.Insert(id, Binding{MType: mtype, Value: val})
	return id, nil
}

// InsertTheorem records a proved schema under id.
func (b *Bindings) InsertTheorem(id int, stmt ast.FormulaSchema, loc diagnostics.FileLocation) (int, error) {
	if _, exists := b.theorems.GetInner(id); exists {
		return 0, diagnostics.New(diagnostics.BindingExists{Ident: b.nameOf(id)}, loc)
	}
	b.theorems.Insert(id, stmt)
	return id, nil
}

// FindEquivalentTheorem returns the lowest theorem id whose statement is
// alpha-equivalent to stmt.
func (b *Bindings) FindEquivalentTheorem(stmt ast.FormulaSchema) (int, bool) {
	found, best := false, 0
	b.theorems.Each(func(id int, thm ast.FormulaSchema) bool {
		if (!found || id < best) && ast.AlphaEquivalentSchemas(thm, stmt) {
			found, best = true, id
		}
		return true
	})
	return best, found
}
