package typesystem

import "fmt"

// IdentKind tells global (top-level, interned) names from local (bound) ones.
type IdentKind int

const (
	GlobalIdent IdentKind = iota
	LocalIdent
)

// Ident is an identifier reference. Global ids come from the name table,
// local ids from the bindings' monotonic local counter; the two spaces are
// unrelated, so an Ident is only meaningful together with its Kind.
type Ident struct {
	Kind IdentKind
	N    int
}

func Global(n int) Ident { return Ident{Kind: GlobalIdent, N: n} }

func Local(n int) Ident { return Ident{Kind: LocalIdent, N: n} }

func (id Ident) IsLocal() bool  { return id.Kind == LocalIdent }
func (id Ident) IsGlobal() bool { return id.Kind == GlobalIdent }

func (id Ident) String() string {
	if id.Kind == LocalIdent {
		return fmt.Sprintf("Local(%d)", id.N)
	}
	return fmt.Sprintf("Global(%d)", id.N)
}

// Namer resolves global ids back to source names for rendering.
type Namer interface {
	Name(id int) (string, bool)
}
