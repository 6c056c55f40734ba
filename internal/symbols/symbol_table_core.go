package symbols

import (
	"errors"

	"github.com/funvibe/rlang/internal/ast"
	"github.com/funvibe/rlang/internal/typesystem"
)

// Binding is what a global id is bound to. A nil Value marks a declaration
// that has not been defined yet.
type Binding struct {
	MType typesystem.MetaType
	Value ast.MetaValue
}

// IsDeclaredOnly reports a declaration still waiting for its definition.
func (b Binding) IsDeclaredOnly() bool {
	return b.Value == nil
}

// Contract violations by the caller driving the environment. They are
// returned as errors, never raised, and are distinct from the located
// user-facing errors in package diagnostics.
var (
	ErrBaseScope       = errors.New("cannot take parent of base scope")
	ErrScopeMismatch   = errors.New("scope closed out of order")
	ErrDuplicateLocal  = errors.New("identifier already bound in local scope")
	ErrMissingLocal    = errors.New("local id is not bound")
	ErrBinderMismatch  = errors.New("binder closed out of order")
	ErrNonLIFORemoval  = errors.New("only the most recently minted id can be removed")
	ErrUnknownIdentity = errors.New("unknown identifier id")
)
