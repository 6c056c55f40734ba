package symbols

import (
	"fmt"

	"github.com/funvibe/rlang/internal/typesystem"
)

// LocalBindings tracks the binders (quantified or schema variables) that are
// open while a statement is being built: which global name each one
// shadows, and its meta-type.
type LocalBindings struct {
	globToLoc  map[int]int
	locToGlob  map[int]int
	localTypes map[int]typesystem.MetaType
	open       []int
}

// Binder is the guard returned by Open; Close accepts only the innermost
// open binder.
type Binder struct {
	owner  *LocalBindings
	global int
	local  int
	depth  int
}

func (b Binder) Global() int { return b.global }
func (b Binder) Local() int  { return b.local }

func NewLocalBindings() *LocalBindings {
	return &LocalBindings{
		globToLoc:  make(map[int]int),
		locToGlob:  make(map[int]int),
		localTypes: make(map[int]typesystem.MetaType),
	}
}

func (l *LocalBindings) IsEmpty() bool { return len(l.globToLoc) == 0 }

func (l *LocalBindings) Len() int { return len(l.globToLoc) }

// Local returns the local id currently bound for the global name id.
func (l *LocalBindings) Local(id int) (int, bool) {
	local, ok := l.globToLoc[id]
	return local, ok
}

// Global returns the global name a local id was bound under.
func (l *LocalBindings) Global(local int) (int, bool) {
	id, ok := l.locToGlob[local]
	return id, ok
}

func (l *LocalBindings) Type(local int) (typesystem.MetaType, bool) {
	mtype, ok := l.localTypes[local]
	return mtype, ok
}

// Insert records a binder of mtype for global id under local id.
func (l *LocalBindings) Insert(id, local int, mtype typesystem.MetaType) error {
	if _, ok := l.globToLoc[id]; ok {
		return fmt.Errorf("insert global %d: %w", id, ErrDuplicateLocal)
	}
	if _, ok := l.locToGlob[local]; ok {
		return fmt.Errorf("insert local %d: %w", local, ErrDuplicateLocal)
	}
	l.globToLoc[id] = local
	l.locToGlob[local] = id
	l.localTypes[local] = mtype
	return nil
}

// Remove deletes the binder for local id and returns its meta-type.
func (l *LocalBindings) Remove(local int) (typesystem.MetaType, error) {
	id, ok := l.locToGlob[local]
	if !ok {
		return nil, fmt.Errorf("remove local %d: %w", local, ErrMissingLocal)
	}
	mtype := l.localTypes[local]
	delete(l.locToGlob, local)
	delete(l.globToLoc, id)
	delete(l.localTypes, local)
	return mtype, nil
}

// Open inserts a binder and pushes it on the stack of open binders.
func (l *LocalBindings) Open(id, local int, mtype typesystem.MetaType) (Binder, error) {
	if err := l.Insert(id, local, mtype); err != nil {
		return Binder{}, err
	}
	l.open = append(l.open, local)
	return Binder{owner: l, global: id, local: local, depth: len(l.open)}, nil
}

// Close removes b, which must be the innermost open binder.
func (l *LocalBindings) Close(b Binder) (typesystem.MetaType, error) {
	n := len(l.open)
	if b.owner != l || n == 0 || b.depth != n || l.open[n-1] != b.local {
		return nil, fmt.Errorf("close binder #%d: %w", b.local, ErrBinderMismatch)
	}
	mtype, err := l.Remove(b.local)
	if err != nil {
		return nil, err
	}
	l.open = l.open[:n-1]
	return mtype, nil
}
