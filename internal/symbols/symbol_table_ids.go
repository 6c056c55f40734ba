package symbols

import "fmt"

// IDTable interns names as consecutive global ids starting at 0.
type IDTable struct {
	nextID   int
	nameToID map[string]int
	idToName map[int]string
}

func NewIDTable() *IDTable {
	return &IDTable{
		nameToID: make(map[string]int),
		idToName: make(map[int]string),
	}
}

// ID returns the id of name, minting the next one if name is new.
func (t *IDTable) ID(name string) int {
	if id, ok := t.nameToID[name]; ok {
		return id
	}
	id := t.nextID
	t.nameToID[name] = id
	t.idToName[id] = name
	t.nextID++
	return id
}

// Lookup returns the id of name without minting.
func (t *IDTable) Lookup(name string) (int, bool) {
	id, ok := t.nameToID[name]
	return id, ok
}

func (t *IDTable) Name(id int) (string, bool) {
	name, ok := t.idToName[id]
	return name, ok
}

func (t *IDTable) Len() int {
	return t.nextID
}

// Remove forgets id and gives it back to the counter. Ids are reclaimed
// strictly last-minted-first; anything else would let the counter hand out
// an id that is still in use.
func (t *IDTable) Remove(id int) error {
	name, ok := t.idToName[id]
	if !ok {
		return fmt.Errorf("remove %d: %w", id, ErrUnknownIdentity)
	}
	if id != t.nextID-1 {
		return fmt.Errorf("remove %d (next is %d): %w", id, t.nextID, ErrNonLIFORemoval)
	}
	delete(t.idToName, id)
	delete(t.nameToID, name)
	t.nextID--
	return nil
}

// Mark returns a point that Rollback can return the table to.
func (t *IDTable) Mark() int {
	return t.nextID
}

// Rollback removes every id minted since mark, newest first.
func (t *IDTable) Rollback(mark int) error {
	for t.nextID > mark {
		if err := t.Remove(t.nextID - 1); err != nil {
			return err
		}
	}
	return nil
}
