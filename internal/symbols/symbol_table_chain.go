package symbols

// ChainMap is a stack of maps. Reads fall through from the innermost level
// to the base; writes only ever touch the innermost level.
type ChainMap[K comparable, V any] struct {
	store map[K]V
	outer *ChainMap[K, V]
}

func NewChainMap[K comparable, V any]() *ChainMap[K, V] {
	return &ChainMap[K, V]{store: make(map[K]V)}
}

// NewChild pushes an empty level on top of c.
func (c *ChainMap[K, V]) NewChild() *ChainMap[K, V] {
	return &ChainMap[K, V]{store: make(map[K]V), outer: c}
}

// Parent drops the innermost level.
func (c *ChainMap[K, V]) Parent() (*ChainMap[K, V], error) {
	if c.outer == nil {
		return nil, ErrBaseScope
	}
	return c.outer, nil
}

// Merge drops the innermost level after copying its entries into the
// parent, where they shadow whatever the parent held for the same keys.
func (c *ChainMap[K, V]) Merge() (*ChainMap[K, V], error) {
	if c.outer == nil {
		return nil, ErrBaseScope
	}
	for k, v := range c.store {
		c.outer.store[k] = v
	}
	return c.outer, nil
}

func (c *ChainMap[K, V]) Get(key K) (V, bool) {
	for m := c; m != nil; m = m.outer {
		if v, ok := m.store[key]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// GetInner looks at the innermost level only.
func (c *ChainMap[K, V]) GetInner(key K) (V, bool) {
	v, ok := c.store[key]
	return v, ok
}

// Insert writes key at the innermost level and returns what that level
// held for it before.
func (c *ChainMap[K, V]) Insert(key K, val V) (V, bool) {
	prev, ok := c.store[key]
	c.store[key] = val
	return prev, ok
}

// IsEmpty is true only if every level is empty.
func (c *ChainMap[K, V]) IsEmpty() bool {
	for m := c; m != nil; m = m.outer {
		if len(m.store) > 0 {
			return false
		}
	}
	return true
}

// Depth is the number of levels above the base.
func (c *ChainMap[K, V]) Depth() int {
	d := 0
	for m := c.outer; m != nil; m = m.outer {
		d++
	}
	return d
}

// Each visits every visible entry, innermost level first, skipping
// shadowed ones, until fn returns false.
func (c *ChainMap[K, V]) Each(fn func(K, V) bool) {
	seen := make(map[K]bool)
	for m := c; m != nil; m = m.outer {
		for k, v := range m.store {
			if seen[k] {
				continue
			}
			seen[k] = true
			if !fn(k, v) {
				return
			}
		}
	}
}
