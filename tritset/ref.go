package tritset

import "github.com/tritdataset/trits/trit"

// Ref is a handle on one position of a Set. Reading it reads the set and
// writing it writes the set; it holds no trit of its own, so copying a Ref
// only copies the binding.
type Ref struct {
	set *Set
	pos int

	// Refs are not comparable: two bindings are never "the same trit".
	_ [0]func()
}

// At returns a Ref bound to pos.
func (s *Set) At(pos int) Ref {
	return Ref{set: s, pos: pos}
}

// Pos returns the bound position.
func (r Ref) Pos() int {
	return r.pos
}

// Get returns the current trit at the bound position.
func (r Ref) Get() trit.Trit {
	return r.set.Get(r.pos)
}

// Set writes value through to the set, like Set.Set, and returns the set.
func (r Ref) Set(value trit.Trit) *Set {
	return r.set.Set(r.pos, value)
}

func (r Ref) String() string {
	return r.Get().String()
}
