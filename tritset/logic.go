package tritset

import (
	"github.com/tritdataset/trits/internal/bitpack"
	"github.com/tritdataset/trits/trit"
)

// Not returns a new set holding the negation of every trit in [0, Size()).
func (s *Set) Not() *Set {
	return s.unary(trit.Not)
}

// And returns the elementwise Kleene conjunction of s and o over
// [0, max(s.Size(), o.Size())). Positions past the end of the shorter operand
// are combined with Unknown, so only False survives there.
func (s *Set) And(o *Set) *Set {
	return s.binary(o, trit.And)
}

// Or returns the elementwise Kleene disjunction of s and o. Positions past the
// end of the shorter operand are combined with Unknown, so only True survives
// there.
func (s *Set) Or(o *Set) *Set {
	return s.binary(o, trit.Or)
}

// Equal reports whether s and o have the same size and the same trits up to
// it. Capacity is not compared.
func (s *Set) Equal(o *Set) bool {
	if s.size != o.size {
		return false
	}
	return bitpack.Equal(s.words, o.words, s.size)
}

// Cardinality returns how many positions in [0, Size()) hold value.
func (s *Set) Cardinality(value trit.Trit) int {
	mustValid(value)
	return s.words.Count(uint8(value), s.size)
}

// Cardinalities returns the count of every trit value over [0, Size()).
func (s *Set) Cardinalities() map[trit.Trit]int {
	f := s.words.Count(uint8(trit.False), s.size)
	t := s.words.Count(uint8(trit.True), s.size)
	return map[trit.Trit]int{
		trit.False:   f,
		trit.Unknown: s.size - f - t,
		trit.True:    t,
	}
}

func (s *Set) unary(op func(trit.Trit) trit.Trit) *Set {
	res := s.derive(s.size)
	for pos := 0; pos < s.size; pos++ {
		res.words.Put(pos, uint8(op(s.Get(pos))))
	}
	return res.settle()
}

func (s *Set) binary(o *Set, op func(a, b trit.Trit) trit.Trit) *Set {
	n := max(s.size, o.size)
	res := s.derive(n)
	for pos := 0; pos < n; pos++ {
		res.words.Put(pos, uint8(op(s.Get(pos), o.Get(pos))))
	}
	return res.settle()
}

// settle recomputes the size of a freshly built set from its content and
// drops the words past it.
func (s *Set) settle() *Set {
	s.size = s.words.Top() + 1
	s.words = s.words.Clip(bitpack.WordsFor(s.size))
	return s
}
