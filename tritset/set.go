// Package tritset implements Set, a growable container of trits packed two
// bits per trit into 32-bit words.
//
// A Set distinguishes its logical size, which ends at the last trit that is
// not Unknown, from its capacity, the number of trits its storage can hold.
// Reads are total: any position outside the storage reads as Unknown.
// Writing True or False past the capacity grows the storage by whole words,
// while writing Unknown there never allocates.
//
// A Set is not safe for concurrent use.
package tritset

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tritdataset/trits/internal/bitpack"
	"github.com/tritdataset/trits/trit"
)

// Set is a packed trit container. The zero value is an empty set.
type Set struct {
	words bitpack.Words
	// size is one past the last non-Unknown position, 0 when there is none.
	size   int
	logger *zap.Logger
}

// New returns a set with room for count trits, each set to value. When value
// is Unknown the set has capacity for count trits but a size of 0.
func New(count int, value trit.Trit, opts ...OptionFunc) *Set {
	opt := defaultOption()
	for _, o := range opts {
		o(opt)
	}

	s := &Set{logger: opt.logger}
	s.words = s.words.Grow(bitpack.WordsFor(count))
	if value != trit.Unknown {
		mustValid(value)
		for pos := 0; pos < count; pos++ {
			s.words.Put(pos, uint8(value))
		}
		s.size = max(count, 0)
	}
	return s
}

// NewUnknown returns a set with room for count trits, all Unknown.
func NewUnknown(count int, opts ...OptionFunc) *Set {
	return New(count, trit.Unknown, opts...)
}

// Capacity returns how many trits fit in the current storage.
func (s *Set) Capacity() int {
	return s.words.Len()
}

// Size returns the logical size: the position of the last trit that is not
// Unknown, plus one.
func (s *Set) Size() int {
	return s.size
}

// Get returns the trit at pos. Positions outside the storage, including
// negative ones, are Unknown.
func (s *Set) Get(pos int) trit.Trit {
	return trit.Trit(s.words.Get(pos))
}

// Set stores value at pos and returns s for chaining. Storing True or False
// past the capacity grows the storage; storing Unknown there is a no-op.
// It panics if pos is negative.
func (s *Set) Set(pos int, value trit.Trit) *Set {
	if pos < 0 {
		panic(fmt.Sprintf("tritset: negative position %d", pos))
	}
	mustValid(value)
	if s.Get(pos) == value {
		return s
	}

	if pos >= s.Capacity() {
		s.grow(bitpack.WordsFor(pos + 1))
	}
	s.words.Put(pos, uint8(value))

	switch {
	case value != trit.Unknown && pos >= s.size:
		s.size = pos + 1
	case value == trit.Unknown && pos == s.size-1:
		s.size = s.words.Top() + 1
	}
	return s
}

// Trim sets every position at or after from to Unknown and releases the
// storage that is no longer needed. Trimming at or past Size is a no-op.
func (s *Set) Trim(from int) *Set {
	if from >= s.size {
		return s
	}
	s.words.ClearFrom(from)
	s.size = s.words.Top() + 1
	return s.Shrink()
}

// Shrink releases the storage words past the one holding the last
// non-Unknown trit.
func (s *Set) Shrink() *Set {
	n := bitpack.WordsFor(s.size)
	if n == len(s.words) {
		return s
	}
	s.words = s.words.Clip(n)
	s.log().Debug("tritset: storage released",
		zap.Int("words", n),
		zap.Int("capacity", s.Capacity()),
		zap.Int("size", s.size),
	)
	return s
}

// Clone returns an independent copy of s with minimal storage.
func (s *Set) Clone() *Set {
	c := s.derive(s.size)
	copy(c.words, s.words)
	c.size = s.size
	return c
}

func (s *Set) grow(words int) {
	s.words = s.words.Grow(words)
	s.log().Debug("tritset: storage grown",
		zap.Int("words", words),
		zap.Int("capacity", s.Capacity()),
	)
}

// derive returns an empty set sharing the logger of s, with storage for n
// trits.
func (s *Set) derive(n int) *Set {
	return &Set{
		words:  make(bitpack.Words, bitpack.WordsFor(n)),
		logger: s.logger,
	}
}

func (s *Set) log() *zap.Logger {
	if s.logger == nil {
		return zap.NewNop()
	}
	return s.logger
}

func mustValid(t trit.Trit) {
	if !t.Valid() {
		panic(fmt.Sprintf("tritset: invalid trit %v", t))
	}
}
