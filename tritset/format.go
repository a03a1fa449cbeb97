package tritset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tritdataset/trits/trit"
)

var ErrParse = errors.New("malformed trit string")

// ParseError reports the first character of a string that is not F, U or T.
// Pos is its byte offset.
type ParseError struct {
	Pos  int
	Rune rune
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at %d: %v", ErrParse, e.Pos, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// String renders the trits in [0, Size()) as F, U and T, position 0 first.
func (s *Set) String() string {
	var sb strings.Builder
	sb.Grow(s.size)
	for pos := 0; pos < s.size; pos++ {
		sb.WriteRune(s.Get(pos).Rune())
	}
	return sb.String()
}

// Parse builds a set from its String form. Letters are case-insensitive and
// the leftmost one lands at position 0. Any other character is an error.
// The set has capacity for the whole string, trailing Unknowns included.
func Parse(str string, opts ...OptionFunc) (*Set, error) {
	set := NewUnknown(len(str), opts...)
	pos := 0
	for i, r := range str {
		t, err := trit.FromRune(r)
		if err != nil {
			return nil, &ParseError{Pos: i, Rune: r, Err: err}
		}
		set.Set(pos, t)
		pos++
	}
	return set, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(str string, opts ...OptionFunc) *Set {
	set, err := Parse(str, opts...)
	if err != nil {
		panic(err)
	}
	return set
}
