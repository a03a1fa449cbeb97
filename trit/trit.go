// Package trit provides the three-valued logic element used by tritset, and
// the Kleene NOT/AND/OR operators over it.
//
// The numeric value of a Trit is its 2-bit storage code, so the zero value
// is Unknown.
package trit

import (
	"errors"
	"fmt"
)

type Trit uint8

const (
	Unknown Trit = 0b00
	False   Trit = 0b01
	True    Trit = 0b10
)

var ErrInvalidRune = errors.New("invalid trit rune")

// InvalidRuneError is returned by FromRune for anything other than F, U or T.
type InvalidRuneError struct {
	Rune rune
}

func (e *InvalidRuneError) Error() string {
	return fmt.Sprintf("%v: %q; expected one of F, U, T", ErrInvalidRune, e.Rune)
}

func (e *InvalidRuneError) Unwrap() error {
	return ErrInvalidRune
}

// Valid reports whether t is one of False, Unknown or True.
func (t Trit) Valid() bool {
	return t == Unknown || t == False || t == True
}

func (t Trit) String() string {
	switch t {
	case False:
		return "False"
	case Unknown:
		return "Unknown"
	case True:
		return "True"
	}
	return fmt.Sprintf("Trit(%#02b)", uint8(t))
}

// Rune returns the single-letter form of t: 'F', 'U' or 'T'.
func (t Trit) Rune() rune {
	switch t {
	case False:
		return 'F'
	case Unknown:
		return 'U'
	case True:
		return 'T'
	}
	panic(invalid(t))
}

// FromRune is the inverse of Rune. Lower-case letters are accepted.
func FromRune(r rune) (Trit, error) {
	switch r {
	case 'F', 'f':
		return False, nil
	case 'U', 'u':
		return Unknown, nil
	case 'T', 't':
		return True, nil
	}
	return Unknown, &InvalidRuneError{Rune: r}
}

func FromBool(b bool) Trit {
	if b {
		return True
	}
	return False
}

func invalid(t Trit) string {
	return fmt.Sprintf("trit: invalid value %#02b", uint8(t))
}
