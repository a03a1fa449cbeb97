package trit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tritdataset/trits/trit"
)

const (
	F = trit.False
	U = trit.Unknown
	T = trit.True
)

var all = []trit.Trit{F, U, T}

func TestNot(t *testing.T) {
	r := require.New(t)

	r.Equal(T, trit.Not(F))
	r.Equal(U, trit.Not(U))
	r.Equal(F, trit.Not(T))

	for _, v := range all {
		r.Equal(v, trit.Not(trit.Not(v)))
	}
}

func TestAnd(t *testing.T) {
	r := require.New(t)

	expected := map[[2]trit.Trit]trit.Trit{
		{F, F}: F, {F, U}: F, {F, T}: F,
		{U, F}: F, {U, U}: U, {U, T}: U,
		{T, F}: F, {T, U}: U, {T, T}: T,
	}
	for in, out := range expected {
		r.Equal(out, trit.And(in[0], in[1]), "%v AND %v", in[0], in[1])
	}
}

func TestOr(t *testing.T) {
	r := require.New(t)

	expected := map[[2]trit.Trit]trit.Trit{
		{F, F}: F, {F, U}: U, {F, T}: T,
		{U, F}: U, {U, U}: U, {U, T}: T,
		{T, F}: T, {T, U}: T, {T, T}: T,
	}
	for in, out := range expected {
		r.Equal(out, trit.Or(in[0], in[1]), "%v OR %v", in[0], in[1])
	}
}

func TestCommutativity(t *testing.T) {
	r := require.New(t)

	for _, a := range all {
		for _, b := range all {
			r.Equal(trit.And(a, b), trit.And(b, a))
			r.Equal(trit.Or(a, b), trit.Or(b, a))
		}
	}
}

func TestDeMorgan(t *testing.T) {
	r := require.New(t)

	for _, a := range all {
		for _, b := range all {
			r.Equal(trit.Not(trit.And(a, b)), trit.Or(trit.Not(a), trit.Not(b)))
		}
	}
}

func TestInvalidPanics(t *testing.T) {
	r := require.New(t)

	bad := trit.Trit(0b11)
	r.False(bad.Valid())
	r.Panics(func() { trit.Not(bad) })
	r.Panics(func() { trit.And(bad, F) })
	r.Panics(func() { trit.And(F, bad) })
	r.Panics(func() { trit.Or(T, bad) })
	r.Panics(func() { trit.Or(bad, T) })
	r.Panics(func() { bad.Rune() })
	r.Equal("Trit(0b11)", bad.String())
}

func TestRunes(t *testing.T) {
	r := require.New(t)

	for _, v := range all {
		got, err := trit.FromRune(v.Rune())
		r.NoError(err)
		r.Equal(v, got)
	}

	got, err := trit.FromRune('t')
	r.NoError(err)
	r.Equal(T, got)

	_, err = trit.FromRune('x')
	r.Error(err)
	r.True(errors.Is(err, trit.ErrInvalidRune))

	var runeErr *trit.InvalidRuneError
	r.True(errors.As(err, &runeErr))
	r.Equal('x', runeErr.Rune)
}

func TestZeroValueIsUnknown(t *testing.T) {
	var v trit.Trit
	require.Equal(t, U, v)
	require.Equal(t, "Unknown", v.String())
	require.Equal(t, T, trit.FromBool(true))
	require.Equal(t, F, trit.FromBool(false))
}
