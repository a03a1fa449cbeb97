package tritset_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tritdataset/trits/trit"
	"github.com/tritdataset/trits/tritset"
)

func TestString(t *testing.T) {
	r := require.New(t)

	r.Equal("", tritset.NewUnknown(0).String())
	r.Equal("", tritset.NewUnknown(30).String())
	r.Equal("FUT", parse("FUT").String())
	r.Equal("TTTT", tritset.New(4, T).String())
	r.Equal("UUUF", tritset.NewUnknown(0).Set(3, F).String())
	r.Equal("FUT", fmt.Sprint(parse("FUT")))
}

func TestParse(t *testing.T) {
	r := require.New(t)

	set, err := tritset.Parse("")
	r.NoError(err)
	requireSizeAndCapacity(t, set, 0, 0)

	set, err = tritset.Parse("fuTu")
	r.NoError(err)
	r.Equal("FUT", set.String())
	requireSizeAndCapacity(t, set, 3, 16)

	set, err = tritset.Parse("UUUU")
	r.NoError(err)
	requireSizeAndCapacity(t, set, 0, 16)
	r.True(set.Equal(tritset.NewUnknown(0)))

	s := "TFUTFUTFUTFUTFUTFUT"
	set, err = tritset.Parse(s)
	r.NoError(err)
	r.Equal(s, set.String())
	requireSizeAndCapacity(t, set, len(s), 32)
}

func TestParseMalformed(t *testing.T) {
	r := require.New(t)

	set, err := tritset.Parse("FUX")
	r.Nil(set)
	r.Error(err)
	r.True(errors.Is(err, tritset.ErrParse))
	r.True(errors.Is(err, trit.ErrInvalidRune))

	var parseErr *tritset.ParseError
	r.True(errors.As(err, &parseErr))
	r.Equal(2, parseErr.Pos)
	r.Equal('X', parseErr.Rune)

	r.Panics(func() { tritset.MustParse("T F") })
}

func TestRef(t *testing.T) {
	r := require.New(t)

	set := tritset.NewUnknown(0)
	r.Equal(T, set.At(0).Set(T).Get(0))
	r.Equal(T, set.At(10).Set(T).At(10).Get())
	r.Equal(11, set.Size())
	r.Equal("True", set.At(10).String())
	r.Equal(10, set.At(10).Pos())

	// Unknown through a Ref does not allocate either.
	empty := tritset.NewUnknown(0)
	empty.At(100).Set(U)
	requireSizeAndCapacity(t, empty, 0, 0)
}

func TestRefCopiesBindingNotValue(t *testing.T) {
	r := require.New(t)

	set := parse("TF")
	first, second := set.At(0), set.At(1)

	// set[0] = set[1] goes through the set.
	first.Set(second.Get())
	r.Equal("FF", set.String())

	// Reassigning a Ref rebinds it without writing anything.
	first = second
	r.Equal(1, first.Pos())
	r.Equal("FF", set.String())

	first.Set(T)
	r.Equal(T, second.Get())
	r.Equal("FT", set.String())
}
