package option_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/on-the-ground/overload_ive_go/indexed"
	"github.com/on-the-ground/overload_ive_go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOption_Basics(t *testing.T) {
	some := option.Some(3)
	none := option.None[int]()

	assert.True(t, some.IsSome())
	assert.True(t, none.IsNone())
	assert.Equal(t, 3, some.OrElse(7))
	assert.Equal(t, 7, none.OrElse(7))
	assert.Equal(t, "Some(3)", some.String())
	assert.Equal(t, "None", none.String())

	var zero option.Option[int]
	assert.Equal(t, none, zero)
}

func TestOption_FromTry(t *testing.T) {
	assert.Equal(t, option.Some("x"), option.FromTry("x", true))
	assert.Equal(t, option.None[string](), option.FromTry("x", false))
}

func TestOption_AsSingleKeyContainer(t *testing.T) {
	v, err := option.Some(1).Item(indexed.Unit{})
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = option.None[int]().Item(indexed.Unit{})
	assert.ErrorIs(t, err, indexed.ErrKeyNotFound)

	assert.Equal(t, 1, option.Some(1).Len())
	assert.Equal(t, 0, option.None[int]().Len())

	visits := 0
	option.None[int]().IterateIndexed(func(indexed.Unit, int) { visits++ })
	assert.Zero(t, visits)
}

func TestOption_MapAndBind(t *testing.T) {
	itoa := func(v int) string { return strconv.Itoa(v) }
	assert.Equal(t, option.Some("4"), option.Map(option.Some(4), itoa))
	assert.Equal(t, option.None[string](), option.Map(option.None[int](), itoa))

	half := func(v int) option.Option[int] {
		if v%2 != 0 {
			return option.None[int]()
		}
		return option.Some(v / 2)
	}
	assert.Equal(t, option.Some(2), option.Bind(option.Some(4), half))
	assert.True(t, option.Bind(option.Some(3), half).IsNone())
}

func TestOption_TraverseIndexed(t *testing.T) {
	boom := errors.New("boom")
	called := false
	got, err := option.TraverseIndexed(option.None[int](), func(indexed.Unit, int) (int, error) {
		called = true
		return 0, boom
	})
	require.NoError(t, err)
	assert.False(t, called)
	assert.True(t, got.IsNone())

	_, err = option.Some(1).TraverseIndexed(func(indexed.Unit, int) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}
