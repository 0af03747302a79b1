package dict_test

import (
	"cmp"
	"errors"
	"strings"
	"testing"

	"github.com/on-the-ground/overload_ive_go/dict"
	"github.com/on-the-ground/overload_ive_go/indexed"
	"github.com/on-the-ground/overload_ive_go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairs[K, V any](d dict.Dict[K, V]) (keys []K, values []V) {
	for k, v := range d.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	return keys, values
}

func TestDict_LookupAndOrder(t *testing.T) {
	d := dict.New[string, int]().Add("y", 2).Add("x", 1)

	v, ok := d.TryItem("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = d.TryItem("z")
	assert.False(t, ok)

	_, err := d.Item("z")
	assert.ErrorIs(t, err, indexed.ErrKeyNotFound)

	assert.Equal(t, []string{"x", "y"}, d.Keys())
	assert.Equal(t, "{x -> 1; y -> 2}", d.String())
}

func TestDict_IsImmutable(t *testing.T) {
	base := dict.New[int, string]().Add(1, "a")
	grown := base.Add(2, "b")
	replaced := grown.Add(1, "A")
	shrunk := replaced.Remove(2)

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, grown.Len())

	v, _ := grown.TryItem(1)
	assert.Equal(t, "a", v)
	v, _ = replaced.TryItem(1)
	assert.Equal(t, "A", v)

	keys, values := pairs(shrunk)
	assert.Equal(t, []int{1}, keys)
	assert.Equal(t, []string{"A"}, values)

	assert.Equal(t, 1, shrunk.Remove(42).Len())
}

func TestDict_FromMapSortsKeys(t *testing.T) {
	d := dict.FromMap(map[int]string{3: "c", 1: "a", 2: "b"})

	keys, values := pairs(d)
	assert.Equal(t, []int{1, 2, 3}, keys)
	assert.Equal(t, []string{"a", "b", "c"}, values)
}

func TestDict_CustomComparator(t *testing.T) {
	d := dict.NewFunc[string, int](func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	}).Add("b", 1).Add("A", 2).Add("B", 3)

	keys, values := pairs(d)
	assert.Equal(t, []string{"A", "B"}, keys)
	assert.Equal(t, []int{2, 3}, values)

	v, ok := d.TryItem("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestDict_ZeroValue(t *testing.T) {
	var d dict.Dict[string, int]

	assert.Equal(t, 0, d.Len())
	_, ok := d.TryItem("x")
	assert.False(t, ok)
	assert.Equal(t, 0, d.Remove("x").Len())
	assert.Panics(t, func() { d.Add("x", 1) })
}

func TestDict_MapIndexedKeepsKeys(t *testing.T) {
	d := dict.New[string, int]().Add("x", 1).Add("y", 2)
	labelled := dict.MapIndexed(d, func(k string, v int) string { return k + strings.Repeat("!", v) })

	keys, values := pairs(labelled)
	assert.Equal(t, []string{"x", "y"}, keys)
	assert.Equal(t, []string{"x!", "y!!"}, values)

	// the result keeps the comparator and can still grow
	assert.Equal(t, []string{"w", "x", "y"}, labelled.Add("w", "").Keys())
}

func TestDict_TraverseIndexed(t *testing.T) {
	d := dict.New[string, int]().Add("a", 1).Add("b", -1).Add("c", 3)
	boom := errors.New("negative")

	var seen []string
	_, err := dict.TraverseIndexed(d, func(k string, v int) (int, error) {
		seen = append(seen, k)
		if v < 0 {
			return 0, boom
		}
		return v, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, seen)

	ok := dict.TraverseIndexedOption(d.Remove("b"), func(_ string, v int) option.Option[int] {
		return option.Some(v * 10)
	})
	got, present := ok.Get()
	require.True(t, present)
	_, values := pairs(got)
	assert.Equal(t, []int{10, 30}, values)

	none := dict.TraverseIndexedOption(d, func(_ string, v int) option.Option[int] {
		if v < 0 {
			return option.None[int]()
		}
		return option.Some(v)
	})
	assert.True(t, none.IsNone())
}
