package sortedkeys_test

import (
	"cmp"
	"testing"

	"github.com/on-the-ground/overload_ive_go/internal/sortedkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_KeepsOrder(t *testing.T) {
	var keys []int
	for _, k := range []int{10, 5, 7, 3, 8} {
		var added bool
		keys, added = sortedkeys.Insert(keys, k, cmp.Compare[int])
		require.True(t, added)
	}
	assert.Equal(t, []int{3, 5, 7, 8, 10}, keys)

	again, added := sortedkeys.Insert(keys, 7, cmp.Compare[int])
	assert.False(t, added)
	assert.Equal(t, keys, again)
}

func TestInsert_DoesNotMutateInput(t *testing.T) {
	keys := make([]string, 0, 8)
	keys = append(keys, "a", "c")

	next, _ := sortedkeys.Insert(keys, "b", cmp.Compare[string])
	assert.Equal(t, []string{"a", "b", "c"}, next)
	assert.Equal(t, []string{"a", "c"}, keys)
}

func TestSearch(t *testing.T) {
	keys := []int{1, 3, 5}

	idx, found := sortedkeys.Search(keys, 3, cmp.Compare[int])
	assert.True(t, found)
	assert.Equal(t, 1, idx)

	idx, found = sortedkeys.Search(keys, 4, cmp.Compare[int])
	assert.False(t, found)
	assert.Equal(t, 2, idx)

	_, found = sortedkeys.Search(nil, 4, cmp.Compare[int])
	assert.False(t, found)
}

func TestRemove(t *testing.T) {
	keys := []int{1, 3, 5}

	next, removed := sortedkeys.Remove(keys, 3, cmp.Compare[int])
	assert.True(t, removed)
	assert.Equal(t, []int{1, 5}, next)
	assert.Equal(t, []int{1, 3, 5}, keys)

	_, removed = sortedkeys.Remove(keys, 4, cmp.Compare[int])
	assert.False(t, removed)
}

func TestCustomComparator_Descending(t *testing.T) {
	desc := func(a, b int) int { return cmp.Compare(b, a) }
	var keys []int
	for _, k := range []int{2, 9, 4} {
		keys, _ = sortedkeys.Insert(keys, k, desc)
	}
	assert.Equal(t, []int{9, 4, 2}, keys)
}
