package trie_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/on-the-ground/overload_ive_go/shared/trie"
	"github.com/stretchr/testify/assert"
)

func TestTrie_BasicUsage(t *testing.T) {
	tr := trie.New[string]()

	tr.Store([]trie.Key{"a", "b", "c"}, "final")

	val, ok := tr.Load([]trie.Key{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = tr.Load([]trie.Key{"a", "b", "x"})
	assert.False(t, ok)

	// prefix of a stored path holds no value
	_, ok = tr.Load([]trie.Key{"a", "b"})
	assert.False(t, ok)

	tr.Store([]trie.Key{"a", "b", "c"}, "updated")
	val, ok = tr.Load([]trie.Key{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
	assert.Equal(t, 1, tr.Len())
}

func TestTrie_ConcurrentStoreCountsEachPathOnce(t *testing.T) {
	tr := trie.New[int]()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tr.Store([]trie.Key{"same", i % 4}, i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 4, tr.Len())

	for k := 0; k < 4; k++ {
		v, ok := tr.Load([]trie.Key{"same", k})
		assert.True(t, ok)
		assert.Equal(t, k, v%4)
	}
}

func TestTrie_RangeVisitsEveryValue(t *testing.T) {
	tr := trie.New[string]()
	tr.Store([]trie.Key{"a"}, "1")
	tr.Store([]trie.Key{"a", "b"}, "2")
	tr.Store([]trie.Key{"c", "d"}, "3")

	var got []string
	tr.Range(func(keys []trie.Key, v string) bool {
		got = append(got, v)
		return true
	})
	sort.Strings(got)
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestTrie_EmptyKeysPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on empty keys, but didn't panic")
		}
	}()
	tr := trie.New[int]()
	tr.Load([]trie.Key{})
}
