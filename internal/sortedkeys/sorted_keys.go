// Package sortedkeys keeps a slice of keys ordered by a comparator.
// Every operation returns a fresh slice and never mutates its input.
package sortedkeys

import (
	"sort"
)

type CompareFunc[K any] func(a, b K) int

// Search returns the position of key in keys, or where it would be inserted.
func Search[K any](keys []K, key K, compare CompareFunc[K]) (int, bool) {
	idx := sort.Search(len(keys), func(i int) bool {
		return compare(key, keys[i]) <= 0
	})
	return idx, idx < len(keys) && compare(key, keys[idx]) == 0
}

// Insert returns keys with key added in order. The second result is false
// when an equal key was already present; keys is then returned unchanged.
func Insert[K any](keys []K, key K, compare CompareFunc[K]) ([]K, bool) {
	idx, found := Search(keys, key, compare)
	if found {
		return keys, false
	}

	out := make([]K, 0, len(keys)+1)
	out = append(out, keys[:idx]...)
	out = append(out, key)
	out = append(out, keys[idx:]...)
	return out, true
}

// Remove returns keys without key. The second result is false when key was absent.
func Remove[K any](keys []K, key K, compare CompareFunc[K]) ([]K, bool) {
	idx, found := Search(keys, key, compare)
	if !found {
		return keys, false
	}

	out := make([]K, 0, len(keys)-1)
	out = append(out, keys[:idx]...)
	return append(out, keys[idx+1:]...), true
}
