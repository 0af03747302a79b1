// Package dict provides an immutable association map whose keys are kept in
// the order of a comparator. Item and TryItem look keys up by binary search;
// iteration visits keys in ascending order, each exactly once.
package dict

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/on-the-ground/overload_ive_go/indexed"
	"github.com/on-the-ground/overload_ive_go/internal/sortedkeys"
	"github.com/on-the-ground/overload_ive_go/option"
)

var (
	_ indexed.Lookup[string, any]                              = Dict[string, any]{}
	_ indexed.Itemer[string, any]                              = Dict[string, any]{}
	_ indexed.Enumerable[string, any]                          = Dict[string, any]{}
	_ indexed.IteratorIndexed[string, any]                     = Dict[string, any]{}
	_ indexed.MapperIndexed[string, any, Dict[string, any]]    = Dict[string, any]{}
	_ indexed.TraverserIndexed[string, any, Dict[string, any]] = Dict[string, any]{}
	_ indexed.Lengther                                         = Dict[string, any]{}
)

type entry[K, V any] struct {
	key   K
	value V
}

// Dict maps keys to values. Keys equal under the comparator are the same key.
// Build one with New, NewFunc or FromMap; the zero value is an empty dict
// that cannot grow.
type Dict[K, V any] struct {
	entries []entry[K, V]
	compare sortedkeys.CompareFunc[K]
}

// New returns an empty dict ordered by the natural order of K.
func New[K cmp.Ordered, V any]() Dict[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty dict ordered by compare.
func NewFunc[K, V any](compare func(a, b K) int) Dict[K, V] {
	return Dict[K, V]{compare: compare}
}

// FromMap copies m into a dict ordered by the natural order of K.
func FromMap[K cmp.Ordered, V any](m map[K]V) Dict[K, V] {
	d := New[K, V]()
	for k, v := range m {
		d = d.Add(k, v)
	}
	return d
}

func (d Dict[K, V]) byKey(a, b entry[K, V]) int {
	return d.compare(a.key, b.key)
}

func (d Dict[K, V]) search(key K) (int, bool) {
	if d.compare == nil {
		return 0, false
	}
	return sortedkeys.Search(d.entries, entry[K, V]{key: key}, d.byKey)
}

// Add returns a dict with key bound to value, replacing any previous binding.
func (d Dict[K, V]) Add(key K, value V) Dict[K, V] {
	if d.compare == nil {
		panic("dict: Add on a dict without comparator; use New or NewFunc")
	}
	e := entry[K, V]{key: key, value: value}
	if idx, found := d.search(key); found {
		entries := append([]entry[K, V](nil), d.entries...)
		entries[idx] = e
		return Dict[K, V]{entries: entries, compare: d.compare}
	}
	entries, _ := sortedkeys.Insert(d.entries, e, d.byKey)
	return Dict[K, V]{entries: entries, compare: d.compare}
}

// Remove returns a dict without key. Removing a missing key is a no-op.
func (d Dict[K, V]) Remove(key K) Dict[K, V] {
	if d.compare == nil {
		return d
	}
	entries, _ := sortedkeys.Remove(d.entries, entry[K, V]{key: key}, d.byKey)
	return Dict[K, V]{entries: entries, compare: d.compare}
}

func (d Dict[K, V]) Len() int { return len(d.entries) }

// Keys returns the keys in ascending order.
func (d Dict[K, V]) Keys() []K {
	keys := make([]K, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.key
	}
	return keys
}

func (d Dict[K, V]) TryItem(key K) (V, bool) {
	if idx, found := d.search(key); found {
		return d.entries[idx].value, true
	}
	var zero V
	return zero, false
}

func (d Dict[K, V]) Item(key K) (V, error) {
	if v, ok := d.TryItem(key); ok {
		return v, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", indexed.ErrKeyNotFound, key)
}

func (d Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range d.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

func (d Dict[K, V]) IterateIndexed(f func(K, V)) {
	for _, e := range d.entries {
		f(e.key, e.value)
	}
}

func (d Dict[K, V]) MapIndexed(f func(K, V) V) Dict[K, V] {
	return MapIndexed(d, f)
}

func (d Dict[K, V]) TraverseIndexed(f func(K, V) (V, error)) (Dict[K, V], error) {
	return TraverseIndexed(d, f)
}

func (d Dict[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, e := range d.entries {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%v -> %v", e.key, e.value)
	}
	sb.WriteString("}")
	return sb.String()
}

// MapIndexed returns a dict with the same keys holding f(key, value).
func MapIndexed[K, V, R any](d Dict[K, V], f func(K, V) R) Dict[K, R] {
	out := Dict[K, R]{compare: d.compare}
	if len(d.entries) > 0 {
		out.entries = make([]entry[K, R], len(d.entries))
		for i, e := range d.entries {
			out.entries[i] = entry[K, R]{key: e.key, value: f(e.key, e.value)}
		}
	}
	return out
}

// TraverseIndexed is MapIndexed with a fallible f. Keys are visited in
// ascending order and the first error aborts.
func TraverseIndexed[K, V, R any](d Dict[K, V], f func(K, V) (R, error)) (Dict[K, R], error) {
	out := Dict[K, R]{compare: d.compare}
	for _, e := range d.entries {
		r, err := f(e.key, e.value)
		if err != nil {
			return Dict[K, R]{}, fmt.Errorf("key %v: %w", e.key, err)
		}
		out.entries = append(out.entries, entry[K, R]{key: e.key, value: r})
	}
	return out, nil
}

// TraverseIndexedOption returns None as soon as f returns None for a key.
func TraverseIndexedOption[K, V, R any](d Dict[K, V], f func(K, V) option.Option[R]) option.Option[Dict[K, R]] {
	out := Dict[K, R]{compare: d.compare}
	for _, e := range d.entries {
		r, ok := f(e.key, e.value).Get()
		if !ok {
			return option.None[Dict[K, R]]()
		}
		out.entries = append(out.entries, entry[K, R]{key: e.key, value: r})
	}
	return option.Some(out)
}
