package indexed

import (
	"github.com/on-the-ground/overload_ive_go/capability"
	"github.com/on-the-ground/overload_ive_go/overload"
)

// IterateIndexed calls f for every (key, element) in the container's natural order.
func IterateIndexed[K, V any](f func(K, V), c Enumerable[K, V]) {
	chain := iterateChain[K, V]()
	overload.MustResolveIn(overload.Default, capability.IterateIndexed{}, c, chain[:]...).IterateIndexed(c, f)
}

// Iterate calls f for every element in the container's natural order.
func Iterate[K, V any](f func(V), c Enumerable[K, V]) {
	IterateIndexed(func(_ K, v V) { f(v) }, c)
}

type iterateEntry[K, V any] = overload.Entry[Enumerable[K, V], IterateImpl[K, V]]

func iterateChain[K, V any]() [3]iterateEntry[K, V] {
	return [...]iterateEntry[K, V]{
		overload.Nullable[Enumerable[K, V], IterateImpl[K, V]](absentIterate[K, V]{}),
		overload.WhenHas[Enumerable[K, V], IteratorIndexed[K, V], IterateImpl[K, V]](
			overload.TierPrimary, "IteratorIndexed", ownIterate[K, V]{}),
		overload.Fallback[Enumerable[K, V], IterateImpl[K, V]](overload.TierStructural, "Enumerable", rangeIterate[K, V]{}),
	}
}

type absentIterate[K, V any] struct{}

func (absentIterate[K, V]) IterateIndexed(Enumerable[K, V], func(K, V)) {}

type ownIterate[K, V any] struct{}

func (ownIterate[K, V]) IterateIndexed(c Enumerable[K, V], f func(K, V)) {
	c.(IteratorIndexed[K, V]).IterateIndexed(f)
}

type rangeIterate[K, V any] struct{}

func (rangeIterate[K, V]) IterateIndexed(c Enumerable[K, V], f func(K, V)) {
	for k, v := range c.All() {
		f(k, v)
	}
}
