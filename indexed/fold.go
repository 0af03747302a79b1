package indexed

import (
	"github.com/on-the-ground/overload_ive_go/capability"
	"github.com/on-the-ground/overload_ive_go/overload"
)

// FoldIndexed accumulates f(state, key, element) left to right in the
// container's natural order, starting from state.
func FoldIndexed[K, V, S any](f func(S, K, V) S, state S, c Enumerable[K, V]) S {
	chain := foldChain[K, V, S]()
	return overload.MustResolveIn(overload.Default, capability.FoldIndexed{}, c, chain[:]...).FoldIndexed(c, f, state)
}

// Fold is FoldIndexed without the key.
func Fold[K, V, S any](f func(S, V) S, state S, c Enumerable[K, V]) S {
	return FoldIndexed(func(s S, _ K, v V) S { return f(s, v) }, state, c)
}

// Length counts the elements of c.
func Length[K, V any](c Enumerable[K, V]) int {
	chain := lengthChain[K, V]()
	return overload.MustResolveIn(overload.Default, capability.Length{}, c, chain[:]...).Length(c)
}

type foldEntry[K, V, S any] = overload.Entry[Enumerable[K, V], FoldImpl[K, V, S]]

func foldChain[K, V, S any]() [3]foldEntry[K, V, S] {
	return [...]foldEntry[K, V, S]{
		overload.Nullable[Enumerable[K, V], FoldImpl[K, V, S]](absentFold[K, V, S]{}),
		overload.WhenHas[Enumerable[K, V], IteratorIndexed[K, V], FoldImpl[K, V, S]](
			overload.TierPrimary, "IteratorIndexed", iteratorFold[K, V, S]{}),
		overload.Fallback[Enumerable[K, V], FoldImpl[K, V, S]](overload.TierStructural, "Enumerable", rangeFold[K, V, S]{}),
	}
}

type absentFold[K, V, S any] struct{}

func (absentFold[K, V, S]) FoldIndexed(_ Enumerable[K, V], _ func(S, K, V) S, state S) S {
	return state
}

// iteratorFold captures the state in the visiting closure, which costs an
// allocation when the container's loop lets it escape.
type iteratorFold[K, V, S any] struct{}

func (iteratorFold[K, V, S]) FoldIndexed(c Enumerable[K, V], f func(S, K, V) S, state S) S {
	c.(IteratorIndexed[K, V]).IterateIndexed(func(k K, v V) { state = f(state, k, v) })
	return state
}

type rangeFold[K, V, S any] struct{}

func (rangeFold[K, V, S]) FoldIndexed(c Enumerable[K, V], f func(S, K, V) S, state S) S {
	for k, v := range c.All() {
		state = f(state, k, v)
	}
	return state
}

type lengthEntry[K, V any] = overload.Entry[Enumerable[K, V], LengthImpl[K, V]]

func lengthChain[K, V any]() [3]lengthEntry[K, V] {
	return [...]lengthEntry[K, V]{
		overload.Nullable[Enumerable[K, V], LengthImpl[K, V]](absentLength[K, V]{}),
		overload.WhenHas[Enumerable[K, V], Lengther, LengthImpl[K, V]](overload.TierPrimary, "Lengther", ownLength[K, V]{}),
		overload.Fallback[Enumerable[K, V], LengthImpl[K, V]](overload.TierStructural, "Enumerable", countLength[K, V]{}),
	}
}

type absentLength[K, V any] struct{}

func (absentLength[K, V]) Length(Enumerable[K, V]) int { return 0 }

type ownLength[K, V any] struct{}

func (ownLength[K, V]) Length(c Enumerable[K, V]) int { return c.(Lengther).Len() }

type countLength[K, V any] struct{}

func (countLength[K, V]) Length(c Enumerable[K, V]) int {
	n := 0
	for range c.All() {
		n++
	}
	return n
}
