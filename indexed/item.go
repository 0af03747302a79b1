package indexed

import (
	"fmt"

	"github.com/on-the-ground/overload_ive_go/capability"
	"github.com/on-the-ground/overload_ive_go/overload"
)

// Item returns the element at key.
// It fails with ErrIndexOutOfRange or ErrKeyNotFound when key is not present.
func Item[K, V any](key K, c Lookup[K, V]) (V, error) {
	chain := itemChain[K, V]()
	impl, err := overload.ResolveIn(overload.Default, capability.Item{}, c, chain[:]...)
	if err != nil {
		var zero V
		return zero, err
	}
	return impl.Item(c, key)
}

// TryItem returns the element at key, or false when key is not present.
func TryItem[K, V any](key K, c Lookup[K, V]) (V, bool) {
	chain := tryItemChain[K, V]()
	return overload.MustResolveIn(overload.Default, capability.TryItem{}, c, chain[:]...).TryItem(c, key)
}

// MustItem is the panic-on-failure variant of Item.
func MustItem[K, V any](key K, c Lookup[K, V]) V {
	v, err := Item(key, c)
	if err != nil {
		panic(err)
	}
	return v
}

type itemEntry[K, V any] = overload.Entry[Lookup[K, V], ItemImpl[K, V]]

func itemChain[K, V any]() [3]itemEntry[K, V] {
	return [...]itemEntry[K, V]{
		overload.Nullable[Lookup[K, V], ItemImpl[K, V]](absentItem[K, V]{}),
		overload.WhenHas[Lookup[K, V], Itemer[K, V], ItemImpl[K, V]](overload.TierPrimary, "Itemer", ownItem[K, V]{}),
		overload.Fallback[Lookup[K, V], ItemImpl[K, V]](overload.TierStructural, "Lookup", itemFromLookup[K, V]{}),
	}
}

type absentItem[K, V any] struct{}

func (absentItem[K, V]) Item(_ Lookup[K, V], key K) (V, error) {
	var zero V
	return zero, fmt.Errorf("%w: %v (absent container)", ErrKeyNotFound, key)
}

type ownItem[K, V any] struct{}

func (ownItem[K, V]) Item(c Lookup[K, V], key K) (V, error) {
	return c.(Itemer[K, V]).Item(key)
}

type itemFromLookup[K, V any] struct{}

func (itemFromLookup[K, V]) Item(c Lookup[K, V], key K) (V, error) {
	if v, ok := c.TryItem(key); ok {
		return v, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

type tryItemEntry[K, V any] = overload.Entry[Lookup[K, V], TryItemImpl[K, V]]

func tryItemChain[K, V any]() [2]tryItemEntry[K, V] {
	return [...]tryItemEntry[K, V]{
		overload.Nullable[Lookup[K, V], TryItemImpl[K, V]](absentTryItem[K, V]{}),
		overload.Fallback[Lookup[K, V], TryItemImpl[K, V]](overload.TierPrimary, "Lookup", ownTryItem[K, V]{}),
	}
}

type absentTryItem[K, V any] struct{}

func (absentTryItem[K, V]) TryItem(Lookup[K, V], K) (V, bool) {
	var zero V
	return zero, false
}

type ownTryItem[K, V any] struct{}

func (ownTryItem[K, V]) TryItem(c Lookup[K, V], key K) (V, bool) {
	return c.TryItem(key)
}
