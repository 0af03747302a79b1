package indexed

// The interfaces below are what an overload of each operation implements.
// Other packages register their own for their types with overload.Register
// into overload.Default, under the operation's capability tag:
//
//	overload.MustRegister(overload.Default, "mypkg", capability.Item{},
//	    overload.WhenIs[indexed.Lookup[string, int], Ledger, indexed.ItemImpl[string, int]](
//	        overload.TierPrimary, "Ledger", ledgerItem{}))
//
// The subject type of the entry must be the parameter type of the operation.

type ItemImpl[K, V any] interface {
	Item(c Lookup[K, V], key K) (V, error)
}

type TryItemImpl[K, V any] interface {
	TryItem(c Lookup[K, V], key K) (V, bool)
}

type IterateImpl[K, V any] interface {
	IterateIndexed(c Enumerable[K, V], f func(K, V))
}

type FoldImpl[K, V, S any] interface {
	FoldIndexed(c Enumerable[K, V], f func(S, K, V) S, state S) S
}

type LengthImpl[K, V any] interface {
	Length(c Enumerable[K, V]) int
}

type MapImpl[K, V, C any] interface {
	MapIndexed(c MapperIndexed[K, V, C], f func(K, V) V) C
}

type TraverseImpl[K, V, C any] interface {
	TraverseIndexed(c TraverserIndexed[K, V, C], f func(K, V) (V, error)) (C, error)
}
