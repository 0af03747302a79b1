// Package indexed provides the indexed operation family over any container
// addressable by a key: a position, a tuple of array indices, a map key, or the
// single implicit key of a wrapper.
//
// Every operation is one generic function. Its container parameter is the
// smallest capability interface the operation needs, so passing a type that no
// overload supports does not compile:
//
//	Item, TryItem               need Lookup[K, V]
//	IterateIndexed, FoldIndexed need Enumerable[K, V]
//	MapIndexed                  needs MapperIndexed[K, V, C]
//	TraverseIndexed             needs TraverserIndexed[K, V, C]
//
// Inside, the operation resolves through an overload chain (see package
// overload). A nil container, or one that is absent at runtime (it implements
// overload.Absenter and reports Absent), gets the no-op tier: Item fails with
// ErrKeyNotFound, TryItem reports absence, iteration visits nothing, folds
// return the seed, and maps and traversals return the container unchanged.
// Otherwise the container's own method wins over the generic derivation, e.g.
// Item uses Itemer when present and falls back to TryItem. Resolution does
// not allocate; a value container passed to an interface parameter is still
// boxed by the caller, so hot paths pass pointers.
//
// New container types join by implementing the interfaces; nothing here needs
// to change. A type that cannot grow the method can instead register an
// implementation, e.g. an ItemImpl, into overload.Default. Element-type-changing variants of MapIndexed and TraverseIndexed
// cannot be methods in Go, so each container package exports its own.
//
// Item fails and TryItem does not:
//
//	v, err := indexed.Item(2, seq.Of("a", "b", "c", "d"))   // "c", nil
//	_, ok := indexed.TryItem(9, seq.Of("a", "b", "c", "d")) // ok == false
package indexed
