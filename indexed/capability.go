package indexed

import (
	"errors"
	"iter"
)

var (
	// ErrIndexOutOfRange is returned by Item when a position or array index is outside its bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrKeyNotFound is returned by Item when a key is not present.
	ErrKeyNotFound = errors.New("key not found")
)

// Unit is the single implicit key of identity-like containers.
type Unit struct{}

func (Unit) String() string { return "()" }

// Lookup is the "let me check" accessor. It must never fail.
type Lookup[K, V any] interface {
	TryItem(key K) (V, bool)
}

// Itemer is the "trust me, it's there" accessor.
type Itemer[K, V any] interface {
	Item(key K) (V, error)
}

// Enumerable yields (key, element) pairs in the container's natural order.
type Enumerable[K, V any] interface {
	All() iter.Seq2[K, V]
}

// IteratorIndexed is a container's own visitation loop.
type IteratorIndexed[K, V any] interface {
	IterateIndexed(f func(K, V))
}

type Lengther interface {
	Len() int
}

// MapperIndexed replaces every element, keeping the container's shape and type.
type MapperIndexed[K, V, C any] interface {
	MapIndexed(f func(K, V) V) C
}

// TraverserIndexed maps with a fallible function in visitation order and
// stops at the first error.
type TraverserIndexed[K, V, C any] interface {
	TraverseIndexed(f func(K, V) (V, error)) (C, error)
}
