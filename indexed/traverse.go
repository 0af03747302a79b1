package indexed

import (
	"github.com/on-the-ground/overload_ive_go/capability"
	"github.com/on-the-ground/overload_ive_go/overload"
	"github.com/on-the-ground/overload_ive_go/shared/helper"
)

// TraverseIndexed applies f to every (key, element) in visitation order and
// collects the results into a container of the same shape. The first error
// stops the traversal and is returned. An absent container is returned as
// is, and a nil one as the zero C.
func TraverseIndexed[K, V, C any](f func(K, V) (V, error), c TraverserIndexed[K, V, C]) (C, error) {
	chain := traverseChain[K, V, C]()
	impl, err := overload.ResolveIn(overload.Default, capability.TraverseIndexed{}, c, chain[:]...)
	if err != nil {
		var zero C
		return zero, err
	}
	return impl.TraverseIndexed(c, f)
}

type traverseEntry[K, V, C any] = overload.Entry[TraverserIndexed[K, V, C], TraverseImpl[K, V, C]]

func traverseChain[K, V, C any]() [2]traverseEntry[K, V, C] {
	return [...]traverseEntry[K, V, C]{
		overload.Nullable[TraverserIndexed[K, V, C], TraverseImpl[K, V, C]](absentTraverse[K, V, C]{}),
		overload.Fallback[TraverserIndexed[K, V, C], TraverseImpl[K, V, C]](
			overload.TierPrimary, "TraverserIndexed", ownTraverse[K, V, C]{}),
	}
}

type absentTraverse[K, V, C any] struct{}

func (absentTraverse[K, V, C]) TraverseIndexed(c TraverserIndexed[K, V, C], _ func(K, V) (V, error)) (C, error) {
	self, _ := helper.TypedValueOf[C](c)
	return self, nil
}

type ownTraverse[K, V, C any] struct{}

func (ownTraverse[K, V, C]) TraverseIndexed(c TraverserIndexed[K, V, C], f func(K, V) (V, error)) (C, error) {
	return c.TraverseIndexed(f)
}
