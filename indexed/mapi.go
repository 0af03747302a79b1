package indexed

import (
	"github.com/on-the-ground/overload_ive_go/capability"
	"github.com/on-the-ground/overload_ive_go/overload"
	"github.com/on-the-ground/overload_ive_go/shared/helper"
)

// MapIndexed replaces every element with f(key, element) and returns a
// container of the same shape and type. An absent container is returned as
// is, and a nil one as the zero C.
func MapIndexed[K, V, C any](f func(K, V) V, c MapperIndexed[K, V, C]) C {
	chain := mapChain[K, V, C]()
	return overload.MustResolveIn(overload.Default, capability.MapIndexed{}, c, chain[:]...).MapIndexed(c, f)
}

// Map is MapIndexed without the key.
func Map[K, V, C any](f func(V) V, c MapperIndexed[K, V, C]) C {
	return MapIndexed(func(_ K, v V) V { return f(v) }, c)
}

type mapEntry[K, V, C any] = overload.Entry[MapperIndexed[K, V, C], MapImpl[K, V, C]]

func mapChain[K, V, C any]() [2]mapEntry[K, V, C] {
	return [...]mapEntry[K, V, C]{
		overload.Nullable[MapperIndexed[K, V, C], MapImpl[K, V, C]](absentMap[K, V, C]{}),
		overload.Fallback[MapperIndexed[K, V, C], MapImpl[K, V, C]](overload.TierPrimary, "MapperIndexed", ownMap[K, V, C]{}),
	}
}

type absentMap[K, V, C any] struct{}

func (absentMap[K, V, C]) MapIndexed(c MapperIndexed[K, V, C], _ func(K, V) V) C {
	self, _ := helper.TypedValueOf[C](c)
	return self
}

type ownMap[K, V, C any] struct{}

func (ownMap[K, V, C]) MapIndexed(c MapperIndexed[K, V, C], f func(K, V) V) C {
	return c.MapIndexed(f)
}
