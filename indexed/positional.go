package indexed

import (
	"fmt"
	"iter"
)

var (
	_ Lookup[int, any]     = Positions[any]{}
	_ Itemer[int, any]     = Positions[any]{}
	_ Enumerable[int, any] = Positions[any]{}
)

// Positions indexes an unindexed sequence by position. The counter starts at
// 0 and increments per visited element. Lookups walk the sequence.
type Positions[V any] struct {
	seq iter.Seq[V]
}

// Positional adapts an unindexed sequence into an indexed container.
func Positional[V any](seq iter.Seq[V]) Positions[V] {
	return Positions[V]{seq: seq}
}

func (p Positions[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		if p.seq == nil {
			return
		}
		i := 0
		for v := range p.seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

func (p Positions[V]) TryItem(i int) (V, bool) {
	if i >= 0 {
		for k, v := range p.All() {
			if k == i {
				return v, true
			}
		}
	}
	var zero V
	return zero, false
}

func (p Positions[V]) Item(i int) (V, error) {
	if v, ok := p.TryItem(i); ok {
		return v, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: position %d", ErrIndexOutOfRange, i)
}
