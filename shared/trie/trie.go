package trie

import (
	"sync"
	"sync/atomic"
)

// Key is one path segment. It must be comparable.
type Key any

// Trie maps key paths to values. It is safe for concurrent use.
type Trie[O any] struct {
	root node[O]
	size atomic.Uint32
}

type node[O any] struct {
	children sync.Map
	value    atomic.Pointer[O]
}

func New[O any]() *Trie[O] {
	return &Trie[O]{}
}

func (t *Trie[O]) Load(keys []Key) (O, bool) {
	n, ok := t.find(keys)
	if !ok {
		var zero O
		return zero, false
	}
	v := n.value.Load()
	if v == nil {
		var zero O
		return zero, false
	}
	return *v, true
}

func (t *Trie[O]) Store(keys []Key, value O) {
	n := t.traverse(keys)
	if old := n.value.Swap(&value); old == nil {
		t.size.Add(1)
	}
}

func (t *Trie[O]) Len() int {
	return int(t.size.Load())
}

// Range calls fn for every stored value until fn returns false.
// Sibling order is unspecified.
func (t *Trie[O]) Range(fn func(keys []Key, value O) bool) {
	t.root.walk(nil, fn)
}

func (n *node[O]) walk(path []Key, fn func([]Key, O) bool) bool {
	if v := n.value.Load(); v != nil {
		if !fn(append([]Key(nil), path...), *v) {
			return false
		}
	}
	cont := true
	n.children.Range(func(k, child any) bool {
		cont = child.(*node[O]).walk(append(path, k), fn)
		return cont
	})
	return cont
}

func (t *Trie[O]) find(keys []Key) (*node[O], bool) {
	if len(keys) == 0 {
		panic("find: empty keys")
	}
	n := &t.root
	for _, k := range keys {
		child, ok := n.children.Load(k)
		if !ok {
			return nil, false
		}
		n = child.(*node[O])
	}
	return n, true
}

func (t *Trie[O]) traverse(keys []Key) *node[O] {
	if len(keys) == 0 {
		panic("traverse: empty keys")
	}
	n := &t.root
	for _, k := range keys {
		child, _ := n.children.LoadOrStore(k, &node[O]{})
		n = child.(*node[O])
	}
	return n
}
