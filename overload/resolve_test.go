package overload_test

import (
	"testing"

	"github.com/on-the-ground/overload_ive_go/capability"
	"github.com/on-the-ground/overload_ive_go/overload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sized interface {
	Elems() []int
}

type lengther interface {
	Len() int
}

type counter interface {
	Count() int
}

type plain []int

func (p plain) Elems() []int { return p }

type fast []int

func (f fast) Elems() []int { return f }
func (f fast) Len() int     { return -len(f) } // distinguishable from the derived length

type both []int

func (b both) Elems() []int { return b }
func (b both) Len() int     { return len(b) }
func (b both) Count() int   { return len(b) }

type nullable struct{ items []int }

func (n *nullable) Elems() []int { return n.items }
func (n *nullable) Absent() bool { return n == nil }

type lengthImpl interface {
	Length(s sized) int
}

type zeroLength struct{}

func (zeroLength) Length(sized) int { return 0 }

type ownLength struct{}

func (ownLength) Length(s sized) int { return s.(lengther).Len() }

type countedLength struct{}

func (countedLength) Length(s sized) int { return s.(counter).Count() }

type elemsLength struct{}

func (elemsLength) Length(s sized) int { return len(s.Elems()) }

type plainLength struct{}

func (plainLength) Length(s sized) int { return 100 + len(s.(plain)) }

var lengthTag = capability.Length{}

func lengthChain() []overload.Entry[sized, lengthImpl] {
	return []overload.Entry[sized, lengthImpl]{
		overload.Nullable[sized, lengthImpl](zeroLength{}),
		overload.WhenHas[sized, lengther, lengthImpl](overload.TierPrimary, "Len()", ownLength{}),
		overload.Fallback[sized, lengthImpl](overload.TierStructural, "Elems()", elemsLength{}),
	}
}

func TestResolve_PrimaryWinsOverStructural(t *testing.T) {
	impl, err := overload.Resolve(lengthTag, sized(fast{1, 2, 3}), lengthChain()...)
	require.NoError(t, err)
	assert.Equal(t, -3, impl.Length(fast{1, 2, 3}))

	e, err := overload.Selected(lengthTag, sized(fast{1}), lengthChain()...)
	require.NoError(t, err)
	assert.Equal(t, overload.TierPrimary, e.Tier)
	assert.Equal(t, overload.KindInterface, e.Kind)
	assert.Equal(t, "Len()", e.Pattern)
}

func TestResolve_FallsThroughToStructural(t *testing.T) {
	impl, err := overload.Resolve(lengthTag, sized(plain{1, 2, 3}), lengthChain()...)
	require.NoError(t, err)
	assert.Equal(t, 3, impl.Length(plain{1, 2, 3}))

	e, err := overload.Selected(lengthTag, sized(plain{}), lengthChain()...)
	require.NoError(t, err)
	assert.Equal(t, overload.TierStructural, e.Tier)
	assert.True(t, e.IsWildcard())
}

func TestResolve_AbsentValueIsNeverDereferenced(t *testing.T) {
	var n *nullable
	impl, err := overload.Resolve(lengthTag, sized(n), lengthChain()...)
	require.NoError(t, err)
	assert.Equal(t, 0, impl.Length(n))

	// a present value of the same type goes through the normal tiers
	present := &nullable{items: []int{1, 2}}
	impl, err = overload.Resolve(lengthTag, sized(present), lengthChain()...)
	require.NoError(t, err)
	assert.Equal(t, 2, impl.Length(present))
}

func TestResolve_NilInterfaceIsAbsent(t *testing.T) {
	e, err := overload.Selected(lengthTag, sized(nil), lengthChain()...)
	require.NoError(t, err)
	assert.Equal(t, overload.TierAbsent, e.Tier)

	// without an absent entry nothing else accepts it, not even a wildcard
	_, err = overload.Resolve(lengthTag, sized(nil), lengthChain()[1:]...)
	assert.ErrorIs(t, err, overload.ErrNoImplementation)
	assert.ErrorContains(t, err, "capability Length for type <nil>")
}

func TestResolve_AmbiguousWithinTier(t *testing.T) {
	entries := append(lengthChain(),
		overload.WhenHas[sized, counter, lengthImpl](overload.TierPrimary, "Count()", countedLength{}),
	)

	_, err := overload.Resolve(lengthTag, sized(both{1}), entries...)
	assert.ErrorIs(t, err, overload.ErrAmbiguousOverload)
	assert.ErrorContains(t, err, "Length")
	assert.ErrorContains(t, err, "Len(), Count()")

	// types matching only one of the two primary patterns stay unambiguous
	impl, err := overload.Resolve(lengthTag, sized(fast{1, 2}), entries...)
	require.NoError(t, err)
	assert.Equal(t, -2, impl.Length(fast{1, 2}))
}

func TestResolve_NoImplementation(t *testing.T) {
	onlyPrimary := lengthChain()[:2]

	_, err := overload.Resolve(lengthTag, sized(plain{1}), onlyPrimary...)
	assert.ErrorIs(t, err, overload.ErrNoImplementation)
	assert.ErrorContains(t, err, "capability Length for type overload_test.plain")

	assert.Panics(t, func() {
		overload.MustResolve(lengthTag, sized(plain{1}), onlyPrimary...)
	})
}

func TestResolve_ExactTypePattern(t *testing.T) {
	entries := []overload.Entry[sized, lengthImpl]{
		lengthChain()[0],
		overload.WhenIs[sized, plain, lengthImpl](overload.TierPrimary, "plain", plainLength{}),
		lengthChain()[2],
	}

	impl := overload.MustResolve(lengthTag, sized(plain{1}), entries...)
	assert.Equal(t, 101, impl.Length(plain{1}))

	e, err := overload.Selected(lengthTag, sized(plain{1}), entries...)
	require.NoError(t, err)
	assert.Equal(t, overload.KindExact, e.Kind)

	impl = overload.MustResolve(lengthTag, sized(fast{1}), entries...)
	assert.Equal(t, 1, impl.Length(fast{1}))
}

func TestResolve_Deterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		e, err := overload.Selected(lengthTag, sized(both{1}), lengthChain()...)
		require.NoError(t, err)
		assert.Equal(t, "Len()", e.Pattern)
	}
}

func TestResolve_DoesNotAllocate(t *testing.T) {
	var chain [3]overload.Entry[sized, lengthImpl]
	copy(chain[:], lengthChain())
	subject := sized(&nullable{items: []int{1, 2, 3}})

	allocs := testing.AllocsPerRun(100, func() {
		impl := overload.MustResolve(lengthTag, subject, chain[:]...)
		if impl.Length(subject) != 3 {
			t.Fatal("wrong length")
		}
	})
	assert.Zero(t, allocs)
}

func TestTier_TextRoundTrip(t *testing.T) {
	for _, tier := range overload.Tiers {
		b, err := tier.MarshalText()
		require.NoError(t, err)
		var back overload.Tier
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, tier, back)
	}
	_, err := overload.ParseTier("highest")
	assert.Error(t, err)
	assert.Equal(t, "tier(9)", overload.Tier(9).String())
}

func TestPatternKind_TextRoundTrip(t *testing.T) {
	for _, k := range []overload.PatternKind{overload.KindInterface, overload.KindExact, overload.KindWildcard} {
		b, err := k.MarshalText()
		require.NoError(t, err)
		var back overload.PatternKind
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, k, back)
	}
	_, err := overload.ParsePatternKind("fuzzy")
	assert.Error(t, err)
}
