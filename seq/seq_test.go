package seq_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/on-the-ground/overload_ive_go/indexed"
	"github.com/on-the-ground/overload_ive_go/option"
	"github.com/on-the-ground/overload_ive_go/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeq_ItemAndTryItem(t *testing.T) {
	s := seq.Of("a", "b", "c", "d")

	v, err := s.Item(2)
	require.NoError(t, err)
	assert.Equal(t, "c", v)

	_, ok := s.TryItem(9)
	assert.False(t, ok)
	_, ok = s.TryItem(-1)
	assert.False(t, ok)

	_, err = s.Item(4)
	assert.ErrorIs(t, err, indexed.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "[0, 4)")
}

func TestSeq_OfCopiesInput(t *testing.T) {
	raw := []int{1, 2, 3}
	s := seq.Of(raw...)
	raw[0] = 100

	assert.Equal(t, []int{1, 2, 3}, s.Slice())
}

func TestSeq_FromAndValues(t *testing.T) {
	s := seq.From(seq.Of(1, 2, 3).Values())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{1, 2, 3}, s.Slice())

	var zero seq.Seq[int]
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, zero, seq.Of[int]())
}

func TestSeq_MapIndexedChangesType(t *testing.T) {
	s := seq.MapIndexed(seq.Of(10, 20, 30), func(i, v int) string {
		return strconv.Itoa(i) + ":" + strconv.Itoa(v)
	})
	assert.Equal(t, []string{"0:10", "1:20", "2:30"}, s.Slice())
}

func TestSeq_TraverseIndexedStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	var visited []int

	_, err := seq.TraverseIndexed(seq.Of(1, 2, 3, 4), func(i, v int) (int, error) {
		visited = append(visited, i)
		if v == 2 {
			return 0, boom
		}
		return v * 2, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{0, 1}, visited)

	out, err := seq.TraverseIndexed(seq.Of(1, 2), func(_ int, v int) (int, error) { return v * 2, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, out.Slice())
}

func TestSeq_TraverseIndexedOption(t *testing.T) {
	half := func(_ int, v int) option.Option[int] {
		if v%2 != 0 {
			return option.None[int]()
		}
		return option.Some(v / 2)
	}

	got, ok := seq.TraverseIndexedOption(seq.Of(2, 4, 6), half).Get()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, got.Slice())

	assert.True(t, seq.TraverseIndexedOption(seq.Of(2, 3, 6), half).IsNone())
}

func TestList_Mutation(t *testing.T) {
	l := seq.NewList(1, 2)
	l.Add(3, 4)
	require.NoError(t, l.Set(0, 10))
	require.NoError(t, l.RemoveAt(1))

	assert.Equal(t, []int{10, 3, 4}, l.Seq().Slice())
	assert.ErrorIs(t, l.Set(3, 0), indexed.ErrIndexOutOfRange)
	assert.ErrorIs(t, l.RemoveAt(-1), indexed.ErrIndexOutOfRange)
}

func TestList_NilIsAbsent(t *testing.T) {
	var l *seq.List[int]

	assert.True(t, l.Absent())
	assert.Equal(t, 0, l.Len())
	_, ok := l.TryItem(0)
	assert.False(t, ok)
	assert.Nil(t, seq.MapIndexedList(l, func(_, v int) string { return "" }))
	assert.Equal(t, "<absent>", l.String())

	out, err := seq.TraverseIndexedList(l, func(_, v int) (int, error) { return v, nil })
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestList_MapIndexedLeavesOriginal(t *testing.T) {
	l := seq.NewList(1, 2, 3)
	doubled := l.MapIndexed(func(_, v int) int { return v * 2 })

	assert.Equal(t, []int{1, 2, 3}, l.Seq().Slice())
	assert.Equal(t, []int{2, 4, 6}, doubled.Seq().Slice())
}
