package daily_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rickb777/date/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/overload_ive_go/daily"
	"github.com/on-the-ground/overload_ive_go/indexed"
)

func TestSeries_InclusiveDateRange(t *testing.T) {
	first := date.New(2024, time.February, 28)
	s := daily.New(first, 10, 20, 30)

	assert.Equal(t, date.New(2024, time.March, 1), s.Last())

	v, ok := s.TryItem(date.New(2024, time.February, 29))
	require.True(t, ok)
	assert.Equal(t, 20, v)

	_, ok = s.TryItem(date.New(2024, time.March, 2))
	assert.False(t, ok)
	_, ok = s.TryItem(date.New(2024, time.February, 27))
	assert.False(t, ok)

	_, err := s.Item(date.New(2024, time.March, 2))
	assert.ErrorIs(t, err, indexed.ErrIndexOutOfRange)
}

func TestSeries_InitVisitsDaysInOrder(t *testing.T) {
	first, last := date.New(2023, time.December, 30), date.New(2024, time.January, 2)
	s := daily.Init(first, last, func(d date.Date) int { return d.Day() })

	var days []int
	s.IterateIndexed(func(_ date.Date, v int) { days = append(days, v) })
	assert.Equal(t, []int{30, 31, 1, 2}, days)

	empty := daily.Init(last, first, func(date.Date) int { return 0 })
	assert.Equal(t, 0, empty.Len())
}

func TestSeries_MapAndTraverse(t *testing.T) {
	first := date.New(2024, time.January, 1)
	s := daily.New(first, 1, 2, 3)

	weekdays := daily.MapIndexed(s, func(d date.Date, _ int) time.Weekday { return d.Weekday() })
	v, err := weekdays.Item(first)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, v)

	boom := errors.New("boom")
	_, err = daily.TraverseIndexed(s, func(_ date.Date, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "2024-01-02")
}

func TestSeries_DayArithmeticAcrossYears(t *testing.T) {
	first := date.New(2023, time.December, 31)
	s := daily.Init(first, date.New(2025, time.January, 1), func(d date.Date) int { return d.Year() })

	assert.Equal(t, 368, s.Len())
	assert.Equal(t, date.New(2025, time.January, 1), s.Last())

	v, ok := s.TryItem(date.New(2024, time.December, 31))
	require.True(t, ok)
	assert.Equal(t, 2024, v)

	empty := daily.New[int](first)
	assert.Equal(t, date.New(2023, time.December, 30), empty.Last())
	_, ok = empty.TryItem(first)
	assert.False(t, ok)
}
