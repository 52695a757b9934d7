package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"wednesday new year", date(2025, time.January, 1), date(2024, time.December, 30)},
		{"monday itself", date(2025, time.January, 6), date(2025, time.January, 6)},
		{"sunday", date(2025, time.January, 12), date(2025, time.January, 6)},
		{"time of day dropped", time.Date(2025, time.March, 31, 18, 30, 0, 0, time.UTC), date(2025, time.March, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.in)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2025, time.January))
	assert.Equal(t, 28, DaysIn(2025, time.February))
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 30, DaysIn(2025, time.April))
	assert.Equal(t, 31, DaysIn(2025, time.December))
	assert.Equal(t, 31, DaysIn(2024, time.December))
}

func TestDaysInclusive(t *testing.T) {
	days := Days(date(2025, time.January, 1), date(2025, time.March, 31))
	require.Len(t, days, 90)
	assert.True(t, days[0].Equal(date(2025, time.January, 1)))
	assert.True(t, days[89].Equal(date(2025, time.March, 31)))

	assert.Empty(t, Days(date(2025, time.January, 2), date(2025, time.January, 1)))
	assert.Len(t, Days(date(2025, time.January, 1), date(2025, time.January, 1)), 1)
}

func TestMonths(t *testing.T) {
	months := Months(date(2024, time.November, 15), date(2025, time.February, 1))
	require.Len(t, months, 4)
	assert.Equal(t, "2024-11", months[0].String())
	assert.Equal(t, "2024-12", months[1].String())
	assert.Equal(t, "2025-01", months[2].String())
	assert.Equal(t, "02", months[3].Number())
	assert.Equal(t, 31, months[1].Days())
}
