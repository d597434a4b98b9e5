package daycount_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/rateindex/daycount"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYearFraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		dc    daycount.DayCount
		start time.Time
		end   time.Time
		want  float64
	}{
		{"act360 overnight", daycount.Act360, date(2025, 3, 14), date(2025, 3, 17), 3.0 / 360.0},
		{"act365f year", daycount.Act365F, date(2025, 1, 1), date(2026, 1, 1), 1.0},
		{"30e360 month end", daycount.Dc30E360, date(2025, 1, 31), date(2025, 2, 28), 28.0 / 360.0},
		{"30360 both 31st", daycount.Dc30360, date(2025, 1, 31), date(2025, 3, 31), 60.0 / 360.0},
		{"unknown falls back", daycount.DayCount("BUS/252"), date(2025, 1, 1), date(2026, 1, 1), 1.0},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.want, tc.dc.YearFraction(tc.start, tc.end), 1e-12, tc.name)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	dc, err := daycount.Parse(" act/365f ")
	require.NoError(t, err)
	assert.Equal(t, daycount.Act365F, dc)
	assert.False(t, dc.IsZero())

	_, err = daycount.Parse("BUS/252")
	require.Error(t, err)
	assert.True(t, daycount.DayCount("").IsZero())
}
