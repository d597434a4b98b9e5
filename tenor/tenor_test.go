package tenor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/rateindex/tenor"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		want  tenor.Tenor
		years float64
	}{
		{"1D", tenor.OneDay, 1.0 / 365.0},
		{" 2w", tenor.Tenor{Amount: 2, Unit: tenor.Weeks}, 14.0 / 365.0},
		{"3M", tenor.Tenor{Amount: 3, Unit: tenor.Months}, 0.25},
		{"10Y", tenor.Tenor{Amount: 10, Unit: tenor.Years}, 10},
	}
	for _, tc := range tests {
		got, err := tenor.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.InDelta(t, tc.years, got.Years(), 1e-12, tc.in)
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "D", "3Q", "-1M", "xY"} {
		_, err := tenor.Parse(in)
		assert.Error(t, err, in)
	}
}

func TestOneDayString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1D", tenor.OneDay.String())
}
