package index_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/meenmo/rateindex/calendar"
	"github.com/meenmo/rateindex/daycount"
	"github.com/meenmo/rateindex/index"
)

func resolveBuiltin(name string) (index.HolidayCalendar, error) {
	c, err := calendar.Builtin().Lookup(name)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func TestOf(t *testing.T) {
	t.Parallel()

	s := sonia(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg, err := index.NewRegistry([]*index.OvernightIndex{s}, index.WithLogger(logger))
	require.NoError(t, err)

	got, err := index.Of(reg, "GBP-SONIA")
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = index.Of(reg, "UNKNOWN-INDEX-X")
	var le *index.LookupError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "UNKNOWN-INDEX-X", le.Name)
	assert.Contains(t, buf.String(), "UNKNOWN-INDEX-X")

	_, err = index.Of(reg, "")
	assert.ErrorIs(t, err, index.ErrInvalidArgument)
	assert.False(t, errors.As(err, &le), "empty name must not reach the registry")

	_, err = index.Of(nil, "GBP-SONIA")
	assert.ErrorIs(t, err, index.ErrInvalidArgument)
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	s := sonia(t)
	estr, err := index.NewOvernightIndex(currency.EUR, "EUR-ESTR", calendar.Of(calendar.TARGET), 1, 0, daycount.Act360)
	require.NoError(t, err)

	reg, err := index.NewRegistry([]*index.OvernightIndex{s, estr})
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"EUR-ESTR", "GBP-SONIA"}, reg.Names())

	_, err = index.NewRegistry([]*index.OvernightIndex{s, s})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	_, err = index.NewRegistry([]*index.OvernightIndex{nil})
	assert.ErrorIs(t, err, index.ErrInvalidArgument)
}

const definitions = `
overnight:
  - name: GBP-SONIA
    currency: GBP
    calendar: GBLO
    publication_date_offset: 0
    effective_date_offset: 0
    day_count: ACT/365F
  - name: EUR-ESTR
    currency: EUR
    calendar: TARGET
    publication_date_offset: 1
    effective_date_offset: 0
    day_count: ACT/360
`

func TestDecodeDefinitions(t *testing.T) {
	t.Parallel()

	indices, err := index.DecodeDefinitions(strings.NewReader(definitions), resolveBuiltin)
	require.NoError(t, err)
	require.Len(t, indices, 2)
	assert.True(t, sonia(t).Equal(indices[0]))
	assert.Equal(t, "EUR-ESTR", indices[1].Name())
	assert.Equal(t, 1, indices[1].PublicationDateOffset())
	assert.Equal(t, currency.EUR, indices[1].Currency())
}

func TestDecodeDefinitionsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"bad currency", "overnight:\n  - {name: X, currency: ZZZZ, calendar: GBLO, day_count: ACT/360}\n", "ZZZZ"},
		{"unknown calendar", "overnight:\n  - {name: X, currency: GBP, calendar: NOPE, day_count: ACT/360}\n", "NOPE"},
		{"bad day count", "overnight:\n  - {name: X, currency: GBP, calendar: GBLO, day_count: BUS/252}\n", "BUS/252"},
		{"not yaml", "overnight: [", "decode index definitions"},
	}
	for _, tc := range tests {
		_, err := index.DecodeDefinitions(strings.NewReader(tc.doc), resolveBuiltin)
		require.Error(t, err, tc.name)
		assert.Contains(t, err.Error(), tc.want, tc.name)
	}

	_, err := index.DecodeDefinitions(strings.NewReader("overnight:\n  - {name: X, calendar: GBLO, day_count: ACT/360}\n"), resolveBuiltin)
	var ve *index.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "currency", ve.Field)
}
