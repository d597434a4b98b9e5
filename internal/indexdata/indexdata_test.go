package indexdata_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/rateindex/index"
	"github.com/meenmo/rateindex/internal/indexdata"
	"github.com/meenmo/rateindex/utils"
)

func TestLoadStandard(t *testing.T) {
	t.Parallel()

	reg, err := indexdata.Load(indexdata.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"EUR-EONIA", "EUR-ESTR", "GBP-SONIA", "JPY-TONAR", "USD-FED-FUND", "USD-SOFR",
	}, reg.Names())

	sofr, err := index.Of(reg, "USD-SOFR")
	require.NoError(t, err)
	pub, err := sofr.PublicationFromFixing(utils.MustParseDate("2025-07-03"))
	require.NoError(t, err)
	assert.Equal(t, "2025-07-07", utils.FormatDate(pub))
}

func TestLoadWithFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	holidays := filepath.Join(dir, "holidays.yaml")
	defs := filepath.Join(dir, "defs.yaml")
	require.NoError(t, os.WriteFile(holidays, []byte("calendars:\n  CHZU: [\"2025-08-01\"]\n"), 0o600))
	require.NoError(t, os.WriteFile(defs, []byte(`
overnight:
  - name: CHF-SARON
    currency: CHF
    calendar: CHZU
    publication_date_offset: 0
    effective_date_offset: 0
    day_count: ACT/360
`), 0o600))

	reg, err := indexdata.Load(indexdata.Options{Holidays: holidays, Definitions: defs})
	require.NoError(t, err)
	assert.Equal(t, 7, reg.Len())

	saron, err := index.Of(reg, "CHF-SARON")
	require.NoError(t, err)
	mat, err := saron.MaturityFromEffective(utils.MustParseDate("2025-07-31"))
	require.NoError(t, err)
	assert.Equal(t, "2025-08-04", utils.FormatDate(mat))
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := indexdata.Load(indexdata.Options{Holidays: filepath.Join(dir, "missing.yaml")})
	require.Error(t, err)

	dup := filepath.Join(dir, "dup.yaml")
	require.NoError(t, os.WriteFile(dup, []byte(`
overnight:
  - {name: GBP-SONIA, currency: GBP, calendar: GBLO, day_count: ACT/365F}
`), 0o600))
	_, err = indexdata.Load(indexdata.Options{Definitions: dup})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("overnight:\n  - {name: X, currency: GBP, calendar: GBLO}\n"), 0o600))
	_, err = indexdata.Load(indexdata.Options{Definitions: bad})
	var ve *index.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "dayCount", ve.Field)
}

func TestHolidaysFileAddsToBundledCalendar(t *testing.T) {
	t.Parallel()

	holidays := filepath.Join(t.TempDir(), "holidays.yaml")
	require.NoError(t, os.WriteFile(holidays, []byte("calendars:\n  GBLO: [\"2025-03-10\"]\n"), 0o600))

	reg, err := indexdata.Load(indexdata.Options{Holidays: holidays})
	require.NoError(t, err)
	sonia, err := index.Of(reg, "GBP-SONIA")
	require.NoError(t, err)

	dates, err := sonia.Dates(utils.MustParseDate("2025-12-24"))
	require.NoError(t, err)
	assert.Equal(t, "2025-12-29", utils.FormatDate(dates.Maturity), "Christmas is still a holiday")

	dates, err = sonia.Dates(utils.MustParseDate("2025-03-07"))
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", utils.FormatDate(dates.Maturity))

	standard, err := indexdata.Load(indexdata.Options{})
	require.NoError(t, err)
	bundled, err := index.Of(standard, "GBP-SONIA")
	require.NoError(t, err)
	assert.False(t, bundled.Equal(sonia))
}
