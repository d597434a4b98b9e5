// Package index defines rate indices and the dates associated with fixing
// and settling them.
package index

import (
	"time"

	"golang.org/x/text/currency"

	"github.com/meenmo/rateindex/tenor"
)

// RateIndexType distinguishes overnight indices from term indices.
type RateIndexType string

const Overnight RateIndexType = "OVERNIGHT"

// HolidayCalendar defines business days and moves dates across them.
// Implementations must be safe for concurrent use.
type HolidayCalendar interface {
	Name() string
	// Fingerprint hashes the set of business days. Calendars are equal when
	// both Name and Fingerprint match.
	Fingerprint() uint64
	// NextOrSame returns the smallest business day on or after date.
	NextOrSame(date time.Time) time.Time
	// Shift moves date by days business days, backwards when days is negative.
	Shift(date time.Time, days int) time.Time
}

// RateIndex is implemented by every index that can be fixed on a date.
type RateIndex interface {
	Name() string
	Currency() currency.Unit
	Type() RateIndexType
	Tenor() tenor.Tenor
	PublicationFromFixing(fixingDate time.Time) (time.Time, error)
	EffectiveFromFixing(fixingDate time.Time) (time.Time, error)
	FixingFromEffective(effectiveDate time.Time) (time.Time, error)
	MaturityFromEffective(effectiveDate time.Time) (time.Time, error)
}
