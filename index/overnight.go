package index

import (
	"encoding/binary"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/currency"

	"github.com/meenmo/rateindex/daycount"
	"github.com/meenmo/rateindex/tenor"
)

// OvernightIndex is an index relating to lending over one night, such as
// SONIA or ESTR.
//
// The index is defined by four dates. The fixing date is the date on which the
// index is observed. The publication date is the date on which the fixed rate
// is actually published. The effective date is the date on which the implied
// deposit starts, and the maturity date is the date on which it ends.
//
// An OvernightIndex is immutable and safe for concurrent use. Use Equal, not ==,
// to compare two indices. Only values returned by Build or NewOvernightIndex
// are valid; the date calculations of a zero OvernightIndex return
// ErrInvalidArgument.
type OvernightIndex struct {
	currency              currency.Unit
	name                  string
	calendar              HolidayCalendar
	publicationDateOffset int
	effectiveDateOffset   int
	dayCount              daycount.DayCount

	// hash caches Hash; zero means not yet computed.
	hash atomic.Uint64
}

var _ RateIndex = (*OvernightIndex)(nil)

// NewOvernightIndex validates and returns an index built from all of its fields.
func NewOvernightIndex(
	cur currency.Unit,
	name string,
	cal HolidayCalendar,
	publicationDateOffset int,
	effectiveDateOffset int,
	dc daycount.DayCount,
) (*OvernightIndex, error) {
	return NewOvernightBuilder().
		Currency(cur).
		Name(name).
		Calendar(cal).
		PublicationDateOffset(publicationDateOffset).
		EffectiveDateOffset(effectiveDateOffset).
		DayCount(dc).
		Build()
}

// Currency returns the currency of the index.
func (o *OvernightIndex) Currency() currency.Unit { return o.currency }

// Name returns the unique index name, such as "GBP-SONIA".
func (o *OvernightIndex) Name() string { return o.name }

// Calendar returns the calendar used for all date calculations of the index.
func (o *OvernightIndex) Calendar() HolidayCalendar { return o.calendar }

// PublicationDateOffset is the number of business days from fixing to
// publication: zero if the rate is published on the fixing date, one if it is
// published the next day.
func (o *OvernightIndex) PublicationDateOffset() int { return o.publicationDateOffset }

// EffectiveDateOffset is the number of business days from fixing to the start
// of the implied deposit.
func (o *OvernightIndex) EffectiveDateOffset() int { return o.effectiveDateOffset }

// DayCount returns the day count convention of the index.
func (o *OvernightIndex) DayCount() daycount.DayCount { return o.dayCount }

// Type is always Overnight.
func (o *OvernightIndex) Type() RateIndexType { return Overnight }

// Tenor is always one day.
func (o *OvernightIndex) Tenor() tenor.Tenor { return tenor.OneDay }

func (o *OvernightIndex) String() string { return o.name }

func (o *OvernightIndex) check(date time.Time, name string) error {
	if o.calendar == nil {
		return errNotBuilt
	}
	if date.IsZero() {
		return missingArgument(name)
	}
	return nil
}

// PublicationFromFixing calculates the publication date from the fixing date.
//
// A fixing date that is not a business day is moved to the next business day
// before the offset is applied.
func (o *OvernightIndex) PublicationFromFixing(fixingDate time.Time) (time.Time, error) {
	if err := o.check(fixingDate, "fixingDate"); err != nil {
		return time.Time{}, err
	}
	return o.calendar.Shift(o.calendar.NextOrSame(fixingDate), o.publicationDateOffset), nil
}

// EffectiveFromFixing calculates the effective date from the fixing date.
//
// A fixing date that is not a business day is moved to the next business day
// before the offset is applied.
func (o *OvernightIndex) EffectiveFromFixing(fixingDate time.Time) (time.Time, error) {
	if err := o.check(fixingDate, "fixingDate"); err != nil {
		return time.Time{}, err
	}
	return o.calendar.Shift(o.calendar.NextOrSame(fixingDate), o.effectiveDateOffset), nil
}

// FixingFromEffective calculates the fixing date from the effective date.
//
// An effective date that is not a business day is moved to the next business
// day first, so this is only an inverse of EffectiveFromFixing for business
// day inputs: a Saturday fixing maps to a Monday effective date, which maps
// back to Monday.
func (o *OvernightIndex) FixingFromEffective(effectiveDate time.Time) (time.Time, error) {
	if err := o.check(effectiveDate, "effectiveDate"); err != nil {
		return time.Time{}, err
	}
	return o.calendar.Shift(o.calendar.NextOrSame(effectiveDate), -o.effectiveDateOffset), nil
}

// MaturityFromEffective calculates the maturity date, one business day after
// the effective date.
func (o *OvernightIndex) MaturityFromEffective(effectiveDate time.Time) (time.Time, error) {
	if err := o.check(effectiveDate, "effectiveDate"); err != nil {
		return time.Time{}, err
	}
	return o.calendar.Shift(o.calendar.NextOrSame(effectiveDate), 1), nil
}

// FixingDates holds the four dates derived from a single fixing.
type FixingDates struct {
	Fixing      time.Time
	Publication time.Time
	Effective   time.Time
	Maturity    time.Time
}

// Dates derives publication, effective and maturity dates for a fixing date.
// Fixing holds the fixing date after moving it to a business day.
func (o *OvernightIndex) Dates(fixingDate time.Time) (FixingDates, error) {
	if err := o.check(fixingDate, "fixingDate"); err != nil {
		return FixingDates{}, err
	}
	fixing := o.calendar.NextOrSame(fixingDate)
	effective := o.calendar.Shift(fixing, o.effectiveDateOffset)
	return FixingDates{
		Fixing:      fixing,
		Publication: o.calendar.Shift(fixing, o.publicationDateOffset),
		Effective:   effective,
		Maturity:    o.calendar.Shift(effective, 1),
	}, nil
}

// Equal reports whether both indices have the same fields. Calendars are
// compared by name and fingerprint.
func (o *OvernightIndex) Equal(other *OvernightIndex) bool {
	if o == other {
		return true
	}
	if o == nil || other == nil {
		return false
	}
	return o.currency == other.currency &&
		o.name == other.name &&
		sameCalendar(o.calendar, other.calendar) &&
		o.publicationDateOffset == other.publicationDateOffset &&
		o.effectiveDateOffset == other.effectiveDateOffset &&
		o.dayCount == other.dayCount
}

func sameCalendar(a, b HolidayCalendar) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name() == b.Name() && a.Fingerprint() == b.Fingerprint()
}

// Hash returns a hash of all fields, consistent with Equal. It is computed on
// first use and cached; concurrent first calls compute the same value.
func (o *OvernightIndex) Hash() uint64 {
	if h := o.hash.Load(); h != 0 {
		return h
	}
	h := o.computeHash()
	o.hash.Store(h)
	return h
}

func (o *OvernightIndex) computeHash() uint64 {
	var calName string
	var calPrint uint64
	if o.calendar != nil {
		calName, calPrint = o.calendar.Name(), o.calendar.Fingerprint()
	}
	d := xxhash.New()
	for _, s := range []string{o.currency.String(), o.name, calName, string(o.dayCount)} {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[:8], calPrint)
	binary.LittleEndian.PutUint64(buf[8:16], uint64(int64(o.publicationDateOffset)))
	binary.LittleEndian.PutUint64(buf[16:], uint64(int64(o.effectiveDateOffset)))
	_, _ = d.Write(buf[:])
	h := d.Sum64()
	if h == 0 {
		h = 1
	}
	return h
}
