// Package calendar provides holiday calendars that define business days and
// shift dates across them.
package calendar

import (
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/meenmo/rateindex/utils"
)

// CalendarID identifies a holiday calendar.
type CalendarID string

const (
	SatSun CalendarID = "SAT_SUN"
	GBLO   CalendarID = "GBLO"
	TARGET CalendarID = "TARGET"
	USNY   CalendarID = "USNY"
	JPTO   CalendarID = "JPTO"
)

// Calendar treats Saturday, Sunday and a fixed set of holidays as non-business days.
// A Calendar is immutable once built and safe for concurrent use.
type Calendar struct {
	id          CalendarID
	holidays    map[string]struct{}
	fingerprint uint64
}

// New returns a calendar with the given holidays.
func New(id CalendarID, holidays ...time.Time) *Calendar {
	keys := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		keys[h.Format(utils.DateLayout)] = struct{}{}
	}
	return newCalendar(id, keys)
}

func newCalendar(id CalendarID, holidays map[string]struct{}) *Calendar {
	c := &Calendar{id: id, holidays: holidays}
	d := xxhash.New()
	_, _ = d.WriteString(string(id))
	for _, k := range c.holidayKeys() {
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(k)
	}
	c.fingerprint = d.Sum64()
	return c
}

func (c *Calendar) holidayKeys() []string {
	keys := make([]string, 0, len(c.holidays))
	for k := range c.holidays {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ID returns the calendar identifier.
func (c *Calendar) ID() CalendarID {
	return c.id
}

// Name returns the calendar identifier as a string.
func (c *Calendar) Name() string {
	return string(c.id)
}

// Fingerprint is a hash of the ID and the holiday set. Calendars with the same
// ID and fingerprint have the same business days.
func (c *Calendar) Fingerprint() uint64 {
	return c.fingerprint
}

func (c *Calendar) String() string {
	return string(c.id)
}

// IsHoliday reports whether t is in the holiday set. Weekends are not holidays.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.holidays[t.Format(utils.DateLayout)]
	return ok
}

// IsBusinessDay checks weekends and the holiday set.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	if utils.IsWeekend(t) {
		return false
	}
	return !c.IsHoliday(t)
}

// NextOrSame returns t if it is a business day, otherwise the next one.
func (c *Calendar) NextOrSame(t time.Time) time.Time {
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// PreviousOrSame returns t if it is a business day, otherwise the previous one.
func (c *Calendar) PreviousOrSame(t time.Time) time.Time {
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// Shift advances n business days (n can be negative). Shift(t, 0) returns t.
func (c *Calendar) Shift(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if c.IsBusinessDay(t) {
			n -= step
		}
	}
	return t
}

// Adjust applies Modified Following.
func (c *Calendar) Adjust(t time.Time) time.Time {
	origMonth := t.Month()
	t = c.NextOrSame(t)
	if t.Month() != origMonth {
		t = c.PreviousOrSame(t.AddDate(0, 0, -1))
	}
	return t
}

// LastBusinessDayOfMonth returns the last business day of the month containing t.
func (c *Calendar) LastBusinessDayOfMonth(t time.Time) time.Time {
	nextMonth := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
	return c.Shift(nextMonth, -1)
}

// IsEndOfMonth checks if t is the last business day of its month.
func (c *Calendar) IsEndOfMonth(t time.Time) bool {
	return t.Equal(c.LastBusinessDayOfMonth(t))
}

// Holidays returns the number of holidays in the set.
func (c *Calendar) Holidays() int {
	return len(c.holidays)
}
