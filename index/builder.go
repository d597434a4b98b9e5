package index

import (
	"cloudeng.io/errors"
	"golang.org/x/text/currency"

	"github.com/meenmo/rateindex/daycount"
)

// OvernightBuilder collects the fields of an OvernightIndex. Validation is
// deferred to Build.
type OvernightBuilder struct {
	currency              currency.Unit
	name                  string
	calendar              HolidayCalendar
	publicationDateOffset int
	effectiveDateOffset   int
	dayCount              daycount.DayCount
}

// NewOvernightBuilder returns an empty builder.
func NewOvernightBuilder() *OvernightBuilder {
	return &OvernightBuilder{}
}

// ToBuilder returns a builder holding every field of o.
func (o *OvernightIndex) ToBuilder() *OvernightBuilder {
	return &OvernightBuilder{
		currency:              o.currency,
		name:                  o.name,
		calendar:              o.calendar,
		publicationDateOffset: o.publicationDateOffset,
		effectiveDateOffset:   o.effectiveDateOffset,
		dayCount:              o.dayCount,
	}
}

func (b *OvernightBuilder) Currency(cur currency.Unit) *OvernightBuilder {
	b.currency = cur
	return b
}

func (b *OvernightBuilder) Name(name string) *OvernightBuilder {
	b.name = name
	return b
}

func (b *OvernightBuilder) Calendar(cal HolidayCalendar) *OvernightBuilder {
	b.calendar = cal
	return b
}

func (b *OvernightBuilder) PublicationDateOffset(days int) *OvernightBuilder {
	b.publicationDateOffset = days
	return b
}

func (b *OvernightBuilder) EffectiveDateOffset(days int) *OvernightBuilder {
	b.effectiveDateOffset = days
	return b
}

func (b *OvernightBuilder) DayCount(dc daycount.DayCount) *OvernightBuilder {
	b.dayCount = dc
	return b
}

// Build validates the fields and returns the index. Every missing field is
// reported as a *ValidationError; errors.As finds the first of currency, name,
// calendar and dayCount that is missing. Offsets are not range checked.
func (b *OvernightBuilder) Build() (*OvernightIndex, error) {
	var errs errors.M
	if b.currency == (currency.Unit{}) {
		errs.Append(&ValidationError{Field: "currency"})
	}
	if b.name == "" {
		errs.Append(&ValidationError{Field: "name"})
	}
	if b.calendar == nil {
		errs.Append(&ValidationError{Field: "calendar"})
	}
	if b.dayCount.IsZero() {
		errs.Append(&ValidationError{Field: "dayCount"})
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &OvernightIndex{
		currency:              b.currency,
		name:                  b.name,
		calendar:              b.calendar,
		publicationDateOffset: b.publicationDateOffset,
		effectiveDateOffset:   b.effectiveDateOffset,
		dayCount:              b.dayCount,
	}, nil
}
