package index

import (
	"fmt"
	"io"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/rateindex/daycount"
)

// CalendarResolver maps a calendar name to a calendar.
type CalendarResolver func(name string) (HolidayCalendar, error)

// Definition is the serialized form of an overnight index.
type Definition struct {
	Name                  string `yaml:"name"`
	Currency              string `yaml:"currency"`
	Calendar              string `yaml:"calendar"`
	PublicationDateOffset int    `yaml:"publication_date_offset"`
	EffectiveDateOffset   int    `yaml:"effective_date_offset"`
	DayCount              string `yaml:"day_count"`
}

type definitionFile struct {
	Overnight []Definition `yaml:"overnight"`
}

// DecodeDefinitions reads a YAML document with an "overnight" list of
// definitions and builds an index for each one.
func DecodeDefinitions(r io.Reader, resolve CalendarResolver) ([]*OvernightIndex, error) {
	var f definitionFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode index definitions: %w", err)
	}
	out := make([]*OvernightIndex, 0, len(f.Overnight))
	for i, def := range f.Overnight {
		idx, err := def.Build(resolve)
		if err != nil {
			return nil, fmt.Errorf("index definition %d (%s): %w", i, def.Name, err)
		}
		out = append(out, idx)
	}
	return out, nil
}

// Build resolves the definition's references and builds the index.
// Empty references are left unset so Build reports them as validation errors.
func (d Definition) Build(resolve CalendarResolver) (*OvernightIndex, error) {
	b := NewOvernightBuilder().
		Name(d.Name).
		PublicationDateOffset(d.PublicationDateOffset).
		EffectiveDateOffset(d.EffectiveDateOffset)
	if d.Currency != "" {
		cur, err := currency.ParseISO(d.Currency)
		if err != nil {
			return nil, fmt.Errorf("currency %q: %w", d.Currency, err)
		}
		b.Currency(cur)
	}
	if d.Calendar != "" {
		cal, err := resolve(d.Calendar)
		if err != nil {
			return nil, err
		}
		b.Calendar(cal)
	}
	if d.DayCount != "" {
		dc, err := daycount.Parse(d.DayCount)
		if err != nil {
			return nil, err
		}
		b.DayCount(dc)
	}
	return b.Build()
}
