package calendar

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/meenmo/rateindex/utils"
)

//go:embed holidays.yaml
var builtinHolidays []byte

var builtin *Set

func init() {
	s, err := Decode(bytes.NewReader(builtinHolidays))
	if err != nil {
		panic(fmt.Sprintf("calendar: embedded holidays: %v", err))
	}
	builtin = s
}

// Set is a read-only collection of calendars keyed by ID.
type Set struct {
	cals map[CalendarID]*Calendar
}

type holidayFile struct {
	Calendars map[string][]string `yaml:"calendars"`
}

// Builtin returns the calendars bundled with the package.
func Builtin() *Set {
	return builtin
}

// NewSet collects calendars into a Set; a later calendar replaces an earlier one with the same ID.
func NewSet(cals ...*Calendar) *Set {
	s := &Set{cals: make(map[CalendarID]*Calendar, len(cals))}
	for _, c := range cals {
		s.cals[c.id] = c
	}
	return s
}

// Decode reads a YAML holiday file of the form
//
//	calendars:
//	  GBLO: ["2025-12-25", "2025-12-26"]
func Decode(r io.Reader) (*Set, error) {
	var f holidayFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode holidays: %w", err)
	}
	s := &Set{cals: make(map[CalendarID]*Calendar, len(f.Calendars))}
	for id, days := range f.Calendars {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("decode holidays: empty calendar id")
		}
		holidays := make([]time.Time, 0, len(days))
		for _, d := range days {
			t, err := utils.ParseDate(d)
			if err != nil {
				return nil, fmt.Errorf("calendar %s: %w", id, err)
			}
			holidays = append(holidays, t)
		}
		s.cals[CalendarID(id)] = New(CalendarID(id), holidays...)
	}
	return s, nil
}

// ReadFile decodes the YAML holiday file at path.
func ReadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Merge returns a new Set holding the calendars of both sets. A calendar
// present in both gets the union of their holidays.
func (s *Set) Merge(other *Set) *Set {
	out := &Set{cals: make(map[CalendarID]*Calendar, len(s.cals)+len(other.cals))}
	for id, c := range s.cals {
		out.cals[id] = c
	}
	for id, c := range other.cals {
		prev, ok := out.cals[id]
		if !ok {
			out.cals[id] = c
			continue
		}
		union := make(map[string]struct{}, len(prev.holidays)+len(c.holidays))
		for k := range prev.holidays {
			union[k] = struct{}{}
		}
		for k := range c.holidays {
			union[k] = struct{}{}
		}
		out.cals[id] = newCalendar(id, union)
	}
	return out
}

// Lookup returns the calendar with the given ID.
func (s *Set) Lookup(id string) (*Calendar, error) {
	c, ok := s.cals[CalendarID(strings.TrimSpace(id))]
	if !ok {
		return nil, fmt.Errorf("unknown calendar %q", id)
	}
	return c, nil
}

// IDs returns the calendar IDs in sorted order.
func (s *Set) IDs() []CalendarID {
	ids := make([]CalendarID, 0, len(s.cals))
	for id := range s.cals {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Of returns a bundled calendar, panicking if id is unknown.
func Of(id CalendarID) *Calendar {
	c, err := builtin.Lookup(string(id))
	if err != nil {
		panic(err)
	}
	return c
}
