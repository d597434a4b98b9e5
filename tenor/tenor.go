// Package tenor provides the nominal period length of a rate index.
package tenor

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the period unit of a tenor.
type Unit byte

const (
	Days   Unit = 'D'
	Weeks  Unit = 'W'
	Months Unit = 'M'
	Years  Unit = 'Y'
)

// Tenor is an amount of a period unit, such as 1D, 3M or 10Y.
type Tenor struct {
	Amount int
	Unit   Unit
}

// OneDay is the tenor of every overnight index.
var OneDay = Tenor{Amount: 1, Unit: Days}

// Parse converts tenor strings like "1D", "1W", "3M", "10Y".
func Parse(s string) (Tenor, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if len(s) < 2 {
		return Tenor{}, fmt.Errorf("invalid tenor %q", s)
	}
	u := Unit(s[len(s)-1])
	switch u {
	case Days, Weeks, Months, Years:
	default:
		return Tenor{}, fmt.Errorf("invalid tenor %q: unknown unit", s)
	}
	v, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || v < 0 {
		return Tenor{}, fmt.Errorf("invalid tenor %q: bad amount", s)
	}
	return Tenor{Amount: v, Unit: u}, nil
}

func (t Tenor) String() string {
	return strconv.Itoa(t.Amount) + string(t.Unit)
}

// Years approximates the tenor as a year fraction.
func (t Tenor) Years() float64 {
	switch t.Unit {
	case Days:
		return float64(t.Amount) / 365.0
	case Weeks:
		return float64(t.Amount) * 7.0 / 365.0
	case Months:
		return float64(t.Amount) / 12.0
	default:
		return float64(t.Amount)
	}
}
