// Package daycount defines day count conventions that convert a date span
// into a year fraction.
package daycount

import (
	"fmt"
	"strings"
	"time"
)

// DayCount names a day count convention.
type DayCount string

const (
	Act360   DayCount = "ACT/360"
	Act365   DayCount = "ACT/365"
	Act365F  DayCount = "ACT/365F"
	Dc30E360 DayCount = "30E/360"
	Dc30360  DayCount = "30/360"
)

var known = []DayCount{Act360, Act365, Act365F, Dc30E360, Dc30360}

// Parse resolves a convention name, ignoring case and surrounding space.
func Parse(name string) (DayCount, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for _, dc := range known {
		if string(dc) == n {
			return dc, nil
		}
	}
	return "", fmt.Errorf("unknown day count %q", name)
}

// IsZero reports whether the convention is unset.
func (dc DayCount) IsZero() bool {
	return dc == ""
}

func (dc DayCount) String() string {
	return string(dc)
}

// YearFraction computes the year fraction between start and end.
// Unknown conventions fall back to ACT/365F.
func (dc DayCount) YearFraction(start, end time.Time) float64 {
	switch dc {
	case Act360:
		return days(start, end) / 360.0
	case Act365, Act365F:
		return days(start, end) / 365.0
	case Dc30E360:
		// 30E/360 (Eurobond basis): D1 and D2 are capped at 30.
		d1 := min(start.Day(), 30)
		d2 := min(end.Day(), 30)
		return thirty360(start, end, d1, d2)
	case Dc30360:
		// 30/360 US bond basis: D2 is capped only when D1 is.
		d1 := start.Day()
		d2 := end.Day()
		if d1 == 31 {
			d1 = 30
		}
		if d2 == 31 && d1 == 30 {
			d2 = 30
		}
		return thirty360(start, end, d1, d2)
	default:
		return days(start, end) / 365.0
	}
}

func days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}

func thirty360(start, end time.Time, d1, d2 int) float64 {
	y1, m1 := start.Year(), int(start.Month())
	y2, m2 := end.Year(), int(end.Month())
	return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0
}
