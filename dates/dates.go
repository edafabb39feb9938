// Package dates normalises the heterogeneous date representations found in
// the source datasets into canonical, granularity-tagged values.
package dates

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind is the granularity of a canonical date.
type Kind int

const (
	Year Kind = iota + 1
	YearMonth
	FullDate
	AcademicYear
)

func (k Kind) String() string {
	switch k {
	case Year:
		return "year"
	case YearMonth:
		return "year-month"
	case FullDate:
		return "full-date"
	case AcademicYear:
		return "academic-year"
	}
	return "invalid"
}

// CanonicalDate is a granularity-tagged date value. The tag drives all
// dispatch; the rendered string keeps the historical 4/7/10/9 character
// lengths so downstream consumers of the serialised form stay compatible.
type CanonicalDate struct {
	Kind Kind
	Y    int
	M    int // 1-12, YearMonth and FullDate only
	D    int // 1-31, FullDate only
	EndY int // AcademicYear only
}

// String renders the canonical form: YYYY, YYYY-MM, YYYY-MM-DD or YYYY-YYYY.
func (d CanonicalDate) String() string {
	switch d.Kind {
	case Year:
		return fmt.Sprintf("%04d", d.Y)
	case YearMonth:
		return fmt.Sprintf("%04d-%02d", d.Y, d.M)
	case FullDate:
		return fmt.Sprintf("%04d-%02d-%02d", d.Y, d.M, d.D)
	case AcademicYear:
		return fmt.Sprintf("%04d-%04d", d.Y, d.EndY)
	}
	return ""
}

// Format identifies one of the date format families declared by source
// mappings.
type Format int

const (
	FormatYear Format = iota + 1
	FormatAcademicYear
	FormatDayMonthYear // "16 Mar 23"
	FormatISODate      // "2023-03-16"
	FormatISOYearMonth // "2023-03"
	FormatMonthName    // "2019 Mar"
	FormatQuarter      // "2019 Q1"
)

var formatNames = map[Format]string{
	FormatYear:         "year",
	FormatAcademicYear: "academic_year",
	FormatDayMonthYear: "day_month_year",
	FormatISODate:      "iso_date",
	FormatISOYearMonth: "iso_year_month",
	FormatMonthName:    "month_name",
	FormatQuarter:      "quarter",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "unknown"
}

// ParseFormat resolves a format family by its configuration name.
func ParseFormat(name string) (Format, error) {
	for f, s := range formatNames {
		if s == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown date format %q", name)
}

var quarterMonth = map[string]int{
	"Q1": 1, "Q2": 4, "Q3": 7, "Q4": 10,
}

var monthNameLayouts = []string{
	"2006 Jan", "Jan 2006", "2006 January", "January 2006",
}

// Normalise parses raw against the declared formats in priority order and
// returns the first successful canonical date. All parse problems collapse
// into a single error; callers treat it as "skip this row's date".
func Normalise(raw string, formats []Format) (CanonicalDate, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CanonicalDate{}, fmt.Errorf("empty date value")
	}
	for _, f := range formats {
		if d, err := normaliseOne(raw, f); err == nil {
			return d, nil
		}
	}
	return CanonicalDate{}, fmt.Errorf("date %q does not match any declared format", raw)
}

func normaliseOne(raw string, f Format) (CanonicalDate, error) {
	switch f {
	case FormatYear:
		// Numeric exports often carry a trailing ".0"; coerce through float.
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return CanonicalDate{}, fmt.Errorf("not a year: %q", raw)
		}
		return CanonicalDate{Kind: Year, Y: int(v)}, nil

	case FormatAcademicYear:
		// "2019-20 [note x]" -> start year only; granularity is deliberately
		// year for this format family.
		if len(raw) < 4 {
			return CanonicalDate{}, fmt.Errorf("not an academic year: %q", raw)
		}
		y, err := strconv.Atoi(raw[:4])
		if err != nil {
			return CanonicalDate{}, fmt.Errorf("not an academic year: %q", raw)
		}
		return CanonicalDate{Kind: Year, Y: y}, nil

	case FormatDayMonthYear:
		t, err := time.Parse("2 Jan 06", raw)
		if err != nil {
			return CanonicalDate{}, err
		}
		return CanonicalDate{Kind: FullDate, Y: t.Year(), M: int(t.Month()), D: t.Day()}, nil

	case FormatISODate:
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return CanonicalDate{}, err
		}
		return CanonicalDate{Kind: FullDate, Y: t.Year(), M: int(t.Month()), D: t.Day()}, nil

	case FormatISOYearMonth:
		t, err := time.Parse("2006-01", raw)
		if err != nil {
			return CanonicalDate{}, err
		}
		return CanonicalDate{Kind: YearMonth, Y: t.Year(), M: int(t.Month())}, nil

	case FormatMonthName:
		for _, layout := range monthNameLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return CanonicalDate{Kind: YearMonth, Y: t.Year(), M: int(t.Month())}, nil
			}
		}
		return CanonicalDate{}, fmt.Errorf("no month name in %q", raw)

	case FormatQuarter:
		parts := strings.Fields(raw)
		if len(parts) != 2 {
			return CanonicalDate{}, fmt.Errorf("not a quarter date: %q", raw)
		}
		y, err := strconv.Atoi(parts[0])
		if err != nil {
			return CanonicalDate{}, fmt.Errorf("not a quarter date: %q", raw)
		}
		m, ok := quarterMonth[strings.ToUpper(parts[1])]
		if !ok {
			return CanonicalDate{}, fmt.Errorf("unknown quarter %q", parts[1])
		}
		return CanonicalDate{Kind: YearMonth, Y: y, M: m}, nil
	}
	return CanonicalDate{}, fmt.Errorf("unknown date format %d", int(f))
}
