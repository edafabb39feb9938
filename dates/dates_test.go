package dates

import (
	"testing"
)

func TestNormalise(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		formats []Format
		want    CanonicalDate
		fail    bool
	}{
		{
			name: "iso date", raw: "2023-03-16", formats: []Format{FormatISODate},
			want: CanonicalDate{Kind: FullDate, Y: 2023, M: 3, D: 16},
		},
		{
			name: "day month year", raw: "16 Mar 23", formats: []Format{FormatDayMonthYear},
			want: CanonicalDate{Kind: FullDate, Y: 2023, M: 3, D: 16},
		},
		{
			name: "iso year month", raw: "2023-03", formats: []Format{FormatISOYearMonth},
			want: CanonicalDate{Kind: YearMonth, Y: 2023, M: 3},
		},
		{
			name: "plain year", raw: "2021", formats: []Format{FormatYear},
			want: CanonicalDate{Kind: Year, Y: 2021},
		},
		{
			name: "year with float artifact", raw: "2021.0", formats: []Format{FormatYear},
			want: CanonicalDate{Kind: Year, Y: 2021},
		},
		{
			name: "academic year keeps start year", raw: "2019-20", formats: []Format{FormatAcademicYear},
			want: CanonicalDate{Kind: Year, Y: 2019},
		},
		{
			name: "academic year with note", raw: "2019-20 provisional", formats: []Format{FormatAcademicYear},
			want: CanonicalDate{Kind: Year, Y: 2019},
		},
		{
			name: "month name year first", raw: "2019 Mar", formats: []Format{FormatMonthName},
			want: CanonicalDate{Kind: YearMonth, Y: 2019, M: 3},
		},
		{
			name: "month name year last", raw: "March 2019", formats: []Format{FormatMonthName},
			want: CanonicalDate{Kind: YearMonth, Y: 2019, M: 3},
		},
		{
			name: "quarter", raw: "2019 Q3", formats: []Format{FormatQuarter},
			want: CanonicalDate{Kind: YearMonth, Y: 2019, M: 7},
		},
		{
			name: "quarter lower case", raw: "2019 q4", formats: []Format{FormatQuarter},
			want: CanonicalDate{Kind: YearMonth, Y: 2019, M: 10},
		},
		{
			name: "declared order wins", raw: "2019",
			formats: []Format{FormatYear, FormatMonthName, FormatQuarter},
			want:    CanonicalDate{Kind: Year, Y: 2019},
		},
		{
			name: "fallthrough to later format", raw: "2019 Q1",
			formats: []Format{FormatYear, FormatMonthName, FormatQuarter},
			want:    CanonicalDate{Kind: YearMonth, Y: 2019, M: 1},
		},
		{name: "garbage", raw: "notadate", formats: []Format{FormatISODate, FormatYear}, fail: true},
		{name: "empty", raw: "", formats: []Format{FormatYear}, fail: true},
		{name: "whitespace only", raw: "   ", formats: []Format{FormatYear}, fail: true},
		{name: "nan is not a year", raw: "NaN", formats: []Format{FormatYear}, fail: true},
		{name: "bad quarter", raw: "2019 Q5", formats: []Format{FormatQuarter}, fail: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Normalise(c.raw, c.formats)
			if c.fail {
				if err == nil {
					t.Fatalf("Normalise(%q) = %v, expected error", c.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalise(%q): %v", c.raw, err)
			}
			if got != c.want {
				t.Fatalf("Normalise(%q) = %+v, want %+v", c.raw, got, c.want)
			}
		})
	}
}

func TestCanonicalString(t *testing.T) {
	cases := []struct {
		d    CanonicalDate
		want string
	}{
		{CanonicalDate{Kind: Year, Y: 2021}, "2021"},
		{CanonicalDate{Kind: Year, Y: 987}, "0987"},
		{CanonicalDate{Kind: YearMonth, Y: 2019, M: 7}, "2019-07"},
		{CanonicalDate{Kind: FullDate, Y: 2023, M: 3, D: 6}, "2023-03-06"},
		{CanonicalDate{Kind: AcademicYear, Y: 2019, EndY: 2020}, "2019-2020"},
	}
	for _, c := range cases {
		if got := c.d.String(); got != c.want {
			t.Errorf("(%+v).String() = %q, want %q", c.d, got, c.want)
		}
	}
}

// The canonical rendering of a calendar date must itself parse back to the
// same value, so graphs can be rebuilt from serialised dates.
func TestCanonicalRoundTrip(t *testing.T) {
	d, err := Normalise("2 Jan 06", []Format{FormatDayMonthYear})
	if err != nil {
		t.Fatal(err)
	}
	again, err := Normalise(d.String(), []Format{FormatISODate})
	if err != nil {
		t.Fatal(err)
	}
	if d != again {
		t.Fatalf("round trip changed value: %+v -> %+v", d, again)
	}
}

func TestParseFormat(t *testing.T) {
	for f, name := range formatNames {
		got, err := ParseFormat(name)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", name, err)
		}
		if got != f {
			t.Fatalf("ParseFormat(%q) = %v, want %v", name, got, f)
		}
	}
	if _, err := ParseFormat("2006-01-02"); err == nil {
		t.Fatal("expected error for a layout string passed as a format name")
	}
}

func TestMinYear(t *testing.T) {
	var m MinYear
	if _, ok := m.Year(); ok {
		t.Fatal("fresh MinYear reports a year")
	}
	m.Add("2010", []Format{FormatYear})
	m.Add("bogus", []Format{FormatYear})
	m.Add("2005", []Format{FormatYear})
	m.Add("2012", []Format{FormatYear})
	y, ok := m.Year()
	if !ok || y != 2005 {
		t.Fatalf("Year() = %d, %v, want 2005, true", y, ok)
	}
}

func TestCommonEarliestYear(t *testing.T) {
	y, err := CommonEarliestYear([]int{2005, 2010, 1995})
	if err != nil {
		t.Fatal(err)
	}
	if y != 2010 {
		t.Fatalf("watermark = %d, want 2010", y)
	}

	if _, err := CommonEarliestYear(nil); err != ErrNoCommonYear {
		t.Fatalf("expected ErrNoCommonYear, got %v", err)
	}
}
