package transform

import (
	"fmt"
	"strings"
	"testing"
)

func TestCappedSet(t *testing.T) {
	s := newCappedSet(3)
	for _, v := range []string{"a", "b", "a", "c", "d"} {
		s.Add(v)
	}
	if s.Total() != 4 {
		t.Fatalf("Total() = %d, want 4 distinct values", s.Total())
	}
	if got := s.Sample(); len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("Sample() = %v", got)
	}
}

func TestCappedList(t *testing.T) {
	l := newCappedList(2)
	for i := 0; i < 5; i++ {
		l.Add(fmt.Sprintf("err %d", i))
	}
	if l.Total() != 5 {
		t.Fatalf("Total() = %d, want 5", l.Total())
	}
	if got := l.Sample(); len(got) != 2 || got[0] != "err 0" {
		t.Fatalf("Sample() = %v", got)
	}
}

func TestRunSummaryString(t *testing.T) {
	sum := NewRunSummary("price_paid")
	sum.TotalRows = 10
	sum.MappedRows = 7
	sum.SkippedDates.Add("1066")
	sum.InvalidLocations.Add("Atlantis")
	sum.Errors.Add(`invalid value "x" for field "tenure"`)

	out := sum.String()
	for _, want := range []string{
		"Summary for price_paid:",
		"Total rows processed: 10",
		"Rows successfully mapped: 7",
		"Rows skipped due to invalid dates: 1",
		"Rows filtered due to invalid locations: 1",
		"Errors encountered: 1",
		"1066",
		"Atlantis",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestRunSummaryStringOmitsEmptySections(t *testing.T) {
	sum := NewRunSummary("boe_rate")
	sum.TotalRows = 3
	sum.MappedRows = 3
	out := sum.String()
	if strings.Contains(out, "skipped") || strings.Contains(out, "Errors") {
		t.Fatalf("clean run reports failure sections:\n%s", out)
	}
}
