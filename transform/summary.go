package transform

import (
	"fmt"
	"strings"
)

// DefaultSampleCap bounds the number of distinct samples a summary keeps
// per category; the totals keep counting past the cap.
const DefaultSampleCap = 100

// CappedSet records distinct string values, keeping at most cap samples.
type CappedSet struct {
	cap    int
	seen   map[string]struct{}
	sample []string
}

func newCappedSet(cap int) *CappedSet {
	return &CappedSet{cap: cap, seen: make(map[string]struct{})}
}

// Add records a value; duplicates are ignored.
func (s *CappedSet) Add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	if len(s.sample) < s.cap {
		s.sample = append(s.sample, v)
	}
}

// Total reports the number of distinct values recorded.
func (s *CappedSet) Total() int { return len(s.seen) }

// Sample returns the first values recorded, up to the cap.
func (s *CappedSet) Sample() []string { return s.sample }

// CappedList records messages in order, keeping at most cap of them.
type CappedList struct {
	cap   int
	items []string
	total int
}

func newCappedList(cap int) *CappedList { return &CappedList{cap: cap} }

// Add appends a message, dropping it once the cap is reached.
func (l *CappedList) Add(msg string) {
	l.total++
	if len(l.items) < l.cap {
		l.items = append(l.items, msg)
	}
}

// Total reports the number of messages recorded, including dropped ones.
func (l *CappedList) Total() int { return l.total }

// Sample returns the first messages recorded, up to the cap.
func (l *CappedList) Sample() []string { return l.items }

// RunSummary accumulates per-source statistics while a source is being
// transformed. It is observational only and never persisted.
type RunSummary struct {
	Source     string
	TotalRows  int
	MappedRows int
	// SkippedDates holds raw date strings that failed to normalise or fell
	// before the watermark year.
	SkippedDates *CappedSet
	// InvalidLocations holds location names dropped before mapping.
	InvalidLocations *CappedSet
	// Errors holds row-level validation failures.
	Errors *CappedList
}

// NewRunSummary returns an empty summary for one source.
func NewRunSummary(source string) *RunSummary {
	return &RunSummary{
		Source:           source,
		SkippedDates:     newCappedSet(DefaultSampleCap),
		InvalidLocations: newCappedSet(DefaultSampleCap),
		Errors:           newCappedList(DefaultSampleCap),
	}
}

const sampleShown = 5

func appendSamples(b *strings.Builder, label string, total int, sample []string) {
	if total == 0 {
		return
	}
	fmt.Fprintf(b, "%s: %d\n", label, total)
	if len(sample) > sampleShown {
		sample = sample[:sampleShown]
	}
	fmt.Fprintf(b, "  sample: %s\n", strings.Join(sample, "; "))
}

// String renders the end-of-run report for one source.
func (s *RunSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Summary for %s:\n", s.Source)
	fmt.Fprintf(&b, "Total rows processed: %d\n", s.TotalRows)
	fmt.Fprintf(&b, "Rows successfully mapped: %d\n", s.MappedRows)
	appendSamples(&b, "Rows skipped due to invalid dates", s.SkippedDates.Total(), s.SkippedDates.Sample())
	appendSamples(&b, "Rows filtered due to invalid locations", s.InvalidLocations.Total(), s.InvalidLocations.Sample())
	appendSamples(&b, "Errors encountered", s.Errors.Total(), s.Errors.Sample())
	return strings.TrimRight(b.String(), "\n")
}
