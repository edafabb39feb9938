package dates

import "errors"

// ErrNoCommonYear is returned when no source produced a single parseable
// date, leaving the run without a temporal anchor.
var ErrNoCommonYear = errors.New("dates: no source yielded a parseable earliest year")

// MinYear tracks the earliest successfully normalised year over a stream of
// raw date values. Parse failures are ignored.
type MinYear struct {
	year int
	ok   bool
}

// Add normalises raw against formats and folds its year into the minimum.
func (m *MinYear) Add(raw string, formats []Format) {
	d, err := Normalise(raw, formats)
	if err != nil {
		return
	}
	if !m.ok || d.Y < m.year {
		m.year, m.ok = d.Y, true
	}
}

// Year reports the minimum observed year, if any value parsed.
func (m *MinYear) Year() (int, bool) { return m.year, m.ok }

// CommonEarliestYear returns the watermark year: the maximum over all
// sources' minimum observed years. Every retained date then falls in a range
// where all sources have data.
func CommonEarliestYear(minima []int) (int, error) {
	if len(minima) == 0 {
		return 0, ErrNoCommonYear
	}
	year := minima[0]
	for _, y := range minima[1:] {
		if y > year {
			year = y
		}
	}
	return year, nil
}
