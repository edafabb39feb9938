// Package locations canonicalises location names against a reference list
// of valid local-authority names.
package locations

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Clean strips a single trailing " ua" (urban area) suffix. The check is
// case-sensitive, matching the form used by the source datasets.
func Clean(name string) string {
	return strings.TrimSuffix(name, " ua")
}

// Validator matches candidate names against a fixed reference list.
type Validator struct {
	names []string
	lower []string
}

// NewValidator builds a validator from a reference list. List order matters:
// when more than one reference entry matches a candidate, the first one in
// the list wins.
func NewValidator(names []string) (*Validator, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("locations: empty reference list")
	}
	v := &Validator{
		names: append([]string(nil), names...),
		lower: make([]string, len(names)),
	}
	for i, n := range names {
		v.lower[i] = strings.ToLower(n)
	}
	return v, nil
}

// Load reads the reference list from a YAML file of the form
// "locations: [name, ...]".
func Load(path string) (*Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("locations: read %q: %w", path, err)
	}
	var doc struct {
		Locations []string `yaml:"locations"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("locations: parse %q: %w", path, err)
	}
	return NewValidator(doc.Locations)
}

// Validate returns the canonical reference entry for a candidate name. The
// match is a case-insensitive substring test, loose enough to tolerate
// punctuation and abbreviation drift in the source data.
func (v *Validator) Validate(name string) (string, bool) {
	cand := strings.ToLower(name)
	for i, ref := range v.lower {
		if strings.Contains(cand, ref) {
			return v.names[i], true
		}
	}
	return "", false
}

// Len reports the number of reference entries.
func (v *Validator) Len() int { return len(v.names) }
