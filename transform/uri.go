package transform

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/housegraph/housegraph/tabular"
)

// SanitizeIRI makes a free-text value safe for use as a URI path segment.
// Every rune outside [0-9A-Za-z_-] becomes an underscore, one for one, and
// a leading digit is escaped with an underscore prefix.
func SanitizeIRI(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 1)
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out != "" && out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// idFunc produces a synthetic identifier for a row, scoped by a prefix
// derived from the target class name.
type idFunc func(row tabular.Row, prefix string) string

// randomID generates a fresh identifier per call. Reprocessing the same
// input therefore yields different URIs for non-keyed sources.
func randomID(_ tabular.Row, prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// contentID derives the identifier from the row content, so reprocessing
// unchanged input reproduces the same URIs.
func contentID(row tabular.Row, prefix string) string {
	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	h := sha1.New()
	for _, col := range cols {
		h.Write([]byte(col))
		h.Write([]byte{0})
		h.Write([]byte(row[col]))
		h.Write([]byte{0})
	}
	return prefix + "_" + hex.EncodeToString(h.Sum(nil))
}
