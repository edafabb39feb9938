package locations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	cases := []struct{ in, want string }{
		{"bristol ua", "bristol"},
		{"bristol", "bristol"},
		{"bristol uatown", "bristol uatown"},
		{"Bristol UA", "Bristol UA"},
	}
	for _, c := range cases {
		if got := Clean(c.in); got != c.want {
			t.Errorf("Clean(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidate(t *testing.T) {
	v, err := NewValidator([]string{"York", "Leeds", "City of London"})
	require.NoError(t, err)

	canon, ok := v.Validate("leeds")
	require.True(t, ok)
	require.Equal(t, "Leeds", canon)

	// Substring matching tolerates extra qualifiers in the candidate.
	canon, ok = v.Validate("city of london, greater london")
	require.True(t, ok)
	require.Equal(t, "City of London", canon)

	// The first reference entry in list order wins.
	canon, ok = v.Validate("New York")
	require.True(t, ok)
	require.Equal(t, "York", canon)

	_, ok = v.Validate("Atlantis")
	require.False(t, ok)
}

func TestNewValidatorEmpty(t *testing.T) {
	_, err := NewValidator(nil)
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.yaml")
	data := "locations:\n  - Bristol\n  - Leeds\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	v, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, v.Len())

	canon, ok := v.Validate(Clean("bristol ua"))
	require.True(t, ok)
	require.Equal(t, "Bristol", canon)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
