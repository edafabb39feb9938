package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/housegraph/housegraph/dates"
	"github.com/housegraph/housegraph/vocab"
)

const registryYAML = `
sources:
  - name: sales
    class: "prop:Property"
    uri_template: "http://example.org/property#Property/{id}"
    natural_key: id
    date_field: sold
    date_formats: [iso_date]
    location_field: town
    fields:
      id:
        property: "prop:transactionId"
      sold:
        property: "time:date"
        datatype: dateTime
      price:
        property: "prop:price"
        datatype: xsd:integer
      kind:
        property: "prop:propertyType"
        valid_values: [d, s]
        value_map: {d: detached, s: semi-detached}
      town:
        property: "prop:hasLocation"
        relation: true
        class: "loc:Location"
`

func writeRegistry(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	reg, err := LoadFile(writeRegistry(t, registryYAML))
	require.NoError(t, err)

	src, err := reg.Source("sales")
	require.NoError(t, err)
	require.Equal(t, ParseIRI(vocab.Property), src.Class)
	require.Equal(t, "id", src.NaturalKey)
	require.Equal(t, "sold", src.DateField)
	require.Equal(t, []DateFormat{dates.FormatISODate}, src.DateFormats)
	require.Equal(t, "town", src.LocationField)

	require.Equal(t, XSDDateTime, src.Fields["sold"].Datatype)
	require.Equal(t, XSDInteger, src.Fields["price"].Datatype)
	require.Equal(t, XSDString, src.Fields["id"].Datatype)

	kind := src.Fields["kind"]
	require.Equal(t, "detached", kind.ValueMap["d"])
	require.False(t, kind.Allows("x"))

	town := src.Fields["town"]
	require.True(t, town.IsRelation)
	require.Equal(t, ParseIRI(vocab.Location), town.RelationClass)
}

func TestLoadFileRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no sources", "sources: []\n"},
		{"not yaml", "{{{"},
		{"unknown date format", `
sources:
  - name: s
    class: "prop:Property"
    uri_template: "x/{id}"
    date_field: d
    date_formats: [whenever]
    fields:
      d: {property: "time:date"}
`},
		{"unknown datatype", `
sources:
  - name: s
    class: "prop:Property"
    uri_template: "x/{id}"
    fields:
      v: {property: "prop:price", datatype: quaternion}
`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadFile(writeRegistry(t, c.body))
			require.Error(t, err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
