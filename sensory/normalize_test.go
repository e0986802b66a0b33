package sensory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandAcronyms(t *testing.T) {
	n := NewNormalizer(DefaultAcronyms())

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"whole word", "classic IPA", "classic india pale ale"},
		{"no partial match", "IPAD light show", "IPAD light show"},
		{"lowercase key", "nice ipa finish", "nice india pale ale finish"},
		{"garlic onion shorthand", "GO in this one", "onion garlic in this one"},
		{"slash key", "slight O/G note", "slight onion garlic note"},
		{"digit key", "T90 pellets", "type ninety pellet pellets"},
		{"plural acronym", "one of the better IPAs", "one of the better india pale ales"},
		{"panel shorthand", "strong OHAI here", "strong onion garlic here"},
		{"unknown acronym untouched", "very ABC forward", "very ABC forward"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, n.Expand(tc.in))
		})
	}
}

func TestExpandIdempotent(t *testing.T) {
	n := NewNormalizer(DefaultAcronyms())
	inputs := []string{
		"classic IPA with GO and OHAI notes",
		"O/G all over, T90 CO2 extract",
		"already expanded onion garlic india pale ale",
	}
	for _, in := range inputs {
		once := n.Expand(in)
		assert.Equal(t, once, n.Expand(once), "input %q", in)
	}
}

func TestNormalizeRecords(t *testing.T) {
	n := NewNormalizer(DefaultAcronyms())
	records := []Record{
		{Event: "Meeting 1", Sample: SampleDriedHops, Text: "Complex and clean"},
		{Event: "Meeting 1", Sample: SampleDriedHops, Text: "GO in this one"},
		{Event: "Meeting 2", Sample: SampleBeer, Text: "Good"},
		{Event: "Meeting 2", Sample: SampleBeer, Text: ""},
	}
	n.NormalizeRecords(records)

	require.Len(t, records, 4)
	assert.Equal(t, "Complex and clean", records[0].Text)
	assert.Equal(t, "onion garlic in this one", records[1].Text)
	assert.Equal(t, "Good", records[2].Text)
	assert.Equal(t, "", records[3].Text)
	// Provenance fields are never rewritten.
	assert.Equal(t, "Meeting 1", records[1].Event)
	assert.Equal(t, SampleDriedHops, records[1].Sample)
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "dank aroma", NormalizeText("  dank aroma  "))
	assert.Equal(t, "dank aroma", NormalizeText("dank\x00 aroma"))
	assert.Equal(t, "", NormalizeText("   "))
}
