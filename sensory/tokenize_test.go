package sensory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "descriptor list",
			in:   "Dank, mango, bitter, citrus",
			want: []string{"dank", "mango", "bitter", "citrus"},
		},
		{
			name: "stopwords removed",
			in:   "it is a very clean hop with some fruit",
			want: []string{"very", "clean", "hop", "fruit"},
		},
		{
			name: "negation markers survive",
			in:   "not harsh, never sweaty",
			want: []string{"not", "harsh", "never", "sweaty"},
		},
		{
			name: "short tokens dropped",
			in:   "no go ok la",
			want: []string{},
		},
		{
			name: "digits stripped",
			in:   "100% tropical, 2nd best",
			want: []string{"tropical", "best"},
		},
		{
			name: "plurals lemmatized",
			in:   "berries and peaches, citrus notes",
			want: []string{"berry", "peach", "citrus", "note"},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "punctuation only",
			in:   "?!... ---",
			want: []string{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.in)
			if len(tc.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	in := "Sweet, dank and resinous; very tropical fruits!"
	first := Tokenize(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Tokenize(in))
	}
}

func TestTokenizeRecords(t *testing.T) {
	records := []Record{
		{Sample: SampleDriedHops, Text: "Dank, mango"},
		{Sample: SampleDriedHops, Text: ""},
		{Sample: SampleBeer, Text: "Good"},
	}
	seqs := TokenizeRecords(records)
	assert.Len(t, seqs, 3)
	assert.Equal(t, []string{"dank", "mango"}, seqs[0])
	assert.Empty(t, seqs[1])
	assert.Equal(t, []string{"good"}, seqs[2])
}

func TestLemmatize(t *testing.T) {
	cases := map[string]string{
		"hops":       "hop",
		"notes":      "note",
		"berries":    "berry",
		"peaches":    "peach",
		"boxes":      "box",
		"aromas":     "aroma",
		"citrus":     "citrus",
		"grass":      "grass",
		"basis":      "basis",
		"dank":       "dank",
		"bitterness": "bitterness",
		"leaves":     "leaf",
	}
	for in, want := range cases {
		assert.Equal(t, want, Lemmatize(in), "input %q", in)
	}
}
