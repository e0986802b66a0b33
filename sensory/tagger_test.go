package sensory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleTaggerTags(t *testing.T) {
	tagger := NewRuleTagger()
	tokens, err := tagger.Tag("slightly dank, very fruity aroma")
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	byText := make(map[string]TaggedToken, len(tokens))
	for _, tok := range tokens {
		byText[tok.Text] = tok
	}
	assert.Equal(t, "ADV", byText["slightly"].POS)
	assert.Equal(t, "advmod", byText["slightly"].Dep)
	assert.Equal(t, "ADJ", byText["dank"].POS)
	assert.Equal(t, "amod", byText["dank"].Dep)
	assert.Equal(t, "ADV", byText["very"].POS)
	assert.Equal(t, "ADJ", byText["fruity"].POS)
	assert.Equal(t, "NOUN", byText["aroma"].POS)
}

func TestRuleTaggerEmpty(t *testing.T) {
	tagger := NewRuleTagger()
	tokens, err := tagger.Tag("")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestExtractModifiers(t *testing.T) {
	tokens := []TaggedToken{
		{Text: "slightly", POS: "ADV", Lemma: "slightly"},
		{Text: "dank", POS: "ADJ", Lemma: "dank"},
		{Text: "aroma", POS: "NOUN", Lemma: "aroma"},
	}
	mods := ExtractModifiers(tokens)
	require.Len(t, mods, 2)
	assert.Equal(t, "slightly", mods[0].Text)
	assert.Equal(t, "dank", mods[1].Text)
}

func TestCountModifiers(t *testing.T) {
	tagger := NewRuleTagger()
	records := []Record{
		{Sample: SampleDriedHops, Text: "dank and sweet"},
		{Sample: SampleDriedHops, Text: "very dank finish"},
		{Sample: SampleDriedHops, Text: ""},
	}
	table, err := CountModifiers(tagger, records)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Count("dank"))
	assert.Equal(t, 1, table.Count("sweet"))
	assert.Equal(t, 1, table.Count("very"))

	top := table.Top(1)
	require.Len(t, top, 1)
	assert.Equal(t, "dank", top[0].Gram)
}

func TestNewTaggerBackends(t *testing.T) {
	tagger, err := NewTagger(TaggerConfig{Backend: "rules"})
	require.NoError(t, err)
	assert.IsType(t, &RuleTagger{}, tagger)

	_, err = NewTagger(TaggerConfig{Backend: "nope"})
	require.Error(t, err)

	// The onnx backend refuses to start without model files.
	_, err = NewTagger(TaggerConfig{Backend: "onnx"})
	require.Error(t, err)
}
