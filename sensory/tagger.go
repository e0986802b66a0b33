package sensory

import (
	"strings"
)

// Tagger is the narrow surface required from a part-of-speech backend:
// per token it must expose the surface form, a coarse POS tag, a lemma and
// a syntactic dependency label.
type Tagger interface {
	Tag(text string) ([]TaggedToken, error)
	Close() error
}

// DefaultPOSLabels returns the Universal Dependencies coarse tagset in the
// index order used by token-classification models.
func DefaultPOSLabels() []string {
	return []string{
		"ADJ", "ADP", "ADV", "AUX", "CCONJ", "DET", "INTJ", "NOUN",
		"NUM", "PART", "PRON", "PROPN", "PUNCT", "SCONJ", "SYM",
		"VERB", "X",
	}
}

// sensoryAdjectives covers descriptor vocabulary the suffix heuristics
// miss. Tasting comments lean heavily on these.
var sensoryAdjectives = map[string]struct{}{
	"dank": {}, "bitter": {}, "sweet": {}, "sour": {}, "tart": {},
	"crisp": {}, "clean": {}, "smooth": {}, "harsh": {}, "sharp": {},
	"bright": {}, "dull": {}, "fresh": {}, "stale": {}, "ripe": {},
	"green": {}, "dark": {}, "light": {}, "strong": {}, "mild": {},
	"subtle": {}, "intense": {}, "pleasant": {}, "unpleasant": {},
	"complex": {}, "balanced": {}, "soft": {}, "round": {}, "dry": {},
	"sticky": {}, "pungent": {}, "faint": {}, "big": {}, "bold": {},
	"good": {}, "nice": {}, "great": {}, "classic": {}, "tropical": {},
}

var adjectiveSuffixes = []string{"y", "ous", "ful", "ish", "ic", "al"}

var closedClassTags = map[string]string{
	"the": "DET", "a": "DET", "an": "DET", "this": "DET", "that": "DET",
	"and": "CCONJ", "or": "CCONJ", "but": "CCONJ",
	"in": "ADP", "on": "ADP", "of": "ADP", "with": "ADP", "at": "ADP",
	"to": "ADP", "from": "ADP", "for": "ADP",
	"is": "AUX", "are": "AUX", "was": "AUX", "were": "AUX", "be": "AUX",
	"it": "PRON", "i": "PRON", "you": "PRON", "we": "PRON", "they": "PRON",
	"not": "PART", "no": "PART",
	"very": "ADV", "never": "ADV", "really": "ADV", "quite": "ADV",
	"too": "ADV", "more": "ADV", "most": "ADV", "slightly": "ADV",
}

// RuleTagger is the built-in deterministic backend: a small lexicon plus
// suffix heuristics. It needs no model files, which keeps the counting and
// extraction logic testable offline.
type RuleTagger struct{}

// NewRuleTagger constructs the built-in tagger.
func NewRuleTagger() *RuleTagger {
	return &RuleTagger{}
}

// Close implements Tagger; the rule backend holds no resources.
func (t *RuleTagger) Close() error { return nil }

// Tag splits text into surface words and assigns each a coarse POS tag,
// lemma and dependency label.
func (t *RuleTagger) Tag(text string) ([]TaggedToken, error) {
	words := strings.Fields(rePunct.ReplaceAllString(strings.ToLower(text), " "))
	out := make([]TaggedToken, 0, len(words))
	for _, word := range words {
		pos := classifyWord(word)
		out = append(out, TaggedToken{
			Text:  word,
			POS:   pos,
			Lemma: Lemmatize(word),
			Dep:   depForPOS(pos),
		})
	}
	return out, nil
}

func classifyWord(word string) string {
	if tag, ok := closedClassTags[word]; ok {
		return tag
	}
	if _, ok := sensoryAdjectives[word]; ok {
		return "ADJ"
	}
	if strings.HasSuffix(word, "ly") && len(word) > 3 {
		return "ADV"
	}
	for _, suffix := range adjectiveSuffixes {
		if strings.HasSuffix(word, suffix) && len(word) > len(suffix)+2 {
			return "ADJ"
		}
	}
	if strings.ContainsAny(word, "0123456789") {
		return "NUM"
	}
	return "NOUN"
}

func depForPOS(pos string) string {
	switch pos {
	case "ADJ":
		return "amod"
	case "ADV":
		return "advmod"
	case "DET":
		return "det"
	case "ADP":
		return "case"
	case "PART":
		return "advmod"
	default:
		return "dep"
	}
}

// ExtractModifiers keeps only tokens tagged adjective or adverb, in text
// order, for illustrative output.
func ExtractModifiers(tokens []TaggedToken) []TaggedToken {
	var out []TaggedToken
	for _, tok := range tokens {
		if tok.POS == "ADJ" || tok.POS == "ADV" {
			out = append(out, tok)
		}
	}
	return out
}

// CountModifiers tags every record and tallies adjective/adverb lemmas in a
// ranked frequency table, built the same way as the n-gram counts.
func CountModifiers(tagger Tagger, records []Record) (*FreqTable, error) {
	table := NewFreqTable()
	for _, rec := range records {
		if rec.Text == "" {
			continue
		}
		tokens, err := tagger.Tag(rec.Text)
		if err != nil {
			return nil, err
		}
		for _, tok := range ExtractModifiers(tokens) {
			table.Add(tok.Lemma)
		}
	}
	return table, nil
}
