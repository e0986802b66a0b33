package sensory

import (
	"regexp"
	"strings"
)

var (
	rePunct  = regexp.MustCompile(`[^\w\s]`)
	reDigits = regexp.MustCompile(`\d`)
)

// Tokenize turns one comment into a normalized token sequence: lowercase,
// punctuation and digits stripped, whitespace split, stopwords removed
// (negation/intensity markers excepted), tokens of length <= 2 dropped,
// survivors lemmatized. Deterministic; empty or all-punctuation input
// yields an empty sequence.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ToLower(text)
	text = rePunct.ReplaceAllString(text, "")
	text = reDigits.ReplaceAllString(text, "")
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if IsStopWord(field) {
			continue
		}
		if len(field) <= 2 {
			continue
		}
		tokens = append(tokens, Lemmatize(field))
	}
	return tokens
}

// TokenizeRecords tokenizes every record's text, keeping the 1:1 pairing
// with its source comment so n-gram windows never span two comments.
func TokenizeRecords(records []Record) [][]string {
	out := make([][]string, len(records))
	for i, rec := range records {
		out[i] = Tokenize(rec.Text)
	}
	return out
}
