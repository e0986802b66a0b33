package sensory

import "strings"

// irregularLemmas maps irregular surface forms straight to their base form.
var irregularLemmas = map[string]string{
	"men":      "man",
	"women":    "woman",
	"feet":     "foot",
	"teeth":    "tooth",
	"geese":    "goose",
	"mice":     "mouse",
	"children": "child",
	"people":   "person",
	"leaves":   "leaf",
	"lives":    "life",
	"knives":   "knife",
	"loaves":   "loaf",
	"halves":   "half",
	"wolves":   "wolf",
}

// suffixRules reduce regular plurals. Applied in order; the first matching
// rule wins. minLen guards short words like "gas" and "yes".
var suffixRules = []struct {
	suffix      string
	replacement string
	minLen      int
}{
	{"sses", "ss", 5},
	{"ches", "ch", 5},
	{"shes", "sh", 5},
	{"xes", "x", 4},
	{"zes", "z", 6},
	{"oes", "o", 4},
	{"ies", "y", 5},
	{"s", "", 4},
}

// Lemmatize reduces token to its dictionary base form. The rules are
// noun-oriented and deliberately conservative: words ending in "ss", "us"
// or "is" ("glass", "citrus", "basis") are left alone.
func Lemmatize(token string) string {
	if lemma, ok := irregularLemmas[token]; ok {
		return lemma
	}
	if strings.HasSuffix(token, "ss") ||
		strings.HasSuffix(token, "us") ||
		strings.HasSuffix(token, "is") {
		return token
	}
	for _, rule := range suffixRules {
		if len(token) >= rule.minLen && strings.HasSuffix(token, rule.suffix) {
			return token[:len(token)-len(rule.suffix)] + rule.replacement
		}
	}
	return token
}
