package sensory

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText performs Unicode normalization, trims whitespace and drops
// control characters. Applied to every comment before acronym expansion.
func NormalizeText(text string) string {
	normed := norm.NFKC.String(text)
	normed = strings.TrimSpace(normed)
	normed = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
	return normed
}

// AcronymRule rewrites one whole-word abbreviation to its lowercase
// full phrase. Rules are applied in list order; expansions are plain
// natural-language words, so later rules never re-match earlier output.
type AcronymRule struct {
	Abbrev    string `yaml:"abbrev"`
	Expansion string `yaml:"expansion"`
}

type compiledAcronym struct {
	re        *regexp.Regexp
	expansion string
}

// Normalizer expands domain acronyms in comment text.
type Normalizer struct {
	rules []compiledAcronym
}

// Acronym keys may carry digits or slashes ("T90", "O/G"); QuoteMeta keeps
// them literal while \b anchors both ends so "IPA" never matches inside
// "IPAD".
func compileAcronym(rule AcronymRule) compiledAcronym {
	pattern := `(?i)\b` + regexp.QuoteMeta(rule.Abbrev) + `\b`
	return compiledAcronym{
		re:        regexp.MustCompile(pattern),
		expansion: strings.ToLower(rule.Expansion),
	}
}

// Secondary rules applied after the primary map: the pluralized acronym
// "IPAs" (the trailing s defeats the word-boundary match on "IPA") and the
// panel shorthand "OHAI" for the allium note.
var (
	ipaPluralRe = regexp.MustCompile(`(?i)\bipas\b`)
	ohaiRe      = regexp.MustCompile(`(?i)\bohai\b`)
)

// NewNormalizer compiles the given rules. Pass DefaultAcronyms() for the
// curated map used in the study.
func NewNormalizer(rules []AcronymRule) *Normalizer {
	compiled := make([]compiledAcronym, 0, len(rules))
	for _, rule := range rules {
		if strings.TrimSpace(rule.Abbrev) == "" {
			continue
		}
		compiled = append(compiled, compileAcronym(rule))
	}
	return &Normalizer{rules: compiled}
}

// Expand rewrites every whole-word occurrence of a mapped abbreviation in
// text. Empty text passes through unchanged. Expansion is idempotent:
// running it twice yields the same output as once.
func (n *Normalizer) Expand(text string) string {
	if text == "" {
		return ""
	}
	for _, rule := range n.rules {
		text = rule.re.ReplaceAllString(text, rule.expansion)
	}
	text = ipaPluralRe.ReplaceAllString(text, "india pale ales")
	text = ohaiRe.ReplaceAllString(text, "onion garlic")
	return text
}

// NormalizeRecords rewrites the Text field of every record in place:
// Unicode cleanup first, then acronym expansion. All other fields are
// left untouched.
func (n *Normalizer) NormalizeRecords(records []Record) {
	for i := range records {
		if records[i].Text == "" {
			continue
		}
		records[i].Text = n.Expand(NormalizeText(records[i].Text))
	}
}
