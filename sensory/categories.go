package sensory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// DefaultCategories returns the hand-curated descriptor categories used in
// the study. The generic "fruit" group deliberately overlaps the specific
// fruit families: membership is non-exclusive tagging, not a partition.
func DefaultCategories() []Category {
	return []Category{
		{Label: "tropical fruit", Patterns: []string{
			"tropical", "mango", "pineapple", "papaya", "guava",
			"passionfruit", "passion fruit", "coconut", "lychee",
		}},
		{Label: "citrus", Patterns: []string{
			"citrus", "citrusy", "lemon", "lime", "orange", "grapefruit",
			"tangerine", "zest", "zesty",
		}},
		{Label: "stone fruit", Patterns: []string{
			"stone fruit", "peach", "apricot", "nectarine", "plum", "cherry",
		}},
		{Label: "melon", Patterns: []string{
			"melon", "cantaloupe", "honeydew", "watermelon",
		}},
		{Label: "berries", Patterns: []string{
			"berry", "berries", "strawberry", "raspberry", "blueberry",
			"blackberry", "currant",
		}},
		{Label: "fruit", Patterns: []string{
			"fruit", "fruity", "fruits", "fruited",
		}},
		{Label: "onion garlic", Patterns: []string{
			"onion", "garlic", "allium", "chive", "scallion",
		}},
		{Label: "dank", Patterns: []string{
			"dank", "resin", "resinous", "sticky", "cannabis", "marijuana", "weed",
		}},
		{Label: "herbal grassy", Patterns: []string{
			"herbal", "herb", "grassy", "grass", "hay", "tea", "sage", "mint", "minty",
		}},
		{Label: "floral", Patterns: []string{
			"floral", "flower", "flowery", "rose", "lavender", "geranium", "perfume",
		}},
		{Label: "pine", Patterns: []string{
			"pine", "piney", "spruce", "evergreen", "conifer",
		}},
		{Label: "spicy", Patterns: []string{
			"spice", "spicy", "pepper", "peppery", "clove", "cinnamon", "anise",
		}},
		{Label: "sweet aromatic", Patterns: []string{
			"sweet", "candy", "bubblegum", "honey", "caramel", "vanilla",
		}},
		{Label: "earthy woody", Patterns: []string{
			"earthy", "woody", "wood", "musty", "soil", "tobacco", "leather",
		}},
		{Label: "catty", Patterns: []string{
			"catty", "cat pee", "cat urine", "sweaty",
		}},
		{Label: "diesel", Patterns: []string{
			"diesel", "gasoline", "petrol", "fuel", "sulfur",
		}},
	}
}

// LoadCategoriesFile reads category definitions from a YAML file.
func LoadCategoriesFile(path string) ([]Category, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open category file: %w", err)
	}
	var cats []Category
	if err := yaml.Unmarshal(data, &cats); err != nil {
		return nil, fmt.Errorf("decode category file: %w", err)
	}
	if len(cats) == 0 {
		return nil, fmt.Errorf("no categories found in %s", filepath.Clean(path))
	}
	return cats, nil
}

// Matcher tallies per-comment category presence. Matching runs against the
// original surface text, not the lemmatized token stream, so that multi-word
// patterns like "stone fruit" hit contiguous phrasing.
type Matcher struct {
	categories []Category
	patterns   [][]string
}

// NewMatcher compiles the given category definitions. Pattern alternatives
// are lowercased once; empty ones are dropped.
func NewMatcher(categories []Category) *Matcher {
	m := &Matcher{
		categories: categories,
		patterns:   make([][]string, len(categories)),
	}
	for i, cat := range categories {
		alts := make([]string, 0, len(cat.Patterns))
		for _, p := range cat.Patterns {
			p = strings.ToLower(strings.TrimSpace(p))
			if p != "" {
				alts = append(alts, p)
			}
		}
		m.patterns[i] = alts
	}
	return m
}

// Categories returns the compiled definitions in order.
func (m *Matcher) Categories() []Category {
	return m.categories
}

// Match returns the labels of every category with at least one whole-word
// hit in text. A comment matches a category at most once no matter how many
// of its keywords occur.
func (m *Matcher) Match(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var labels []string
	for i, alts := range m.patterns {
		for _, alt := range alts {
			if containsAsWord(lower, alt) {
				labels = append(labels, m.categories[i].Label)
				break
			}
		}
	}
	return labels
}

// containsAsWord reports whether word occurs in text bounded by
// non-alphanumeric runes on both sides. word may be a multi-token phrase.
func containsAsWord(text, word string) bool {
	start := 0
	for start < len(text) {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return false
		}
		idx += start
		var before rune
		if idx > 0 {
			before, _ = utf8.DecodeLastRuneInString(text[:idx])
		}
		var after rune
		if end := idx + len(word); end < len(text) {
			after, _ = utf8.DecodeRuneInString(text[end:])
		}
		if !isAlphaNumRune(before) && !isAlphaNumRune(after) {
			return true
		}
		start = idx + len(word)
	}
	return false
}

func isAlphaNumRune(r rune) bool {
	if r == 0 || r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
