package sensory

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultAcronyms returns the curated abbreviation map discovered in the
// tasting sheets. Order matters: rules are applied first to last.
func DefaultAcronyms() []AcronymRule {
	return []AcronymRule{
		{Abbrev: "IPA", Expansion: "india pale ale"},
		{Abbrev: "GO", Expansion: "onion garlic"},
		{Abbrev: "OG", Expansion: "onion garlic"},
		{Abbrev: "O/G", Expansion: "onion garlic"},
		{Abbrev: "DH", Expansion: "dry hop"},
		{Abbrev: "AA", Expansion: "alpha acid"},
		{Abbrev: "ABV", Expansion: "alcohol by volume"},
		{Abbrev: "CO2", Expansion: "carbon dioxide"},
		{Abbrev: "T90", Expansion: "type ninety pellet"},
		{Abbrev: "CTZ", Expansion: "columbus tomahawk zeus"},
		{Abbrev: "PNW", Expansion: "pacific northwest"},
		{Abbrev: "NZ", Expansion: "new zealand"},
	}
}

// LoadAcronymsFile reads an ordered acronym rule list from a YAML file.
func LoadAcronymsFile(path string) ([]AcronymRule, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open acronym file: %w", err)
	}
	var rules []AcronymRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("decode acronym file: %w", err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("no acronym rules found in %s", filepath.Clean(path))
	}
	return rules, nil
}
