package sensory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.TopK)
	assert.Equal(t, 2, cfg.MinTrigramCount)
	assert.Equal(t, "comments.json", cfg.ExportPath)
	assert.Equal(t, "rules", cfg.Tagger.Backend)
	assert.Equal(t, 512, cfg.Tagger.MaxSeqLen)
	assert.Equal(t, DefaultPOSLabels(), cfg.Tagger.Labels)
}

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	in := Config{
		TopK:            25,
		MinTrigramCount: 3,
		ExportPath:      "out/records.json",
		CategoriesPath:  "rules/categories.yaml",
		Tagger:          TaggerConfig{Backend: "rules"},
	}
	require.NoError(t, SaveConfig(path, in))

	out, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 25, out.TopK)
	assert.Equal(t, 3, out.MinTrigramCount)
	assert.Equal(t, "out/records.json", out.ExportPath)
	assert.Equal(t, "rules/categories.yaml", out.CategoriesPath)
}

func TestConfigClone(t *testing.T) {
	cfg := Config{TopK: 5, Tagger: TaggerConfig{Labels: []string{"ADJ"}}}
	clone := cfg.Clone()
	clone.Tagger.Labels[0] = "X"
	assert.Equal(t, "ADJ", cfg.Tagger.Labels[0])
}

func TestLoadRuleFilesYAML(t *testing.T) {
	dir := t.TempDir()

	acrPath := filepath.Join(dir, "acronyms.yaml")
	require.NoError(t, writeYAML(acrPath,
		"- abbrev: IPA\n  expansion: india pale ale\n- abbrev: GO\n  expansion: onion garlic\n"))
	rules, err := LoadAcronymsFile(acrPath)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, AcronymRule{Abbrev: "IPA", Expansion: "india pale ale"}, rules[0])

	catPath := filepath.Join(dir, "categories.yaml")
	require.NoError(t, writeYAML(catPath,
		"- label: citrus\n  patterns: [lemon, lime]\n"))
	cats, err := LoadCategoriesFile(catPath)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "citrus", cats[0].Label)
	assert.Equal(t, []string{"lemon", "lime"}, cats[0].Patterns)
}
