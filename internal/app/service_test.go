package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maggie-reiter/hops-sensory-analysis/sensory"
)

func writeSheet(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "comments.csv")
	content := "Event,Sample,Comments\n" +
		"Meeting 1,Dried Hops,Complex and clean\n" +
		"Meeting 1,Dried Hops,GO in this one\n" +
		"Meeting 1,Dried Hops,\"Dank, mango, bitter, citrus\"\n" +
		"Meeting 2,Beer,Good\n" +
		"Meeting 2,Beer,classic IPA with mango\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestService(t *testing.T, cfg sensory.Config) *Service {
	t.Helper()
	svc, err := NewService(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestPipelineEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := writeSheet(t, dir)

	cfg := sensory.Config{ExportPath: filepath.Join(dir, "comments.json")}
	svc := newTestService(t, cfg)

	records, err := svc.Process(input, sensory.InputParseOptions{})
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, "onion garlic in this one", records[1].Text)
	assert.Equal(t, "classic india pale ale with mango", records[4].Text)

	// The interchange document round-trips to the normalized projection.
	exported, err := sensory.LoadExported(cfg.ExportPath)
	require.NoError(t, err)
	require.Len(t, exported, 5)
	for i, rec := range records {
		assert.Equal(t, rec.Sample, exported[i].Sample)
		assert.Equal(t, rec.Text, exported[i].Text)
	}

	report, err := svc.Analyze(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, report.Partitions, 2)

	hops := report.Partitions[0]
	assert.Equal(t, sensory.SampleDriedHops, hops.Sample)
	assert.Equal(t, 3, hops.Total)
	beer := report.Partitions[1]
	assert.Equal(t, sensory.SampleBeer, beer.Sample)
	assert.Equal(t, 2, beer.Total)

	// Acronym expansion feeds the categorical matcher.
	onionRow := prevalenceRow(t, hops.Prevalence, "onion garlic")
	assert.Equal(t, 1, onionRow.Count)
	assert.Equal(t, 3, onionRow.Total)

	tropicalRow := prevalenceRow(t, beer.Prevalence, "tropical fruit")
	assert.Equal(t, 1, tropicalRow.Count)

	assert.NotEmpty(t, hops.Unigrams)
	assert.NotEmpty(t, hops.Modifiers)
}

func TestWriteReportCSVs(t *testing.T) {
	dir := t.TempDir()
	input := writeSheet(t, dir)

	cfg := sensory.Config{ExportPath: filepath.Join(dir, "comments.json")}
	svc := newTestService(t, cfg)

	records, err := svc.Process(input, sensory.InputParseOptions{})
	require.NoError(t, err)
	report, err := svc.Analyze(context.Background(), records)
	require.NoError(t, err)

	outDir := filepath.Join(dir, "results")
	require.NoError(t, WriteReportCSVs(outDir, report))

	for _, name := range []string{
		"ngrams_dried_hops.csv",
		"categories_dried_hops.csv",
		"ngrams_beer.csv",
		"categories_beer.csv",
	} {
		info, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestEnsureRuleFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := sensory.Config{
		AcronymsPath:   filepath.Join(dir, "rules", "acronyms.yaml"),
		CategoriesPath: filepath.Join(dir, "rules", "categories.yaml"),
	}
	EnsureRuleFiles(cfg)

	rules, err := sensory.LoadAcronymsFile(cfg.AcronymsPath)
	require.NoError(t, err)
	assert.NotEmpty(t, rules)

	cats, err := sensory.LoadCategoriesFile(cfg.CategoriesPath)
	require.NoError(t, err)
	assert.NotEmpty(t, cats)
}

func TestRunMissingInput(t *testing.T) {
	err := Run(context.Background(), Options{})
	require.Error(t, err)
}

func prevalenceRow(t *testing.T, rows []sensory.PrevalenceRow, category string) sensory.PrevalenceRow {
	t.Helper()
	for _, row := range rows {
		if row.Category == category {
			return row
		}
	}
	t.Fatalf("category %q not found", category)
	return sensory.PrevalenceRow{}
}
