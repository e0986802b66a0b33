package app

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maggie-reiter/hops-sensory-analysis/sensory"
)

// WriteReportCSVs writes one n-gram CSV and one category-prevalence CSV per
// partition into dir. File names derive from the sample type
// ("ngrams_dried_hops.csv", "categories_beer.csv").
func WriteReportCSVs(dir string, report *Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, part := range report.Partitions {
		slug := sampleSlug(part.Sample)
		if err := writeNGramCSV(filepath.Join(dir, "ngrams_"+slug+".csv"), part); err != nil {
			return err
		}
		if err := writePrevalenceCSV(filepath.Join(dir, "categories_"+slug+".csv"), part); err != nil {
			return err
		}
	}
	return nil
}

func sampleSlug(sample sensory.SampleType) string {
	slug := strings.ToLower(string(sample))
	slug = strings.ReplaceAll(slug, " ", "_")
	return slug
}

func writeNGramCSV(path string, part PartitionAnalysis) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"kind", "gram", "count"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	sections := []struct {
		kind    string
		entries []sensory.FreqEntry
	}{
		{"unigram", part.Unigrams},
		{"bigram", part.Bigrams},
		{"trigram", part.Trigrams},
		{"modifier", part.Modifiers},
	}
	for _, section := range sections {
		for _, entry := range section.entries {
			row := []string{section.kind, entry.Gram, fmt.Sprintf("%d", entry.Count)}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("write %s row: %w", section.kind, err)
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writePrevalenceCSV(path string, part PartitionAnalysis) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"category", "sample", "count", "total", "percentage"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range part.Prevalence {
		rec := []string{
			row.Category,
			row.Sample,
			fmt.Sprintf("%d", row.Count),
			fmt.Sprintf("%d", row.Total),
			fmt.Sprintf("%.3f", row.Percentage),
		}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("write prevalence row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", filepath.Base(path), err)
	}
	return nil
}

// PrintSummary prints a preview of each partition's top terms and category
// prevalence to STDOUT. Presentation only; the CSVs carry the full tables.
func PrintSummary(report *Report) {
	for _, part := range report.Partitions {
		fmt.Println()
		fmt.Printf("==== %s (%d comments) ====\n", part.Sample, part.Total)
		printEntries("Top unigrams", part.Unigrams)
		printEntries("Top bigrams", part.Bigrams)
		printEntries("Top trigrams", part.Trigrams)
		printEntries("Top adjectives/adverbs", part.Modifiers)
		fmt.Println("  Category prevalence:")
		for _, row := range part.Prevalence {
			fmt.Printf("    %-16s %3d/%3d (%.1f%%)\n",
				row.Category, row.Count, row.Total, row.Percentage*100)
		}
	}
}

func printEntries(title string, entries []sensory.FreqEntry) {
	fmt.Printf("  %s:\n", title)
	if len(entries) == 0 {
		fmt.Println("    (none)")
		return
	}
	for _, entry := range entries {
		fmt.Printf("    %-28s %d\n", entry.Gram, entry.Count)
	}
}
