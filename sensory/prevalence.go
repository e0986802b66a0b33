package sensory

import "sort"

// Prevalence computes, for every category, the number of comments in the
// partition with at least one match and the resulting share of the
// partition. Rows come back ranked by count descending, ties in definition
// order. An empty partition reports zero counts and 0 percentage rather
// than dividing by zero.
func Prevalence(m *Matcher, sample SampleType, records []Record) []PrevalenceRow {
	categories := m.Categories()
	counts := make(map[string]int, len(categories))
	for _, rec := range records {
		for _, label := range m.Match(rec.Text) {
			counts[label]++
		}
	}
	total := len(records)
	rows := make([]PrevalenceRow, 0, len(categories))
	for _, cat := range categories {
		row := PrevalenceRow{
			Category: cat.Label,
			Sample:   string(sample),
			Count:    counts[cat.Label],
			Total:    total,
		}
		if total > 0 {
			row.Percentage = float64(row.Count) / float64(total)
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}
