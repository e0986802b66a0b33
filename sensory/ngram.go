package sensory

import (
	"sort"
	"strings"
)

// FreqTable counts string keys while remembering first-seen order, so that
// ranking ties break deterministically in insertion order.
type FreqTable struct {
	counts map[string]int
	order  []string
}

// NewFreqTable constructs an empty table.
func NewFreqTable() *FreqTable {
	return &FreqTable{counts: make(map[string]int)}
}

// Add increments the count for key.
func (t *FreqTable) Add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// Count returns the current count for key.
func (t *FreqTable) Count(key string) int {
	return t.counts[key]
}

// Len returns the number of distinct keys.
func (t *FreqTable) Len() int {
	return len(t.order)
}

// Ranked returns all entries sorted by count descending. Ties keep
// first-seen order (stable sort over the insertion sequence).
func (t *FreqTable) Ranked() []FreqEntry {
	entries := make([]FreqEntry, 0, len(t.order))
	for _, key := range t.order {
		entries = append(entries, FreqEntry{Gram: key, Count: t.counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Top returns the k highest-ranked entries.
func (t *FreqTable) Top(k int) []FreqEntry {
	ranked := t.Ranked()
	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// Pruned returns a copy of the table keeping only keys with count >= min,
// preserving first-seen order.
func (t *FreqTable) Pruned(min int) *FreqTable {
	out := NewFreqTable()
	for _, key := range t.order {
		if count := t.counts[key]; count >= min {
			out.counts[key] = count
			out.order = append(out.order, key)
		}
	}
	return out
}

// CountNGrams builds a frequency table of n-word grams over the given token
// sequences. Each sequence is one comment; windows are taken inside a
// sequence only, so a gram never spans two source comments. Grams are the
// n tokens joined by single spaces.
func CountNGrams(seqs [][]string, n int) *FreqTable {
	table := NewFreqTable()
	if n <= 0 {
		return table
	}
	for _, tokens := range seqs {
		for i := 0; i+n <= len(tokens); i++ {
			table.Add(strings.Join(tokens[i:i+n], " "))
		}
	}
	return table
}

// NGramTables holds the three standard frequency tables for one partition.
type NGramTables struct {
	Unigrams *FreqTable
	Bigrams  *FreqTable
	Trigrams *FreqTable
}

// BuildNGramTables computes unigram, bigram and trigram tables for a
// partition's token sequences. Trigrams occurring fewer than minTrigram
// times are pruned before ranking.
func BuildNGramTables(seqs [][]string, minTrigram int) NGramTables {
	if minTrigram <= 0 {
		minTrigram = 2
	}
	return NGramTables{
		Unigrams: CountNGrams(seqs, 1),
		Bigrams:  CountNGrams(seqs, 2),
		Trigrams: CountNGrams(seqs, 3).Pruned(minTrigram),
	}
}
