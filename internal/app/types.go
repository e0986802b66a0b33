package app

import "github.com/maggie-reiter/hops-sensory-analysis/sensory"

// PartitionAnalysis bundles every aggregate computed for one sample-type
// partition.
type PartitionAnalysis struct {
	Sample     sensory.SampleType
	Total      int
	Unigrams   []sensory.FreqEntry
	Bigrams    []sensory.FreqEntry
	Trigrams   []sensory.FreqEntry
	Modifiers  []sensory.FreqEntry
	Prevalence []sensory.PrevalenceRow
}

// Report is the full run output: the normalized corpus plus one analysis
// per partition, in first-seen partition order.
type Report struct {
	Records    []sensory.Record
	Partitions []PartitionAnalysis
}
