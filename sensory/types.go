// Package sensory implements the text-processing pipeline behind the hop
// sensory study: acronym expansion of taster comments, record export,
// tokenization and lemmatization, n-gram frequency tables, part-of-speech
// extraction and keyword-category prevalence.
package sensory

import "encoding/json"

// SampleType identifies which partition a comment belongs to.
type SampleType string

const (
	// SampleDriedHops marks comments collected while smelling dried hop samples.
	SampleDriedHops SampleType = "Dried Hops"
	// SampleBeer marks comments collected while tasting the brewed beers.
	SampleBeer SampleType = "Beer"
)

// Record is a single free-text tasting comment with its provenance.
// Text is rewritten once by Normalizer.NormalizeRecords; all other fields stay untouched.
type Record struct {
	Event  string     `json:"event,omitempty"`
	Sample SampleType `json:"sample"`
	Text   string     `json:"text"`
}

// ExportedRecord is the minimal interchange projection of a Record.
type ExportedRecord struct {
	Sample string `json:"sample"`
	Text   string `json:"text"`
}

// FreqEntry is one ranked row of a frequency table.
type FreqEntry struct {
	Gram  string `json:"gram"`
	Count int    `json:"count"`
}

// TaggedToken is the per-token output of a Tagger backend.
type TaggedToken struct {
	Text  string `json:"text"`
	POS   string `json:"pos"`
	Lemma string `json:"lemma"`
	Dep   string `json:"dep"`
}

// Category is a hand-curated keyword group matched against comment text.
// Patterns are single words or contiguous phrases, matched case-insensitively
// at word boundaries. Membership is non-exclusive.
type Category struct {
	Label    string   `json:"label" yaml:"label"`
	Patterns []string `json:"patterns" yaml:"patterns"`
}

// PrevalenceRow reports how many comments of a partition matched a category.
type PrevalenceRow struct {
	Category   string  `json:"category"`
	Sample     string  `json:"sample"`
	Count      int     `json:"count"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// TaggerConfig selects and parameterizes the part-of-speech backend.
type TaggerConfig struct {
	// Backend is "rules" (built-in lexicon tagger) or "onnx".
	Backend string `json:"backend"`

	OrtDLL        string `json:"ortDll,omitempty"`
	ModelPath     string `json:"modelPath,omitempty"`
	TokenizerPath string `json:"tokenizerPath,omitempty"`
	MaxSeqLen     int    `json:"maxSeqLen,omitempty"`
	// Labels maps the model's class indices to coarse POS tags.
	Labels []string `json:"labels,omitempty"`
}

// Config aggregates runtime settings persisted to config.json.
type Config struct {
	TopK            int          `json:"topK"`
	MinTrigramCount int          `json:"minTrigramCount"`
	ExportPath      string       `json:"exportPath"`
	AcronymsPath    string       `json:"acronymsPath,omitempty"`
	CategoriesPath  string       `json:"categoriesPath,omitempty"`
	Tagger          TaggerConfig `json:"tagger"`
}

// Clone creates a deep copy of the configuration so callers can mutate safely.
func (c Config) Clone() Config {
	buf, _ := json.Marshal(c)
	var out Config
	_ = json.Unmarshal(buf, &out)
	return out
}

// ApplyDefaults populates zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.TopK <= 0 {
		c.TopK = 10
	}
	if c.MinTrigramCount <= 0 {
		c.MinTrigramCount = 2
	}
	if c.ExportPath == "" {
		c.ExportPath = "comments.json"
	}
	if c.Tagger.Backend == "" {
		c.Tagger.Backend = "rules"
	}
	if c.Tagger.MaxSeqLen == 0 {
		c.Tagger.MaxSeqLen = 512
	}
	if len(c.Tagger.Labels) == 0 {
		c.Tagger.Labels = DefaultPOSLabels()
	}
}
