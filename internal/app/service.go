package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/maggie-reiter/hops-sensory-analysis/sensory"
)

// Service wires the pipeline together: load, acronym normalization, export
// and the per-partition aggregates.
type Service struct {
	cfg        sensory.Config
	normalizer *sensory.Normalizer
	matcher    *sensory.Matcher
	tagger     sensory.Tagger
	logger     *log.Logger
}

// NewService builds a service from the configuration, loading acronym and
// category rule files when configured and falling back to the built-in
// defaults otherwise.
func NewService(cfg sensory.Config, logger *log.Logger) (*Service, error) {
	cfg.ApplyDefaults()

	acronyms := sensory.DefaultAcronyms()
	if cfg.AcronymsPath != "" {
		loaded, err := sensory.LoadAcronymsFile(cfg.AcronymsPath)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("load acronyms: %w", err)
			}
		} else {
			acronyms = loaded
		}
	}

	categories := sensory.DefaultCategories()
	if cfg.CategoriesPath != "" {
		loaded, err := sensory.LoadCategoriesFile(cfg.CategoriesPath)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("load categories: %w", err)
			}
		} else {
			categories = loaded
		}
	}

	tagger, err := sensory.NewTagger(cfg.Tagger)
	if err != nil {
		return nil, fmt.Errorf("init tagger: %w", err)
	}

	return &Service{
		cfg:        cfg,
		normalizer: sensory.NewNormalizer(acronyms),
		matcher:    sensory.NewMatcher(categories),
		tagger:     tagger,
		logger:     logger,
	}, nil
}

// Close releases tagger resources.
func (s *Service) Close() error {
	if s.tagger != nil {
		return s.tagger.Close()
	}
	return nil
}

// Config returns a copy of the active configuration.
func (s *Service) Config() sensory.Config {
	return s.cfg.Clone()
}

// Process loads the tasting sheet, normalizes every comment in place and
// writes the interchange document. The returned records feed Analyze.
func (s *Service) Process(inputPath string, opts sensory.InputParseOptions) ([]sensory.Record, error) {
	records, err := sensory.ParseCommentFileWithOptions(inputPath, opts)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	s.logf("Loaded %d comments from %s", len(records), inputPath)

	s.normalizer.NormalizeRecords(records)

	if s.cfg.ExportPath != "" {
		if err := sensory.ExportRecords(s.cfg.ExportPath, records); err != nil {
			return nil, fmt.Errorf("export records: %w", err)
		}
		s.logf("Exported normalized records to %s", s.cfg.ExportPath)
	}
	return records, nil
}

// Analyze computes n-gram tables, modifier counts and category prevalence
// for every sample-type partition. Partitions share no mutable state, so
// they run concurrently.
func (s *Service) Analyze(ctx context.Context, records []sensory.Record) (*Report, error) {
	partitions := sensory.Partition(records)

	// First-seen order keeps output deterministic.
	var order []sensory.SampleType
	seen := make(map[sensory.SampleType]struct{})
	for _, rec := range records {
		if _, ok := seen[rec.Sample]; ok {
			continue
		}
		seen[rec.Sample] = struct{}{}
		order = append(order, rec.Sample)
	}

	results := make([]PartitionAnalysis, len(order))
	g, ctx := errgroup.WithContext(ctx)
	for i, sample := range order {
		i, sample := i, sample
		part := partitions[sample]
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			analysis, err := s.analyzePartition(sample, part)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", sample, err)
			}
			results[i] = analysis
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, analysis := range results {
		s.logf("Analyzed %q: %d comments, %d distinct unigrams",
			analysis.Sample, analysis.Total, len(analysis.Unigrams))
	}
	return &Report{Records: records, Partitions: results}, nil
}

func (s *Service) analyzePartition(sample sensory.SampleType, records []sensory.Record) (PartitionAnalysis, error) {
	seqs := sensory.TokenizeRecords(records)
	tables := sensory.BuildNGramTables(seqs, s.cfg.MinTrigramCount)

	modifiers, err := sensory.CountModifiers(s.tagger, records)
	if err != nil {
		return PartitionAnalysis{}, err
	}

	return PartitionAnalysis{
		Sample:     sample,
		Total:      len(records),
		Unigrams:   tables.Unigrams.Top(s.cfg.TopK),
		Bigrams:    tables.Bigrams.Top(s.cfg.TopK),
		Trigrams:   tables.Trigrams.Top(s.cfg.TopK),
		Modifiers:  modifiers.Top(s.cfg.TopK),
		Prevalence: sensory.Prevalence(s.matcher, sample, records),
	}, nil
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
