package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/maggie-reiter/hops-sensory-analysis/sensory"
)

// Options carries the inputs resolved by the CLI.
type Options struct {
	Config    sensory.Config
	InputPath string
	InputOpts sensory.InputParseOptions
	OutputDir string
	Stdout    bool
	Logger    *log.Logger
}

// Run executes the full pipeline: load, normalize, export, analyze, report.
func Run(ctx context.Context, opts Options) error {
	if opts.InputPath == "" {
		return errors.New("missing input file")
	}

	EnsureRuleFiles(opts.Config)

	svc, err := NewService(opts.Config, opts.Logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	records, err := svc.Process(opts.InputPath, opts.InputOpts)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return errors.New("input file does not contain any comments")
	}

	report, err := svc.Analyze(ctx, records)
	if err != nil {
		return err
	}

	if opts.OutputDir != "" {
		if err := WriteReportCSVs(opts.OutputDir, report); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if opts.Stdout {
		PrintSummary(report)
	}
	return nil
}
