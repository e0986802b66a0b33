package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/maggie-reiter/hops-sensory-analysis/internal/app"
	"github.com/maggie-reiter/hops-sensory-analysis/sensory"
)

type cliOptions struct {
	configPath     string
	inputPath      string
	exportPath     string
	outputDir      string
	acronymsPath   string
	categoriesPath string
	inputOpts      sensory.InputParseOptions
	topK           int
	stdout         bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("sensory-cli: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("sensory-cli: %v", err)
	}
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions
	flag.StringVar(&opts.configPath, "config", "", "Path to config.json (default: ./config.json)")
	flag.StringVar(&opts.inputPath, "input", "", "CSV/TSV tasting sheet with event, sample and comment columns")
	flag.StringVar(&opts.exportPath, "export", "", "JSON interchange file for normalized records (overrides config)")
	flag.StringVar(&opts.outputDir, "output-dir", "results", "Directory where per-partition report CSVs are written")
	flag.StringVar(&opts.acronymsPath, "acronyms", "", "YAML acronym rule file (overrides config)")
	flag.StringVar(&opts.categoriesPath, "categories", "", "YAML category definition file (overrides config)")
	flag.StringVar(&opts.inputOpts.EventColumn, "event-column", "", "Column name or #index for the event column")
	flag.StringVar(&opts.inputOpts.SampleColumn, "sample-column", "", "Column name or #index for the sample-type column")
	flag.StringVar(&opts.inputOpts.CommentColumn, "comment-column", "", "Column name or #index for the comment column")
	flag.IntVar(&opts.topK, "top", 0, "Number of top-ranked n-grams to report (overrides config)")
	flag.BoolVar(&opts.stdout, "stdout", false, "Print summary tables to STDOUT")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --input FILE [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.configPath = strings.TrimSpace(opts.configPath)
	opts.inputPath = strings.TrimSpace(opts.inputPath)
	opts.exportPath = strings.TrimSpace(opts.exportPath)
	opts.outputDir = strings.TrimSpace(opts.outputDir)
	opts.acronymsPath = strings.TrimSpace(opts.acronymsPath)
	opts.categoriesPath = strings.TrimSpace(opts.categoriesPath)

	if opts.inputPath == "" {
		flag.Usage()
		return opts, errors.New("missing required --input file")
	}
	return opts, nil
}

func run(opts cliOptions) error {
	cfg, err := sensory.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.exportPath != "" {
		cfg.ExportPath = opts.exportPath
	}
	if opts.acronymsPath != "" {
		cfg.AcronymsPath = opts.acronymsPath
	}
	if opts.categoriesPath != "" {
		cfg.CategoriesPath = opts.categoriesPath
	}
	if opts.topK > 0 {
		cfg.TopK = opts.topK
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	if err := app.Run(context.Background(), app.Options{
		Config:    cfg,
		InputPath: opts.inputPath,
		InputOpts: opts.inputOpts,
		OutputDir: opts.outputDir,
		Stdout:    opts.stdout,
		Logger:    logger,
	}); err != nil {
		return err
	}
	fmt.Printf("Report CSVs written to %s\n", opts.outputDir)
	return nil
}
