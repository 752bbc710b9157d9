package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchCommand = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Parse multiple resume files concurrently",
	Long: `Parses each resume file into a structured profile and writes one
<name>.profile.json per input into the output directory. Files are processed
concurrently; the first failure aborts the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatchCmd,
}

var (
	batchOutDir      string
	batchConcurrency int
	batchVerbose     bool
)

func init() {
	batchCommand.Flags().StringVarP(&batchOutDir, "out-dir", "d", "out", "Directory to write profile JSON files to")
	batchCommand.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum files parsed in parallel")
	batchCommand.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print each parsed profile")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(_ *cobra.Command, args []string) error {
	if batchConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}

	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	p := parser.New()

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(batchConcurrency)

	for _, path := range args {
		g.Go(func() error {
			return parseOneFile(p, path)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Parsed %d resume(s) into %s\n", len(args), batchOutDir)
	return nil
}

func parseOneFile(p *parser.Parser, path string) error {
	cleaned, _, err := ingestion.IngestFromFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	profile, err := p.Parse(cleaned, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := schemas.ValidateProfile(profile); err != nil {
		return fmt.Errorf("%s: profile failed schema validation: %w", path, err)
	}

	if batchVerbose {
		observability.NewPrinter(os.Stdout).PrintProfile(profile)
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: failed to marshal profile: %w", path, err)
	}
	data = append(data, '\n')

	outPath := filepath.Join(batchOutDir, profileFileName(path))
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("%s: failed to write profile: %w", path, err)
	}
	return nil
}

// profileFileName maps resume.txt to resume.profile.json.
func profileFileName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".profile.json"
}
