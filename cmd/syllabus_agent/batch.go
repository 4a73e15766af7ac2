package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/syllabus-agent/internal/document"
	"github.com/jonathan/syllabus-agent/internal/observability"
	"github.com/jonathan/syllabus-agent/internal/schedule"
	"github.com/jonathan/syllabus-agent/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Parse several syllabus files in one run",
	Long:  "Normalize a set of syllabus files concurrently, then extract each one. Failures are reported per file; one bad document never aborts the batch.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

var (
	batchOutputFile    string
	batchConfigFile    string
	batchAPIKey        string
	batchSemesterStart string
	batchVerbose       bool
)

// batchItem pairs a parsed syllabus with its source file.
type batchItem struct {
	FileName   string                      `json:"file_name"`
	Syllabus   *types.ParsedSyllabus       `json:"syllabus,omitempty"`
	Conversion *types.WeekConversionResult `json:"conversion,omitempty"`
	Error      string                      `json:"error,omitempty"`
}

// batchOutput is the combined result of a batch run.
type batchOutput struct {
	Items    []batchItem              `json:"items"`
	Failed   []types.BatchItemFailure `json:"failed,omitempty"`
	Warnings []string                 `json:"warnings,omitempty"`
	Stats    document.Stats           `json:"stats"`
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	batchCmd.Flags().StringVar(&batchConfigFile, "config", "", "Path to JSON config file")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	batchCmd.Flags().StringVar(&batchSemesterStart, "semester-start", "", "Semester start date (YYYY-MM-DD); enables week-to-date resolution")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print a batch summary to stderr")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	cfg, err := resolveConfig(batchConfigFile)
	if err != nil {
		return err
	}
	if batchSemesterStart == "" {
		batchSemesterStart = cfg.SemesterStart
	}

	apiKey, err := resolveAPIKey(batchAPIKey, cfg)
	if err != nil {
		return err
	}

	docs := make([]types.RawDocument, 0, len(args))
	for _, path := range args {
		doc, err := readRawDocument(path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	logger := newLogger(batchVerbose || cfg.Verbose)
	ctx := context.Background()

	normalizer := document.NewNormalizer(document.Options{MaxFileSize: cfg.MaxFileSize})
	batchResult := normalizer.ProcessBatch(ctx, docs, document.BatchOptions{
		MaxInFlight: cfg.MaxInFlight,
	})

	extractor, cleanup, err := newExtractor(ctx, apiKey, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := extractionOptions(cfg)
	output := &batchOutput{
		Failed:   batchResult.Failed,
		Warnings: batchResult.Warnings,
		Stats:    document.ComputeStats(batchResult.Successful),
	}

	// Extraction runs sequentially; the model service rate limit bites
	// faster with multiple in-flight calls than the time saved is worth.
	for i := range batchResult.Successful {
		content := &batchResult.Successful[i]
		item := batchItem{FileName: content.Metadata.OriginalName}

		syllabus, err := extractor.Extract(ctx, content, opts)
		if err != nil {
			item.Error = err.Error()
			output.Items = append(output.Items, item)
			continue
		}
		item.Syllabus = syllabus
		if batchSemesterStart != "" {
			item.Conversion = schedule.ConvertWeeksToDatesDetailed(syllabus.Assignments, batchSemesterStart)
		}
		output.Items = append(output.Items, item)
	}

	if batchVerbose {
		observability.NewPrinter(os.Stderr).PrintBatchSummary(batchResult)
		fmt.Fprintf(os.Stderr, "Extracted %d of %d normalized documents\n",
			countExtracted(output.Items), len(batchResult.Successful))
	}

	return writeJSONOutput(batchOutputFile, output)
}

func countExtracted(items []batchItem) int {
	n := 0
	for _, item := range items {
		if item.Error == "" {
			n++
		}
	}
	return n
}
