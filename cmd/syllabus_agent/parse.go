package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/syllabus-agent/internal/config"
	"github.com/jonathan/syllabus-agent/internal/document"
	"github.com/jonathan/syllabus-agent/internal/extraction"
	"github.com/jonathan/syllabus-agent/internal/observability"
	"github.com/jonathan/syllabus-agent/internal/pipeline"
	"github.com/jonathan/syllabus-agent/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a syllabus into structured assignment JSON",
	Long:  "Parse a syllabus file or web page into structured course and assignment data. With --semester-start, week references are also resolved to calendar dates.",
	RunE:  runParse,
}

var (
	parseInputFile     string
	parseInputURL      string
	parseOutputFile    string
	parseConfigFile    string
	parseAPIKey        string
	parseSemesterStart string
	parseSemesterEnd   string
	parseSchedule      bool
	parseUseBrowser    bool
	parseEstimateOnly  bool
	parseVerbose       bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to syllabus file (PDF, DOCX, ODT, text, or image)")
	parseCmd.Flags().StringVar(&parseInputURL, "url", "", "URL of a syllabus web page (alternative to --in)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfigFile, "config", "", "Path to JSON config file")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseCmd.Flags().StringVar(&parseSemesterStart, "semester-start", "", "Semester start date (YYYY-MM-DD); enables week-to-date resolution")
	parseCmd.Flags().StringVar(&parseSemesterEnd, "semester-end", "", "Semester end date (YYYY-MM-DD); enables bounds checking")
	parseCmd.Flags().BoolVar(&parseSchedule, "schedule", true, "Extract the class meeting schedule")
	parseCmd.Flags().BoolVar(&parseUseBrowser, "use-browser", false, "Render the URL with a headless browser (for JS-heavy pages)")
	parseCmd.Flags().BoolVar(&parseEstimateOnly, "estimate", false, "Print a cost estimate and exit without calling the model")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	if parseInputFile != "" && parseInputURL != "" {
		return fmt.Errorf("cannot use --in with --url")
	}
	if parseInputFile == "" && parseInputURL == "" {
		return fmt.Errorf("must provide either --in or --url")
	}

	cfg, err := resolveConfig(parseConfigFile)
	if err != nil {
		return err
	}
	if parseSemesterStart == "" {
		parseSemesterStart = cfg.SemesterStart
	}
	if parseSemesterEnd == "" {
		parseSemesterEnd = cfg.SemesterEnd
	}

	logger := newLogger(parseVerbose || cfg.Verbose)
	printer := observability.NewPrinter(os.Stderr)
	normalizer := document.NewNormalizer(document.Options{MaxFileSize: cfg.MaxFileSize})
	ctx := context.Background()

	// --estimate only needs the normalized input, never a model client.
	if parseEstimateOnly {
		content, err := normalizeInput(ctx, normalizer, cfg)
		if err != nil {
			return err
		}
		if parseVerbose {
			printer.PrintDocument(content)
		}
		return writeJSONOutput(parseOutputFile, extraction.EstimateCost(content))
	}

	apiKey, err := resolveAPIKey(parseAPIKey, cfg)
	if err != nil {
		return err
	}
	extractor, cleanup, err := newExtractor(ctx, apiKey, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := extractionOptions(cfg)
	opts.IncludeSchedule = parseSchedule

	var result *pipeline.RunResult
	if parseInputURL != "" {
		content, err := normalizeInput(ctx, normalizer, cfg)
		if err != nil {
			return err
		}
		syllabus, err := extractor.Extract(ctx, content, opts)
		if err != nil {
			return fmt.Errorf("failed to parse syllabus: %w", err)
		}
		result = &pipeline.RunResult{Document: *content, Syllabus: syllabus}
		if parseSemesterStart != "" {
			attachResolution(result, parseSemesterStart, parseSemesterEnd, logger)
		}
	} else {
		doc, err := readRawDocument(parseInputFile)
		if err != nil {
			return err
		}
		runner := pipeline.NewRunner(normalizer, extractor, logger)
		result, err = runner.Run(ctx, doc, pipeline.RunOptions{
			Extraction:    opts,
			SemesterStart: parseSemesterStart,
			SemesterEnd:   parseSemesterEnd,
		})
		if err != nil {
			return fmt.Errorf("failed to parse syllabus: %w", err)
		}
	}

	if parseVerbose {
		printer.PrintDocument(&result.Document)
		printer.PrintSyllabus(result.Syllabus)
		if result.Conversion != nil {
			printer.PrintConversion(result.Conversion)
		}
		printer.PrintWarnings(result.Syllabus.Metadata.Warnings)
		quality := extraction.AnalyzeQuality(result.Syllabus)
		fmt.Fprintf(os.Stderr, "Quality score: %.2f\n", quality.Score)
		for _, s := range quality.Suggestions {
			fmt.Fprintf(os.Stderr, "  suggestion: %s\n", s)
		}
	}

	return writeJSONOutput(parseOutputFile, result)
}

// normalizeInput resolves the --in/--url input to normalized content.
func normalizeInput(ctx context.Context, normalizer *document.Normalizer, cfg config.Config) (*types.NormalizedContent, error) {
	if parseInputURL != "" {
		content, err := normalizer.FromURL(ctx, parseInputURL, document.URLOptions{
			UseBrowser: parseUseBrowser || cfg.UseBrowser,
			Verbose:    parseVerbose,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch syllabus page: %w", err)
		}
		return content, nil
	}
	doc, err := readRawDocument(parseInputFile)
	if err != nil {
		return nil, err
	}
	content, err := normalizer.Process(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to process syllabus file: %w", err)
	}
	return content, nil
}
