package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/syllabus-agent/internal/document"
	"github.com/jonathan/syllabus-agent/internal/observability"
	"github.com/jonathan/syllabus-agent/internal/types"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize a syllabus file without calling the model",
	Long:  "Extract and clean the text of a syllabus file (or encode an image) and print the normalized content as JSON. Useful for inspecting what the model would see.",
	RunE:  runNormalize,
}

var (
	normalizeInputFile  string
	normalizeInputURL   string
	normalizeOutputFile string
	normalizeUseBrowser bool
	normalizeVerbose    bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeInputFile, "in", "i", "", "Path to syllabus file")
	normalizeCmd.Flags().StringVar(&normalizeInputURL, "url", "", "URL of a syllabus web page (alternative to --in)")
	normalizeCmd.Flags().StringVarP(&normalizeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	normalizeCmd.Flags().BoolVar(&normalizeUseBrowser, "use-browser", false, "Render the URL with a headless browser")
	normalizeCmd.Flags().BoolVarP(&normalizeVerbose, "verbose", "v", false, "Print a document summary to stderr")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(_ *cobra.Command, _ []string) error {
	if normalizeInputFile != "" && normalizeInputURL != "" {
		return fmt.Errorf("cannot use --in with --url")
	}
	if normalizeInputFile == "" && normalizeInputURL == "" {
		return fmt.Errorf("must provide either --in or --url")
	}

	normalizer := document.NewNormalizer(document.Options{})

	var content *types.NormalizedContent
	var err error
	if normalizeInputURL != "" {
		content, err = normalizer.FromURL(context.Background(), normalizeInputURL, document.URLOptions{
			UseBrowser: normalizeUseBrowser,
			Verbose:    normalizeVerbose,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch syllabus page: %w", err)
		}
	} else {
		doc, rerr := readRawDocument(normalizeInputFile)
		if rerr != nil {
			return rerr
		}
		content, err = normalizer.Process(doc)
		if err != nil {
			return fmt.Errorf("failed to process syllabus file: %w", err)
		}
	}

	if normalizeVerbose {
		observability.NewPrinter(os.Stderr).PrintDocument(content)
	}

	return writeJSONOutput(normalizeOutputFile, content)
}
