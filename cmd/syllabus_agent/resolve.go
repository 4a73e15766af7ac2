package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/syllabus-agent/internal/observability"
	"github.com/jonathan/syllabus-agent/internal/schedule"
	"github.com/jonathan/syllabus-agent/internal/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve week references in parsed syllabus JSON to calendar dates",
	Long:  "Read a previously parsed syllabus JSON file and convert its week-numbered assignments to absolute due dates anchored at the semester start.",
	RunE:  runResolve,
}

var (
	resolveInputFile     string
	resolveOutputFile    string
	resolveSemesterStart string
	resolveSemesterEnd   string
	resolveVerbose       bool
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveInputFile, "in", "i", "", "Path to parsed syllabus JSON (required)")
	resolveCmd.Flags().StringVarP(&resolveOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	resolveCmd.Flags().StringVar(&resolveSemesterStart, "semester-start", "", "Semester start date (YYYY-MM-DD, required)")
	resolveCmd.Flags().StringVar(&resolveSemesterEnd, "semester-end", "", "Semester end date (YYYY-MM-DD); enables bounds checking")
	resolveCmd.Flags().BoolVarP(&resolveVerbose, "verbose", "v", false, "Print a conversion summary to stderr")

	_ = resolveCmd.MarkFlagRequired("in")
	_ = resolveCmd.MarkFlagRequired("semester-start")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(resolveInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var syllabus types.ParsedSyllabus
	if err := json.Unmarshal(data, &syllabus); err != nil {
		return fmt.Errorf("failed to parse syllabus JSON: %w", err)
	}

	result := schedule.ConvertWeeksToDatesDetailed(syllabus.Assignments, resolveSemesterStart)

	if resolveSemesterEnd != "" {
		bounds, err := schedule.CheckSemesterBounds(syllabus.Assignments, resolveSemesterStart, resolveSemesterEnd)
		if err != nil {
			return err
		}
		for _, issue := range bounds.Issues {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%q (week %d) lands after the %d-week semester; week %d is the last in term",
					issue.Title, issue.Week, bounds.SemesterWeeks, issue.SuggestedWeek))
		}
	}

	if resolveVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintConversion(result)
		printer.PrintWarnings(result.Warnings)
	}

	return writeJSONOutput(resolveOutputFile, result)
}
