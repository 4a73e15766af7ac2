// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/syllabus-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a summary of a normalized document.
func (p *Printer) PrintDocument(content *types.NormalizedContent) {
	if content == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", content.Metadata.OriginalName))
	sb.WriteString(fmt.Sprintf("Type:     %s\n", content.Metadata.MIMEType))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes\n", content.Metadata.Size))
	if content.Kind == types.KindImage {
		sb.WriteString("Content:  image (sent to vision model)")
	} else {
		sb.WriteString(fmt.Sprintf("Words:    %d", content.Metadata.WordCount))
		if content.Metadata.PageCount > 0 {
			sb.WriteString(fmt.Sprintf("\nPages:    %d", content.Metadata.PageCount))
		}
	}

	p.printBox("NORMALIZED DOCUMENT", sb.String())
}

// PrintSyllabus outputs a human-readable summary of the parsed syllabus.
func (p *Printer) PrintSyllabus(syllabus *types.ParsedSyllabus) {
	if syllabus == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Course:     %s\n", syllabus.CourseInfo.Name))
	if syllabus.CourseInfo.Code != "" {
		sb.WriteString(fmt.Sprintf("Code:       %s\n", syllabus.CourseInfo.Code))
	}
	if syllabus.CourseInfo.Instructor != "" {
		sb.WriteString(fmt.Sprintf("Instructor: %s\n", syllabus.CourseInfo.Instructor))
	}
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", syllabus.Metadata.ParsingConfidence))
	sb.WriteString("\n")

	if len(syllabus.Assignments) > 0 {
		sb.WriteString(fmt.Sprintf("Assignments (%d):\n", len(syllabus.Assignments)))
		count := min(len(syllabus.Assignments), maxItemsToShow)
		for i := 0; i < count; i++ {
			a := syllabus.Assignments[i]
			sb.WriteString(fmt.Sprintf("  • %s [%s]", a.Title, a.Type))
			if a.Week > 0 {
				sb.WriteString(fmt.Sprintf(" week %d", a.Week))
			} else if a.SpecificDate != "" {
				sb.WriteString(fmt.Sprintf(" due %s", a.SpecificDate))
			}
			sb.WriteString("\n")
		}
		if len(syllabus.Assignments) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(syllabus.Assignments)-maxItemsToShow))
		}
	}

	p.printBox("PARSED SYLLABUS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintConversion outputs the resolved assignment dates with any warnings.
func (p *Printer) PrintConversion(result *types.WeekConversionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Converted %d of %d assignments\n\n", result.TotalConverted, len(result.Assignments)))

	count := min(len(result.Assignments), maxItemsToShow)
	for i := 0; i < count; i++ {
		a := result.Assignments[i]
		sb.WriteString(fmt.Sprintf("• %s\n", a.Title))
		sb.WriteString(fmt.Sprintf("  due %s", a.DueDate))
		if a.OriginalWeek > 0 {
			sb.WriteString(fmt.Sprintf(" (from week %d)", a.OriginalWeek))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(result.Assignments) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more assignments", len(result.Assignments)-maxItemsToShow))
	}

	p.printBox("RESOLVED DUE DATES", sb.String())
}

// PrintWarnings outputs accumulated warnings, or a clean bill when empty.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO WARNINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warnings:\n\n", len(warnings)))
	for i, w := range warnings {
		if len(w) > 50 {
			w = w[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", w))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("WARNINGS", sb.String())
}

// PrintBatchSummary outputs the per-item outcome of a batch run.
func (p *Printer) PrintBatchSummary(result *types.BatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Processed: %d\n", result.TotalProcessed))
	sb.WriteString(fmt.Sprintf("Succeeded: %d\n", len(result.Successful)))
	sb.WriteString(fmt.Sprintf("Failed:    %d\n", len(result.Failed)))

	if len(result.Failed) > 0 {
		sb.WriteString("\n")
		count := min(len(result.Failed), maxItemsToShow)
		for i := 0; i < count; i++ {
			f := result.Failed[i]
			sb.WriteString(fmt.Sprintf("✗ %s: %s\n", f.FileName, f.Type))
		}
		if len(result.Failed) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more failures\n", len(result.Failed)-maxItemsToShow))
		}
	}

	p.printBox("BATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
