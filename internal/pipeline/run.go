// Package pipeline composes document normalization, model extraction, and
// week resolution into one end-to-end run.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/jonathan/syllabus-agent/internal/document"
	"github.com/jonathan/syllabus-agent/internal/extraction"
	"github.com/jonathan/syllabus-agent/internal/schedule"
	"github.com/jonathan/syllabus-agent/internal/types"
)

// RunOptions configures one pipeline run.
type RunOptions struct {
	Extraction extraction.Options
	// SemesterStart enables week-to-date resolution when set (YYYY-MM-DD).
	SemesterStart string
	// SemesterEnd additionally enables semester bounds checking.
	SemesterEnd string
}

// RunResult collects the artifacts of a pipeline run. Conversion and Bounds
// are nil when the corresponding semester dates were not provided.
type RunResult struct {
	Document   types.NormalizedContent     `json:"document"`
	Syllabus   *types.ParsedSyllabus       `json:"syllabus"`
	Conversion *types.WeekConversionResult `json:"conversion,omitempty"`
	Bounds     *schedule.BoundsReport      `json:"bounds,omitempty"`
}

// Runner drives documents through the full pipeline.
type Runner struct {
	normalizer *document.Normalizer
	extractor  *extraction.Extractor
	logger     *slog.Logger
}

// NewRunner assembles a Runner from its two stages.
func NewRunner(normalizer *document.Normalizer, extractor *extraction.Extractor, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{normalizer: normalizer, extractor: extractor, logger: logger}
}

// Run normalizes one document, extracts its structure, and resolves week
// references when a semester start is configured.
func (r *Runner) Run(ctx context.Context, doc types.RawDocument, opts RunOptions) (*RunResult, error) {
	r.logger.Info("pipeline run started", "file", doc.FileName, "mime_type", doc.MIMEType, "size", doc.Size)

	content, err := r.normalizer.Process(doc)
	if err != nil {
		r.logger.Error("normalization failed", "file", doc.FileName, "error", err)
		return nil, err
	}

	syllabus, err := r.extractor.Extract(ctx, content, opts.Extraction)
	if err != nil {
		return nil, err
	}

	result := &RunResult{Document: *content, Syllabus: syllabus}

	if opts.SemesterStart != "" {
		result.Conversion = schedule.ConvertWeeksToDatesDetailed(syllabus.Assignments, opts.SemesterStart)
		r.logger.Info("week resolution finished",
			"file", doc.FileName,
			"converted", result.Conversion.TotalConverted,
			"warnings", len(result.Conversion.Warnings))
	}
	if opts.SemesterStart != "" && opts.SemesterEnd != "" {
		bounds, err := schedule.CheckSemesterBounds(syllabus.Assignments, opts.SemesterStart, opts.SemesterEnd)
		if err != nil {
			r.logger.Warn("semester bounds check skipped", "file", doc.FileName, "error", err)
		} else {
			result.Bounds = bounds
		}
	}

	return result, nil
}
