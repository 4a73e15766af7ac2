// Package extraction turns normalized syllabus content into structured data
// by driving a generative model through a retry-and-validate loop.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/syllabus-agent/internal/document"
	"github.com/jonathan/syllabus-agent/internal/llm"
	"github.com/jonathan/syllabus-agent/internal/types"
)

// Defaults for extraction options.
const (
	DefaultMaxRetries          = 3
	DefaultConfidenceThreshold = 0.7
)

// Options tunes one extraction run. MaxRetries is the total attempt budget,
// including the first call.
type Options struct {
	IncludeSchedule     bool    `validate:"-"`
	ConfidenceThreshold float64 `validate:"gte=0,lte=1"`
	MaxRetries          int     `validate:"gte=1"`
}

// DefaultOptions returns the standard extraction options.
func DefaultOptions() Options {
	return Options{
		IncludeSchedule:     true,
		ConfidenceThreshold: DefaultConfidenceThreshold,
		MaxRetries:          DefaultMaxRetries,
	}
}

var optionsValidator = validator.New()

// Extractor orchestrates model calls, response validation, and retries.
type Extractor struct {
	client  llm.Client
	sleeper Sleeper
	logger  *slog.Logger
}

// NewExtractor creates an Extractor on top of a model client.
func NewExtractor(client llm.Client, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		client:  client,
		sleeper: realSleeper{},
		logger:  logger,
	}
}

// Extract runs the full extraction loop over one normalized document and
// returns the parsed syllabus. On failure the returned error is always an
// *Error carrying the taxonomy type of the last attempt.
func (e *Extractor) Extract(ctx context.Context, content *types.NormalizedContent, opts Options) (*types.ParsedSyllabus, error) {
	if err := optionsValidator.Struct(opts); err != nil {
		return nil, &Error{Type: ErrInvalidResponse, Message: fmt.Sprintf("invalid extraction options: %v", err)}
	}

	start := time.Now()
	state := &retryState{maxAttempts: opts.MaxRetries}

	for {
		state.attempt++
		raw, extErr := e.attempt(ctx, content, opts)
		if extErr == nil {
			syllabus, parseErr := e.decode(raw)
			if parseErr == nil {
				e.finalize(syllabus, content, opts, start)
				e.logger.Info("extraction succeeded",
					"file", content.Metadata.OriginalName,
					"attempt", state.attempt,
					"confidence", syllabus.Metadata.ParsingConfidence,
					"assignments", len(syllabus.Assignments))
				return syllabus, nil
			}
			extErr = parseErr
		}

		if !state.recordFailure(extErr) {
			e.logger.Error("extraction failed",
				"file", content.Metadata.OriginalName,
				"attempt", state.attempt,
				"error_type", string(extErr.Type),
				"error", extErr.Message)
			return nil, extErr
		}

		e.logger.Warn("extraction attempt failed, retrying",
			"file", content.Metadata.OriginalName,
			"attempt", state.attempt,
			"max_attempts", state.maxAttempts,
			"error_type", string(extErr.Type))
		if err := state.wait(ctx, e.sleeper); err != nil {
			return nil, &Error{Type: ErrAPI, Message: "extraction cancelled while waiting to retry", Cause: err}
		}
	}
}

// attempt makes a single model call and returns the raw response text.
func (e *Extractor) attempt(ctx context.Context, content *types.NormalizedContent, opts Options) (string, *Error) {
	var raw string
	var err error
	switch content.Kind {
	case types.KindImage:
		format, data, decErr := decodeDataURL(content.EncodedPayload)
		if decErr != nil {
			return "", &Error{Type: ErrInvalidResponse, Message: "image payload is not a valid data URL", Cause: decErr}
		}
		raw, err = e.client.GenerateVisionJSON(ctx, BuildVisionPrompt(opts.IncludeSchedule), format, data)
	default:
		prompt := BuildSystemPrompt(opts.IncludeSchedule) + "\n\n" + BuildUserPrompt(content.Text)
		raw, err = e.client.GenerateJSON(ctx, prompt, ChooseTier(content.Text))
	}
	if err != nil {
		return "", classifyServiceError(err)
	}
	return raw, nil
}

// decode parses and validates the raw model response.
func (e *Extractor) decode(raw string) (*types.ParsedSyllabus, *Error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, &Error{Type: ErrParsing, Message: "model response is not valid JSON", Cause: err}
	}

	normalizeAliases(data)

	if violations := validateResponse(data); len(violations) > 0 {
		return nil, &Error{
			Type:       ErrInvalidResponse,
			Message:    "model response failed validation",
			Violations: violations,
		}
	}

	// Round-trip through encoding/json to land in the typed structure.
	canonical, err := json.Marshal(data)
	if err != nil {
		return nil, &Error{Type: ErrParsing, Message: "failed to re-encode model response", Cause: err}
	}
	var syllabus types.ParsedSyllabus
	if err := json.Unmarshal(canonical, &syllabus); err != nil {
		return nil, &Error{Type: ErrParsing, Message: "model response does not match the expected structure", Cause: err}
	}
	return &syllabus, nil
}

// finalize stamps run metadata and quality warnings onto the parsed result.
func (e *Extractor) finalize(syllabus *types.ParsedSyllabus, content *types.NormalizedContent, opts Options, start time.Time) {
	syllabus.Metadata.OriginalFormat = formatLabel(content)
	syllabus.Metadata.ProcessingTimeMs = time.Since(start).Milliseconds()

	if content.Kind == types.KindImage {
		syllabus.Metadata.Warnings = append(syllabus.Metadata.Warnings,
			"Parsed from image - accuracy may vary")
	}
	if syllabus.Metadata.ParsingConfidence < opts.ConfidenceThreshold {
		syllabus.Metadata.Warnings = append(syllabus.Metadata.Warnings,
			fmt.Sprintf("Low parsing confidence: %.2f", syllabus.Metadata.ParsingConfidence))
	}
	if warning := crossCheckWeeks(syllabus); warning != "" {
		syllabus.Metadata.Warnings = append(syllabus.Metadata.Warnings, warning)
	}
}

// formatLabel reports the human-readable source format for metadata.
func formatLabel(content *types.NormalizedContent) string {
	switch content.Metadata.MIMEType {
	case document.MimePDF:
		return "pdf"
	case document.MimeDocx:
		return "docx"
	case document.MimeDoc:
		return "doc"
	case document.MimeODT:
		return "odt"
	case document.MimeText:
		return "text"
	case document.MimeJPEG, document.MimePNG, document.MimeGIF:
		return "image"
	default:
		if content.Kind == types.KindImage {
			return "image"
		}
		return "text"
	}
}
