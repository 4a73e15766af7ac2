package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/syllabus-agent/internal/document"
	"github.com/jonathan/syllabus-agent/internal/extraction"
	"github.com/jonathan/syllabus-agent/internal/llm"
	"github.com/jonathan/syllabus-agent/internal/types"
)

// stubClient returns a fixed response for every call.
type stubClient struct {
	response string
	err      error
}

func (s *stubClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GenerateVisionJSON(context.Context, string, string, []byte) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GetModel(tier llm.ModelTier) string { return string(tier) }
func (s *stubClient) Close() error                       { return nil }

func newTestRunner(client llm.Client) *Runner {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRunner(
		document.NewNormalizer(document.Options{}),
		extraction.NewExtractor(client, logger),
		logger,
	)
}

func syllabusDoc() types.RawDocument {
	text := "Week 3: Assignment 1 due\nWeek 8: Midterm"
	return types.RawDocument{
		Content:  []byte(text),
		FileName: "syllabus.txt",
		MIMEType: "text/plain",
		Size:     int64(len(text)),
	}
}

const stubResponse = `{
	"course_info": {"name": "Intro to Go"},
	"assignments": [
		{"title": "Assignment 1", "week": 3, "type": "homework"},
		{"title": "Midterm", "week": 8, "type": "exam"}
	],
	"metadata": {"parsing_confidence": 0.9, "weeks_detected": 2}
}`

func TestRun(t *testing.T) {
	runner := newTestRunner(&stubClient{response: stubResponse})

	result, err := runner.Run(context.Background(), syllabusDoc(), RunOptions{
		Extraction: extraction.DefaultOptions(),
	})
	require.NoError(t, err)

	assert.Equal(t, "Intro to Go", result.Syllabus.CourseInfo.Name)
	assert.Len(t, result.Syllabus.Assignments, 2)
	assert.Equal(t, "syllabus.txt", result.Document.Metadata.OriginalName)
	assert.Nil(t, result.Conversion, "no semester start, no resolution")
	assert.Nil(t, result.Bounds)
}

func TestRunWithResolution(t *testing.T) {
	runner := newTestRunner(&stubClient{response: stubResponse})

	result, err := runner.Run(context.Background(), syllabusDoc(), RunOptions{
		Extraction:    extraction.DefaultOptions(),
		SemesterStart: "2024-09-02",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Conversion)
	require.Len(t, result.Conversion.Assignments, 2)
	assert.Equal(t, "2024-09-16", result.Conversion.Assignments[0].DueDate)
	assert.Equal(t, "2024-10-21", result.Conversion.Assignments[1].DueDate)
	assert.Equal(t, 2, result.Conversion.TotalConverted)
}

func TestRunWithBounds(t *testing.T) {
	runner := newTestRunner(&stubClient{response: stubResponse})

	result, err := runner.Run(context.Background(), syllabusDoc(), RunOptions{
		Extraction:    extraction.DefaultOptions(),
		SemesterStart: "2024-09-02",
		SemesterEnd:   "2024-10-04", // 5-week term; week 8 lands outside it
	})
	require.NoError(t, err)

	require.NotNil(t, result.Bounds)
	assert.Equal(t, 5, result.Bounds.SemesterWeeks)
	require.Len(t, result.Bounds.Issues, 1)
	assert.Equal(t, "Midterm", result.Bounds.Issues[0].Title)
}

func TestRunNormalizationFailure(t *testing.T) {
	runner := newTestRunner(&stubClient{response: stubResponse})

	_, err := runner.Run(context.Background(), types.RawDocument{
		FileName: "empty.txt",
		MIMEType: "text/plain",
	}, RunOptions{Extraction: extraction.DefaultOptions()})

	var perr *document.ProcessingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, document.ErrEmptyFile, perr.Type)
}

func TestRunExtractionFailure(t *testing.T) {
	runner := newTestRunner(&stubClient{err: errors.New("API key not valid")})

	_, err := runner.Run(context.Background(), syllabusDoc(), RunOptions{
		Extraction: extraction.DefaultOptions(),
	})

	var extErr *extraction.Error
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, extraction.ErrAuth, extErr.Type)
}
