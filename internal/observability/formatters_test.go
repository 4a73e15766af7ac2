package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/syllabus-agent/internal/types"
)

func TestPrintSyllabus(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSyllabus(&types.ParsedSyllabus{
		CourseInfo: types.CourseInfo{Name: "Intro to Go", Code: "CS 101", Instructor: "Dr. Pike"},
		Assignments: []types.ParsedAssignment{
			{Title: "Assignment 1", Week: 3, Type: types.TypeHomework},
			{Title: "Final", SpecificDate: "2024-12-16", Type: types.TypeExam},
		},
		Metadata: types.ParsingMetadata{ParsingConfidence: 0.9},
	})

	out := buf.String()
	assert.Contains(t, out, "PARSED SYLLABUS")
	assert.Contains(t, out, "Intro to Go")
	assert.Contains(t, out, "CS 101")
	assert.Contains(t, out, "Assignment 1")
	assert.Contains(t, out, "week 3")
}

func TestPrintSyllabusNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSyllabus(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSyllabusTruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	assignments := make([]types.ParsedAssignment, 8)
	for i := range assignments {
		assignments[i] = types.ParsedAssignment{Title: "Assignment", Week: i + 1, Type: types.TypeHomework}
	}

	NewPrinter(&buf).PrintSyllabus(&types.ParsedSyllabus{
		CourseInfo:  types.CourseInfo{Name: "Intro to Go"},
		Assignments: assignments,
	})

	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintConversion(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintConversion(&types.WeekConversionResult{
		Assignments: []types.AssignmentWithDate{
			{Title: "Assignment 1", DueDate: "2024-09-16", OriginalWeek: 3, Type: types.TypeHomework},
		},
		TotalConverted: 1,
	})

	out := buf.String()
	assert.Contains(t, out, "RESOLVED DUE DATES")
	assert.Contains(t, out, "2024-09-16")
	assert.Contains(t, out, "from week 3")
}

func TestPrintWarnings(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintWarnings([]string{"Low parsing confidence: 0.40"})

	out := buf.String()
	assert.Contains(t, out, "WARNINGS")
	assert.Contains(t, out, "Low parsing confidence")
}

func TestPrintWarningsEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintWarnings(nil)
	assert.Contains(t, buf.String(), "NO WARNINGS")
}

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocument(&types.NormalizedContent{
		Kind: types.KindText,
		Text: "Week 1",
		Metadata: types.DocumentMetadata{
			OriginalName: "syllabus.pdf",
			MIMEType:     "application/pdf",
			Size:         2048,
			WordCount:    400,
			PageCount:    3,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "NORMALIZED DOCUMENT")
	assert.Contains(t, out, "syllabus.pdf")
	assert.Contains(t, out, "Pages:    3")
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatchSummary(&types.BatchResult{
		TotalProcessed: 2,
		Successful:     []types.NormalizedContent{{Kind: types.KindText}},
		Failed: []types.BatchItemFailure{
			{FileName: "broken.docx", Type: "CORRUPTED_FILE"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "BATCH SUMMARY")
	assert.Contains(t, out, "broken.docx")
	assert.Contains(t, out, "CORRUPTED_FILE")
}
