package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/syllabus-agent/internal/types"
)

func TestCheckSemesterBounds(t *testing.T) {
	assignments := []types.ParsedAssignment{
		{Title: "Assignment 1", Week: 3, Type: types.TypeHomework},
		{Title: "Final project", Week: 18, Type: types.TypeProject},
		{Title: "Essay", SpecificDate: "2024-12-01", Type: types.TypeHomework},
	}

	// 15-week term: 2024-09-02 through 2024-12-13.
	report, err := CheckSemesterBounds(assignments, "2024-09-02", "2024-12-13")
	require.NoError(t, err)

	assert.Equal(t, 15, report.SemesterWeeks)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "Final project", report.Issues[0].Title)
	assert.Equal(t, 18, report.Issues[0].Week)
	assert.Equal(t, 15, report.Issues[0].SuggestedWeek)
	assert.Equal(t, "2024-12-30", report.Issues[0].ResolvedDate)
}

func TestCheckSemesterBoundsAllInTerm(t *testing.T) {
	assignments := []types.ParsedAssignment{
		{Title: "Quiz 1", Week: 2, Type: types.TypeQuiz},
		{Title: "Quiz 2", Week: 10, Type: types.TypeQuiz},
	}

	report, err := CheckSemesterBounds(assignments, "2024-09-02", "2024-12-13")
	require.NoError(t, err)
	assert.Empty(t, report.Issues)
}

func TestCheckSemesterBoundsBadDates(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"bad start", "start", "2024-12-13"},
		{"bad end", "2024-09-02", "end"},
		{"end before start", "2024-12-13", "2024-09-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckSemesterBounds(nil, tt.start, tt.end)
			assert.Error(t, err)
		})
	}
}
