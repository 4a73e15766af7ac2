package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAliases(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		expected map[string]any
	}{
		{
			name: "course_name becomes name",
			input: map[string]any{
				"course_info": map[string]any{"course_name": "Intro to Go"},
			},
			expected: map[string]any{"name": "Intro to Go"},
		},
		{
			name: "course_title becomes name",
			input: map[string]any{
				"course_info": map[string]any{"course_title": "Intro to Go"},
			},
			expected: map[string]any{"name": "Intro to Go"},
		},
		{
			name: "instructor_name becomes instructor",
			input: map[string]any{
				"course_info": map[string]any{"name": "Intro to Go", "instructor_name": "Dr. Pike"},
			},
			expected: map[string]any{"name": "Intro to Go", "instructor": "Dr. Pike"},
		},
		{
			name: "course_code becomes code",
			input: map[string]any{
				"course_info": map[string]any{"name": "Intro to Go", "course_code": "CS 101"},
			},
			expected: map[string]any{"name": "Intro to Go", "code": "CS 101"},
		},
		{
			name: "alias never overwrites canonical key",
			input: map[string]any{
				"course_info": map[string]any{"name": "Canonical", "course_name": "Alias"},
			},
			expected: map[string]any{"name": "Canonical"},
		},
		{
			name: "canonical keys pass through",
			input: map[string]any{
				"course_info": map[string]any{"name": "Intro to Go", "instructor": "Dr. Pike"},
			},
			expected: map[string]any{"name": "Intro to Go", "instructor": "Dr. Pike"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalizeAliases(tt.input)
			assert.Equal(t, tt.expected, tt.input["course_info"])
		})
	}
}

func TestNormalizeAliasesNoCourseInfo(t *testing.T) {
	data := map[string]any{"assignments": []any{}}
	normalizeAliases(data)
	assert.NotContains(t, data, "course_info")
}
