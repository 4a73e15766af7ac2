package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	prompt, err := Get("extraction.json", "extract-syllabus-system")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Week Number Extraction")
}

func TestGetMissingKey(t *testing.T) {
	_, err := Get("extraction.json", "no-such-prompt")
	assert.Error(t, err)
}

func TestGetMissingFile(t *testing.T) {
	_, err := Get("missing.json", "any")
	assert.Error(t, err)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("extraction.json", "no-such-prompt")
	})
}

func TestFormat(t *testing.T) {
	result := Format("Parse {{.SyllabusText}} for {{.Course}}", map[string]string{
		"SyllabusText": "Week 1",
		"Course":       "CS 101",
	})
	assert.Equal(t, "Parse Week 1 for CS 101", result)
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "yes"})
	assert.Equal(t, "yes and {{.Unknown}}", result)
}

func TestList(t *testing.T) {
	keys, err := List("extraction.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "extract-syllabus-system")
	assert.Contains(t, keys, "extract-syllabus-user")
	assert.Contains(t, keys, "extract-syllabus-vision")
}

func TestCacheReload(t *testing.T) {
	ClearCache()
	first, err := Get("extraction.json", "extract-syllabus-user")
	require.NoError(t, err)

	second, err := Get("extraction.json", "extract-syllabus-user")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
