package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/syllabus-agent/internal/llm"
)

func TestBuildSystemPrompt(t *testing.T) {
	withSchedule := BuildSystemPrompt(true)
	withoutSchedule := BuildSystemPrompt(false)

	assert.Contains(t, withSchedule, `"schedule":`)
	assert.NotContains(t, withoutSchedule, `"schedule":`)
	assert.Contains(t, withoutSchedule, "omit the schedule field")

	// No unexpanded placeholders may leak into the prompt.
	for _, prompt := range []string{withSchedule, withoutSchedule} {
		assert.NotContains(t, prompt, "{{.")
	}
}

func TestBuildUserPrompt(t *testing.T) {
	prompt := BuildUserPrompt("Week 3: Assignment 1 due")

	assert.Contains(t, prompt, "Week 3: Assignment 1 due")
	assert.NotContains(t, prompt, "{{.")
}

func TestBuildVisionPrompt(t *testing.T) {
	prompt := BuildVisionPrompt(true)

	assert.Contains(t, prompt, "syllabus image")
	assert.Contains(t, prompt, "Week Number Extraction", "vision requests carry the full instructions")
}

func TestChooseTier(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected llm.ModelTier
	}{
		{"short text uses lite", "Week 1: Intro", llm.TierLite},
		{"empty text uses lite", "", llm.TierLite},
		{"long text uses standard", strings.Repeat("Week 1: Assignment due. ", 20), llm.TierStandard},
		{"many lines push past the threshold", strings.Repeat("week\n", 50), llm.TierStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ChooseTier(tt.text))
		})
	}
}

func TestDecodeDataURL(t *testing.T) {
	format, data, err := decodeDataURL("data:image/png;base64,iVBORw==")
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, data)
}

func TestDecodeDataURLErrors(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"not a data url", "https://example.edu/syllabus.png"},
		{"missing payload", "data:image/png;base64"},
		{"bad mime type", "data:imagepng;base64,aGk="},
		{"invalid base64", "data:image/png;base64,!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decodeDataURL(tt.url)
			assert.Error(t, err)
		})
	}
}
