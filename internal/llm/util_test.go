package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain JSON untouched", `{"name": "test"}`, `{"name": "test"}`},
		{"json fence", "```json\n{\"name\": \"test\"}\n```", `{"name": "test"}`},
		{"bare fence", "```\n{\"name\": \"test\"}\n```", `{"name": "test"}`},
		{"fence with language id", "```javascript\n{\"name\": \"test\"}\n```", `{"name": "test"}`},
		{"surrounding whitespace", "  \n{\"name\": \"test\"}\n  ", `{"name": "test"}`},
		{"json fence with trailing text", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"prose before the fence", "Here is the extracted syllabus:\n```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"inline fence", "```json{\"a\": 1}```", `{"a": 1}`},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestConfigGetModel(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierVision))
}

func TestConfigGetModelFallback(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierStandard: "custom-model"}}
	assert.Equal(t, "custom-model", cfg.GetModel(TierVision), "unconfigured tiers fall back to standard")

	cfg = &Config{Models: map[ModelTier]string{TierLite: "tiny-model"}}
	assert.Equal(t, "tiny-model", cfg.GetModel(TierStandard), "then to lite")

	cfg = &Config{Models: map[ModelTier]string{}}
	assert.Empty(t, cfg.GetModel(TierStandard))
}

func TestConfigWithModel(t *testing.T) {
	base := DefaultConfig()
	custom := base.WithModel(TierVision, "gemini-2.5-pro")

	assert.Equal(t, "gemini-2.5-pro", custom.GetModel(TierVision))
	assert.Equal(t, "gemini-2.5-flash", base.GetModel(TierVision), "original config is not mutated")
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), nil, "")
	assert.Error(t, err)
}
