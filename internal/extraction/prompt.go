package extraction

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jonathan/syllabus-agent/internal/llm"
	"github.com/jonathan/syllabus-agent/internal/prompts"
)

const promptFile = "extraction.json"

// complexityThreshold is the character-plus-line score above which a syllabus
// is routed to the standard model tier instead of the lite one.
const complexityThreshold = 200

// BuildSystemPrompt assembles the extraction system prompt. When
// includeSchedule is false the class-schedule section is marked optional and
// the schedule field is dropped from the required JSON shape.
func BuildSystemPrompt(includeSchedule bool) string {
	system := prompts.MustGet(promptFile, "extract-syllabus-system")
	requirement := "skip this section and omit the schedule field"
	scheduleLine := ""
	if includeSchedule {
		requirement = "required if present in the syllabus"
		scheduleLine = "\n" + prompts.MustGet(promptFile, "extract-syllabus-schedule-line")
	}
	return prompts.Format(system, map[string]string{
		"ScheduleRequirement": requirement,
		"ScheduleLine":        scheduleLine,
	})
}

// BuildUserPrompt wraps the normalized syllabus text in the user message.
func BuildUserPrompt(syllabusText string) string {
	user := prompts.MustGet(promptFile, "extract-syllabus-user")
	return prompts.Format(user, map[string]string{
		"SyllabusText": syllabusText,
	})
}

// BuildVisionPrompt returns the combined instruction prompt used alongside an
// image part. Vision requests carry the full system prompt inline because the
// image replaces the user-message syllabus text.
func BuildVisionPrompt(includeSchedule bool) string {
	vision := prompts.MustGet(promptFile, "extract-syllabus-vision")
	return BuildSystemPrompt(includeSchedule) + "\n\n" + vision
}

// ChooseTier picks a model tier from a cheap complexity estimate of the
// normalized text: total length plus line count. Short, flat documents go to
// the lite tier.
func ChooseTier(text string) llm.ModelTier {
	complexity := len(text) + strings.Count(text, "\n")
	if complexity > complexityThreshold {
		return llm.TierStandard
	}
	return llm.TierLite
}

// decodeDataURL splits a base64 data URL into its image format and raw bytes.
// The format is the MIME subtype ("png", "jpeg"), which is what the model API
// expects for inline image parts.
func decodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URL: missing payload")
	}
	mimeType, _, _ := strings.Cut(meta, ";")
	_, format, ok := strings.Cut(mimeType, "/")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URL: bad MIME type %q", mimeType)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("malformed data URL: %w", err)
	}
	return format, data, nil
}
