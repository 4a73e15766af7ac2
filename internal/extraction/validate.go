package extraction

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/syllabus-agent/internal/types"
)

//go:embed extraction_response.schema.json
var responseSchemaJSON []byte

var (
	responseSchemaOnce sync.Once
	responseSchema     *gojsonschema.Schema
	responseSchemaErr  error
)

func compiledResponseSchema() (*gojsonschema.Schema, error) {
	responseSchemaOnce.Do(func() {
		loader := gojsonschema.NewBytesLoader(responseSchemaJSON)
		responseSchema, responseSchemaErr = gojsonschema.NewSchema(loader)
	})
	return responseSchema, responseSchemaErr
}

// validateResponse checks a decoded model response for structural problems and
// returns every violation found, not just the first. The returned messages are
// what callers surface in INVALID_RESPONSE errors.
func validateResponse(data map[string]any) []string {
	var violations []string

	courseInfo, hasCourseInfo := data["course_info"].(map[string]any)
	if !hasCourseInfo {
		violations = append(violations, "Missing course_info")
	} else {
		name, _ := courseInfo["name"].(string)
		if name == "" {
			violations = append(violations, "Missing course name")
		}
	}

	rawAssignments, hasAssignments := data["assignments"]
	if !hasAssignments {
		violations = append(violations, "Missing assignments")
	} else if assignments, ok := rawAssignments.([]any); !ok {
		violations = append(violations, "Assignments must be an array")
	} else {
		violations = append(violations, validateAssignments(assignments)...)
	}

	metadata, hasMetadata := data["metadata"].(map[string]any)
	if !hasMetadata {
		violations = append(violations, "Missing metadata")
	} else {
		violations = append(violations, validateMetadata(metadata)...)
	}

	if len(violations) > 0 {
		return violations
	}

	// Structural checks passed; let the schema catch type-level problems the
	// checks above do not cover (date format, week minimum, schedule shape).
	schema, err := compiledResponseSchema()
	if err != nil {
		return []string{fmt.Sprintf("response schema unavailable: %v", err)}
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return []string{fmt.Sprintf("schema validation failed: %v", err)}
	}
	for _, desc := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return violations
}

func validateAssignments(assignments []any) []string {
	var violations []string
	for i, raw := range assignments {
		entry, ok := raw.(map[string]any)
		if !ok {
			violations = append(violations, fmt.Sprintf("Assignment %d: must be an object", i))
			continue
		}
		title, _ := entry["title"].(string)
		if title == "" {
			violations = append(violations, fmt.Sprintf("Assignment %d: missing title", i))
		}
		_, hasWeek := entry["week"].(float64)
		date, _ := entry["specific_date"].(string)
		if !hasWeek && date == "" {
			violations = append(violations, fmt.Sprintf("Assignment %d: missing week or specific_date", i))
		}
		kind, _ := entry["type"].(string)
		if kind == "" {
			violations = append(violations, fmt.Sprintf("Assignment %d: missing type", i))
		} else if !types.IsValidAssignmentType(kind) {
			violations = append(violations, fmt.Sprintf("Assignment %d: invalid type %q", i, kind))
		}
	}
	return violations
}

func validateMetadata(metadata map[string]any) []string {
	var violations []string
	confidence, ok := metadata["parsing_confidence"].(float64)
	if !ok {
		violations = append(violations, "parsing_confidence must be a number")
	} else if confidence < 0 || confidence > 1 {
		violations = append(violations, fmt.Sprintf("parsing_confidence must be between 0 and 1, got %v", confidence))
	}
	if _, ok := metadata["weeks_detected"].(float64); !ok {
		violations = append(violations, "weeks_detected must be a number")
	}
	return violations
}

// crossCheckWeeks recomputes weeks_detected from the assignments that actually
// carry week numbers. The counted value always wins over the model's claim;
// a disagreement becomes a warning on the parsed result.
func crossCheckWeeks(syllabus *types.ParsedSyllabus) string {
	counted := 0
	for _, a := range syllabus.Assignments {
		if a.Week > 0 {
			counted++
		}
	}
	claimed := syllabus.Metadata.WeeksDetected
	if counted == claimed {
		return ""
	}
	syllabus.Metadata.WeeksDetected = counted
	return fmt.Sprintf("Model reported %d weeks detected but %d assignments carry week numbers; corrected to the counted value", claimed, counted)
}
