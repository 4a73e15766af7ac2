// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock strips a markdown code fence from a model response. Models
// wrap JSON in ```json blocks even when instructed not to, sometimes with a
// line of prose before the fence; the fenced body wins over surrounding text.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	start := strings.Index(text, "```")
	if start < 0 {
		return text
	}

	body := strings.TrimPrefix(text[start+3:], "json")
	// Skip a potential language identifier on the fence line
	if idx := strings.Index(body, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(body[:idx])
		if firstLine != "" && len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {") {
			body = body[idx+1:]
		}
	}
	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}
