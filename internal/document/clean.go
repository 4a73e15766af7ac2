package document

import (
	"regexp"
	"strings"
)

var (
	reWhitespace   = regexp.MustCompile(`[ \t]+`)
	reBlankLines   = regexp.MustCompile(`\n{3,}`)
	reControlChars = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")
)

// quoteNormalizations maps typographic characters that extractors and OCR
// commonly emit to their plain ASCII equivalents.
var quoteNormalizations = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
	" ", " ", // non-breaking space
)

// CleanExtractedText normalizes the raw output of a format-specific
// extractor: whitespace runs collapse to single spaces, three or more
// consecutive newlines collapse to two, control characters other than
// newline and tab are stripped, curly quotes and non-breaking spaces are
// normalized, and the result is trimmed.
func CleanExtractedText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = quoteNormalizations.Replace(text)
	text = reControlChars.ReplaceAllString(text, "")
	text = reWhitespace.ReplaceAllString(text, " ")
	text = reBlankLines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// CountWords returns the number of whitespace-delimited non-empty tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
