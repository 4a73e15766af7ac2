package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/syllabus-agent/internal/config"
	"github.com/jonathan/syllabus-agent/internal/document"
	"github.com/jonathan/syllabus-agent/internal/llm"
)

func TestReadRawDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "syllabus.txt")
	require.NoError(t, os.WriteFile(path, []byte("Week 1: Intro"), 0644))

	doc, err := readRawDocument(path)
	require.NoError(t, err)

	assert.Equal(t, "syllabus.txt", doc.FileName)
	assert.Equal(t, document.MimeText, doc.MIMEType)
	assert.Equal(t, int64(13), doc.Size)
	assert.Equal(t, []byte("Week 1: Intro"), doc.Content)
}

func TestReadRawDocumentExtensions(t *testing.T) {
	tests := []struct {
		ext      string
		expected string
	}{
		{".pdf", document.MimePDF},
		{".docx", document.MimeDocx},
		{".doc", document.MimeDoc},
		{".odt", document.MimeODT},
		{".md", document.MimeText},
		{".PNG", document.MimePNG},
		{".jpeg", document.MimeJPEG},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			path := filepath.Join(dir, "file"+tt.ext)
			require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

			doc, err := readRawDocument(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc.MIMEType)
		})
	}
}

func TestReadRawDocumentUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := readRawDocument(path)
	assert.ErrorContains(t, err, "unrecognized file extension")
}

func TestReadRawDocumentMissingFile(t *testing.T) {
	_, err := readRawDocument(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestResolveAPIKey(t *testing.T) {
	key, err := resolveAPIKey("flag-key", config.Config{APIKey: "cfg-key"})
	require.NoError(t, err)
	assert.Equal(t, "flag-key", key, "flag wins over config")

	key, err = resolveAPIKey("", config.Config{APIKey: "cfg-key"})
	require.NoError(t, err)
	assert.Equal(t, "cfg-key", key)

	_, err = resolveAPIKey("", config.Config{})
	assert.ErrorContains(t, err, "API key is required")
}

func TestModelConfig(t *testing.T) {
	mc := modelConfig(config.Config{ModelStandard: "custom-standard"})

	assert.Equal(t, "custom-standard", mc.GetModel(llm.TierStandard))
	assert.Equal(t, "gemini-2.5-flash-lite", mc.GetModel(llm.TierLite), "unset tiers keep defaults")
}

func TestExtractionOptions(t *testing.T) {
	opts := extractionOptions(config.Config{MaxRetries: 5, ConfidenceThreshold: 0.7})
	assert.Equal(t, 5, opts.MaxRetries)
	assert.Equal(t, 0.7, opts.ConfidenceThreshold)

	defaults := extractionOptions(config.Config{})
	assert.Equal(t, 3, defaults.MaxRetries)
	assert.Equal(t, 0.7, defaults.ConfidenceThreshold)
}

func TestWriteJSONOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeJSONOutput(path, map[string]int{"weeks": 15}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 15, decoded["weeks"])
}
