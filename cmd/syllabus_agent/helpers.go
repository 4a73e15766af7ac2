package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/syllabus-agent/internal/config"
	"github.com/jonathan/syllabus-agent/internal/document"
	"github.com/jonathan/syllabus-agent/internal/extraction"
	"github.com/jonathan/syllabus-agent/internal/llm"
	"github.com/jonathan/syllabus-agent/internal/pipeline"
	"github.com/jonathan/syllabus-agent/internal/schedule"
	"github.com/jonathan/syllabus-agent/internal/types"
)

// extensionMIMETypes maps file extensions to the media types the normalizer
// accepts. Extensions are the only type signal a CLI invocation has.
var extensionMIMETypes = map[string]string{
	".pdf":  document.MimePDF,
	".doc":  document.MimeDoc,
	".docx": document.MimeDocx,
	".odt":  document.MimeODT,
	".txt":  document.MimeText,
	".md":   document.MimeText,
	".jpg":  document.MimeJPEG,
	".jpeg": document.MimeJPEG,
	".png":  document.MimePNG,
	".gif":  document.MimeGIF,
}

// readRawDocument loads a file from disk into a RawDocument, deriving the
// media type from the extension.
func readRawDocument(path string) (types.RawDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.RawDocument{}, fmt.Errorf("failed to read input file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	mimeType, ok := extensionMIMETypes[ext]
	if !ok {
		return types.RawDocument{}, fmt.Errorf("unrecognized file extension %q", ext)
	}

	return types.RawDocument{
		Content:  content,
		FileName: filepath.Base(path),
		MIMEType: mimeType,
		Size:     int64(len(content)),
	}, nil
}

// resolveConfig merges the optional config file with environment defaults.
func resolveConfig(configPath string) (config.Config, error) {
	cfg := config.FromEnv()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// resolveAPIKey applies flag > config > environment precedence.
func resolveAPIKey(flagValue string, cfg config.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.APIKey != "" {
		return cfg.APIKey, nil
	}
	return "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
}

// modelConfig builds the model tier config from per-tier overrides.
func modelConfig(cfg config.Config) *llm.Config {
	mc := llm.DefaultConfig()
	if cfg.ModelLite != "" {
		mc = mc.WithModel(llm.TierLite, cfg.ModelLite)
	}
	if cfg.ModelStandard != "" {
		mc = mc.WithModel(llm.TierStandard, cfg.ModelStandard)
	}
	if cfg.ModelVision != "" {
		mc = mc.WithModel(llm.TierVision, cfg.ModelVision)
	}
	return mc
}

// newExtractor wires up a Gemini-backed extractor.
func newExtractor(ctx context.Context, apiKey string, cfg config.Config, logger *slog.Logger) (*extraction.Extractor, func(), error) {
	client, err := llm.NewGeminiClient(ctx, modelConfig(cfg), apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create model client: %w", err)
	}
	cleanup := func() { _ = client.Close() }
	return extraction.NewExtractor(client, logger), cleanup, nil
}

// extractionOptions applies config overrides on top of the defaults.
func extractionOptions(cfg config.Config) extraction.Options {
	opts := extraction.DefaultOptions()
	if cfg.MaxRetries > 0 {
		opts.MaxRetries = cfg.MaxRetries
	}
	if cfg.ConfidenceThreshold > 0 {
		opts.ConfidenceThreshold = cfg.ConfidenceThreshold
	}
	if cfg.IncludeSchedule {
		opts.IncludeSchedule = true
	}
	return opts
}

// newLogger builds the CLI logger; verbose mode lowers the level to debug.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// attachResolution fills in the week-to-date conversion and, when an end
// date is available, the semester bounds report.
func attachResolution(result *pipeline.RunResult, semesterStart, semesterEnd string, logger *slog.Logger) {
	result.Conversion = schedule.ConvertWeeksToDatesDetailed(result.Syllabus.Assignments, semesterStart)
	if semesterEnd == "" {
		return
	}
	bounds, err := schedule.CheckSemesterBounds(result.Syllabus.Assignments, semesterStart, semesterEnd)
	if err != nil {
		logger.Warn("semester bounds check skipped", "error", err)
		return
	}
	result.Bounds = bounds
}

// writeJSONOutput writes v as indented JSON to path, or stdout when path is
// empty.
func writeJSONOutput(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
