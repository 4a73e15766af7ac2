// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config is the CLI configuration, loadable from a JSON file. All fields are
// optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Extraction
	APIKey              string  `json:"api_key,omitempty"`                                              // Gemini API key
	MaxRetries          int     `json:"max_retries,omitempty" validate:"gte=0"`                         // Total attempt budget per document
	ConfidenceThreshold float64 `json:"confidence_threshold,omitempty" validate:"gte=0,lte=1"`          // Low-confidence warning cutoff
	IncludeSchedule     bool    `json:"include_schedule,omitempty"`                                     // Ask the model for class meeting times
	ModelLite           string  `json:"model_lite,omitempty"`                                           // Override for the lite model tier
	ModelStandard       string  `json:"model_standard,omitempty"`                                       // Override for the standard model tier
	ModelVision         string  `json:"model_vision,omitempty"`                                         // Override for the vision model tier

	// Documents
	MaxFileSize int64 `json:"max_file_size,omitempty" validate:"gte=0"` // Per-file byte limit
	MaxInFlight int   `json:"max_in_flight,omitempty" validate:"gte=0"` // Batch concurrency cap

	// Semester
	SemesterStart string `json:"semester_start,omitempty"` // YYYY-MM-DD anchor for week resolution
	SemesterEnd   string `json:"semester_end,omitempty"`   // YYYY-MM-DD, enables bounds checking

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for JS-rendered pages
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed progress information
}

var configValidator = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Only the API key is
// sourced from the environment; everything else comes from the file or flags.
func FromEnv() Config {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		key = os.Getenv("GOOGLE_API_KEY")
	}
	return Config{APIKey: key}
}

// Validate checks that the configuration has valid values. Required fields
// are left to CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: field %q fails constraint %q", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Config file values serve as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ModelLite == "" {
		result.ModelLite = defaults.ModelLite
	}
	if result.ModelStandard == "" {
		result.ModelStandard = defaults.ModelStandard
	}
	if result.ModelVision == "" {
		result.ModelVision = defaults.ModelVision
	}
	if result.SemesterStart == "" {
		result.SemesterStart = defaults.SemesterStart
	}
	if result.SemesterEnd == "" {
		result.SemesterEnd = defaults.SemesterEnd
	}

	if result.MaxRetries == 0 {
		result.MaxRetries = defaults.MaxRetries
	}
	if result.MaxFileSize == 0 {
		result.MaxFileSize = defaults.MaxFileSize
	}
	if result.MaxInFlight == 0 {
		result.MaxInFlight = defaults.MaxInFlight
	}
	if result.ConfidenceThreshold == 0 {
		result.ConfidenceThreshold = defaults.ConfidenceThreshold
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
