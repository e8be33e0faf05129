package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-man2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxStyleLength       = 4096 // name, path, or short inline CSS
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
	MaxLanguageLength    = 50   // Chroma lexer name
	MaxDurationLength    = 20   // "90s", "2m30s"
)

// Margin bounds in inches, mirrored from the library's page settings.
const (
	minMargin = 0.25
	maxMargin = 3.0
)

// Config holds all configuration for man page conversion.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	CSS        CSSConfig        `yaml:"css"`
	Assets     AssetsConfig     `yaml:"assets"`
	Page       PageConfig       `yaml:"page"`
	Highlight  HighlightConfig  `yaml:"highlight"`
	PDF        PDFConfig        `yaml:"pdf"`
	Conversion ConversionConfig `yaml:"conversion"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = next to source)
}

// CSSConfig defines CSS styling options.
type CSSConfig struct {
	Style string `yaml:"style"` // Style name, CSS file path, or inline CSS (empty = default style)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 0.5)
}

// HighlightConfig defines syntax highlighting of verbatim blocks.
type HighlightConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Language string `yaml:"language"` // Chroma lexer, "auto" to detect (default)
	Style    string `yaml:"style"`    // Chroma style (default: "github")
}

// PDFConfig defines PDF output options.
type PDFConfig struct {
	Enabled bool `yaml:"enabled"` // Write PDF instead of HTML
}

// ConversionConfig defines batch and interpreter options.
type ConversionConfig struct {
	Workers   int    `yaml:"workers"`   // 0 = derive from GOMAXPROCS
	Timeout   string `yaml:"timeout"`   // Go duration, PDF rendering timeout per page
	RecordAll bool   `yaml:"recordAll"` // Keep lines preceding .TH
}

// TimeoutDuration parses Conversion.Timeout. Empty means zero.
func (c *ConversionConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: conversion.timeout %q: %v", ErrInvalidValue, c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: conversion.timeout must be positive, got %s", ErrInvalidValue, c.Timeout)
	}
	return d, nil
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("css.style", c.CSS.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if err := c.validatePage(); err != nil {
		return err
	}

	if err := validateFieldLength("highlight.language", c.Highlight.Language, MaxLanguageLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxLanguageLength); err != nil {
		return err
	}

	if c.Conversion.Workers < 0 {
		return fmt.Errorf("%w: conversion.workers must be >= 0, got %d", ErrInvalidValue, c.Conversion.Workers)
	}
	if err := validateFieldLength("conversion.timeout", c.Conversion.Timeout, MaxDurationLength); err != nil {
		return err
	}
	if _, err := c.Conversion.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// validatePage checks the PDF page settings. Empty values mean defaults.
func (c *Config) validatePage() error {
	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}

	switch strings.ToLower(c.Page.Size) {
	case "", "letter", "a4", "legal":
	default:
		return fmt.Errorf("%w: page.size %q (must be letter, a4, or legal)", ErrInvalidValue, c.Page.Size)
	}

	switch strings.ToLower(c.Page.Orientation) {
	case "", "portrait", "landscape":
	default:
		return fmt.Errorf("%w: page.orientation %q (must be portrait or landscape)", ErrInvalidValue, c.Page.Orientation)
	}

	if c.Page.Margin != 0 && (c.Page.Margin < minMargin || c.Page.Margin > maxMargin) {
		return fmt.Errorf("%w: page.margin %.2f (must be between %.2f and %.2f)", ErrInvalidValue, c.Page.Margin, minMargin, maxMargin)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: HTML output, default style,
// no highlighting, automatic worker count.
func DefaultConfig() *Config {
	return &Config{
		Input:      InputConfig{DefaultDir: ""},
		Output:     OutputConfig{DefaultDir: ""},
		CSS:        CSSConfig{Style: ""},
		Assets:     AssetsConfig{BasePath: ""},
		Highlight:  HighlightConfig{Enabled: false},
		PDF:        PDFConfig{Enabled: false},
		Conversion: ConversionConfig{Workers: 0},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// ./NAME.yaml, ./NAME.yml, then the same names under the user config
// directory's go-man2html folder.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-man2html", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
