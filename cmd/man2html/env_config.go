package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-man2html/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // MAN2HTML_CONFIG: config file path
	Style      string        // MAN2HTML_STYLE: CSS style name or path
	Timeout    time.Duration // MAN2HTML_TIMEOUT: PDF generation timeout
	InputDir   string        // MAN2HTML_INPUT_DIR: default input directory
	OutputDir  string        // MAN2HTML_OUTPUT_DIR: default output directory
	PageSize   string        // MAN2HTML_PAGE_SIZE: a4, letter, legal
	Highlight  string        // MAN2HTML_HIGHLIGHT: lexer name or "auto"
	Workers    int           // MAN2HTML_WORKERS: parallel workers
}

// knownEnvVars lists valid MAN2HTML_* environment variables.
var knownEnvVars = map[string]bool{
	"MAN2HTML_CONFIG":     true,
	"MAN2HTML_STYLE":      true,
	"MAN2HTML_TIMEOUT":    true,
	"MAN2HTML_INPUT_DIR":  true,
	"MAN2HTML_OUTPUT_DIR": true,
	"MAN2HTML_PAGE_SIZE":  true,
	"MAN2HTML_HIGHLIGHT":  true,
	"MAN2HTML_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable durations and counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MAN2HTML_CONFIG"),
		Style:      os.Getenv("MAN2HTML_STYLE"),
		InputDir:   os.Getenv("MAN2HTML_INPUT_DIR"),
		OutputDir:  os.Getenv("MAN2HTML_OUTPUT_DIR"),
		PageSize:   os.Getenv("MAN2HTML_PAGE_SIZE"),
		Highlight:  os.Getenv("MAN2HTML_HIGHLIGHT"),
	}

	if timeout := os.Getenv("MAN2HTML_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("MAN2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes warnings for unrecognized MAN2HTML_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MAN2HTML_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment values to config fields that are
// still empty. Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.CSS.Style == "" {
		cfg.CSS.Style = env.Style
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.PageSize != "" && cfg.Page.Size == "" {
		cfg.Page.Size = env.PageSize
	}
	if env.Highlight != "" && cfg.Highlight.Language == "" {
		cfg.Highlight.Language = env.Highlight
		cfg.Highlight.Enabled = true
	}
	if env.Workers > 0 && cfg.Conversion.Workers == 0 {
		cfg.Conversion.Workers = env.Workers
	}
}
