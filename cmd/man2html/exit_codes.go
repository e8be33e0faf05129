package main

import (
	"errors"
	"os"

	man2html "github.com/alnah/go-man2html"
	"github.com/alnah/go-man2html/internal/config"
)

// Exit codes for the man2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with %w.
// Aggregated batch errors match when any of their parts matches.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, man2html.ErrBrowserConnect) ||
		errors.Is(err, man2html.ErrPageCreate) ||
		errors.Is(err, man2html.ErrPageLoad) ||
		errors.Is(err, man2html.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadManPage) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, man2html.ErrEmptySource) ||
		errors.Is(err, man2html.ErrInvalidPageSize) ||
		errors.Is(err, man2html.ErrInvalidOrientation) ||
		errors.Is(err, man2html.ErrInvalidMargin) ||
		errors.Is(err, man2html.ErrUnknownLanguage) ||
		errors.Is(err, man2html.ErrStyleNotFound) ||
		errors.Is(err, man2html.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
