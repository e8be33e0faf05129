package man2html

import (
	"errors"

	"github.com/alnah/go-man2html/internal/assets"
	"github.com/alnah/go-man2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptySource    = errors.New("man page source cannot be empty")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Highlighting errors.
	ErrUnknownLanguage = pipeline.ErrUnknownLanguage

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
