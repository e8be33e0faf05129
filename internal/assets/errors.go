package assets

import "errors"

// Sentinel errors for style loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetName = errors.New("invalid style name")
	ErrInvalidBasePath  = errors.New("invalid asset path")
	ErrAssetRead        = errors.New("failed to read style")

	// ErrPathTraversal is returned when a style file resolves outside the
	// asset directory, typically through a symlink.
	ErrPathTraversal = errors.New("style path escapes asset directory")
)
