package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles/*
var styles embed.FS

// styleExt is the file extension of style assets.
const styleExt = ".css"

// EmbeddedLoader loads styles compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS style from embedded assets by name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + styleExt)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// ListStyles returns the names of the embedded styles.
func (e *EmbeddedLoader) ListStyles() ([]string, error) {
	entries, err := fs.ReadDir(styles, "styles")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return styleNames(entries), nil
}

// styleNames extracts sorted style names from directory entries.
func styleNames(entries []fs.DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), styleExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), styleExt))
	}
	sort.Strings(names)
	return names
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
