package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// stylesSubdir is looked up first inside an asset path.
const stylesSubdir = "styles"

// FilesystemLoader loads {dir}/{name}.css, where dir is {basePath}/styles when
// that directory exists and basePath itself otherwise. Both a tree laid out
// like the built-in assets and a flat directory of style sheets work.
type FilesystemLoader struct {
	dir string // absolute, symlinks resolved
}

// NewFilesystemLoader creates a FilesystemLoader for basePath.
// Returns ErrInvalidBasePath unless basePath is a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	dir, err := resolveDir(basePath)
	if err != nil {
		return nil, err
	}
	if sub, err := resolveDir(filepath.Join(dir, stylesSubdir)); err == nil {
		dir = sub
	}
	return &FilesystemLoader{dir: dir}, nil
}

// resolveDir returns the absolute real path of a readable directory.
func resolveDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, abs)
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return "", fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, abs)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return "", fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}
	return abs, nil
}

// Dir returns the directory styles are read from.
func (f *FilesystemLoader) Dir() string {
	return f.dir
}

// LoadStyle loads {dir}/{name}.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.dir, name+styleExt)
	if err := f.contains(path); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- contained in dir
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// ListStyles returns the names of the .css files in dir.
func (f *FilesystemLoader) ListStyles() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return styleNames(entries), nil
}

// contains rejects paths that resolve outside dir. A missing file keeps its
// unresolved path and fails later as ErrStyleNotFound.
func (f *FilesystemLoader) contains(path string) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	// The trailing separator rejects siblings such as /base/stylesevil.
	if !strings.HasPrefix(path, f.dir+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrPathTraversal, path)
	}
	return nil
}

var _ AssetLoader = (*FilesystemLoader)(nil)
