package fileutil

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// gzipExt marks compressed man pages, as installed under /usr/share/man.
const gzipExt = ".gz"

// extraManExts are non-numeric man page extensions (Tcl, local).
var extraManExts = map[string]bool{
	".man": true,
	".n":   true,
	".l":   true,
}

// IsManPage reports whether path has a man page extension: a section number
// (".1" to ".9", optionally with a suffix such as ".3p"), ".man", ".n" or
// ".l", each optionally followed by ".gz".
func IsManPage(path string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(strings.ToLower(path), gzipExt)))
	if extraManExts[ext] {
		return true
	}
	return len(ext) >= 2 && ext[1] >= '1' && ext[1] <= '9'
}

// ManPageName returns the base name of path without the ".gz" suffix and the
// section extension: "/usr/share/man/man1/ls.1.gz" gives "ls".
func ManPageName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), gzipExt)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ReadManPage reads a man page source file, transparently decompressing
// gzip files.
func ReadManPage(path string) (string, error) {
	reader, cleanup, err := openMaybeGzipped(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = cleanup() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("reading man page: %w", err)
	}
	return string(data), nil
}

// openMaybeGzipped opens path, wrapping it in a gzip reader when the name ends
// in ".gz". The cleanup function closes every opened reader.
func openMaybeGzipped(path string) (io.Reader, func() error, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, nil, fmt.Errorf("opening man page: %w", err)
	}

	if !strings.HasSuffix(strings.ToLower(path), gzipExt) {
		return f, f.Close, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("opening gzip stream: %w", err)
	}
	cleanup := func() error {
		gzErr := gz.Close()
		if err := f.Close(); err != nil {
			return err
		}
		return gzErr
	}
	return gz, cleanup, nil
}
