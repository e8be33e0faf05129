// Package fileutil holds the small file and path helpers shared by the
// converter and the CLI: man page discovery and reading, the temporary HTML
// file handed to the browser, and style argument classification.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrTempFile is returned when the temporary HTML file cannot be written.
var ErrTempFile = errors.New("cannot write temporary HTML file")

// maxLabelLength bounds the page label embedded in temp file names.
const maxLabelLength = 32

// WriteTempHTML writes an HTML document to a temporary file so the browser
// can load it from a file:// URL. label, usually "NAME(SECTION)", only names
// the file. The returned cleanup removes it.
func WriteTempHTML(content, label string) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", "man2html-"+tempLabel(label)+"-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrTempFile, err)
	}

	path = f.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("%w: %v", ErrTempFile, err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: %v", ErrTempFile, err)
	}
	return path, cleanup, nil
}

// tempLabel reduces label to [A-Za-z0-9_-], "page" when nothing is left.
func tempLabel(label string) string {
	var b strings.Builder
	for _, r := range label {
		if b.Len() == maxLabelLength {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	s := strings.Trim(b.String(), "_")
	if s == "" {
		return "page"
	}
	return s
}

// FileExists reports whether path names a regular file (not a directory).
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// StyleKind tells how a --style argument is interpreted.
type StyleKind int

const (
	StyleName   StyleKind = iota // built-in or asset-path style, e.g. "dark"
	StylePath                    // CSS file, e.g. "./man.css"
	StyleInline                  // CSS text, e.g. "h2 { color: red }"
)

// ClassifyStyle reports how s should be resolved. Anything with a "{" is CSS
// text; otherwise a path separator marks a file.
//
// Examples:
//   - "dark" -> StyleName
//   - "C:\styles\man.css" -> StylePath
//   - "pre { margin: 0 }" -> StyleInline
func ClassifyStyle(s string) StyleKind {
	switch {
	case strings.Contains(s, "{"):
		return StyleInline
	case strings.ContainsAny(s, "/\\"):
		return StylePath
	default:
		return StyleName
	}
}
