package fileutil_test

// Notes:
// - TestWriteTempHTML_CreateTempError changes TMPDIR and cannot run in parallel.
// - The WriteString and Close error branches of WriteTempHTML are not covered:
//   forcing disk write failures is platform-specific.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-man2html/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteTempHTML - Temporary HTML file for the browser
// ---------------------------------------------------------------------------

func TestWriteTempHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		label      string
		wantPrefix string
	}{
		{
			name:       "page label",
			content:    "<html><body><h1>LS (1)</h1></body></html>",
			label:      "LS(1)",
			wantPrefix: "man2html-LS_1-",
		},
		{
			name:       "empty label",
			content:    "<p>x</p>",
			label:      "",
			wantPrefix: "man2html-page-",
		},
		{
			name:       "path separators are replaced",
			content:    "",
			label:      "../etc/passwd",
			wantPrefix: "man2html-etc_passwd-",
		},
		{
			name:       "unicode content",
			content:    "<p>caf\u00e9, na\u00efve</p>",
			label:      "caf\u00e9",
			wantPrefix: "man2html-caf-",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, cleanup, err := fileutil.WriteTempHTML(tt.content, tt.label)
			if err != nil {
				t.Fatalf("WriteTempHTML() error = %v", err)
			}
			defer cleanup()

			base := filepath.Base(path)
			if !strings.HasPrefix(base, tt.wantPrefix) {
				t.Errorf("file name %q, want prefix %q", base, tt.wantPrefix)
			}
			if !strings.HasSuffix(base, ".html") {
				t.Errorf("file name %q, want .html suffix", base)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading temp file: %v", err)
			}
			if string(data) != tt.content {
				t.Errorf("content = %q, want %q", data, tt.content)
			}
		})
	}
}

func TestWriteTempHTML_LongLabelIsTruncated(t *testing.T) {
	t.Parallel()

	path, cleanup, err := fileutil.WriteTempHTML("", strings.Repeat("x", 100))
	if err != nil {
		t.Fatalf("WriteTempHTML() error = %v", err)
	}
	defer cleanup()

	want := "man2html-" + strings.Repeat("x", 32) + "-"
	if base := filepath.Base(path); !strings.HasPrefix(base, want) || strings.HasPrefix(base, want+"x") {
		t.Errorf("file name %q, want label truncated to 32 characters", base)
	}
}

func TestWriteTempHTML_Cleanup(t *testing.T) {
	t.Parallel()

	path, cleanup, err := fileutil.WriteTempHTML("<p>x</p>", "LS(1)")
	if err != nil {
		t.Fatalf("WriteTempHTML() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("temp file missing before cleanup: %v", err)
	}

	cleanup()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("temp file still exists after cleanup at %s", path)
	}
}

// NOTE: This test modifies TMPDIR and cannot run in parallel.
func TestWriteTempHTML_CreateTempError(t *testing.T) {
	t.Setenv("TMPDIR", "/nonexistent/path/that/does/not/exist")

	_, cleanup, err := fileutil.WriteTempHTML("<p>x</p>", "LS(1)")
	if cleanup != nil {
		defer cleanup()
	}
	if !errors.Is(err, fileutil.ErrTempFile) {
		t.Errorf("WriteTempHTML() error = %v, want ErrTempFile", err)
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - Regular file check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	page := filepath.Join(tempDir, "ls.1")
	if err := os.WriteFile(page, []byte(".TH LS 1\n"), 0o644); err != nil {
		t.Fatalf("writing page: %v", err)
	}
	dir := filepath.Join(tempDir, "man1")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", page, true},
		{"directory", dir, false},
		{"nonexistent path", filepath.Join(tempDir, "missing.1"), false},
		{"empty path", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestClassifyStyle - --style argument interpretation
// ---------------------------------------------------------------------------

func TestClassifyStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  fileutil.StyleKind
	}{
		{"built-in name", "dark", fileutil.StyleName},
		{"hyphenated name", "my-style", fileutil.StyleName},
		{"name with dots", "name.with.dots", fileutil.StyleName},
		{"empty string", "", fileutil.StyleName},
		{"relative path", "./custom.css", fileutil.StylePath},
		{"parent path", "../shared/man.css", fileutil.StylePath},
		{"absolute path", "/etc/man2html/man.css", fileutil.StylePath},
		{"windows path", "C:\\styles\\man.css", fileutil.StylePath},
		{"inline rule", "h2 { color: red }", fileutil.StyleInline},
		{"inline rule with url path", "body { background: url(img/bg.png) }", fileutil.StyleInline},
		{"unterminated rule", "pre {", fileutil.StyleInline},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.ClassifyStyle(tt.input); got != tt.want {
				t.Errorf("ClassifyStyle(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
