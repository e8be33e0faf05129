// Package hints builds the "\n  hint: ..." suffixes the CLI appends to error
// messages it knows how to fix.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-man2html/internal/fileutil"
)

// IsInContainer reports whether the process runs in a Docker container.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ciEnvVars are set by the CI services whose runners lack a usable Chrome.
var ciEnvVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

func inCI() bool {
	for _, key := range ciEnvVars {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect returns hints for a browser that failed to start. In CI
// and containers ROD_BROWSER_BIN also disables the Chrome sandbox.
func ForBrowserConnect() string {
	var hints []string
	switch {
	case os.Getenv("ROD_BROWSER_BIN") != "":
	case inCI() || IsInContainer():
		hints = append(hints, "set ROD_BROWSER_BIN to the container's Chrome (disables the sandbox)")
	default:
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	hints = append(hints, "omit --pdf to write HTML without a browser")
	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for long pages, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-man2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-man2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnknownLanguage returns hints for unknown highlight languages.
func ForUnknownLanguage() string {
	return format("use --highlight auto or a Chroma lexer name such as sh, c, go, perl")
}

// ForNoInput returns hints when a directory holds no man pages.
func ForNoInput() string {
	return format("man pages end in .1 to .9, .man, .n or .l, optionally followed by .gz")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
