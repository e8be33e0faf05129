package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: man2html [flags] <input>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert troff man pages to HTML (or PDF).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Man page file or directory (optional with -i or input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path>        Man page file or directory")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (stdout for one page)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <dur>       PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --record-all          Keep lines before .TH")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "  -s, --style <s>           Style name, CSS file, or inline CSS")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom style directory")
	fmt.Fprintln(w, "      --highlight <lang>    Highlight verbatim blocks (auto, sh, c, ...)")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style (default: github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf                 Write PDF instead of HTML")
	fmt.Fprintln(w, "      --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MAN2HTML_CONFIG, MAN2HTML_STYLE, MAN2HTML_TIMEOUT, MAN2HTML_INPUT_DIR,")
	fmt.Fprintln(w, "  MAN2HTML_OUTPUT_DIR, MAN2HTML_PAGE_SIZE, MAN2HTML_HIGHLIGHT, MAN2HTML_WORKERS")
}
