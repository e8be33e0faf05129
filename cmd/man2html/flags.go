package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by every invocation.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds PDF page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// highlightFlags holds verbatim block highlighting flags.
type highlightFlags struct {
	language string // "" = disabled, "auto" = detect
	style    string
}

// cliFlags holds all flags for a conversion run.
type cliFlags struct {
	common    commonFlags
	input     string
	output    string
	style     string
	assetPath string
	workers   int
	timeout   string
	pdf       bool
	recordAll bool
	version   bool
	page      pageFlags
	highlight highlightFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVar(&f.size, "page-size", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addHighlightFlags adds highlighting flags to a FlagSet.
func addHighlightFlags(fs *flag.FlagSet, f *highlightFlags) {
	fs.StringVar(&f.language, "highlight", "", "highlight verbatim blocks: auto or a Chroma lexer")
	fs.StringVar(&f.style, "highlight-style", "", "Chroma style for highlighting (default: github)")
}

// parseFlags parses command line arguments (without the program name) and
// returns the flags plus positional args. Parse errors are reported to errOut.
func parseFlags(args []string, errOut io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("man2html", flag.ContinueOnError)
	fs.SetOutput(errOut)
	f := &cliFlags{}

	// I/O flags
	fs.StringVarP(&f.input, "input", "i", "", "man page file or directory")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (stdout for one page)")
	fs.StringVarP(&f.style, "style", "s", "", "CSS style name, file path, or inline CSS")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom style directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.pdf, "pdf", false, "write PDF instead of HTML")
	fs.BoolVar(&f.recordAll, "record-all", false, "keep lines before .TH")
	fs.BoolVar(&f.version, "version", false, "show version information")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addHighlightFlags(fs, &f.highlight)

	// Usage is printed by the caller on flag.ErrHelp.
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
