// Package man2html converts troff man pages to standalone HTML documents,
// with optional PDF export through headless Chrome.
//
// # Quick Start
//
// Create a converter, convert a man page, and close when done:
//
//	conv, err := man2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, man2html.Input{
//	    Source: ".TH HELLO 1\n.SH NAME\nhello \\- say hello\n",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.1.html", result.HTML, 0644)
//
// The result also carries the page name and section declared by .TH and the
// number of table of contents entries.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Source splitting (CRLF and CR normalized to LF)
//  2. troff interpretation: macros, font escapes, literals, links, table of
//     contents and title banners (internal/troff)
//  3. Optional highlighting of verbatim (.Vb/.Ve) blocks via Chroma
//  4. Optional PDF rendering via headless Chrome (go-rod)
//
// Every conversion uses a fresh interpreter, so no state leaks between pages.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := man2html.NewConverter(
//	    man2html.WithTimeout(2 * time.Minute),
//	    man2html.WithStyle("dark"),
//	    man2html.WithAssetPath("/path/to/custom/assets"),
//	    man2html.WithHighlightStyle("monokai"),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, man2html.Input{
//	    Source:    content,
//	    CSS:       "body { max-width: 60em; }",
//	    Highlight: &man2html.Highlight{Language: "auto"},
//	    Page:      &man2html.PageSettings{Size: "a4"},
//	    PDF:       true,
//	})
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to manage multiple browser instances:
//
//	pool := man2html.NewConverterPool(4)
//	defer pool.Close()
//
//	conv := pool.Acquire()
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
//
// # Custom Styles
//
// Built-in styles are "default", "dark" and "print". A directory passed to
// WithAssetPath overrides or extends them:
//
//	assets/
//	└── styles/
//	    └── custom.css
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
// Use ROD_BROWSER_BIN to specify a custom Chrome binary; the sandbox is
// disabled when it is set or when CI=true.
package man2html
