package troff

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// DocumentInfo is the metadata declared by .TH. Missing fields are empty.
type DocumentInfo struct {
	Name    string
	Section string
	Date    string
	Version string
}

// label renders "NAME (SECTION)".
func (i DocumentInfo) label() string {
	return fmt.Sprintf("%s (%s)", i.Name, i.Section)
}

// Manual returns the conventional manual title for the section number.
func (i DocumentInfo) Manual() string {
	if i.Section != "" {
		if title, ok := manualTitles[i.Section[0]]; ok {
			return title
		}
	}
	return defaultManualTitle
}

const defaultManualTitle = "General Commands Manual"

var manualTitles = map[byte]string{
	'1': "General Commands Manual",
	'2': "System Calls Manual",
	'3': "Library Functions Manual",
	'4': "Kernel Interfaces Manual",
	'5': "File Formats Manual",
	'6': "Games Manual",
	'7': "Miscellaneous Information Manual",
	'8': "System Manager's Manual",
}

const titleBanner = `<div><h1 class="left-block">%s</h1><h1 class="center-block">%s</h1><h1 class="right-block">%s</h1></div>`

func (i DocumentInfo) headerBanner() string {
	return fmt.Sprintf(titleBanner, i.label(), i.Manual(), i.label())
}

func (i DocumentInfo) footerBanner() string {
	return fmt.Sprintf(titleBanner, i.Version, i.Date, i.label())
}

// declareTitle handles .TH. It opens the recording gate; metadata is taken
// from the first declaration only.
func (t *Transducer) declareTitle(args string) {
	t.recording = true
	if t.titled {
		return
	}
	t.titled = true

	fields := splitTitleArgs(args)
	t.info = DocumentInfo{
		Name:    fields[0],
		Section: fields[1],
		Date:    fields[2],
		Version: fields[3],
	}
	t.pageTitle = t.info.headerBanner()
}

// splitTitleArgs tokenizes .TH arguments with shell quoting rules and pads
// the result to exactly four fields. Unbalanced quotes fall back to
// whitespace splitting.
func splitTitleArgs(args string) [4]string {
	tokens, err := shlex.Split(args)
	if err != nil {
		tokens = strings.Fields(args)
	}
	var fields [4]string
	copy(fields[:], tokens)
	return fields
}

const documentHeadStart = `
<html>
  <head>
    <meta charset="utf-8" />
    <style>
      * {
        font-size: 10pt;
      }
      .left-block {
        width: 33%;
        float: left;
        text-align: left;
      }
      .center-block {
        width: 33%;
        float: left;
        text-align: center;
      }
      .right-block {
        width: 33%;
        float: left;
        text-align: right;
      }
      i {
        color: #f99;
      }
      ul {
        list-style-type: none;
      }
`

const documentHeadEnd = `
    </style>
  </head>
  <body>
    <span>
`

const documentFoot = `
    </span>
  </body>
</html>
`
