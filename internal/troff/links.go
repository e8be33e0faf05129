package troff

import "regexp"

var (
	urlPattern   = regexp.MustCompile(`(?i)(https?://|ftp://|file:///)([A-Z0-9\-~]+\.?/?)+`)
	emailPattern = regexp.MustCompile(`(?i)([a-z0-9_.-]+)@([\da-z.-]+)\.([a-z.]{2,6})`)

	// Cross references such as bash(1), possibly already styled.
	italicRef = regexp.MustCompile(`<i>([A-Za-z0-9-]+)</i>\((\d+)\)`)
	boldRef   = regexp.MustCompile(`<b>([A-Za-z0-9-]+)</b>\((\d+)\)`)
	plainRef  = regexp.MustCompile(`([A-Za-z0-9-]+)\((\d+)\)`)
)

// linkify wraps absolute URLs, email addresses and man page references.
func linkify(line string) string {
	return linkManRefs(linkURLs(line))
}

// linkURLs wraps absolute URLs and email addresses in anchors.
func linkURLs(line string) string {
	line = urlPattern.ReplaceAllString(line, `<a href="${0}">${0}</a>`)
	return emailPattern.ReplaceAllString(line, `<a href="mailto:${0}">${0}</a>`)
}

// linkManRefs turns name(section) into a link to name#section, leaving the
// section suffix and any surrounding <i> or <b> in place.
func linkManRefs(line string) string {
	line = italicRef.ReplaceAllString(line, `<i><a href="${1}#${2}">${1}</a></i>(${2})`)
	line = boldRef.ReplaceAllString(line, `<b><a href="${1}#${2}">${1}</a></b>(${2})`)
	return plainRef.ReplaceAllString(line, `<a href="${1}#${2}">${1}</a>(${2})`)
}
