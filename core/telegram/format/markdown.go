package format

import "regexp"

var mdV1Specials = regexp.MustCompile("([_*`\\[])")

// EscapeMarkdown escapes Telegram Markdown (v1) special characters in
// user-provided text so captions render verbatim.
func EscapeMarkdown(text string) string {
	return mdV1Specials.ReplaceAllString(text, "\\$1")
}
