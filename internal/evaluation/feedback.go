package evaluation

import (
	"regexp"
	"strings"
)

var (
	// boldItemRe matches a bolded list item head ("- **Label:**") that is
	// not already at the start of a line.
	boldItemRe = regexp.MustCompile(`([^\n])(- \*\*[^\n]+?:)`)

	// subBulletRe matches a plain sub-bullet that is not already at the
	// start of a line.
	subBulletRe = regexp.MustCompile(`([^\n])(- [^-*\n][^\n]*)`)
)

// EnforceLineBreaks reformats loosely structured bullet feedback into a
// consistently line-broken form: a blank line before each bolded list item
// head and a line break before sub-bullets that run on mid-line. Pure
// regexp substitution over the input; on text with no recognizable bullets
// it degrades to returning the trimmed original.
func EnforceLineBreaks(text string) string {
	text = boldItemRe.ReplaceAllString(text, "$1\n\n$2")
	text = subBulletRe.ReplaceAllString(text, "$1\n$2")
	return strings.TrimSpace(text)
}
