package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// EmailToName derives a display name from a participant's email: the local
// part with separators turned into spaces, digits dropped, and words
// capitalized. "ahmad.khaled93@gmail.com" -> "Ahmad Khaled".
func EmailToName(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}

	local = strings.Map(func(r rune) rune {
		switch {
		case r == '.' || r == '_' || r == '-':
			return ' '
		case r >= '0' && r <= '9':
			return -1
		default:
			return r
		}
	}, local)

	words := strings.Fields(local)
	for i, w := range words {
		if w[0] >= 'a' && w[0] <= 'z' {
			words[i] = string(w[0]-'a'+'A') + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// SanitizeText strips any HTML that made it into a spreadsheet cell and
// collapses whitespace. Rows come from a public form, so they are treated as
// untrusted input.
func SanitizeText(s string) string {
	s = html.UnescapeString(s)
	s = bluemonday.StripTagsPolicy().Sanitize(s)
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}
