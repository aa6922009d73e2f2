package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// maxLabelLen bounds the label shown in the expander's search UI.
const maxLabelLen = 200

var (
	htmlTagRe    = regexp.MustCompile(`(?s)<[a-zA-Z/!][^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

var converter = md.NewConverter("", true, nil)

// commentText normalizes a definition literal into a single-line label.
// Ontology comments frequently carry embedded HTML markup; those are
// converted to markdown before flattening.
func commentText(s string) string {
	if htmlTagRe.MatchString(s) {
		if converted, err := converter.ConvertString(s); err == nil {
			s = converted
		}
	}

	s = whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
	if len(s) > maxLabelLen {
		// Cut on a rune boundary so multibyte text stays valid UTF-8.
		cut := maxLabelLen - 1
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "…"
	}
	return s
}
