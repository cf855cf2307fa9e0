package render

import (
	"regexp"
	"strings"
)

var (
	svgTagRe = regexp.MustCompile(`(?i)<svg[^>]*>`)
	widthRe  = regexp.MustCompile(`(?i)\swidth="[^"]*"`)
	heightRe = regexp.MustCompile(`(?i)\sheight="[^"]*"`)
)

// Embeddable prepares raw Graphviz SVG for inline embedding. The fixed width
// and height attributes on the root svg element are removed so the viewBox
// alone controls scaling, and the hyphen entities Graphviz emits for UUIDs
// are decoded. Dimensions on nested elements, such as node thumbnail images,
// are left alone. The transformation is idempotent.
func Embeddable(svg []byte) []byte {
	s := string(svg)
	if loc := svgTagRe.FindStringIndex(s); loc != nil {
		tag := s[loc[0]:loc[1]]
		tag = widthRe.ReplaceAllString(tag, "")
		tag = heightRe.ReplaceAllString(tag, "")
		s = s[:loc[0]] + tag + s[loc[1]:]
	}
	s = strings.ReplaceAll(s, "&#45;", "-")
	s = strings.ToValidUTF8(s, "")
	return []byte(s)
}
