package resumes

import (
	"html"
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*]+)\*`)
	bulletRe = regexp.MustCompile(`^\s*[-*]\s+`)
)

// RenderHTML converts markdown-like resume body text to HTML: `- ` / `* `
// bullets become list items, **bold** and *italic* become strong/em, other
// non-blank lines become paragraphs. All input is HTML-escaped first.
func RenderHTML(text string) string {
	var b strings.Builder
	inList := false

	closeList := func() {
		if inList {
			b.WriteString("</ul>\n")
			inList = false
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(trimmed) == "" {
			closeList()
			continue
		}
		if bulletRe.MatchString(trimmed) {
			if !inList {
				b.WriteString("<ul>\n")
				inList = true
			}
			item := bulletRe.ReplaceAllString(trimmed, "")
			b.WriteString("<li>")
			b.WriteString(renderInline(item))
			b.WriteString("</li>\n")
			continue
		}
		closeList()
		b.WriteString("<p>")
		b.WriteString(renderInline(strings.TrimSpace(trimmed)))
		b.WriteString("</p>\n")
	}
	closeList()
	return strings.TrimSpace(b.String())
}

func renderInline(s string) string {
	escaped := html.EscapeString(s)
	escaped = boldRe.ReplaceAllString(escaped, "<strong>$1</strong>")
	escaped = italicRe.ReplaceAllString(escaped, "<em>$1</em>")
	return escaped
}
