package legaldoc

import (
	"fmt"
	"regexp"
	"strings"
)

type Heading struct {
	ID    string `json:"id"`
	Level int    `json:"level"`
	Text  string `json:"text"`
}

var (
	headingRe = regexp.MustCompile(`(?is)<h([1-6])[^>]*>(.*?)</h[1-6]>`)
	tagRe     = regexp.MustCompile(`<[^>]*>`)
	openTagRe = regexp.MustCompile(`(?i)<h([1-6])`)
)

// GenerateTOC extracts a table of contents from the headings in htmlContent
// and returns the content with an anchor id injected into each heading.
// Headings with no text after stripping markup are skipped.
func GenerateTOC(htmlContent string) ([]Heading, string) {
	matches := headingRe.FindAllStringSubmatch(htmlContent, -1)
	if len(matches) == 0 {
		return []Heading{}, htmlContent
	}

	headings := make([]Heading, 0, len(matches))
	modified := htmlContent
	tocID := 1

	for _, m := range matches {
		text := strings.TrimSpace(tagRe.ReplaceAllString(m[2], ""))
		if text == "" {
			continue
		}

		id := fmt.Sprintf("toc-%d", tocID)
		tocID++

		headings = append(headings, Heading{
			ID:    id,
			Level: int(m[1][0] - '0'),
			Text:  text,
		})

		withID := openTagRe.ReplaceAllString(m[0], fmt.Sprintf(`<h$1 id="%s"`, id))
		modified = strings.Replace(modified, m[0], withID, 1)
	}

	return headings, modified
}
