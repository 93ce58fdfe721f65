package markdown

import "regexp"

// Link is an inline markdown link.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)

// ExtractLinks returns every [text](url) link in s, in order of appearance.
func ExtractLinks(s string) []Link {
	matches := linkPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{Text: m[1], URL: m[2]})
	}
	return links
}

// PlainText replaces every link with its text.
func PlainText(s string) string {
	return linkPattern.ReplaceAllString(s, "$1")
}
