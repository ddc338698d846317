// Package extractor distills captured page HTML into plain text and light
// structural summaries. The workflow feeds it raw page content (API responses
// rendered as the document body, gallery pages) and consumes the text for
// catalog parsing and prompt building.
package extractor

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// PageSummary is the structural digest of a page.
type PageSummary struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Headings    []string `json:"headings"`
	Links       []Link   `json:"links"`
	Text        string   `json:"text"`
}

// Link is a hyperlink with its anchor text.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// skipped elements contribute neither text nor structure.
var skipped = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"embed":    true,
	"object":   true,
	"svg":      true,
}

var headings = map[string]bool{
	"h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true,
}

// Text extracts the rendered text of the document, with element boundaries
// collapsed to single spaces.
func Text(rawHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			tag := strings.ToLower(n.Data)
			if skipped[tag] || tag == "head" {
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(parts, " "), nil
}

// Summarize parses the document and returns its title, meta description,
// headings, links, and text body.
func Summarize(rawHTML string) (*PageSummary, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	summary := &PageSummary{}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			tag := strings.ToLower(n.Data)

			switch {
			case skipped[tag]:
				return

			case tag == "title":
				if summary.Title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					summary.Title = strings.TrimSpace(n.FirstChild.Data)
				}

			case tag == "meta":
				if summary.Description == "" {
					if content, ok := metaDescription(n); ok {
						summary.Description = content
					}
				}

			case headings[tag]:
				if text := nodeText(n); text != "" {
					summary.Headings = append(summary.Headings, text)
				}

			case tag == "a":
				if href := attr(n, "href"); href != "" {
					summary.Links = append(summary.Links, Link{
						Text: nodeText(n),
						Href: href,
					})
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	text, err := Text(rawHTML)
	if err != nil {
		return nil, err
	}
	summary.Text = text

	return summary, nil
}

// Truncate caps text at maxLength characters, appending a marker that states
// how much was shown.
func Truncate(text string, maxLength int) string {
	if maxLength <= 0 || len(text) <= maxLength {
		return text
	}
	return text[:maxLength] + fmt.Sprintf("\n\n[Content truncated: %d of %d characters shown]", maxLength, len(text))
}

// metaDescription returns the content of a <meta name="description"> node.
func metaDescription(n *html.Node) (string, bool) {
	var isDescription bool
	var content string
	for _, a := range n.Attr {
		if a.Key == "name" && a.Val == "description" {
			isDescription = true
		}
		if a.Key == "content" {
			content = a.Val
		}
	}
	if isDescription && content != "" {
		return strings.TrimSpace(content), true
	}
	return "", false
}

// nodeText collects the trimmed text beneath a node.
func nodeText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
