// Package textextract distills an HTML research document into plain prose
// before term counting. Markdown and plain-text documents pass through
// untouched; only documents that are recognizably HTML are distilled.
package textextract

import (
	"bufio"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// IsHTMLDocument reports whether a research document should be distilled
// before counting, based on its path extension or, failing that, on the
// document opening with an HTML tag.
func IsHTMLDocument(path, text string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}

	head := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// ExtractText runs readability over the HTML to isolate the main article,
// then flattens the content-bearing tags into whitespace-separated prose.
// Counting only needs words and their boundaries, so all block structure is
// dropped.
func ExtractText(rawHTML string) (string, error) {
	docURL, err := url.Parse("file:///research.html")
	if err != nil {
		return "", err
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(rawHTML), docURL)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", err
	}

	var parts []string
	if title := normalizeText(article.Title); title != "" {
		parts = append(parts, title)
	}

	doc.Find("h1,h2,h3,h4,p,li,td,th,pre").Each(func(i int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	return strings.Join(parts, "\n"), nil
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
