package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTMLText converts an HTML resume upload to cleaned plain text.
// Script and style contents are dropped; block-level boundaries become line
// breaks so the result keeps a resume-like line structure.
func ExtractHTMLText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div, br").Each(func(_ int, s *goquery.Selection) {
		// Only take text from leaf-ish nodes so nested containers don't
		// duplicate their children's text.
		if s.Children().Length() > 0 && !s.Is("li, p, td, h1, h2, h3, h4, h5, h6") {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fallback for documents without block structure
		text = doc.Find("body").Text()
	}

	return CleanText(text), nil
}
