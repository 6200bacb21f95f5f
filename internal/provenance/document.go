package provenance

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DocumentExtractor parses the page as HTML and reads the text that follows
// each labeled <strong> element. Unlike PatternExtractor it decodes entities
// and tolerates attributes or whitespace inside the label tag.
type DocumentExtractor struct{}

// Extract implements Extractor.
func (DocumentExtractor) Extract(r io.Reader) (Fields, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Fields{}, fmt.Errorf("parse html: %w", err)
	}

	var fields Fields
	doc.Find("strong").Each(func(_ int, s *goquery.Selection) {
		var dst *string
		switch strings.TrimSpace(s.Text()) {
		case LabelModel + ":":
			dst = &fields.Model
		case LabelProvider + ":":
			dst = &fields.Provider
		case LabelGenerated + ":":
			dst = &fields.Generated
		default:
			return
		}
		if *dst != "" {
			return
		}
		*dst = trailingText(s.Get(0))
	})

	return fields, nil
}

// trailingText collects the text nodes directly after n, stopping at the next element.
func trailingText(n *html.Node) string {
	var sb strings.Builder
	for sib := n.NextSibling; sib != nil && sib.Type == html.TextNode; sib = sib.NextSibling {
		sb.WriteString(sib.Data)
	}
	return strings.TrimSpace(sb.String())
}
