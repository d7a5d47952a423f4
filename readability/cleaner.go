// Package readability provides a wordfreq.Cleaner that reduces a page to
// its main content using go-readability.
package readability

import (
	"html"
	"strings"

	"github.com/fwojciec/wordfreq"
	"github.com/go-shiori/go-readability"
)

// Ensure Cleaner implements wordfreq.Cleaner at compile time.
var _ wordfreq.Cleaner = (*Cleaner)(nil)

// Cleaner wraps go-readability to strip navigation, footers and sidebars.
// Headings inside the article are kept, although readability may demote
// an h1 to h2.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean returns a minimal HTML page holding the article title and content.
func (c *Cleaner) Clean(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", wordfreq.Errorf(wordfreq.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<html><head><title>")
	b.WriteString(html.EscapeString(article.Title))
	b.WriteString("</title></head><body>")
	b.WriteString(article.Content)
	b.WriteString("</body></html>")
	return b.String(), nil
}
