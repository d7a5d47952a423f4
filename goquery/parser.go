// Package goquery provides an HTML implementation of wordfreq.Parser built
// on goquery and golang.org/x/net/html.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wordfreq"
	"golang.org/x/net/html"
)

// Ensure Parser implements wordfreq.Parser at compile time.
var _ wordfreq.Parser = (*Parser)(nil)

// Parser parses HTML the way browsers do: malformed markup is repaired
// rather than rejected.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a wordfreq.Document from HTML. Comments and doctype nodes are
// dropped; element names are lower-case.
func (p *Parser) Parse(markup string) (*wordfreq.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "failed to parse HTML: %v", err)
	}

	if len(doc.Nodes) == 0 {
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "failed to parse HTML: empty document")
	}

	return &wordfreq.Document{
		Title: strings.TrimSpace(doc.Find("head > title").First().Text()),
		Root:  convert(doc.Nodes[0]),
	}, nil
}

// convert copies an html.Node subtree into a wordfreq.Node tree.
// Returns nil for node types that carry no content.
func convert(n *html.Node) *wordfreq.Node {
	var out *wordfreq.Node
	switch n.Type {
	case html.DocumentNode:
		out = wordfreq.NewDocument()
	case html.ElementNode:
		out = wordfreq.NewElement(n.Data)
	case html.TextNode:
		return wordfreq.NewText(n.Data)
	default:
		return nil
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := convert(c); child != nil {
			out.Children = append(out.Children, child)
		}
	}
	return out
}
