// Package htmltomarkdown renders section content as Markdown using
// html-to-markdown.
package htmltomarkdown

import (
	"bytes"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/wordfreq"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Converter implements wordfreq.Converter at compile time.
var _ wordfreq.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert section nodes to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders nodes back to HTML and transforms the result into Markdown.
// Attributes are not part of the document tree, so links lose their targets.
func (c *Converter) Convert(nodes []*wordfreq.Node) (string, error) {
	if len(nodes) == 0 {
		return "", wordfreq.Errorf(wordfreq.EINVALID, "empty section")
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, toHTML(n)); err != nil {
			return "", err
		}
	}

	if strings.TrimSpace(buf.String()) == "" {
		return "", wordfreq.Errorf(wordfreq.EINVALID, "empty section")
	}

	result, err := c.conv.ConvertString(buf.String())
	if err != nil {
		return "", err
	}

	return result, nil
}

// toHTML copies a wordfreq.Node subtree into an html.Node tree.
func toHTML(n *wordfreq.Node) *html.Node {
	var out *html.Node
	switch n.Kind {
	case wordfreq.TextNode:
		return &html.Node{Type: html.TextNode, Data: n.Data}
	case wordfreq.ElementNode:
		out = &html.Node{Type: html.ElementNode, Data: n.Tag, DataAtom: atom.Lookup([]byte(n.Tag))}
	default:
		out = &html.Node{Type: html.DocumentNode}
	}

	for _, c := range n.Children {
		out.AppendChild(toHTML(c))
	}
	return out
}
