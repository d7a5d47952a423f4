// Package etree provides a strict XML implementation of wordfreq.Parser for
// XHTML pages, built on github.com/beevik/etree.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/wordfreq"
)

// Ensure Parser implements wordfreq.Parser at compile time.
var _ wordfreq.Parser = (*Parser)(nil)

// Parser parses well-formed XML. Unlike goquery.Parser it rejects markup
// that is not well-formed, such as unclosed tags or undeclared entities.
type Parser struct {
	permissive bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithPermissive makes the parser tolerate common mistakes such as
// unknown entities or missing attribute values.
func WithPermissive() Option {
	return func(p *Parser) {
		p.permissive = true
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse builds a wordfreq.Document from XML. Element names keep their local
// name and case; comments, directives and processing instructions are
// dropped.
func (p *Parser) Parse(markup string) (*wordfreq.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = p.permissive
	if err := doc.ReadFromString(markup); err != nil {
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "failed to parse XML: %v", err)
	}
	if doc.Root() == nil {
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "failed to parse XML: no root element")
	}

	var title string
	if el := doc.FindElement("//title"); el != nil {
		title = strings.TrimSpace(el.Text())
	}

	return &wordfreq.Document{
		Title: title,
		Root:  wordfreq.NewDocument(convertTokens(doc.Child)...),
	}, nil
}

func convertTokens(tokens []etree.Token) []*wordfreq.Node {
	var nodes []*wordfreq.Node
	for _, tok := range tokens {
		switch t := tok.(type) {
		case *etree.Element:
			nodes = append(nodes, wordfreq.NewElement(t.Tag, convertTokens(t.Child)...))
		case *etree.CharData:
			// Indentation between tags is layout, not content.
			if t.IsWhitespace() && strings.ContainsAny(t.Data, "\r\n") {
				continue
			}
			nodes = append(nodes, wordfreq.NewText(t.Data))
		}
	}
	return nodes
}
