package mock

import "github.com/fwojciec/wordfreq"

var _ wordfreq.Parser = (*Parser)(nil)

// Parser is a mock implementation of wordfreq.Parser.
type Parser struct {
	ParseFn func(markup string) (*wordfreq.Document, error)
}

func (p *Parser) Parse(markup string) (*wordfreq.Document, error) {
	return p.ParseFn(markup)
}
