package mock

import "github.com/fwojciec/wordfreq"

var _ wordfreq.Converter = (*Converter)(nil)

// Converter is a mock implementation of wordfreq.Converter.
type Converter struct {
	ConvertFn func(nodes []*wordfreq.Node) (string, error)
}

func (c *Converter) Convert(nodes []*wordfreq.Node) (string, error) {
	return c.ConvertFn(nodes)
}
