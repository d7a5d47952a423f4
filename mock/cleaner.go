package mock

import "github.com/fwojciec/wordfreq"

var _ wordfreq.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of wordfreq.Cleaner.
type Cleaner struct {
	CleanFn func(markup string) (string, error)
}

func (c *Cleaner) Clean(markup string) (string, error) {
	return c.CleanFn(markup)
}
