package mock

import (
	"context"

	"github.com/fwojciec/wordfreq"
)

var _ wordfreq.ExcerptWriter = (*ExcerptWriter)(nil)

// ExcerptWriter is a mock implementation of wordfreq.ExcerptWriter.
type ExcerptWriter struct {
	WriteExcerptFn func(ctx context.Context, e *wordfreq.Excerpt) error
}

func (w *ExcerptWriter) WriteExcerpt(ctx context.Context, e *wordfreq.Excerpt) error {
	return w.WriteExcerptFn(ctx, e)
}
