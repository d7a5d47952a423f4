package wordfreq

import (
	"context"
	"time"
)

// Excerpt is the rendered content of one section of a page.
type Excerpt struct {
	SourceURL string    `json:"sourceUrl"`
	Title     string    `json:"title"`
	Section   string    `json:"section"`
	Content   string    `json:"content"` // Markdown
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the excerpt contains invalid fields.
func (e *Excerpt) Validate() error {
	if e.SourceURL == "" {
		return Errorf(EINVALID, "excerpt source URL required")
	}
	if e.Section == "" {
		return Errorf(EINVALID, "excerpt section required")
	}
	return nil
}

// ExcerptWriter writes excerpts to storage.
type ExcerptWriter interface {
	WriteExcerpt(ctx context.Context, e *Excerpt) error
}
