package wordfreq

import "context"

// Fetcher retrieves the raw markup of a page.
type Fetcher interface {
	// Fetch returns the markup at url.
	// The context controls timeout and cancellation. Failures are returned
	// as-is; implementations do not retry.
	Fetch(ctx context.Context, url string) (markup string, err error)

	// Close releases any resources held by the Fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
