package fs

import (
	"context"
	"errors"
	"io/fs"
	"net/url"
	"os"

	"github.com/fwojciec/wordfreq"
)

// Ensure Fetcher implements wordfreq.Fetcher at compile time.
var _ wordfreq.Fetcher = (*Fetcher)(nil)

// Fetcher reads saved pages from the local filesystem.
// It accepts file:// URLs and plain paths.
type Fetcher struct{}

// NewFetcher creates a new filesystem Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// IsLocal reports whether rawURL refers to a local file rather than a
// remote page.
func IsLocal(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme == "" || u.Scheme == "file"
}

// PathFromURL returns the filesystem path for a file:// URL or plain path.
func PathFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", wordfreq.Errorf(wordfreq.EINVALID, "invalid path %q", rawURL)
	}

	switch u.Scheme {
	case "":
		return rawURL, nil
	case "file":
		if u.Path == "" {
			return "", wordfreq.Errorf(wordfreq.EINVALID, "file URL without path: %s", rawURL)
		}
		return u.Path, nil
	default:
		return "", wordfreq.Errorf(wordfreq.EINVALID, "unsupported scheme %q for local file", u.Scheme)
	}
}

// Fetch reads the file named by url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := PathFromURL(url)
	if err != nil {
		return "", err
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", wordfreq.Errorf(wordfreq.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return "", err
	}

	return string(b), nil
}

// Close is a no-op; no file handles are kept open between fetches.
func (f *Fetcher) Close() error {
	return nil
}
