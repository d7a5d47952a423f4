// Package fs provides file-based page loading and excerpt storage.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wordfreq"
	"gopkg.in/yaml.v3"
)

// ExcerptPath converts a page URL and section title to a relative file path.
// Example: https://en.wikipedia.org/wiki/Microsoft, "History" → wiki/Microsoft/history.md
func ExcerptPath(rawURL, section string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	name := wordfreq.Anchor(section)
	if name == "" {
		name = "section"
	}
	name += ".md"

	dir := strings.Trim(u.Path, "/")
	if dir == "" {
		return name, nil
	}
	return dir + "/" + name, nil
}

// frontmatter is the YAML header written above excerpt content.
type frontmatter struct {
	Source  string    `yaml:"source"`
	Title   string    `yaml:"title,omitempty"`
	Section string    `yaml:"section"`
	Fetched time.Time `yaml:"fetched"`
	Hash    string    `yaml:"hash"`
}

// ContentHash returns the xxhash of content as 16 lowercase hex digits. Comparing
// hashes across saved excerpts shows whether a section changed.
func ContentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// FormatExcerpt formats an excerpt with YAML frontmatter.
func FormatExcerpt(e *wordfreq.Excerpt) (string, error) {
	header, err := yaml.Marshal(frontmatter{
		Source:  e.SourceURL,
		Title:   e.Title,
		Section: e.Section,
		Fetched: e.FetchedAt.UTC(),
		Hash:    ContentHash(e.Content),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(e.Content)
	return b.String(), nil
}

// Ensure Writer implements wordfreq.ExcerptWriter at compile time.
var _ wordfreq.ExcerptWriter = (*Writer)(nil)

// Writer writes excerpts as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteExcerpt writes an excerpt to disk as a markdown file.
func (w *Writer) WriteExcerpt(ctx context.Context, e *wordfreq.Excerpt) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := ExcerptPath(e.SourceURL, e.Section)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatExcerpt(e)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}
