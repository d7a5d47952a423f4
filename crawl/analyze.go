// Package crawl orchestrates a word-frequency run over one page.
// It coordinates fetching, cleaning, parsing, section extraction, counting,
// ranking and optional storage of the section excerpt.
package crawl

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/fwojciec/wordfreq"
)

// Analyzer runs the page pipeline. Fetcher and Parser are required; the
// remaining services are optional.
type Analyzer struct {
	Fetcher wordfreq.Fetcher
	Cleaner wordfreq.Cleaner
	Parser  wordfreq.Parser

	// Converter and Writer store the section as Markdown when both are set.
	Converter wordfreq.Converter
	Writer    wordfreq.ExcerptWriter

	// NewExtractor builds the extractor for a strategy.
	// Defaults to wordfreq.NewExtractor.
	NewExtractor func(wordfreq.Strategy) (wordfreq.Extractor, error)

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Report holds the outcome of analyzing one section.
type Report struct {
	URL      string
	Title    string
	Section  string
	Strategy wordfreq.Strategy

	// Found reports whether a heading with the section name exists.
	Found bool

	// Headings lists every section heading of the page, for diagnostics
	// when the section is missing.
	Headings []string

	Fragments   []string
	Frequencies wordfreq.Frequencies
	Ranking     []wordfreq.WordCount
}

// Run validates cfg, loads the page and analyzes the configured section.
// A missing section is not an error: the report is returned with Found
// unset and an empty ranking.
func (a *Analyzer) Run(ctx context.Context, cfg wordfreq.Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ext, err := a.extractor(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	doc, err := a.Load(ctx, cfg.URL)
	if err != nil {
		return nil, err
	}

	report := Analyze(doc, cfg, ext)
	report.URL = cfg.URL

	if report.Found {
		if err := a.Save(ctx, doc, cfg); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// Load fetches the page at url and parses it into a Document. The page is
// passed through the Cleaner first if one is configured.
func (a *Analyzer) Load(ctx context.Context, url string) (*wordfreq.Document, error) {
	markup, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to download URL: %w", err)
	}

	if a.Cleaner != nil {
		markup, err = a.Cleaner.Clean(markup)
		if err != nil {
			return nil, fmt.Errorf("failed to clean page: %w", err)
		}
	}

	doc, err := a.Parser.Parse(markup)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

// Save renders the configured section of doc as Markdown and writes it.
// Does nothing unless both Converter and Writer are set.
func (a *Analyzer) Save(ctx context.Context, doc *wordfreq.Document, cfg wordfreq.Config) error {
	if a.Converter == nil || a.Writer == nil {
		return nil
	}

	content, err := a.Converter.Convert(wordfreq.Section(doc.Root, cfg.Section))
	if err != nil {
		return fmt.Errorf("converting section: %w", err)
	}

	e := &wordfreq.Excerpt{
		SourceURL: cfg.URL,
		Title:     doc.Title,
		Section:   cfg.Section,
		Content:   content,
		FetchedAt: a.now(),
	}
	if err := a.Writer.WriteExcerpt(ctx, e); err != nil {
		return fmt.Errorf("saving section: %w", err)
	}
	return nil
}

// Analyze extracts the configured section of doc with ext, then counts and
// ranks its words. It never fails.
func Analyze(doc *wordfreq.Document, cfg wordfreq.Config, ext wordfreq.Extractor) *Report {
	headings := doc.Headings()
	fragments := ext.Extract(doc.Root, cfg.Section)
	freq := wordfreq.Tally(fragments, cfg.Ignore)

	return &Report{
		Title:       doc.Title,
		Section:     cfg.Section,
		Strategy:    cfg.Strategy,
		Found:       slices.Contains(headings, cfg.Section),
		Headings:    headings,
		Fragments:   fragments,
		Frequencies: freq,
		Ranking:     wordfreq.Rank(freq, cfg.TopN),
	}
}

func (a *Analyzer) extractor(s wordfreq.Strategy) (wordfreq.Extractor, error) {
	if a.NewExtractor != nil {
		return a.NewExtractor(s)
	}
	return wordfreq.NewExtractor(s)
}

func (a *Analyzer) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
