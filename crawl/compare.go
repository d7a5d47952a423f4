package crawl

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/fwojciec/wordfreq"
	"golang.org/x/sync/errgroup"
)

// Comparison holds the reports of both extraction strategies over the same
// document and the words only one of them found.
type Comparison struct {
	Element *Report
	Text    *Report

	// OnlyElement and OnlyText are sorted lists of words missing from the
	// other strategy's word set.
	OnlyElement []string
	OnlyText    []string
}

// Agree reports whether both strategies produced the same word set.
func (c *Comparison) Agree() bool {
	return len(c.OnlyElement) == 0 && len(c.OnlyText) == 0
}

// Compare analyzes doc with the element walk and the text-node strategy
// and reports where their word sets differ. cfg.Strategy is ignored.
// newExtractor builds the extractor for each strategy; nil means
// wordfreq.NewExtractor. The strategies only read the tree, so they run
// concurrently.
func Compare(doc *wordfreq.Document, cfg wordfreq.Config, newExtractor func(wordfreq.Strategy) (wordfreq.Extractor, error)) (*Comparison, error) {
	if newExtractor == nil {
		newExtractor = wordfreq.NewExtractor
	}

	analyze := func(s wordfreq.Strategy, dst **Report) func() error {
		return func() error {
			ext, err := newExtractor(s)
			if err != nil {
				return fmt.Errorf("%s extractor: %w", s, err)
			}
			c := cfg
			c.Strategy = s
			*dst = Analyze(doc, c, ext)
			return nil
		}
	}

	var element, text *Report
	var g errgroup.Group
	g.Go(analyze(wordfreq.StrategyElement, &element))
	g.Go(analyze(wordfreq.StrategyText, &text))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Comparison{
		Element:     element,
		Text:        text,
		OnlyElement: missingFrom(element.Frequencies, text.Frequencies),
		OnlyText:    missingFrom(text.Frequencies, element.Frequencies),
	}, nil
}

// Compare loads the page at cfg.URL and compares both strategies on it,
// building extractors the same way Run does.
func (a *Analyzer) Compare(ctx context.Context, cfg wordfreq.Config) (*Comparison, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	doc, err := a.Load(ctx, cfg.URL)
	if err != nil {
		return nil, err
	}

	c, err := Compare(doc, cfg, a.extractor)
	if err != nil {
		return nil, err
	}
	c.Element.URL = cfg.URL
	c.Text.URL = cfg.URL
	return c, nil
}

// missingFrom returns the sorted words of a that b does not contain.
func missingFrom(a, b wordfreq.Frequencies) []string {
	var words []string
	for w := range maps.Keys(a) {
		if _, ok := b[w]; !ok {
			words = append(words, w)
		}
	}
	slices.Sort(words)
	return words
}
