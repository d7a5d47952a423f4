package wordfreq

import (
	"net/url"
	"strings"
)

// Defaults used when the caller does not configure a run.
const (
	DefaultURL     = "https://en.wikipedia.org/wiki/Microsoft"
	DefaultSection = "History"
	DefaultTopN    = 10
)

// Config describes a single analysis run. It is not modified once the run
// starts.
type Config struct {
	// URL of the page to analyze. Local paths and file:// URLs are allowed.
	URL string

	// Section is the exact text of the heading that opens the section.
	Section string

	// TopN is the maximum number of words reported.
	TopN int

	// Ignore holds words excluded from counting.
	Ignore IgnoreSet

	// Strategy selects the extraction strategy.
	Strategy Strategy
}

// DefaultConfig returns a Config populated with the defaults.
func DefaultConfig() Config {
	return Config{
		URL:      DefaultURL,
		Section:  DefaultSection,
		TopN:     DefaultTopN,
		Ignore:   NewIgnoreSet(),
		Strategy: DefaultStrategy,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if _, err := url.Parse(c.URL); err != nil {
		return Errorf(EINVALID, "invalid page URL %q: %v", c.URL, err)
	}
	if c.Section == "" {
		return Errorf(EINVALID, "section name required")
	}
	if c.TopN < 1 {
		return Errorf(EINVALID, "number of top words must be at least 1, got %d", c.TopN)
	}
	if _, err := NewExtractor(c.Strategy); err != nil {
		return err
	}
	return nil
}
