package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/fwojciec/wordfreq"
	"github.com/fwojciec/wordfreq/crawl"
)

// CLI defines the command-line interface structure for Kong.
// Options left empty fall back to the config file, then to built-in defaults.
type CLI struct {
	URL         string        `short:"u" env:"WORDFREQ_URL" help:"Page to analyze; local paths and file:// URLs are read from disk (default: ${default_url})."`
	Section     string        `short:"s" env:"WORDFREQ_SECTION" help:"Exact text of the section heading (default: ${default_section})."`
	Strategy    string        `env:"WORDFREQ_STRATEGY" help:"Extraction strategy: text or element (default: text)."`
	Parser      string        `env:"WORDFREQ_PARSER" help:"Markup parser: html or xml (default: html)."`
	Permissive  bool          `help:"Tolerate malformed markup and unknown entities in the xml parser."`
	UserAgent   string        `env:"WORDFREQ_USER_AGENT" help:"User-Agent sent with requests."`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout."`
	Browser     bool          `short:"b" help:"Render the page in a headless browser before parsing."`
	Readability bool          `help:"Strip navigation and other boilerplate before parsing."`
	Compare     bool          `help:"Run both extraction strategies and report where their word sets differ."`
	Save        string        `placeholder:"DIR" help:"Save the section as Markdown under DIR."`
	Config      string        `short:"c" env:"WORDFREQ_CONFIG" help:"YAML config file."`
	Verbose     int           `short:"v" type:"counter" help:"Log progress (-v) or debug details (-vv) to stderr."`

	TopN   string   `arg:"" optional:"" name:"top-n" help:"Number of words to print (default: 10)."`
	Ignore []string `arg:"" optional:"" name:"ignore-word" help:"Words excluded from counting."`
}

// LogLevel maps the verbosity count to a log level.
func (c *CLI) LogLevel() slog.Level {
	switch {
	case c.Verbose >= 2:
		return slog.LevelDebug
	case c.Verbose == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// Settings is the fully resolved run configuration.
type Settings struct {
	Config wordfreq.Config

	Parser      wordfreq.ParserKind
	Permissive  bool
	UserAgent   string
	Timeout     time.Duration
	Browser     bool
	Readability bool
	Compare     bool
	SaveDir     string
}

// Resolve merges command-line values with the config file and built-in
// defaults. Command-line and environment values win over the file, which
// wins over defaults. The result is validated before it is returned.
func (c *CLI) Resolve(file *FileConfig) (*Settings, error) {
	if file == nil {
		file = &FileConfig{}
	}

	cfg := wordfreq.DefaultConfig()
	cfg.URL = first(c.URL, file.URL, cfg.URL)
	cfg.Section = first(c.Section, file.Section, cfg.Section)
	cfg.Strategy = wordfreq.Strategy(first(c.Strategy, file.Strategy, string(cfg.Strategy)))

	switch {
	case c.TopN != "":
		n, err := strconv.Atoi(c.TopN)
		if err != nil {
			return nil, wordfreq.Errorf(wordfreq.EINVALID, "top-n must be an integer, got %q", c.TopN)
		}
		cfg.TopN = n
	case file.TopN != 0:
		cfg.TopN = file.TopN
	}

	switch {
	case len(c.Ignore) > 0:
		cfg.Ignore = wordfreq.NewIgnoreSet(c.Ignore...)
	case len(file.Ignore) > 0:
		cfg.Ignore = wordfreq.NewIgnoreSet(file.Ignore...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	parser := wordfreq.ParserKind(first(c.Parser, file.Parser, string(wordfreq.ParserHTML)))
	if parser != wordfreq.ParserHTML && parser != wordfreq.ParserXML {
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "unknown parser %q", parser)
	}

	return &Settings{
		Config:      cfg,
		Parser:      parser,
		Permissive:  c.Permissive,
		UserAgent:   first(c.UserAgent, file.UserAgent),
		Timeout:     c.Timeout,
		Browser:     c.Browser,
		Readability: c.Readability,
		Compare:     c.Compare,
		SaveDir:     c.Save,
	}, nil
}

// first returns the first non-empty value.
func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Analyzer *crawl.Analyzer
}

// Run analyzes the configured page and prints the ranking.
func (s *Settings) Run(deps *Dependencies) error {
	if s.Compare {
		return s.runCompare(deps)
	}

	report, err := deps.Analyzer.Run(deps.Ctx, s.Config)
	if err != nil {
		return err
	}

	if !report.Found {
		warnMissing(deps.Logger, report)
		return nil
	}

	deps.Logger.Info("section analyzed",
		"title", report.Title,
		"section", report.Section,
		"fragments", len(report.Fragments),
		"words", len(report.Frequencies),
	)

	_, err = fmt.Fprint(deps.Stdout, wordfreq.FormatRanking(report.Ranking))
	return err
}

func (s *Settings) runCompare(deps *Dependencies) error {
	c, err := deps.Analyzer.Compare(deps.Ctx, s.Config)
	if err != nil {
		return err
	}

	if !c.Text.Found {
		warnMissing(deps.Logger, c.Text)
		return nil
	}

	_, err = fmt.Fprint(deps.Stdout, crawl.FormatComparison(c))
	return err
}

func warnMissing(logger *slog.Logger, r *crawl.Report) {
	logger.Warn("section not found",
		"section", r.Section,
		"available", r.Headings,
	)
}
