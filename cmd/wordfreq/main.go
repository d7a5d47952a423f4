package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wordfreq"
	"github.com/fwojciec/wordfreq/crawl"
	"github.com/fwojciec/wordfreq/etree"
	"github.com/fwojciec/wordfreq/fs"
	"github.com/fwojciec/wordfreq/goquery"
	"github.com/fwojciec/wordfreq/htmltomarkdown"
	wfhttp "github.com/fwojciec/wordfreq/http"
	"github.com/fwojciec/wordfreq/readability"
	"github.com/fwojciec/wordfreq/rod"
	wfslog "github.com/fwojciec/wordfreq/slog"
)

// Usage is printed when the positional arguments are invalid.
const Usage = "usage: wordfreq <top-n> [ignore-word...]"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides fetcher selection. Used for end-to-end testing.
	Fetcher wordfreq.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wordfreq"),
		kong.Description("Print the most frequent words of one section of a web page."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"default_url":     wordfreq.DefaultURL,
			"default_section": wordfreq.DefaultSection,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintln(stderr, Usage)
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cli.LogLevel()}))

	var file *FileConfig
	if cli.Config != "" {
		if file, err = LoadFileConfig(cli.Config); err != nil {
			return err
		}
	}

	settings, err := cli.Resolve(file)
	if err != nil {
		if wordfreq.ErrorCode(err) == wordfreq.EINVALID {
			fmt.Fprintln(stderr, Usage)
		}
		return err
	}

	fetcher, err := m.fetcher(settings, stderr)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Analyzer: &crawl.Analyzer{
			Fetcher: wfslog.NewLoggingFetcher(fetcher, logger),
			Parser:  wfslog.NewLoggingParser(newParser(settings), logger),
			NewExtractor: func(s wordfreq.Strategy) (wordfreq.Extractor, error) {
				ext, err := wordfreq.NewExtractor(s)
				if err != nil {
					return nil, err
				}
				return wfslog.NewLoggingExtractor(ext, s, logger), nil
			},
		},
	}

	if settings.Readability {
		deps.Analyzer.Cleaner = readability.NewCleaner()
	}
	if settings.SaveDir != "" {
		deps.Analyzer.Converter = htmltomarkdown.NewConverter()
		deps.Analyzer.Writer = fs.NewWriter(settings.SaveDir)
	}

	return settings.Run(deps)
}

// fetcher selects the Fetcher for the configured URL. Local paths are read
// from disk; remote pages use a headless browser when requested and plain
// HTTP otherwise.
func (m *Main) fetcher(s *Settings, stderr io.Writer) (wordfreq.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}

	if fs.IsLocal(s.Config.URL) {
		return fs.NewFetcher(), nil
	}

	if s.Browser {
		opts := []rod.Option{rod.WithFetchTimeout(s.Timeout)}
		if s.UserAgent != "" {
			opts = append(opts, rod.WithUserAgent(s.UserAgent))
		}
		f, err := rod.NewFetcher(opts...)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return f, nil
	}

	opts := []wfhttp.Option{wfhttp.WithTimeout(s.Timeout)}
	if s.UserAgent != "" {
		opts = append(opts, wfhttp.WithUserAgent(s.UserAgent))
	}
	return wfhttp.NewFetcher(opts...), nil
}

func newParser(s *Settings) wordfreq.Parser {
	if s.Parser == wordfreq.ParserXML {
		var opts []etree.Option
		if s.Permissive {
			opts = append(opts, etree.WithPermissive())
		}
		return etree.NewParser(opts...)
	}
	return goquery.NewParser()
}
