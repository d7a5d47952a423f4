package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wordfreq"
)

// Ensure LoggingExtractor implements wordfreq.Extractor.
var _ wordfreq.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next     wordfreq.Extractor
	strategy wordfreq.Strategy
	logger   *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The strategy is
// recorded with each log entry.
func NewLoggingExtractor(next wordfreq.Extractor, strategy wordfreq.Strategy, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, strategy: strategy, logger: logger}
}

// Extract logs the number of fragments found and delegates to the wrapped
// extractor.
func (e *LoggingExtractor) Extract(root *wordfreq.Node, section string) (fragments []string) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"strategy", string(e.strategy),
			"section", section,
			"fragments", len(fragments),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(root, section)
}
