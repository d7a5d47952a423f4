package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wordfreq"
)

// Ensure LoggingParser implements wordfreq.Parser.
var _ wordfreq.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging.
type LoggingParser struct {
	next   wordfreq.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next wordfreq.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse logs the size of the input and resulting tree.
func (p *LoggingParser) Parse(markup string) (doc *wordfreq.Document, err error) {
	defer func(begin time.Time) {
		nodes := 0
		if doc != nil && doc.Root != nil {
			nodes = doc.Root.Len()
		}
		p.logger.Debug("parse",
			"bytes", len(markup),
			"nodes", nodes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(markup)
}
