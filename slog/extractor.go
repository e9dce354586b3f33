// Package slog provides logging decorators for pubtext services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pubtext"
)

// Ensure LoggingExtractor implements pubtext.Extractor.
var _ pubtext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   pubtext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pubtext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(article *pubtext.Article, data []byte) (res *pubtext.Result, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"pmid", article.PMID,
			"url", article.URL(),
			"bytes", len(data),
		}
		if res != nil {
			blocks := 0
			if res.Record != nil {
				blocks = res.Record.Len()
			}
			attrs = append(attrs,
				"publisher", res.Publisher,
				"state", res.State,
				"stage", res.Stage,
				"missing", res.Missing,
				"blocks", blocks,
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(article, data)
}
