package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pubtext"
)

// Ensure LoggingResolver implements pubtext.Resolver.
var _ pubtext.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with debug logging for publisher
// resolution.
type LoggingResolver struct {
	next   pubtext.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next pubtext.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs which publisher was
// chosen and how.
func (r *LoggingResolver) Resolve(article *pubtext.Article, data []byte) (j *pubtext.Journal, err error) {
	defer func(begin time.Time) {
		publisher, source := "(none)", ""
		if j != nil {
			publisher = j.Publisher.Name()
			source = string(j.Source)
		}
		r.logger.Debug("publisher resolution",
			"pmid", article.PMID,
			"issn", article.ISSN,
			"publisher", publisher,
			"source", source,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(article, data)
}
