package clean

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pubtext"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Generator regenerates cleaned records for a batch of articles. A failure
// on one article is logged and counted; it never aborts the batch.
type Generator struct {
	Source    pubtext.ArticleSource
	Store     pubtext.RecordStore
	Extractor pubtext.Extractor

	// Statuses, if set, receives the outcome of every processed article.
	Statuses pubtext.ArticleService

	// Force regenerates records whose output is newer than the source.
	Force bool

	// Concurrency is the number of articles extracted at once. Values
	// below one mean sequential processing.
	Concurrency int

	Logger *slog.Logger
}

// Summary counts the outcomes of one run.
type Summary struct {
	RunID     string
	Complete  int
	Partial   int
	Failed    int
	Skipped   int
	Unchanged int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	PMID      string
	State     pubtext.State
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// outcome holds the result of processing a single article.
type outcome struct {
	article   *pubtext.Article
	state     pubtext.State
	stage     pubtext.State
	missing   string
	publisher string
	hash      string
	unchanged bool
	canceled  bool
	err       error
}

// Run processes the articles and returns per-state counts. Cancellation
// is checked between articles; the summary of the articles processed so
// far is returned along with the context error.
func (g *Generator) Run(ctx context.Context, articles []*pubtext.Article, progress ProgressFunc) (*Summary, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	concurrency := g.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	summary := &Summary{RunID: uuid.NewString()}
	total := len(articles)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	outcomes := make(chan outcome)
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)
	go func() {
		for _, a := range articles {
			a := a
			eg.Go(func() error {
				outcomes <- g.process(gctx, a)
				return nil
			})
		}
		_ = eg.Wait()
		close(outcomes)
	}()

	completed := 0
	for o := range outcomes {
		if o.canceled {
			continue
		}
		completed++

		switch o.state {
		case pubtext.StateComplete:
			summary.Complete++
		case pubtext.StatePartial:
			summary.Partial++
		case pubtext.StateSkipped:
			summary.Skipped++
		default:
			summary.Failed++
			logger.Warn("article failed",
				"pmid", o.article.PMID,
				"url", o.article.URL(),
				"stage", o.stage,
				"missing", o.missing,
				"error", o.err,
			)
		}
		if o.unchanged {
			summary.Unchanged++
		}

		if o.state != pubtext.StateSkipped && g.Statuses != nil {
			if err := g.Statuses.UpdateStatus(ctx, o.article.PMID, g.status(summary.RunID, o)); err != nil {
				logger.Error("update status", "pmid", o.article.PMID, "error", err)
			}
		}

		if progress != nil {
			event := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				PMID:      o.article.PMID,
				State:     o.state,
			}
			if o.state == pubtext.StateFailed {
				event.Type = ProgressFailed
				event.Error = o.err
			}
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	logger.Info("run finished",
		"run", summary.RunID,
		"complete", summary.Complete,
		"partial", summary.Partial,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
	)

	return summary, ctx.Err()
}

// process regenerates the record of a single article.
func (g *Generator) process(ctx context.Context, article *pubtext.Article) outcome {
	o := outcome{article: article, state: pubtext.StateFailed}
	if ctx.Err() != nil {
		o.canceled = true
		return o
	}

	data, srcTime, err := g.Source.Open(ctx, article)
	if err != nil {
		o.err = err
		return o
	}

	outTime, exists, err := g.Store.ModTime(ctx, article.PMID)
	if err != nil {
		o.err = fmt.Errorf("record mod time: %w", err)
		return o
	}
	if exists && !g.Force && outTime.After(srcTime) {
		o.state = pubtext.StateSkipped
		return o
	}

	res, err := g.Extractor.Extract(article, data)
	if res != nil {
		o.stage = res.Stage
		o.missing = res.Missing
		o.publisher = res.Publisher
	}
	if err != nil {
		o.err = err
		return o
	}

	o.hash = computeHash(pubtext.FormatRecord(res.Record))
	if exists && g.storedHash(ctx, article.PMID) == o.hash {
		if err := g.Store.Touch(ctx, article.PMID); err != nil {
			o.err = fmt.Errorf("touch record: %w", err)
			return o
		}
		o.state = res.State
		o.unchanged = true
		return o
	}

	if err := g.Store.Save(ctx, article.PMID, res.Record); err != nil {
		o.err = fmt.Errorf("save record: %w", err)
		return o
	}
	o.state = res.State
	return o
}

// storedHash returns the hash of the stored record, from its last status
// or else from the record itself. Returns "" if neither can be read.
func (g *Generator) storedHash(ctx context.Context, pmid string) string {
	if g.Statuses != nil {
		if prev, err := g.Statuses.FindStatus(ctx, pmid); err == nil && prev.RecordHash != "" {
			return prev.RecordHash
		}
	}
	rec, err := g.Store.Load(ctx, pmid)
	if err != nil {
		return ""
	}
	return computeHash(pubtext.FormatRecord(rec))
}

func (g *Generator) status(runID string, o outcome) *pubtext.Status {
	s := &pubtext.Status{
		State:      o.state,
		Missing:    o.missing,
		Publisher:  o.publisher,
		RecordHash: o.hash,
		RunID:      runID,
		UpdatedAt:  time.Now().UTC(),
	}
	if o.err != nil {
		s.Error = o.err.Error()
	}
	return s
}

func computeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
