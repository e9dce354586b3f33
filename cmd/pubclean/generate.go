package main

import (
	"fmt"

	"github.com/fwojciec/pubtext"
	"github.com/fwojciec/pubtext/clean"
	"github.com/fwojciec/pubtext/fs"
	pubslog "github.com/fwojciec/pubtext/slog"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	filter := pubtext.ArticleFilter{PMIDs: c.PMIDs}
	if c.ISSN != "" {
		filter.ISSN = &c.ISSN
	}
	if c.State != "" {
		state := pubtext.State(c.State)
		filter.State = &state
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pubtext.ErrorMessage(err))
		return err
	}
	src := fs.NewSource(c.Src)
	if len(articles) == 0 && c.unfiltered() {
		if articles, err = registerFetched(deps, src); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pubtext.ErrorMessage(err))
			return err
		}
		if len(articles) > 0 {
			fmt.Fprintf(deps.Stdout, "Registered %d fetched articles\n", len(articles))
		}
	}
	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'pubclean add' to register some.")
		return nil
	}

	g := &clean.Generator{
		Source:      src,
		Store:       fs.NewRecordStore(c.Out),
		Extractor:   newExtractor(deps, c.Normalize, c.RequireAll),
		Statuses:    deps.Articles,
		Force:       c.Force,
		Concurrency: c.Concurrency,
		Logger:      deps.Logger,
	}

	progress := func(event clean.ProgressEvent) {
		switch event.Type {
		case clean.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d articles\n", event.Total)
		case clean.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s %s\n", event.Completed, event.Total, event.PMID, event.State)
		case clean.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s failed: %s\n", event.Completed, event.Total, event.PMID, pubtext.ErrorMessage(event.Error))
		}
	}

	summary, err := g.Run(deps.Ctx, articles, progress)
	if summary != nil {
		fmt.Fprintf(deps.Stdout, "Done: %d complete, %d partial, %d failed, %d skipped (run %s)\n",
			summary.Complete, summary.Partial, summary.Failed, summary.Skipped, summary.RunID)
	}
	return err
}

func (c *GenerateCmd) unfiltered() bool {
	return len(c.PMIDs) == 0 && c.ISSN == "" && c.State == ""
}

// registerFetched registers every article found in src by its pmid alone.
// It serves a first run over a directory of fetched files.
func registerFetched(deps *Dependencies, src *fs.Source) ([]*pubtext.Article, error) {
	pmids, err := src.PMIDs()
	if err != nil {
		return nil, err
	}
	articles := make([]*pubtext.Article, 0, len(pmids))
	for _, pmid := range pmids {
		a := &pubtext.Article{PMID: pmid}
		if err := deps.Articles.CreateArticle(deps.Ctx, a); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// newExtractor builds the extraction pipeline with logging decorators.
// Command-line options add to the registry file's global options.
func newExtractor(deps *Dependencies, normalize, requireAll bool) pubtext.Extractor {
	e := &clean.Extractor{
		Resolver:   pubslog.NewLoggingResolver(deps.Registry, deps.Logger),
		Normalize:  normalize || deps.Config.Normalize,
		RequireAll: requireAll || deps.Config.RequireAll,
	}
	return pubslog.NewLoggingExtractor(e, deps.Logger)
}
