package main

import (
	"fmt"

	"github.com/fwojciec/pubtext"
	"github.com/fwojciec/pubtext/bloom"
	"github.com/fwojciec/pubtext/fs"
)

// Bloom filter sizing for cross-reference deduplication.
const (
	xrefsPerArticle   = 60
	xrefsFalsePosRate = 0.001
)

// Run executes the xrefs command.
func (c *XrefsCmd) Run(deps *Dependencies) error {
	articles, err := deps.Articles.FindArticles(deps.Ctx, pubtext.ArticleFilter{PMIDs: c.PMIDs})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pubtext.ErrorMessage(err))
		return err
	}

	src := fs.NewSource(c.Src)
	if len(articles) == 0 && len(c.PMIDs) == 0 {
		pmids, err := src.PMIDs()
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		for _, pmid := range pmids {
			articles = append(articles, &pubtext.Article{PMID: pmid})
		}
	}
	extractor := newExtractor(deps, false, false)
	seen := bloom.NewFilter(uint(len(articles)*xrefsPerArticle+1), xrefsFalsePosRate)

	for _, a := range articles {
		if err := deps.Ctx.Err(); err != nil {
			return err
		}
		data, _, err := src.Open(deps.Ctx, a)
		if err != nil {
			deps.Logger.Warn("article skipped", "pmid", a.PMID, "url", a.URL(), "error", err)
			continue
		}
		res, err := extractor.Extract(a, data)
		if res == nil {
			deps.Logger.Warn("article skipped", "pmid", a.PMID, "url", a.URL(), "error", err)
			continue
		}
		for _, x := range seen.Unique(res.Xrefs) {
			fmt.Fprintf(deps.Stdout, "%s\t%s\n", x.DOI, x.Title)
		}
	}
	return nil
}
