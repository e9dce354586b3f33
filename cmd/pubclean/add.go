package main

import (
	"fmt"

	"github.com/fwojciec/pubtext"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	article := &pubtext.Article{
		PMID:    c.PMID,
		DOI:     c.DOI,
		ISSN:    c.ISSN,
		Journal: c.Journal,
		Year:    c.Year,
		PMCID:   c.PMCID,
		Title:   c.Title,
	}

	if err := deps.Articles.CreateArticle(deps.Ctx, article); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pubtext.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added article %s\n", article.PMID)
	return nil
}
