package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pubtext"
	"github.com/fwojciec/pubtext/htmltomarkdown"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	article := &pubtext.Article{PMID: c.PMID, ISSN: c.ISSN}
	if article.PMID == "" {
		article.PMID = strings.TrimSuffix(filepath.Base(c.File), filepath.Ext(c.File))
	}

	if c.Format == "markdown" {
		return c.markdown(deps, article, data)
	}

	res, err := newExtractor(deps, c.Normalize, c.RequireAll).Extract(article, data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pubtext.ErrorMessage(err))
		return err
	}

	if c.Format == "html" {
		fmt.Fprint(deps.Stdout, pubtext.FormatHTML(res.Title, res.Record))
	} else {
		fmt.Fprint(deps.Stdout, pubtext.FormatRecord(res.Record))
	}
	fmt.Fprintf(deps.Stderr, "%s: %s via %s", article.PMID, res.State, res.Publisher)
	if res.Missing != "" {
		fmt.Fprintf(deps.Stderr, " (missing %s)", res.Missing)
	}
	fmt.Fprintln(deps.Stderr)
	return nil
}

type section struct {
	kind pubtext.SectionKind
	frag pubtext.Fragment
}

// markdown renders the located sections of an HTML article for review.
func (c *CleanCmd) markdown(deps *Dependencies, article *pubtext.Article, data []byte) error {
	journal, err := deps.Registry.Resolve(article, data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pubtext.ErrorMessage(err))
		return err
	}
	loc, err := journal.Publisher.Open(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pubtext.ErrorMessage(err))
		return err
	}
	hl, ok := loc.(pubtext.HTMLLocator)
	if !ok {
		err := pubtext.Errorf(pubtext.EINVALID, "publisher %s cannot render markdown", journal.Publisher.Name())
		fmt.Fprintf(deps.Stderr, "error: %s\n", pubtext.ErrorMessage(err))
		return err
	}

	doc := pubtext.NewDocument(loc)
	sections := []section{
		{pubtext.KindAbstract, doc.Abstract()},
		{pubtext.KindResults, doc.Results()},
		{pubtext.KindMethods, doc.Methods()},
	}
	if !doc.HasResultsOrMethods() {
		sections = []section{
			{pubtext.KindAbstract, doc.Abstract()},
			{pubtext.KindFullText, doc.FullText()},
		}
	}

	conv := htmltomarkdown.NewConverter()
	if title := doc.Title(); title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", title)
	}
	for _, s := range sections {
		if pubtext.IsEmpty(s.frag) {
			continue
		}
		html, err := hl.HTML(s.frag)
		if err != nil {
			return err
		}
		md, err := conv.Section(s.kind, html)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pubtext.ErrorMessage(err))
			return err
		}
		if md != "" {
			fmt.Fprintln(deps.Stdout, md)
		}
	}
	return nil
}
