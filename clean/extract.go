// Package clean runs the extraction pipeline that turns fetched journal
// articles into cleaned, tagged section records.
package clean

import (
	"strings"

	"github.com/fwojciec/pubtext"
)

// Ensure Extractor implements pubtext.Extractor at compile time.
var _ pubtext.Extractor = (*Extractor)(nil)

// Extractor resolves the publisher of an article, locates its sections and
// flattens them into a record.
type Extractor struct {
	Resolver pubtext.Resolver

	// Normalize reduces numeric literals to canonical tokens.
	Normalize bool

	// RequireAll fails every article that lacks one of abstract, results or
	// methods. Journals can also require it individually.
	RequireAll bool
}

// Extract implements pubtext.Extractor. The article moves from fetched to
// parsed once its publisher opens it, and to classified once at least one
// section is located. A failed Result keeps the last of these in Stage.
func (e *Extractor) Extract(article *pubtext.Article, data []byte) (*pubtext.Result, error) {
	res := &pubtext.Result{State: pubtext.StateFetched}
	if err := article.Validate(); err != nil {
		return fail(res, err)
	}

	journal, err := e.Resolver.Resolve(article, data)
	if err != nil {
		return fail(res, err)
	}
	res.Publisher = journal.Publisher.Name()

	loc, err := journal.Publisher.Open(data)
	if err != nil {
		return fail(res, err)
	}
	res.State = pubtext.StateParsed

	doc := pubtext.NewDocument(loc)
	res.Title = doc.Title()
	res.Xrefs = doc.Xrefs()
	res.Missing = doc.Missing()

	if res.Missing == "amr" && pubtext.IsEmpty(doc.FullText()) {
		return fail(res, pubtext.Errorf(pubtext.ENOTFOUND, "article %s: no sections located", article.PMID))
	}
	res.State = pubtext.StateClassified

	if (e.RequireAll || journal.RequireAll) && !doc.HasAllSections() {
		return fail(res, pubtext.Errorf(pubtext.ENOTFOUND, "article %s: missing required sections %q", article.PMID, res.Missing))
	}

	rec := pubtext.NewRecord()
	state := pubtext.StatePartial
	switch {
	case doc.HasResultsOrMethods():
		e.set(rec, pubtext.KindAbstract, doc, doc.Abstract())
		e.set(rec, pubtext.KindResults, doc, doc.Results())
		e.set(rec, pubtext.KindMethods, doc, doc.Methods())
		if doc.HasAllSections() {
			state = pubtext.StateComplete
		}
	case !pubtext.IsEmpty(doc.FullText()):
		e.set(rec, pubtext.KindAbstract, doc, doc.Abstract())
		e.set(rec, pubtext.KindFullText, doc, doc.FullText())
	}

	_, hasRes := rec.Text(pubtext.KindResults)
	_, hasMM := rec.Text(pubtext.KindMethods)
	_, hasFT := rec.Text(pubtext.KindFullText)
	if !hasRes && !hasMM && !hasFT {
		return fail(res, pubtext.Errorf(pubtext.ENOTFOUND, "article %s: no results, methods or full text located", article.PMID))
	}

	res.Stage = res.State
	res.State = state
	res.Record = rec
	return res, nil
}

// fail keeps the state the article reached in Stage and marks it failed.
func fail(res *pubtext.Result, err error) (*pubtext.Result, error) {
	res.Stage = res.State
	res.State = pubtext.StateFailed
	return res, err
}

func (e *Extractor) set(rec *pubtext.Record, kind pubtext.SectionKind, doc *pubtext.Document, f pubtext.Fragment) {
	text := strings.Join(doc.Strings(f), " ")
	if e.Normalize {
		text = pubtext.NormalizeNumbers(text)
	}
	rec.Set(kind, text)
}
