package goquery

// NewPLOSPublisher returns the publisher for journals.plos.org pages.
// PLOS wraps each section in div.section with an h2 title; author and
// editor summaries also carry the "abstract" class, so only the first
// abstract block is used.
func NewPLOSPublisher() *Publisher {
	return NewPublisher(Layout{
		Name:           "plos",
		Root:           "#artText, div.article-text",
		Title:          []string{"h1#artTitle"},
		Abstract:       []string{"div.abstract.abstract-type-", "div.abstract"},
		Sections:       "div.section",
		Heading:        "h2",
		Blocks:         paragraphs,
		Citations:      "a.ref-tip, a[href^='#pone.'], a[href^='#pbio.'], a[href^='#pgen.']",
		Figures:        "div.figure",
		FigureCaption:  "div.figcaption",
		Tables:         "div.table-wrap",
		TableCaption:   "div.table-caption, div.figcaption",
		FullText:       []string{"div.section p"},
		References:     "ol.references > li",
		ReferenceTitle: "span.title",
	})
}
