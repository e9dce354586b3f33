package goquery

// NewELifePublisher returns the publisher for elifesciences.org.
func NewELifePublisher() *Publisher {
	return NewPublisher(Layout{
		Name:           "elife",
		Root:           "main, article",
		Title:          []string{"h1.content-header__title"},
		Abstract:       []string{"section#abstract", "section.abstract"},
		Sections:       "section.article-section",
		Heading:        "h2",
		Blocks:         paragraphs,
		Citations:      "a[href^='#bib']",
		Figures:        "div.asset-viewer-inline, figure",
		FigureCaption:  "figcaption, div.asset-viewer-inline__caption",
		Tables:         "div.table-wrap, table",
		TableCaption:   "caption",
		FullText:       []string{"section.article-section p"},
		References:     "ol.reference-list > li",
		ReferenceTitle: ".reference__title",
	})
}
