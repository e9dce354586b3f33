package goquery

// NewHighWirePublisher returns the publisher for journals hosted on the
// HighWire platform (JBC, Genes & Development, J Neurosci and others).
// HighWire names sections by class, so structural selectors usually match.
func NewHighWirePublisher() *Publisher {
	return NewPublisher(Layout{
		Name:          "highwire",
		Root:          "div.fulltext-view, div.article.fulltext-view",
		Title:         []string{"h1#page-title", "h1.highwire-cite-title"},
		Abstract:      []string{"div.section.abstract"},
		Results:       []string{"div.section.results", "div.section.results-discussion"},
		Methods:       []string{"div.section.methods", "div.section.materials-methods", "div.section.experimental-procedures"},
		Sections:      "div.section",
		Heading:       "h2",
		Blocks:        paragraphs,
		Citations:     "a.xref-bibr",
		Figures:       "div.fig",
		FigureCaption: "div.fig-caption",
		Tables:        "div.table",
		TableCaption:  "div.table-caption",
		FullText:      []string{"div.section p"},
	})
}
