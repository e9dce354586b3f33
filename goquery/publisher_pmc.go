package goquery

// NewPMCPublisher returns the publisher for PubMed Central article pages,
// covering both the current and the classic page templates.
func NewPMCPublisher() *Publisher {
	return NewPublisher(Layout{
		Name:           "pmc",
		Root:           "main article, div.jig-ncbiinpagenav, #maincontent",
		Title:          []string{"hgroup h1", "h1.content-title"},
		Abstract:       []string{"section.abstract", "div.tsec.sec[id^='abstract']", "#abstract-1"},
		Sections:       "section[id], div.tsec.sec",
		Heading:        "h2",
		Blocks:         paragraphs,
		Citations:      "a.usa-link[href^='#r'], a.bibr, a[href^='#R'], a[href^='#B'], a[href^='#CR']",
		Figures:        "figure, div.fig",
		FigureCaption:  "figcaption, div.caption",
		Tables:         "section.tw, div.table-wrap",
		TableCaption:   "div.caption, .caption",
		FullText:       []string{"section.body p", "div.tsec p"},
		References:     "section.ref-list li, div.ref-list-sec li, ul.ref-list li",
		ReferenceTitle: "span.element-citation-title",
	})
}
