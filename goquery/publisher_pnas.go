package goquery

// NewPNASPublisher returns the publisher for pnas.org.
func NewPNASPublisher() *Publisher {
	return NewPublisher(Layout{
		Name:          "pnas",
		Root:          "main article, article",
		Title:         []string{"h1.core-title", "h1[property='name']"},
		Abstract:      []string{"section#abstract", "div.abstract"},
		Sections:      "section[id^='sec']",
		Heading:       "h2",
		FlatHeadings:  "h2",
		Blocks:        "div[role='paragraph'], p",
		Citations:     "a[role='doc-biblioref'], a.xref-bibr",
		Figures:       "figure.graphic, div.fig",
		FigureCaption: "figcaption, div.fig-caption",
		Tables:        "figure.table, div.table",
		TableCaption:  "figcaption, div.table-caption",
		FullText:      []string{"section#bodymatter div[role='paragraph']", "section#bodymatter p"},
	})
}
