package goquery

// NewSciencePublisher returns the publisher for science.org. Reports often
// have no section headings at all and are extracted as full text.
func NewSciencePublisher() *Publisher {
	return NewPublisher(Layout{
		Name:          "science",
		Root:          "main article, article",
		Title:         []string{"h1[property='name']"},
		Abstract:      []string{"section#abstract", "div.section.abstract"},
		Sections:      "section[id^='sec']",
		Heading:       "h2",
		FlatHeadings:  "h2",
		Blocks:        "div[role='paragraph'], p",
		Citations:     "a[role='doc-biblioref']",
		Figures:       "figure",
		FigureCaption: "figcaption",
		Tables:        "figure.table, div.table",
		TableCaption:  "figcaption, caption",
		FullText:      []string{"section#bodymatter div[role='paragraph']", "section#bodymatter p"},
	})
}
