package goquery

// NewGenericPublisher returns the publisher used when nothing more specific
// is known about a page. It relies on headings and common class names:
// an element whose class or id mentions "abstract", <section> containers
// with a heading, or flat h2/h3 headings followed by paragraphs. Prose
// held directly in a div counts as a paragraph.
func NewGenericPublisher() *Publisher {
	return NewPublisher(Layout{
		Name:  "generic",
		Root:  "body",
		Title: []string{"h1.article-title", "h1"},
		Abstract: []string{
			"#abstract",
			"section.abstract, div.abstract",
			"section[class*='abstract'], div[class*='abstract']",
		},
		Sections:      "section",
		Heading:       headings,
		FlatHeadings:  "h2, h3",
		Blocks:        paragraphs + ", " + leafDivs,
		Citations:     "a[href^='#ref'], a[href^='#bib'], a[href^='#cit'], a.xref-bibr",
		Figures:       figureTags,
		FigureCaption: figCaptions,
		Tables:        tableTags,
		TableCaption:  tabCaptions,
		FullText:      []string{"article p", "main p", "body p"},
	})
}
