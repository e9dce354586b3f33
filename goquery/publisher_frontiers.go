package goquery

// NewFrontiersPublisher returns the publisher for frontiersin.org. Frontiers
// pages have no section containers; headings are flat h2 elements inside
// the full-text wrapper, which follows the abstract.
func NewFrontiersPublisher() *Publisher {
	return NewPublisher(Layout{
		Name:          "frontiers",
		Root:          "div.article-section, div.JournalFullText",
		Title:         []string{"div.JournalAbstract h1", "h1"},
		Abstract:      []string{"div.JournalAbstract"},
		FlatHeadings:  "h2",
		Blocks:        paragraphs,
		Citations:     "a[href^='#B']",
		Figures:       "div.FigureDesc",
		FigureCaption: "p",
		Tables:        "div.Imageheaders + div.table-wrap, table",
		TableCaption:  "caption",
		FullText:      []string{"div.JournalFullText > p"},
	})
}
