package goquery

// NewSpringerPublisher returns the publisher for link.springer.com and
// BioMed Central pages.
func NewSpringerPublisher() *Publisher {
	return NewPublisher(Layout{
		Name:          "springer",
		Root:          "main article, article",
		Title:         []string{"h1.c-article-title"},
		Abstract:      []string{"section[data-title='Abstract']", "#Abs1"},
		Results:       []string{"section[data-title='Results']", "section[data-title='Results and discussion']"},
		Methods:       []string{"section[data-title='Methods']", "section[data-title='Materials and methods']"},
		Sections:      "section[data-title], div.c-article-section",
		Heading:       "h2",
		Blocks:        paragraphs,
		Citations:     "a[data-track-action='reference anchor'], a[href^='#ref-CR']",
		Figures:       "div.c-article-section__figure, figure",
		FigureCaption: "figcaption, .c-article-section__figure-description",
		Tables:        "div.c-article-table",
		TableCaption:  ".c-article-table__caption, .c-article-table-title",
		FullText:      []string{"div.c-article-body p"},
	})
}
