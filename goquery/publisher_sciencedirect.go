package goquery

// NewScienceDirectPublisher returns the publisher for sciencedirect.com
// article pages. Body text sits in div.u-margin-s-bottom blocks rather than
// plain paragraphs on recent pages.
func NewScienceDirectPublisher() *Publisher {
	return NewPublisher(Layout{
		Name:          "sciencedirect",
		Root:          "article",
		Title:         []string{"span.title-text"},
		Abstract:      []string{"div.abstract.author", "div.Abstracts"},
		Sections:      "section",
		Heading:       "h2, h3",
		Blocks:        "div.u-margin-s-bottom, p",
		Citations:     "a.workspace-trigger[name^='bbib'], a[href^='#bib']",
		Figures:       "figure.figure",
		FigureCaption: "span.captions, figcaption",
		Tables:        "div.tables",
		TableCaption:  "span.captions, .caption",
		FullText:      []string{"div#body div.u-margin-s-bottom", "div#body p"},
	})
}
