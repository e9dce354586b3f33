package goquery

import "github.com/fwojciec/pubtext"

// NewWileyPublisher returns the publisher for onlinelibrary.wiley.com.
func NewWileyPublisher() *Publisher {
	return NewPublisher(Layout{
		Name:  "wiley",
		Root:  "div.article__body, article",
		Title: []string{"h1.citation__title"},
		Abstract: []string{
			"section.article-section__abstract div.article-section__content",
			"section.article-section__abstract",
		},
		Sections:      "section.article-section__content",
		Heading:       "h2, h3",
		Match:         pubtext.MatchExact,
		Blocks:        paragraphs,
		Citations:     "a.bibLink, span.bibLink a",
		Figures:       "section.article-section__inline-figure, figure",
		FigureCaption: "div.figure__caption, figcaption",
		Tables:        "div.article-table-content",
		TableCaption:  "header.article-table-caption",
		FullText:      []string{"section.article-section__full p"},
	})
}
