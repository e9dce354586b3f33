package goquery

import "github.com/fwojciec/pubtext"

// NewOUPPublisher returns the publisher for academic.oup.com. OUP pages
// mostly use flat h2 headings, often prefixed with extra words
// ("Statistical methods", "Results of the screen"), so headings are matched
// by suffix. Structural section classes are tried first.
func NewOUPPublisher() *Publisher {
	return NewPublisher(Layout{
		Name:          "oup",
		Root:          "div.widget-ArticleFulltext, div[data-widgetname='ArticleFulltext']",
		Title:         []string{"h1.wi-article-title"},
		Abstract:      []string{"section.abstract"},
		Results:       []string{"section.results", "div.section.results"},
		Methods:       []string{"section.methods", "section.materials-methods", "div.section.methods"},
		Sections:      "section.section",
		Heading:       "h2",
		Match:         pubtext.MatchSuffix,
		FlatHeadings:  "h2.section-title",
		Blocks:        "p.chapter-para, p",
		Citations:     "a.link-ref, a.xref-bibr",
		Figures:       "div.fig-section",
		FigureCaption: "div.fig-caption, div.caption",
		Tables:        "div.table-modal, div.table-wrap",
		TableCaption:  "div.caption, div.table-wrap-title",
		FullText:      []string{"p.chapter-para"},
	})
}
