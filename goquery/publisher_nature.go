package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pubtext"
)

// natureMethods selects every methods-like section on a Nature page. Older
// letters split methods into a summary and an online section.
const natureMethods = "#methods, #methods-summary, #online-methods, " +
	"section[data-title='Methods'], section[data-title='Methods summary'], " +
	"section[data-title='Online methods'], section[data-title='Online Methods']"

// NewNaturePublisher returns the publisher for nature.com.
func NewNaturePublisher() *Publisher {
	return &Publisher{
		layout: Layout{
			Name:          "nature",
			Root:          "div.c-article-body, article",
			Title:         []string{"h1.c-article-title"},
			Abstract:      []string{"section[data-title='Abstract']", "div#Abs1-content", "#abstract"},
			Results:       []string{"section[data-title='Results']"},
			Sections:      "section[data-title]",
			Heading:       "h2",
			Blocks:        paragraphs,
			Citations:     "a[data-track-action='reference anchor'], sup a[href^='#ref-CR']",
			Figures:       "div.c-article-section__figure, figure",
			FigureCaption: "figcaption, div.c-article-section__figure-description",
			Tables:        "div.c-article-table",
			TableCaption:  "div.c-article-table__caption, h3",
			FullText:      []string{"div.c-article-section__content p"},
		},
		wrap: func(m *Model) pubtext.Locator { return &natureModel{Model: m} },
	}
}

type natureModel struct {
	*Model
}

// Methods merges all methods sections in document order into one fragment.
// Pages without any of them fall back to the regular locator chain.
func (m *natureModel) Methods() pubtext.Fragment {
	if sel := m.root.Find(natureMethods); sel.Length() > 0 {
		return Fragment{Selection: sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
			return !within(s.Nodes[0].Parent, sel.Nodes)
		})}
	}
	return m.Model.Methods()
}
