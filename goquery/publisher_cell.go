package goquery

import "github.com/fwojciec/pubtext"

// cellMethods extends the methods vocabulary with Cell Press's
// "STAR★Methods" heading.
var cellMethods = pubtext.NewVocabulary(append(pubtext.MethodsTitles.Terms(),
	"star★methods",
	"star methods",
)...)

// NewCellPublisher returns the publisher for cell.com pages. Cell titles
// its abstract "Summary".
func NewCellPublisher() *Publisher {
	return &Publisher{
		layout: Layout{
			Name:          "cell",
			Root:          "div.article, article",
			Title:         []string{"h1.article-header__title"},
			Abstract:      []string{"section#author-abstract", "div.abstract", "section.abstract"},
			Sections:      "section[id^='sec'], div.section",
			Heading:       "h2",
			Blocks:        "div.section-paragraph, p",
			Citations:     "a.workspace-trigger, a[href^='#bib']",
			Figures:       "figure, div.figure",
			FigureCaption: "figcaption, div.figure__caption",
			Tables:        "div.table, section.table",
			TableCaption:  "div.table__caption, caption",
			FullText:      []string{"div.section-paragraph", "section p"},
		},
		wrap: func(m *Model) pubtext.Locator { return &cellModel{Model: m} },
	}
}

type cellModel struct {
	*Model
}

func (m *cellModel) Methods() pubtext.Fragment {
	return m.locate(m.layout.Methods, cellMethods)
}
