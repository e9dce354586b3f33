package etree

// NewJATSPublisher returns the publisher for JATS XML, the format of the
// PubMed Central open-access subset.
func NewJATSPublisher() *Publisher {
	return NewPublisher(Layout{
		Name:  "jats",
		Root:  []string{"//article"},
		Title: []string{"./front/article-meta/title-group/article-title", ".//article-title"},
		Abstract: []string{
			"./front/article-meta/abstract[@abstract-type='author']",
			"./front/article-meta/abstract",
		},
		Results: []string{
			"./body//sec[@sec-type='results']",
			"./body//sec[@sec-type='results|discussion']",
		},
		Methods: []string{
			"./body//sec[@sec-type='methods']",
			"./body//sec[@sec-type='materials|methods']",
			"./body//sec[@sec-type='materials']",
		},
		Section:   Tag{Name: "sec"},
		Heading:   "title",
		Blocks:    []Tag{{Name: "p"}},
		Citations: []Tag{{Name: "xref", Attr: "ref-type", Value: "bibr"}},
		Figures:   []Tag{{Name: "fig"}},
		Tables:    []Tag{{Name: "table-wrap"}},
		Caption:   "caption",
		FullText:  []string{"./body"},

		References:     Tag{Name: "ref"},
		ReferenceDOI:   []string{".//pub-id[@pub-id-type='doi']", ".//ext-link[@ext-link-type='doi']"},
		ReferenceTitle: []string{".//article-title", ".//source"},
	})
}
