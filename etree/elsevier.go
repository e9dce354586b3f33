package etree

// NewElsevierPublisher returns the publisher for Elsevier full-text XML as
// served by the ScienceDirect article API. Elements keep their "ce:", "ja:"
// and "sb:" prefixes.
func NewElsevierPublisher() *Publisher {
	return NewPublisher(Layout{
		Name: "elsevier",
		Root: []string{"//ja:article", "//ja:converted-article", "//ja:simple-article"},
		Title: []string{
			"./ja:head/ce:title",
			"//dc:title",
		},
		Abstract: []string{
			"./ja:head/ce:abstract[@class='author']",
			"./ja:head/ce:abstract",
		},
		Section: Tag{Name: "ce:section"},
		Heading: "ce:section-title",
		Blocks:  []Tag{{Name: "ce:para"}, {Name: "ce:simple-para"}},
		Citations: []Tag{
			{Name: "ce:cross-ref"},
			{Name: "ce:cross-refs"},
		},
		Figures:  []Tag{{Name: "ce:figure"}},
		Tables:   []Tag{{Name: "ce:table"}},
		Caption:  "ce:caption",
		FullText: []string{"./ja:body"},

		References:     Tag{Name: "ce:bib-reference"},
		ReferenceDOI:   []string{".//ce:doi"},
		ReferenceTitle: []string{".//sb:maintitle", ".//ce:textref"},
	})
}
