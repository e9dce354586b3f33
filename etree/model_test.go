package etree_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pubtext"
	"github.com/fwojciec/pubtext/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure the publishers implement pubtext.Publisher at compile time.
var _ pubtext.Publisher = (*etree.Publisher)(nil)

const jatsArticle = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE article PUBLIC "-//NLM//DTD JATS (Z39.96) Journal Archiving and Interchange DTD v1.2 20190208//EN" "JATS-archivearticle1.dtd">
<article article-type="research-article">
  <front>
    <article-meta>
      <title-group><article-title>Growth of
        <italic>E. coli</italic> cells</article-title></title-group>
      <abstract><p>Background text.</p></abstract>
    </article-meta>
  </front>
  <body>
    <sec><title>Introduction</title><p>Intro.</p></sec>
    <sec><title>  Results  AND Discussion </title>
      <p>We found X <xref ref-type="bibr" rid="B1">1</xref>.</p>
      <fig id="F1"><label>Figure 1</label><caption><p>Fig 1. Growth curve</p></caption><graphic/></fig>
      <table-wrap id="T1"><table><tr><td>1</td></tr></table></table-wrap>
      <p>See <xref ref-type="fig" rid="F1">Figure 1</xref>.</p>
    </sec>
    <sec sec-type="materials|methods"><title>Experimental design</title>
      <sec><title>Strains</title><p>We did Y.</p></sec>
    </sec>
  </body>
  <back>
    <ref-list>
      <ref id="B1"><element-citation><article-title>Cited work</article-title><pub-id pub-id-type="doi">10.1000/xyz123</pub-id></element-citation></ref>
      <ref id="B2"><element-citation><source>A book</source></element-citation></ref>
    </ref-list>
  </back>
</article>`

func openJATS(t *testing.T, data string) pubtext.Locator {
	t.Helper()
	loc, err := etree.NewJATSPublisher().Open([]byte(data))
	require.NoError(t, err)
	return loc
}

func joined(loc pubtext.Locator, f pubtext.Fragment) string {
	return strings.Join(loc.Strings(f), " ")
}

func TestJATSPublisher(t *testing.T) {
	t.Parallel()

	t.Run("locates sections", func(t *testing.T) {
		t.Parallel()

		loc := openJATS(t, jatsArticle)

		assert.Equal(t, "Growth of E. coli cells", loc.Title())
		assert.Equal(t, "Background text.", joined(loc, loc.Abstract()))
		assert.Equal(t, "We did Y.", joined(loc, loc.Methods()))
	})

	t.Run("rewrites citations figures and tables", func(t *testing.T) {
		t.Parallel()

		loc := openJATS(t, jatsArticle)

		assert.Equal(t, []string{
			"We found X CITATION.",
			"[[FIGURE: Fig 1. Growth curve]]",
			"[[TABLE: ]]",
			"See Figure 1.",
		}, loc.Strings(loc.Results()))
	})

	t.Run("reads references with a DOI", func(t *testing.T) {
		t.Parallel()

		loc := openJATS(t, jatsArticle)
		xl, ok := loc.(pubtext.XrefLocator)
		require.True(t, ok)

		assert.Equal(t, []pubtext.Xref{{DOI: "10.1000/xyz123", Title: "Cited work"}}, xl.Xrefs())
	})

	t.Run("structural sec-type wins over heading match", func(t *testing.T) {
		t.Parallel()

		loc := openJATS(t, `<article><front/><body>
<sec><title>Methods</title><p>Heading match.</p></sec>
<sec sec-type="methods"><title>Procedures</title><p>Structural match.</p></sec>
</body></article>`)

		assert.Equal(t, "Structural match.", joined(loc, loc.Methods()))
	})

	t.Run("first matching section in document order wins", func(t *testing.T) {
		t.Parallel()

		loc := openJATS(t, `<article><front/><body>
<sec><title>Overview</title><sec><title>Results</title><p>Nested first.</p></sec></sec>
<sec><title>Results</title><p>Top level second.</p></sec>
</body></article>`)

		assert.Equal(t, "Nested first.", joined(loc, loc.Results()))
	})

	t.Run("returns empty fragments without sections", func(t *testing.T) {
		t.Parallel()

		loc := openJATS(t, `<article><front/></article>`)
		doc := pubtext.NewDocument(loc)

		assert.Equal(t, "amr", doc.Missing())
		assert.True(t, pubtext.IsEmpty(doc.FullText()))
		assert.Nil(t, doc.Strings(doc.Results()))
		assert.Empty(t, loc.Title())
	})

	t.Run("full text covers the body", func(t *testing.T) {
		t.Parallel()

		loc := openJATS(t, `<article><front><article-meta><abstract><p>Abs.</p></abstract></article-meta></front>
<body><p>First.</p><p>Second.</p></body></article>`)
		ft, ok := loc.(pubtext.FullTextLocator)
		require.True(t, ok)

		assert.True(t, pubtext.IsEmpty(loc.Results()))
		assert.Equal(t, "First. Second.", joined(loc, ft.FullText()))
	})
}

func TestJATSPublisher_Open(t *testing.T) {
	t.Parallel()

	t.Run("fails with structure error without an article element", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewJATSPublisher().Open([]byte(`<?xml version="1.0"?><book><title>x</title></book>`))

		assert.Equal(t, pubtext.ESTRUCTURE, pubtext.ErrorCode(err))
	})

	t.Run("fails with invalid error for malformed XML", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewJATSPublisher().Open([]byte(`<article><front`))

		assert.Equal(t, pubtext.EINVALID, pubtext.ErrorCode(err))
	})

	t.Run("finds the article inside an article set", func(t *testing.T) {
		t.Parallel()

		loc := openJATS(t, `<pmc-articleset><article><front><article-meta><abstract><p>Inside.</p></abstract></article-meta></front></article></pmc-articleset>`)

		assert.Equal(t, "Inside.", joined(loc, loc.Abstract()))
	})
}

const elsevierArticle = `<?xml version="1.0" encoding="UTF-8"?>
<full-text-retrieval-response>
  <coredata><dc:title>Core title</dc:title></coredata>
  <originalText><xocs:doc><xocs:serial-item>
  <ja:article>
    <ja:head>
      <ce:title>Elsevier title</ce:title>
      <ce:abstract class="author"><ce:section-title>Abstract</ce:section-title>
        <ce:abstract-sec><ce:simple-para>Elsevier abstract.</ce:simple-para></ce:abstract-sec>
      </ce:abstract>
    </ja:head>
    <ja:body>
      <ce:sections>
        <ce:section id="s0010"><ce:label>2</ce:label><ce:section-title>Materials and methods</ce:section-title>
          <ce:para>Cells were grown <ce:cross-refs refid="bib1 bib2">[1,2]</ce:cross-refs>.</ce:para>
        </ce:section>
        <ce:section id="s0020"><ce:section-title>Results</ce:section-title>
          <ce:para>Yield rose <ce:cross-ref refid="bib1">[1]</ce:cross-ref>.</ce:para>
          <ce:figure id="f0005"><ce:label>Fig. 1</ce:label><ce:caption><ce:simple-para>Fig. 1. Yield.</ce:simple-para></ce:caption></ce:figure>
          <ce:table id="t0005"><ce:caption><ce:simple-para>Primers used.</ce:simple-para></ce:caption></ce:table>
        </ce:section>
      </ce:sections>
    </ja:body>
    <ja:tail>
      <ce:bibliography><ce:bibliography-sec>
        <ce:bib-reference id="bib1"><sb:reference><sb:contribution><sb:title><sb:maintitle>Prior yield study</sb:maintitle></sb:title></sb:contribution><ce:doi>10.1016/j.cell.2020.01.001</ce:doi></sb:reference></ce:bib-reference>
      </ce:bibliography-sec></ce:bibliography>
    </ja:tail>
  </ja:article>
  </xocs:serial-item></xocs:doc></originalText>
</full-text-retrieval-response>`

func TestElsevierPublisher(t *testing.T) {
	t.Parallel()

	loc, err := etree.NewElsevierPublisher().Open([]byte(elsevierArticle))
	require.NoError(t, err)

	assert.Equal(t, "Elsevier title", loc.Title())
	assert.Equal(t, "Elsevier abstract.", joined(loc, loc.Abstract()))
	assert.Equal(t, "Cells were grown CITATION.", joined(loc, loc.Methods()))
	assert.Equal(t, []string{
		"Yield rose CITATION.",
		"[[FIGURE: Fig. 1. Yield.]]",
		"[[TABLE: Primers used.]]",
	}, loc.Strings(loc.Results()))

	xl, ok := loc.(pubtext.XrefLocator)
	require.True(t, ok)
	assert.Equal(t, []pubtext.Xref{{DOI: "10.1016/j.cell.2020.01.001", Title: "Prior yield study"}}, xl.Xrefs())
}

func TestElsevierPublisher_MissingArticle(t *testing.T) {
	t.Parallel()

	_, err := etree.NewElsevierPublisher().Open([]byte(jatsArticle))

	assert.Equal(t, pubtext.ESTRUCTURE, pubtext.ErrorCode(err))
}

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "detects JATS", data: jatsArticle, want: "jats"},
		{name: "detects Elsevier full text", data: elsevierArticle, want: "elsevier"},
		{name: "ignores HTML", data: `<!DOCTYPE html><html><body><article></article></body></html>`, want: ""},
		{name: "ignores other XML", data: `<?xml version="1.0"?><urlset></urlset>`, want: ""},
		{name: "ignores malformed XML", data: `<?xml version="1.0"?><article><front`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, etree.NewDetector().Detect([]byte(tt.data)))
		})
	}
}

func TestPublishers(t *testing.T) {
	t.Parallel()

	var names []string
	for _, p := range etree.Publishers() {
		names = append(names, p.Name())
	}

	assert.Equal(t, []string{"jats", "elsevier"}, names)
}
