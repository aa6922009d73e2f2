package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontoforge/ontosnip/espanso"
	"github.com/ontoforge/ontosnip/graph"
	"github.com/ontoforge/ontosnip/prefixmap"
	"github.com/ontoforge/ontosnip/vocabulary/owl"
	"github.com/ontoforge/ontosnip/vocabulary/rdf"
)

const coreNS = "https://example.org/ontology/core/"

func corePrefixes(t *testing.T) *prefixmap.PrefixMap {
	t.Helper()
	pm, err := prefixmap.FromMap(map[string]string{"Core": coreNS})
	require.NoError(t, err)
	return pm
}

func addTerm(g *graph.Graph, iri, classIRI string) graph.Term {
	subj := graph.IRI(iri)
	g.Add(graph.Triple{Subject: subj, Predicate: graph.IRI(rdf.Type), Object: graph.IRI(classIRI)})
	return subj
}

func TestExtractObjectPropertiesDefault(t *testing.T) {
	g := graph.New()
	addTerm(g, coreNS+"hasPart", owl.ObjectProperty)
	addTerm(g, coreNS+"partOf", owl.ObjectProperty)
	// Classes are not extracted by default.
	addTerm(g, coreNS+"Widget", owl.Class)

	matches := New(corePrefixes(t), Options{}).Extract(g)
	assert.Equal(t, []espanso.Match{
		{Trigger: ":Core:hasPart", Replace: "Core:hasPart"},
		{Trigger: ":Core:partOf", Replace: "Core:partOf"},
	}, matches)
}

func TestExtractSkipsForeignAndBlankSubjects(t *testing.T) {
	g := graph.New()
	addTerm(g, coreNS+"hasPart", owl.ObjectProperty)
	// Imported term outside the package namespaces.
	addTerm(g, "http://purl.obolibrary.org/obo/BFO_0000050", owl.ObjectProperty)
	// Anonymous property node.
	g.Add(graph.Triple{Subject: graph.Blank("n1"), Predicate: graph.IRI(rdf.Type), Object: graph.IRI(owl.ObjectProperty)})

	matches := New(corePrefixes(t), Options{}).Extract(g)
	require.Len(t, matches, 1)
	assert.Equal(t, ":Core:hasPart", matches[0].Trigger)
}

func TestExtractMultipleKindsOrdered(t *testing.T) {
	g := graph.New()
	addTerm(g, coreNS+"Widget", owl.Class)
	addTerm(g, coreNS+"hasPart", owl.ObjectProperty)
	addTerm(g, coreNS+"Assembly", owl.Class)

	matches := New(corePrefixes(t), Options{
		Kinds: []Kind{KindObjectProperties, KindClasses},
	}).Extract(g)

	// Kind order first, trigger order within a kind.
	require.Len(t, matches, 3)
	assert.Equal(t, ":Core:hasPart", matches[0].Trigger)
	assert.Equal(t, ":Core:Assembly", matches[1].Trigger)
	assert.Equal(t, ":Core:Widget", matches[2].Trigger)
}

func TestExtractPreferLabels(t *testing.T) {
	g := graph.New()
	subj := addTerm(g, coreNS+"BFO_0000050", owl.ObjectProperty)
	g.Add(graph.Triple{Subject: subj, Predicate: graph.IRI(rdf.Label), Object: graph.LangLiteral("part of", "en")})

	addTerm(g, coreNS+"hasPart", owl.ObjectProperty)

	matches := New(corePrefixes(t), Options{PreferLabels: true}).Extract(g)
	require.Len(t, matches, 2)
	assert.Equal(t, ":Core:BFO_0000050", matches[0].Trigger)
	assert.Equal(t, "part of", matches[0].Replace)
	// Falls back to the qualified name without a label.
	assert.Equal(t, "Core:hasPart", matches[1].Replace)
}

func TestExtractPrefersEnglishLabels(t *testing.T) {
	g := graph.New()
	subj := addTerm(g, coreNS+"hasPart", owl.ObjectProperty)
	g.Add(graph.Triple{Subject: subj, Predicate: graph.IRI(rdf.Label), Object: graph.LangLiteral("ein Teil", "de")})
	g.Add(graph.Triple{Subject: subj, Predicate: graph.IRI(rdf.Label), Object: graph.LangLiteral("has part", "en-US")})

	matches := New(corePrefixes(t), Options{PreferLabels: true}).Extract(g)
	require.Len(t, matches, 1)
	assert.Equal(t, "has part", matches[0].Replace)
}

func TestExtractIncludeComments(t *testing.T) {
	g := graph.New()
	subj := addTerm(g, coreNS+"hasPart", owl.ObjectProperty)
	g.Add(graph.Triple{Subject: subj, Predicate: graph.IRI(rdf.Comment), Object: graph.Literal("A   core\nmereological relation.")})

	matches := New(corePrefixes(t), Options{IncludeComments: true}).Extract(g)
	require.Len(t, matches, 1)
	assert.Equal(t, "A core mereological relation.", matches[0].Label)
}

func TestExtractDeduplicatesTriggers(t *testing.T) {
	g := graph.New()
	subj := addTerm(g, coreNS+"hasPart", owl.ObjectProperty)
	// Same assertion twice.
	g.Add(graph.Triple{Subject: subj, Predicate: graph.IRI(rdf.Type), Object: graph.IRI(owl.ObjectProperty)})

	matches := New(corePrefixes(t), Options{}).Extract(g)
	assert.Len(t, matches, 1)
}

func TestExtractCustomTriggerPrefix(t *testing.T) {
	g := graph.New()
	addTerm(g, coreNS+"hasPart", owl.ObjectProperty)

	matches := New(corePrefixes(t), Options{TriggerPrefix: ";;"}).Extract(g)
	require.Len(t, matches, 1)
	assert.Equal(t, ";;Core:hasPart", matches[0].Trigger)
}

func TestParseKinds(t *testing.T) {
	kinds, err := ParseKinds([]string{"classes", "object-properties"})
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindClasses, KindObjectProperties}, kinds)

	_, err = ParseKinds([]string{"restrictions"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown term kind")
}

func TestCommentTextConvertsHTML(t *testing.T) {
	got := commentText("<p>A <b>bold</b> definition.</p>")
	assert.Equal(t, "A **bold** definition.", got)
}

func TestCommentTextTruncates(t *testing.T) {
	long := ""
	for i := 0; i < 50; i++ {
		long += "0123456789"
	}
	got := commentText(long)
	assert.LessOrEqual(t, len(got), maxLabelLen+2)
}

func TestCommentTextTruncatesOnRuneBoundary(t *testing.T) {
	// 150 two-byte runes: the 200-byte limit lands mid-rune.
	got := commentText(strings.Repeat("é", 150))
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len(got), maxLabelLen+2)
}
