package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	rdfType   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	owlObjProp = "http://www.w3.org/2002/07/owl#ObjectProperty"
	rdfsLabel = "http://www.w3.org/2000/01/rdf-schema#label"
)

func TestGraphAddAndLen(t *testing.T) {
	g := New()
	assert.Equal(t, 0, g.Len())

	g.Add(Triple{IRI("http://example.org/a"), IRI(rdfType), IRI(owlObjProp)})
	g.Add(Triple{IRI("http://example.org/a"), IRI(rdfsLabel), Literal("a")})

	assert.Equal(t, 2, g.Len())
	assert.Len(t, g.Triples(), 2)
}

func TestTriplesWithPredicate(t *testing.T) {
	g := New()
	g.Add(Triple{IRI("http://example.org/a"), IRI(rdfType), IRI(owlObjProp)})
	g.Add(Triple{IRI("http://example.org/b"), IRI(rdfType), IRI(owlObjProp)})
	g.Add(Triple{IRI("http://example.org/a"), IRI(rdfsLabel), Literal("a")})

	got := g.TriplesWithPredicate(rdfType)
	assert.Len(t, got, 2)
	assert.Equal(t, IRI("http://example.org/a"), got[0].Subject)
	assert.Equal(t, IRI("http://example.org/b"), got[1].Subject)
}

func TestSubjectsWithPredicateObject(t *testing.T) {
	g := New()
	g.Add(Triple{IRI("http://example.org/a"), IRI(rdfType), IRI(owlObjProp)})
	g.Add(Triple{IRI("http://example.org/b"), IRI(rdfType), IRI(owlObjProp)})
	// Duplicate statement must not produce a duplicate subject.
	g.Add(Triple{IRI("http://example.org/a"), IRI(rdfType), IRI(owlObjProp)})
	// Blank subjects are returned too; filtering is the caller's job.
	g.Add(Triple{Blank("n1"), IRI(rdfType), IRI(owlObjProp)})

	got := g.SubjectsWithPredicateObject(rdfType, IRI(owlObjProp))
	assert.Equal(t, []Term{
		IRI("http://example.org/a"),
		IRI("http://example.org/b"),
		Blank("n1"),
	}, got)
}

func TestObjectsWithSubjectPredicate(t *testing.T) {
	g := New()
	subj := IRI("http://example.org/a")
	g.Add(Triple{subj, IRI(rdfsLabel), LangLiteral("thing", "en")})
	g.Add(Triple{subj, IRI(rdfsLabel), LangLiteral("chose", "fr")})

	got := g.ObjectsWithSubjectPredicate(subj, rdfsLabel)
	assert.Len(t, got, 2)
	assert.Equal(t, "thing", got[0].Value)
	assert.Equal(t, "en", got[0].Language)
}

func TestLiteralTermDistinctions(t *testing.T) {
	g := New()
	subj := IRI("http://example.org/a")
	g.Add(Triple{subj, IRI(rdfsLabel), Literal("x")})
	g.Add(Triple{subj, IRI(rdfsLabel), LangLiteral("x", "en")})
	g.Add(Triple{subj, IRI(rdfsLabel), TypedLiteral("x", "http://www.w3.org/2001/XMLSchema#string")})

	// Three distinct literal terms, all retrievable.
	got := g.ObjectsWithSubjectPredicate(subj, rdfsLabel)
	assert.Len(t, got, 3)
}

func TestMerge(t *testing.T) {
	a := New()
	a.Add(Triple{IRI("http://example.org/a"), IRI(rdfType), IRI(owlObjProp)})

	b := New()
	b.Add(Triple{IRI("http://example.org/b"), IRI(rdfType), IRI(owlObjProp)})

	a.Merge(b)
	a.Merge(nil)
	assert.Equal(t, 2, a.Len())
	assert.Len(t, a.SubjectsWithPredicateObject(rdfType, IRI(owlObjProp)), 2)
}

func TestTermString(t *testing.T) {
	assert.Equal(t, "<http://example.org/a>", IRI("http://example.org/a").String())
	assert.Equal(t, "_:n1", Blank("n1").String())
	assert.Equal(t, `"x"@en`, LangLiteral("x", "en").String())
	assert.Equal(t, `"x"`, Literal("x").String())
}
