// Package graph provides an in-memory RDF triple store with the lookup
// paths the extraction rules need: by predicate, by predicate+object,
// and by subject+predicate. Iteration order is insertion order so
// generated output stays stable across runs.
package graph

// Graph is an indexed collection of triples. The zero value is not
// usable; call New.
type Graph struct {
	triples []Triple

	byPred     map[string][]int
	byPredObj  map[string][]int
	bySubjPred map[string][]int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		byPred:     make(map[string][]int),
		byPredObj:  make(map[string][]int),
		bySubjPred: make(map[string][]int),
	}
}

// Add appends a triple and updates the indexes. Duplicate triples are
// kept; queries deduplicate where it matters.
func (g *Graph) Add(t Triple) {
	idx := len(g.triples)
	g.triples = append(g.triples, t)

	pk := t.Predicate.key()
	g.byPred[pk] = append(g.byPred[pk], idx)
	g.byPredObj[pk+"\x00"+t.Object.key()] = append(g.byPredObj[pk+"\x00"+t.Object.key()], idx)
	g.bySubjPred[t.Subject.key()+"\x00"+pk] = append(g.bySubjPred[t.Subject.key()+"\x00"+pk], idx)
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns all triples in insertion order. The returned slice is
// shared; callers must not mutate it.
func (g *Graph) Triples() []Triple {
	return g.triples
}

// TriplesWithPredicate returns all triples whose predicate is the given IRI.
func (g *Graph) TriplesWithPredicate(predicate string) []Triple {
	idxs := g.byPred[IRI(predicate).key()]
	out := make([]Triple, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, g.triples[i])
	}
	return out
}

// SubjectsWithPredicateObject returns the distinct subjects of triples
// matching the given predicate IRI and object term, in first-seen order.
func (g *Graph) SubjectsWithPredicateObject(predicate string, object Term) []Term {
	idxs := g.byPredObj[IRI(predicate).key()+"\x00"+object.key()]
	seen := make(map[string]bool, len(idxs))
	out := make([]Term, 0, len(idxs))
	for _, i := range idxs {
		s := g.triples[i].Subject
		if seen[s.key()] {
			continue
		}
		seen[s.key()] = true
		out = append(out, s)
	}
	return out
}

// ObjectsWithSubjectPredicate returns the objects of triples with the
// given subject and predicate IRI, in insertion order.
func (g *Graph) ObjectsWithSubjectPredicate(subject Term, predicate string) []Term {
	idxs := g.bySubjPred[subject.key()+"\x00"+IRI(predicate).key()]
	out := make([]Term, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, g.triples[i].Object)
	}
	return out
}

// Merge adds every triple of other into g.
func (g *Graph) Merge(other *Graph) {
	if other == nil {
		return
	}
	for _, t := range other.triples {
		g.Add(t)
	}
}
