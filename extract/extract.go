// Package extract derives trigger/replace match items from an ontology
// graph. The default rule reproduces the original generator: every
// owl:ObjectProperty subject becomes a match whose trigger is ":" plus
// the qualified name and whose replace is the qualified name.
package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ontoforge/ontosnip/espanso"
	"github.com/ontoforge/ontosnip/graph"
	"github.com/ontoforge/ontosnip/prefixmap"
	"github.com/ontoforge/ontosnip/vocabulary/owl"
	"github.com/ontoforge/ontosnip/vocabulary/rdf"
)

// Kind names a class of extractable terms.
type Kind string

const (
	KindObjectProperties     Kind = "object-properties"
	KindDataProperties       Kind = "data-properties"
	KindAnnotationProperties Kind = "annotation-properties"
	KindClasses              Kind = "classes"
	KindIndividuals          Kind = "named-individuals"
)

// classIRI returns the OWL class asserting membership in the kind.
func (k Kind) classIRI() (string, bool) {
	switch k {
	case KindObjectProperties:
		return owl.ObjectProperty, true
	case KindDataProperties:
		return owl.DatatypeProperty, true
	case KindAnnotationProperties:
		return owl.AnnotationProperty, true
	case KindClasses:
		return owl.Class, true
	case KindIndividuals:
		return owl.NamedIndividual, true
	default:
		return "", false
	}
}

// ParseKinds validates a list of kind names from configuration.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, n := range names {
		k := Kind(n)
		if _, ok := k.classIRI(); !ok {
			return nil, fmt.Errorf("unknown term kind %q", n)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// labelPredicates are tried in order when replacing with labels.
var labelPredicates = []string{rdf.Label, owl.SKOSPrefLabel}

// commentPredicates are tried in order when attaching definitions.
var commentPredicates = []string{owl.SKOSDefinition, rdf.Comment, owl.DCDescription}

// Options tunes extraction.
type Options struct {
	// Kinds selects which terms to extract. Empty means object
	// properties only.
	Kinds []Kind

	// TriggerPrefix is prepended to the qualified name. Empty means ":".
	TriggerPrefix string

	// PreferLabels uses the term's label as the replace text when one
	// exists.
	PreferLabels bool

	// IncludeComments attaches the term's definition as the match label.
	IncludeComments bool
}

// Extractor turns a graph into match items.
type Extractor struct {
	prefixes *prefixmap.PrefixMap
	opts     Options
}

// New creates an extractor qualifying against pm.
func New(pm *prefixmap.PrefixMap, opts Options) *Extractor {
	if len(opts.Kinds) == 0 {
		opts.Kinds = []Kind{KindObjectProperties}
	}
	if opts.TriggerPrefix == "" {
		opts.TriggerPrefix = ":"
	}
	return &Extractor{prefixes: pm, opts: opts}
}

// Extract walks the configured kinds and returns deduplicated matches.
// Blank-node subjects (anonymous restrictions and the like) are never
// terms. Output is ordered by kind, then by trigger.
func (e *Extractor) Extract(g *graph.Graph) []espanso.Match {
	var out []espanso.Match
	seen := make(map[string]bool)

	for _, kind := range e.opts.Kinds {
		classIRI, ok := kind.classIRI()
		if !ok {
			continue
		}

		var batch []espanso.Match
		for _, subj := range g.SubjectsWithPredicateObject(rdf.Type, graph.IRI(classIRI)) {
			if !subj.IsIRI() {
				continue
			}
			m, ok := e.matchFor(g, subj)
			if !ok || seen[m.Trigger] {
				continue
			}
			seen[m.Trigger] = true
			batch = append(batch, m)
		}

		sort.Slice(batch, func(i, j int) bool { return batch[i].Trigger < batch[j].Trigger })
		out = append(out, batch...)
	}

	return out
}

// matchFor builds the match for one term IRI.
func (e *Extractor) matchFor(g *graph.Graph, subj graph.Term) (espanso.Match, bool) {
	qualified := e.prefixes.Qualify(subj.Value)
	if qualified == subj.Value {
		// Terms outside the registered namespaces are foreign imports,
		// not part of this package.
		return espanso.Match{}, false
	}

	replace := qualified
	if e.opts.PreferLabels {
		if label, ok := firstLiteral(g, subj, labelPredicates); ok {
			replace = label
		}
	}

	m := espanso.Match{
		Trigger: e.opts.TriggerPrefix + qualified,
		Replace: replace,
	}

	if e.opts.IncludeComments {
		if comment, ok := firstLiteral(g, subj, commentPredicates); ok {
			m.Label = commentText(comment)
		}
	}

	return m, true
}

// firstLiteral returns the first literal object over the given
// predicates, preferring untagged or English literals over other
// languages.
func firstLiteral(g *graph.Graph, subj graph.Term, predicates []string) (string, bool) {
	for _, pred := range predicates {
		var fallback string
		found := false
		for _, obj := range g.ObjectsWithSubjectPredicate(subj, pred) {
			if !obj.IsLiteral() || obj.Value == "" {
				continue
			}
			if obj.Language == "" || strings.HasPrefix(obj.Language, "en") {
				return obj.Value, true
			}
			if !found {
				fallback = obj.Value
				found = true
			}
		}
		if found {
			return fallback, true
		}
	}
	return "", false
}
