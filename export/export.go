// Package export serializes a parsed ontology graph for inspection.
// The generate pipeline consumes graphs internally; export makes the
// same graph visible as N-Triples or Turtle so prefix maps and extract
// kinds can be debugged against what the reader actually saw.
package export

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/ontoforge/ontosnip/graph"
	"github.com/ontoforge/ontosnip/prefixmap"
	"github.com/ontoforge/ontosnip/vocabulary/rdf"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatNTriples produces N-Triples (.nt) output, one statement per line.
	FormatNTriples Format = "ntriples"

	// FormatTurtle produces Turtle (.ttl) output with prefixed names.
	FormatTurtle Format = "turtle"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
}

// ParseFormat validates a format name from user input.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := FormatRegistry[f]; !ok {
		return "", fmt.Errorf("unknown export format %q (supported: %s)", name, supportedFormats())
	}
	return f, nil
}

func supportedFormats() string {
	names := make([]string, 0, len(FormatRegistry))
	for f := range FormatRegistry {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Write serializes g to w in the given format. The prefix map drives
// prefixed names in Turtle output and is unused for N-Triples.
func Write(w io.Writer, g *graph.Graph, format Format, pm *prefixmap.PrefixMap) error {
	switch format {
	case FormatNTriples:
		return writeNTriples(w, g)
	case FormatTurtle:
		return writeTurtle(w, g, pm)
	default:
		return fmt.Errorf("unknown export format %q (supported: %s)", format, supportedFormats())
	}
}

func writeNTriples(w io.Writer, g *graph.Graph) error {
	for _, t := range g.Triples() {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

func writeTurtle(w io.Writer, g *graph.Graph, pm *prefixmap.PrefixMap) error {
	pm = withStandardPrefixes(pm)

	prefixes := pm.Prefixes()
	names := make([]string, 0, len(prefixes))
	for p := range prefixes {
		names = append(names, p)
	}
	sort.Strings(names)
	for _, p := range names {
		if _, err := fmt.Fprintf(w, "@prefix %s: <%s> .\n", p, prefixes[p]); err != nil {
			return err
		}
	}

	// Group statements by subject, preserving first-seen subject order.
	var subjects []graph.Term
	bySubject := make(map[string][]graph.Triple)
	for _, t := range g.Triples() {
		key := t.Subject.String()
		if _, seen := bySubject[key]; !seen {
			subjects = append(subjects, t.Subject)
		}
		bySubject[key] = append(bySubject[key], t)
	}

	for _, subj := range subjects {
		if _, err := fmt.Fprintf(w, "\n%s", turtleTerm(subj, pm)); err != nil {
			return err
		}
		group := bySubject[subj.String()]
		for i, t := range group {
			sep := " ;"
			if i == len(group)-1 {
				sep = " ."
			}
			line := fmt.Sprintf("\n    %s %s%s", turtlePredicate(t.Predicate, pm), turtleTerm(t.Object, pm), sep)
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// localNameRe limits prefixed names to locals Turtle accepts without
// escaping. Anything else falls back to a full IRI reference.
var localNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

func turtlePredicate(t graph.Term, pm *prefixmap.PrefixMap) string {
	if t.IsIRI() && t.Value == rdf.Type {
		return "a"
	}
	return turtleTerm(t, pm)
}

func turtleTerm(t graph.Term, pm *prefixmap.PrefixMap) string {
	if !t.IsIRI() {
		return t.String()
	}
	prefix, local, ok := pm.Split(t.Value)
	if ok && localNameRe.MatchString(local) {
		return prefix + ":" + local
	}
	return t.String()
}

// withStandardPrefixes layers the W3C core namespaces under the
// package's own bindings without mutating the caller's map.
func withStandardPrefixes(pm *prefixmap.PrefixMap) *prefixmap.PrefixMap {
	out := prefixmap.New()
	_ = out.Add("rdf", rdf.Namespace)
	_ = out.Add("rdfs", rdf.SchemaNamespace)
	_ = out.Add("xsd", rdf.XSDNamespace)
	if pm != nil {
		for p, ns := range pm.Prefixes() {
			_ = out.Add(p, ns)
		}
	}
	return out
}
