// Package rdfxml reads the RDF/XML serialization of OWL ontologies into
// a triple graph. It covers the subset of the syntax that published
// ontologies use: node elements, typed node elements, property elements
// with rdf:resource, nested node elements, plain, language-tagged and
// datatyped literals, parseType="Resource"/"Literal", xml:base and
// xml:lang scoping.
//
// The default Lax mode mirrors how ontology files are consumed in
// practice: statements the reader cannot make sense of are skipped and
// counted rather than failing the whole document.
package rdfxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/ontoforge/ontosnip/graph"
	"github.com/ontoforge/ontosnip/vocabulary/rdf"
)

// Mode controls how structural problems are handled.
type Mode int

const (
	// Lax skips statements that cannot be read and counts them.
	Lax Mode = iota

	// Strict fails on the first structural problem.
	Strict
)

// Options configures a Reader.
type Options struct {
	// Mode selects lax or strict handling. The zero value is Lax.
	Mode Mode

	// Base is the base IRI used to resolve relative references when the
	// document carries no xml:base.
	Base string
}

// Stats reports what a read produced.
type Stats struct {
	// Triples is the number of triples added to the graph.
	Triples int

	// Skipped counts statements dropped in lax mode.
	Skipped int
}

// Reader decodes one RDF/XML document.
type Reader struct {
	dec      *xml.Decoder
	opts     Options
	g        *graph.Graph
	stats    Stats
	blankSeq int
}

// scope carries the in-scope xml:base and xml:lang during descent.
type scope struct {
	base *url.URL
	lang string
}

// NewReader creates a reader over r. Character encodings other than
// UTF-8 are handled via the document's declared charset.
func NewReader(r io.Reader, opts Options) *Reader {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	if opts.Mode == Lax {
		// Tolerate undeclared entities and sloppy markup the way
		// ontology publishing pipelines tend to emit them.
		dec.Strict = false
	}
	return &Reader{dec: dec, opts: opts, g: graph.New()}
}

// Parse decodes a document held in memory.
func Parse(data []byte, opts Options) (*graph.Graph, Stats, error) {
	r := NewReader(bytes.NewReader(data), opts)
	g, err := r.Read()
	return g, r.Stats(), err
}

// Read decodes the document and returns the resulting graph.
func (r *Reader) Read() (*graph.Graph, error) {
	sc := scope{}
	if r.opts.Base != "" {
		if u, err := url.Parse(r.opts.Base); err == nil {
			sc.base = u
		}
	}

	for {
		tok, err := r.dec.Token()
		if err == io.EOF {
			return r.g, nil
		}
		if err != nil {
			return r.g, fmt.Errorf("read RDF/XML: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if start.Name.Space == rdf.Namespace && start.Name.Local == "RDF" {
			if err := r.readNodeElements(start, r.withAttrs(sc, start.Attr)); err != nil {
				return r.g, err
			}
			continue
		}

		// A document whose root is a single node element.
		if _, err := r.readNodeElement(start, sc); err != nil {
			return r.g, err
		}
	}
}

// Stats returns counters for the completed read.
func (r *Reader) Stats() Stats {
	return r.stats
}

// readNodeElements consumes the children of rdf:RDF.
func (r *Reader) readNodeElements(parent xml.StartElement, sc scope) error {
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return fmt.Errorf("read RDF/XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if _, err := r.readNodeElement(t, sc); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// readNodeElement reads one node element and returns the subject term.
func (r *Reader) readNodeElement(start xml.StartElement, sc scope) (graph.Term, error) {
	sc = r.withAttrs(sc, start.Attr)

	subject := r.subjectFor(start, sc)

	// A typed node element asserts rdf:type from its element name.
	if start.Name.Space != rdf.Namespace || start.Name.Local != "Description" {
		r.add(subject, graph.IRI(rdf.Type), graph.IRI(start.Name.Space+start.Name.Local))
	}

	// Property attributes become literal-valued statements.
	for _, a := range start.Attr {
		if !isPropertyAttr(a) {
			continue
		}
		obj := graph.Literal(a.Value)
		if sc.lang != "" {
			obj = graph.LangLiteral(a.Value, sc.lang)
		}
		r.add(subject, graph.IRI(a.Name.Space+a.Name.Local), obj)
	}

	for {
		tok, err := r.dec.Token()
		if err != nil {
			return subject, fmt.Errorf("read RDF/XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := r.readPropertyElement(subject, t, sc); err != nil {
				return subject, err
			}
		case xml.EndElement:
			return subject, nil
		}
	}
}

// subjectFor derives the subject term from rdf:about, rdf:ID or
// rdf:nodeID, falling back to a fresh blank node.
func (r *Reader) subjectFor(start xml.StartElement, sc scope) graph.Term {
	if v, ok := rdfAttr(start.Attr, "about"); ok {
		return graph.IRI(resolve(sc.base, v))
	}
	if v, ok := rdfAttr(start.Attr, "ID"); ok {
		return graph.IRI(resolve(sc.base, "#"+v))
	}
	if v, ok := rdfAttr(start.Attr, "nodeID"); ok {
		return graph.Blank(v)
	}
	return r.freshBlank()
}

// readPropertyElement reads one property element of subject.
func (r *Reader) readPropertyElement(subject graph.Term, start xml.StartElement, sc scope) error {
	sc = r.withAttrs(sc, start.Attr)
	pred := graph.IRI(start.Name.Space + start.Name.Local)

	if pt, ok := rdfAttr(start.Attr, "parseType"); ok {
		switch pt {
		case "Resource":
			b := r.freshBlank()
			r.add(subject, pred, b)
			return r.readResourceContent(b, sc)
		case "Literal":
			text, err := r.captureInnerXML()
			if err != nil {
				return err
			}
			r.add(subject, pred, graph.TypedLiteral(text, rdf.XMLLiteral))
			return nil
		default:
			return r.skipStatement(fmt.Errorf("unsupported parseType %q on %s", pt, start.Name.Local))
		}
	}

	if v, ok := rdfAttr(start.Attr, "resource"); ok {
		r.add(subject, pred, graph.IRI(resolve(sc.base, v)))
		return r.dec.Skip()
	}

	if v, ok := rdfAttr(start.Attr, "nodeID"); ok {
		r.add(subject, pred, graph.Blank(v))
		return r.dec.Skip()
	}

	// Property attributes on an empty property element describe an
	// anonymous object node.
	if hasPropertyAttrs(start.Attr) {
		b := r.freshBlank()
		r.add(subject, pred, b)
		for _, a := range start.Attr {
			if !isPropertyAttr(a) {
				continue
			}
			r.add(b, graph.IRI(a.Name.Space+a.Name.Local), graph.Literal(a.Value))
		}
		return r.dec.Skip()
	}

	datatype, hasDatatype := rdfAttr(start.Attr, "datatype")

	var text strings.Builder
	objSet := false
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return fmt.Errorf("read RDF/XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			obj, err := r.readNodeElement(t, sc)
			if err != nil {
				return err
			}
			r.add(subject, pred, obj)
			objSet = true
		case xml.EndElement:
			if objSet {
				return nil
			}
			value := text.String()
			switch {
			case hasDatatype:
				r.add(subject, pred, graph.TypedLiteral(value, resolve(sc.base, datatype)))
			case sc.lang != "":
				r.add(subject, pred, graph.LangLiteral(value, sc.lang))
			default:
				r.add(subject, pred, graph.Literal(value))
			}
			return nil
		}
	}
}

// readResourceContent reads the property elements of a
// parseType="Resource" blank node.
func (r *Reader) readResourceContent(subject graph.Term, sc scope) error {
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return fmt.Errorf("read RDF/XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := r.readPropertyElement(subject, t, sc); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// captureInnerXML consumes tokens until the enclosing element closes and
// returns a flat textual rendering for an rdf:XMLLiteral value.
func (r *Reader) captureInnerXML() (string, error) {
	var sb strings.Builder
	depth := 0
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return "", fmt.Errorf("read RDF/XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			sb.WriteString("<" + t.Name.Local + ">")
		case xml.EndElement:
			if depth == 0 {
				return sb.String(), nil
			}
			depth--
			sb.WriteString("</" + t.Name.Local + ">")
		case xml.CharData:
			sb.Write(t)
		}
	}
}

// skipStatement drops the current property element. In strict mode the
// cause is returned instead.
func (r *Reader) skipStatement(cause error) error {
	if r.opts.Mode == Strict {
		return cause
	}
	r.stats.Skipped++
	return r.dec.Skip()
}

func (r *Reader) add(s, p, o graph.Term) {
	r.g.Add(graph.Triple{Subject: s, Predicate: p, Object: o})
	r.stats.Triples = r.g.Len()
}

func (r *Reader) freshBlank() graph.Term {
	r.blankSeq++
	return graph.Blank(fmt.Sprintf("genid%d", r.blankSeq))
}

// withAttrs returns the scope adjusted for xml:base and xml:lang
// attributes on the current element.
func (r *Reader) withAttrs(sc scope, attrs []xml.Attr) scope {
	for _, a := range attrs {
		if !isXMLAttr(a.Name) {
			continue
		}
		switch a.Name.Local {
		case "base":
			if u, err := url.Parse(a.Value); err == nil {
				if sc.base != nil {
					u = sc.base.ResolveReference(u)
				}
				sc.base = u
			}
		case "lang":
			sc.lang = a.Value
		}
	}
	return sc
}

// resolve resolves ref against base per the usual IRI reference rules.
// An empty ref names the base itself (rdf:about="").
func resolve(base *url.URL, ref string) string {
	if base == nil {
		return ref
	}
	if ref == "" {
		return base.String()
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

// rdfAttr returns the value of an rdf-namespaced syntax attribute.
func rdfAttr(attrs []xml.Attr, local string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Space == rdf.Namespace && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// syntaxAttrs are the rdf: attributes that steer parsing rather than
// asserting statements.
var syntaxAttrs = map[string]bool{
	"about":     true,
	"ID":        true,
	"nodeID":    true,
	"resource":  true,
	"datatype":  true,
	"parseType": true,
	"aboutEach": true,
	"bagID":     true,
}

// isPropertyAttr reports whether the attribute asserts a statement.
func isPropertyAttr(a xml.Attr) bool {
	if a.Name.Space == "" || a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
		return false
	}
	if isXMLAttr(a.Name) {
		return false
	}
	if a.Name.Space == rdf.Namespace && (syntaxAttrs[a.Name.Local] || a.Name.Local == "type") {
		return false
	}
	return true
}

func hasPropertyAttrs(attrs []xml.Attr) bool {
	for _, a := range attrs {
		if isPropertyAttr(a) {
			return true
		}
	}
	return false
}

// isXMLAttr matches xml:base and xml:lang regardless of whether the
// decoder reports the predefined prefix or the full namespace.
func isXMLAttr(n xml.Name) bool {
	return n.Space == "xml" || n.Space == "http://www.w3.org/XML/1998/namespace"
}
