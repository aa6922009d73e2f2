package graph

import "fmt"

// TermKind discriminates the three RDF term shapes.
type TermKind int

const (
	// KindIRI is a named node.
	KindIRI TermKind = iota

	// KindBlank is a blank node with a document-scoped label.
	KindBlank

	// KindLiteral is a literal with optional language tag or datatype.
	KindLiteral
)

// Term is an RDF term. Value holds the IRI, the blank node label, or the
// literal lexical form depending on Kind.
type Term struct {
	Kind     TermKind
	Value    string
	Language string
	Datatype string
}

// IRI returns a named node term.
func IRI(iri string) Term {
	return Term{Kind: KindIRI, Value: iri}
}

// Blank returns a blank node term with the given label.
func Blank(label string) Term {
	return Term{Kind: KindBlank, Value: label}
}

// Literal returns a plain literal term.
func Literal(value string) Term {
	return Term{Kind: KindLiteral, Value: value}
}

// LangLiteral returns a language-tagged literal term.
func LangLiteral(value, lang string) Term {
	return Term{Kind: KindLiteral, Value: value, Language: lang}
}

// TypedLiteral returns a datatyped literal term.
func TypedLiteral(value, datatype string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: datatype}
}

// IsIRI reports whether the term is a named node.
func (t Term) IsIRI() bool { return t.Kind == KindIRI }

// IsBlank reports whether the term is a blank node.
func (t Term) IsBlank() bool { return t.Kind == KindBlank }

// IsLiteral reports whether the term is a literal.
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }

// String renders the term in N-Triples style for logs and errors.
func (t Term) String() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	default:
		if t.Language != "" {
			return fmt.Sprintf("%q@%s", t.Value, t.Language)
		}
		if t.Datatype != "" {
			return fmt.Sprintf("%q^^<%s>", t.Value, t.Datatype)
		}
		return fmt.Sprintf("%q", t.Value)
	}
}

// key returns a map key that distinguishes terms across all three kinds.
func (t Term) key() string {
	switch t.Kind {
	case KindIRI:
		return "i\x00" + t.Value
	case KindBlank:
		return "b\x00" + t.Value
	default:
		return "l\x00" + t.Value + "\x00" + t.Language + "\x00" + t.Datatype
	}
}

// Triple is a single RDF statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// String renders the triple in N-Triples style.
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}
