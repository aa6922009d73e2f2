// Package rdf defines IRI constants for the RDF and RDFS vocabularies.
package rdf

// Namespace is the base IRI for the RDF syntax vocabulary.
const Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// SchemaNamespace is the base IRI for the RDF Schema vocabulary.
const SchemaNamespace = "http://www.w3.org/2000/01/rdf-schema#"

// XSDNamespace is the base IRI for XML Schema datatypes.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

// RDF syntax IRIs.
const (
	// Type is the rdf:type predicate.
	Type = Namespace + "type"

	// Property is the class of RDF properties.
	Property = Namespace + "Property"

	// XMLLiteral is the datatype of embedded XML content.
	XMLLiteral = Namespace + "XMLLiteral"

	// LangString is the datatype of language-tagged literals.
	LangString = Namespace + "langString"
)

// RDFS IRIs.
const (
	// Label is the rdfs:label annotation property.
	Label = SchemaNamespace + "label"

	// Comment is the rdfs:comment annotation property.
	Comment = SchemaNamespace + "comment"

	// Class is the class of RDFS classes.
	Class = SchemaNamespace + "Class"

	// SubClassOf links a class to its superclass.
	SubClassOf = SchemaNamespace + "subClassOf"

	// IsDefinedBy links a resource to its defining ontology.
	IsDefinedBy = SchemaNamespace + "isDefinedBy"
)

// XSD datatype IRIs used when formatting literals.
const (
	XSDString  = XSDNamespace + "string"
	XSDBoolean = XSDNamespace + "boolean"
	XSDInteger = XSDNamespace + "integer"
)
