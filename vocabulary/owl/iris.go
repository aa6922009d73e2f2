// Package owl defines IRI constants for the OWL vocabulary plus the
// standard annotation properties (SKOS, Dublin Core) that ontologies
// commonly use for labels and definitions.
package owl

// Namespace is the base IRI for the OWL vocabulary.
const Namespace = "http://www.w3.org/2002/07/owl#"

// SKOSNamespace is the base IRI for the SKOS vocabulary.
const SKOSNamespace = "http://www.w3.org/2004/02/skos/core#"

// DCNamespace is the base IRI for Dublin Core terms.
const DCNamespace = "http://purl.org/dc/terms/"

// Class IRIs for the OWL term kinds an ontology declares.
const (
	// Ontology is the class of OWL ontology headers.
	Ontology = Namespace + "Ontology"

	// Class is the class of OWL classes.
	Class = Namespace + "Class"

	// ObjectProperty is the class of object properties.
	ObjectProperty = Namespace + "ObjectProperty"

	// DatatypeProperty is the class of data properties.
	DatatypeProperty = Namespace + "DatatypeProperty"

	// AnnotationProperty is the class of annotation properties.
	AnnotationProperty = Namespace + "AnnotationProperty"

	// NamedIndividual is the class of named individuals.
	NamedIndividual = Namespace + "NamedIndividual"
)

// Ontology header predicates.
const (
	// Imports links an ontology to the ontologies it imports.
	Imports = Namespace + "imports"

	// VersionIRI links an ontology to its version IRI.
	VersionIRI = Namespace + "versionIRI"

	// VersionInfo is the owl:versionInfo annotation.
	VersionInfo = Namespace + "versionInfo"

	// Deprecated marks a deprecated term.
	Deprecated = Namespace + "deprecated"
)

// Standard annotation IRIs used for term labels and definitions.
const (
	// SKOSPrefLabel is the preferred lexical label of a term.
	SKOSPrefLabel = SKOSNamespace + "prefLabel"

	// SKOSAltLabel is an alternative lexical label.
	SKOSAltLabel = SKOSNamespace + "altLabel"

	// SKOSDefinition is the textual definition of a term.
	SKOSDefinition = SKOSNamespace + "definition"

	// DCTitle is the Dublin Core title property.
	DCTitle = DCNamespace + "title"

	// DCDescription is the Dublin Core description property.
	DCDescription = DCNamespace + "description"
)
