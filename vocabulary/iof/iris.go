// Package iof defines the namespaces of the shipped ontologies: the
// Industrial Ontology Foundry Core and the Basic Formal Ontology.
package iof

// CoreNamespace is the base IRI for IOF Core terms.
const CoreNamespace = "https://spec.industrialontologies.org/ontology/core/Core/"

// AnnotationNamespace is the base IRI for the IOF annotation vocabulary.
const AnnotationNamespace = "https://spec.industrialontologies.org/ontology/core/meta/AnnotationVocabulary/"

// OBONamespace is the base IRI for OBO Foundry terms; BFO classes and
// relations live here as opaque BFO_nnnnnnn identifiers.
const OBONamespace = "http://purl.obolibrary.org/obo/"

// IOF annotation properties carrying human-readable definitions.
const (
	// NaturalLanguageDefinition is the IOF natural language definition.
	NaturalLanguageDefinition = AnnotationNamespace + "naturalLanguageDefinition"

	// PrimitiveRationale explains why a term is primitive.
	PrimitiveRationale = AnnotationNamespace + "primitiveRationale"
)

// CorePrefixes returns the prefix map the IOF Core package qualifies
// against. The Core prefix matches the casing the ontology itself uses.
func CorePrefixes() map[string]string {
	return map[string]string{
		"Core": CoreNamespace,
		"owl":  "http://www.w3.org/2002/07/owl#",
	}
}

// BFOPrefixes returns the prefix map for the BFO package.
func BFOPrefixes() map[string]string {
	return map[string]string{
		"obo": OBONamespace,
		"owl": "http://www.w3.org/2002/07/owl#",
	}
}
