// Package owl2 models the OWL 2 structural specification: IRIs, literals,
// entities, individuals, class expressions, data ranges, axioms and
// ontologies, as immutable, hashable, structurally-comparable values.
//
// The package only builds and compares the object graph; transcoding to and
// from concrete syntaxes lives in the sibling packages functional (OWL 2
// Functional Syntax), rdfconv (RDF triples) and owllink (the OWLLink wire
// protocol).
package owl2
