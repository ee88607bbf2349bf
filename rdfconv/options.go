package rdfconv

// DisjointClassesMapping selects how a DisjointClasses axiom over more
// than two operands is rendered. The OWL 2 Mapping to RDF Graphs
// specification prefers owl:AllDisjointClasses with an rdf:List of
// members; this converter defaults to the pairwise owl:disjointWith form
// observed in the reference implementation it was distilled from (see
// this module's design notes for the open-question resolution).
type DisjointClassesMapping int

const (
	// MappingPairwise emits owl:disjointWith for every unordered pair of
	// operands. This is the default.
	MappingPairwise DisjointClassesMapping = iota
	// MappingAllDisjointClasses emits a single owl:AllDisjointClasses node
	// with an owl:members rdf:List of the operands.
	MappingAllDisjointClasses
)

// Options configures Convert.
type Options struct {
	// DisjointClasses selects pairwise vs. owl:AllDisjointClasses emission
	// for DisjointClasses axioms with more than two operands. Axioms with
	// exactly two operands always emit a single pairwise owl:disjointWith
	// triple regardless of this setting.
	DisjointClasses DisjointClassesMapping
}
