package owl2

// Ontology is the top-level container: an optional IRI, an
// optional version IRI (meaningful only when the ontology IRI is present),
// a prefix map, an ontology-level annotation set, and a set of axioms with
// no syntactic duplicates.
type Ontology struct {
	IRI        IRI
	VersionIRI IRI
	Prefixes   PrefixMap
	Anns       []Annotation
	axioms     []Axiom
}

// NewOntology builds an empty, anonymous ontology with its own prefix map.
func NewOntology() *Ontology {
	return &Ontology{Prefixes: NewPrefixMap()}
}

// SetIRI sets the ontology IRI.
func (o *Ontology) SetIRI(iri IRI) { o.IRI = iri }

// SetVersionIRI sets the ontology version IRI. A version
// IRI is only meaningful alongside a non-zero ontology IRI; callers that
// violate this still get the field set, but String/Functional renderers
// omit a version IRI when the ontology IRI is absent.
func (o *Ontology) SetVersionIRI(iri IRI) { o.VersionIRI = iri }

// Annotate appends an ontology-level annotation.
func (o *Ontology) Annotate(a Annotation) { o.Anns = append(o.Anns, a) }

// Axioms returns the ontology's axioms in insertion order. The returned
// slice is a copy; mutating it does not affect the ontology.
func (o *Ontology) Axioms() []Axiom {
	out := make([]Axiom, len(o.axioms))
	copy(out, o.axioms)
	return out
}

// Len reports the number of axioms currently in the ontology.
func (o *Ontology) Len() int { return len(o.axioms) }

// AddAxiom adds ax to the ontology unless a syntactically equal axiom
// (per EqualsAxiom) is already present, keeping the axiom collection a
// set. It reports whether ax was newly added.
func (o *Ontology) AddAxiom(ax Axiom) bool {
	for _, existing := range o.axioms {
		if EqualsAxiom(existing, ax) {
			return false
		}
	}
	o.axioms = append(o.axioms, ax)
	return true
}

// RemoveAxiom removes the first axiom structurally equal to ax, reporting
// whether one was found.
func (o *Ontology) RemoveAxiom(ax Axiom) bool {
	for i, existing := range o.axioms {
		if EqualsAxiom(existing, ax) {
			o.axioms = append(o.axioms[:i], o.axioms[i+1:]...)
			return true
		}
	}
	return false
}

// Equals reports structural equality between two ontologies: same IRI,
// version IRI, ontology annotations, and axiom set (order-independent,
// duplicate-free by construction). The prefix map is not compared since it
// is a syntactic convenience, not part of the ontology's semantic content.
func (o *Ontology) Equals(other *Ontology) bool {
	if other == nil {
		return false
	}
	if !o.IRI.Equals(other.IRI) || !o.VersionIRI.Equals(other.VersionIRI) {
		return false
	}
	if !annotationSetEquals(o.Anns, other.Anns) {
		return false
	}
	if len(o.axioms) != len(other.axioms) {
		return false
	}
	used := make([]bool, len(other.axioms))
	for _, a := range o.axioms {
		found := false
		for j, b := range other.axioms {
			if used[j] {
				continue
			}
			if EqualsAxiom(a, b) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
