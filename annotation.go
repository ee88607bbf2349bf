package owl2

// AnnotationValue is the closed sum type of values an Annotation can carry:
// an IRI, a Literal, or an AnonymousIndividual.
type AnnotationValue interface {
	isAnnotationValue()
	String() string
}

// IRIValue wraps an IRI as an AnnotationValue.
type IRIValue struct{ IRI IRI }

func (IRIValue) isAnnotationValue() {}
func (v IRIValue) String() string   { return v.IRI.Functional() }

// LiteralValue wraps a Literal as an AnnotationValue.
type LiteralValue struct{ Literal Literal }

func (LiteralValue) isAnnotationValue() {}
func (v LiteralValue) String() string   { return v.Literal.String() }

// AnonymousIndividualValue wraps an anonymous individual as an
// AnnotationValue.
type AnonymousIndividualValue struct{ Individual AnonymousIndividualExpr }

func (AnonymousIndividualValue) isAnnotationValue() {}
func (v AnonymousIndividualValue) String() string   { return v.Individual.String() }

// EqualsAnnotationValue reports structural equality between two annotation
// values.
func EqualsAnnotationValue(a, b AnnotationValue) bool {
	switch av := a.(type) {
	case IRIValue:
		bv, ok := b.(IRIValue)
		return ok && av.IRI.Equals(bv.IRI)
	case LiteralValue:
		bv, ok := b.(LiteralValue)
		return ok && av.Literal.Equals(bv.Literal)
	case AnonymousIndividualValue:
		bv, ok := b.(AnonymousIndividualValue)
		return ok && av.Individual.NodeID == bv.Individual.NodeID
	default:
		return false
	}
}

// HashAnnotationValue returns a stable structural hash of an
// AnnotationValue.
func HashAnnotationValue(v AnnotationValue) uint64 {
	switch av := v.(type) {
	case IRIValue:
		return mixHash(1000271, av.IRI.Hash(), 1000271)
	case LiteralValue:
		return mixHash(1000289, av.Literal.Hash(), 1000289)
	case AnonymousIndividualValue:
		return mixHash(1000291, HashIndividual(av.Individual), 1000291)
	default:
		return 0
	}
}

// Annotation is a (property, value) pair attached to an axiom or an
// ontology. Nested annotations on annotations are not modeled.
type Annotation struct {
	Property IRI
	Value    AnnotationValue
}

// NewAnnotation builds an Annotation.
func NewAnnotation(property IRI, value AnnotationValue) Annotation {
	return Annotation{Property: property, Value: value}
}

// Equals reports structural equality between two annotations.
func (a Annotation) Equals(other Annotation) bool {
	return a.Property.Equals(other.Property) && EqualsAnnotationValue(a.Value, other.Value)
}

// Hash returns a stable structural hash of a.
func (a Annotation) Hash() uint64 {
	return mixHash(a.Property.Hash(), HashAnnotationValue(a.Value), primeAnnotation)
}

func (a Annotation) String() string {
	return "Annotation(" + a.Property.Functional() + " " + a.Value.String() + ")"
}

// annotationSetEquals implements the "annotations matter only when at least
// one side is non-empty" rule of OWL 2 annotation semantics: two axioms with no
// annotations on either side are equal regardless of annotation content
// (there is none), but if either side carries annotations both sets must
// coincide as sets.
func annotationSetEquals(a, b []Annotation) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, av := range a {
		found := false
		for j, bv := range b {
			if used[j] {
				continue
			}
			if av.Equals(bv) {
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

// annotationSetHash hashes an annotation set order-independently. An empty
// set hashes to 0 so that it never perturbs an axiom's hash (guards the
// empty-fold pitfall); non-empty sets fold with prime.
func annotationSetHash(anns []Annotation, prime uint64) uint64 {
	if len(anns) == 0 {
		return 0
	}
	hashes := make([]uint64, len(anns))
	for i, a := range anns {
		hashes[i] = a.Hash()
	}
	return hashUnordered(hashes, prime)
}
