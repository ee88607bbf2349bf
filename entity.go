package owl2

// EntityKind distinguishes the six OWL 2 entity variants that all carry an
// IRI. Two entities are equal iff they share the same Kind and IRI: the
// same IRI used as a Class and as a Datatype denotes two distinct entities.
type EntityKind int

const (
	EntityClass EntityKind = iota
	EntityDatatype
	EntityObjectProperty
	EntityDataProperty
	EntityAnnotationProperty
	EntityNamedIndividual
)

func (k EntityKind) String() string {
	switch k {
	case EntityClass:
		return "Class"
	case EntityDatatype:
		return "Datatype"
	case EntityObjectProperty:
		return "ObjectProperty"
	case EntityDataProperty:
		return "DataProperty"
	case EntityAnnotationProperty:
		return "AnnotationProperty"
	case EntityNamedIndividual:
		return "NamedIndividual"
	default:
		return "UnknownEntity"
	}
}

// Entity is a named OWL 2 entity: a (kind, IRI) pair.
type Entity struct {
	Kind EntityKind
	IRI  IRI
}

// NewEntity builds an Entity of the given kind.
func NewEntity(kind EntityKind, iri IRI) Entity {
	return Entity{Kind: kind, IRI: iri}
}

// Equals reports whether e and other denote the same entity.
func (e Entity) Equals(other Entity) bool {
	return e.Kind == other.Kind && e.IRI.Equals(other.IRI)
}

// Hash returns a stable structural hash of e.
func (e Entity) Hash() uint64 {
	return mixHash(uint64(e.Kind)+1, e.IRI.Hash(), 1000253)
}

func (e Entity) String() string {
	return e.Kind.String() + "(" + e.IRI.Functional() + ")"
}
