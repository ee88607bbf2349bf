package owl2

// Axiom is the closed sum type of OWL 2 axioms. Every axiom carries an
// optional, unordered, duplicate-free annotation set; the annotation set
// participates in equality only when at least one operand carries a
// non-empty set.
type Axiom interface {
	isAxiom()
	Annotations() []Annotation
	String() string
}

// ObjectPropertyCharacteristicKind enumerates the object-property
// characteristic axioms, FunctionalObjectProperty through
// TransitiveObjectProperty.
type ObjectPropertyCharacteristicKind int

const (
	CharacteristicFunctional ObjectPropertyCharacteristicKind = iota
	CharacteristicInverseFunctional
	CharacteristicReflexive
	CharacteristicIrreflexive
	CharacteristicSymmetric
	CharacteristicAsymmetric
	CharacteristicTransitive
)

func (k ObjectPropertyCharacteristicKind) String() string {
	switch k {
	case CharacteristicFunctional:
		return "FunctionalObjectProperty"
	case CharacteristicInverseFunctional:
		return "InverseFunctionalObjectProperty"
	case CharacteristicReflexive:
		return "ReflexiveObjectProperty"
	case CharacteristicIrreflexive:
		return "IrreflexiveObjectProperty"
	case CharacteristicSymmetric:
		return "SymmetricObjectProperty"
	case CharacteristicAsymmetric:
		return "AsymmetricObjectProperty"
	case CharacteristicTransitive:
		return "TransitiveObjectProperty"
	default:
		return "UnknownCharacteristic"
	}
}

// axiomBase is embedded by every axiom variant to carry the optional
// annotation set.
type axiomBase struct {
	Anns []Annotation
}

func (a axiomBase) Annotations() []Annotation {
	out := make([]Annotation, 0, len(a.Anns))
	for _, ann := range a.Anns {
		dup := false
		for _, kept := range out {
			if ann.Equals(kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, ann)
		}
	}
	return out
}

// DeclarationAxiom declares the existence of an entity.
type DeclarationAxiom struct {
	axiomBase
	Entity Entity
}

func (DeclarationAxiom) isAxiom() {}
func (a DeclarationAxiom) String() string {
	return "Declaration(" + a.Entity.String() + ")"
}

// NewDeclarationAxiom builds a DeclarationAxiom.
func NewDeclarationAxiom(e Entity, anns ...Annotation) DeclarationAxiom {
	return DeclarationAxiom{axiomBase{anns}, e}
}

// SubClassOfAxiom asserts Sub ⊑ Sup.
type SubClassOfAxiom struct {
	axiomBase
	Sub, Sup ClassExpression
}

func (SubClassOfAxiom) isAxiom() {}
func (a SubClassOfAxiom) String() string {
	return "SubClassOf(" + a.Sub.String() + " " + a.Sup.String() + ")"
}

// NewSubClassOfAxiom builds a SubClassOfAxiom.
func NewSubClassOfAxiom(sub, sup ClassExpression, anns ...Annotation) SubClassOfAxiom {
	return SubClassOfAxiom{axiomBase{anns}, sub, sup}
}

// EquivalentClassesAxiom asserts 2+ class expressions are equivalent.
type EquivalentClassesAxiom struct {
	axiomBase
	Classes []ClassExpression
}

func (EquivalentClassesAxiom) isAxiom() {}
func (a EquivalentClassesAxiom) String() string { return joinCE("EquivalentClasses", a.Classes) }

// NewEquivalentClassesAxiom builds an EquivalentClassesAxiom. Fails with
// ErrInvariantViolation when fewer than 2 classes are given.
func NewEquivalentClassesAxiom(classes []ClassExpression, anns ...Annotation) (EquivalentClassesAxiom, error) {
	classes = dedupeClassExpressions(classes)
	if len(classes) < 2 {
		return EquivalentClassesAxiom{}, arityErr("EquivalentClasses", 2, len(classes))
	}
	return EquivalentClassesAxiom{axiomBase{anns}, classes}, nil
}

// DisjointClassesAxiom asserts 2+ class expressions are pairwise disjoint.
type DisjointClassesAxiom struct {
	axiomBase
	Classes []ClassExpression
}

func (DisjointClassesAxiom) isAxiom() {}
func (a DisjointClassesAxiom) String() string { return joinCE("DisjointClasses", a.Classes) }

// NewDisjointClassesAxiom builds a DisjointClassesAxiom. Fails with
// ErrInvariantViolation when fewer than 2 classes are given.
func NewDisjointClassesAxiom(classes []ClassExpression, anns ...Annotation) (DisjointClassesAxiom, error) {
	classes = dedupeClassExpressions(classes)
	if len(classes) < 2 {
		return DisjointClassesAxiom{}, arityErr("DisjointClasses", 2, len(classes))
	}
	return DisjointClassesAxiom{axiomBase{anns}, classes}, nil
}

// DisjointUnionAxiom asserts that Class is exactly the disjoint union of
// Disjoint: a single named class plus a set of pairwise disjoint
// operands.
type DisjointUnionAxiom struct {
	axiomBase
	Class    IRI
	Disjoint []ClassExpression
}

func (DisjointUnionAxiom) isAxiom() {}
func (a DisjointUnionAxiom) String() string {
	return "DisjointUnion(" + a.Class.Functional() + " " + joinCEPlain(a.Disjoint) + ")"
}

// NewDisjointUnionAxiom builds a DisjointUnionAxiom. Fails with
// ErrInvariantViolation when fewer than 2 disjoint operands are given.
func NewDisjointUnionAxiom(class IRI, disjoint []ClassExpression, anns ...Annotation) (DisjointUnionAxiom, error) {
	disjoint = dedupeClassExpressions(disjoint)
	if len(disjoint) < 2 {
		return DisjointUnionAxiom{}, arityErr("DisjointUnion", 2, len(disjoint))
	}
	return DisjointUnionAxiom{axiomBase{anns}, class, disjoint}, nil
}

func joinCEPlain(ces []ClassExpression) string {
	s := ""
	for i, c := range ces {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s
}

// SubObjectPropertyOfAxiom asserts Sub ⊑ Sup between object properties.
type SubObjectPropertyOfAxiom struct {
	axiomBase
	Sub, Sup ObjectPropertyExpression
}

func (SubObjectPropertyOfAxiom) isAxiom() {}
func (a SubObjectPropertyOfAxiom) String() string {
	return "SubObjectPropertyOf(" + a.Sub.String() + " " + a.Sup.String() + ")"
}

// NewSubObjectPropertyOfAxiom builds a SubObjectPropertyOfAxiom.
func NewSubObjectPropertyOfAxiom(sub, sup ObjectPropertyExpression, anns ...Annotation) SubObjectPropertyOfAxiom {
	return SubObjectPropertyOfAxiom{axiomBase{anns}, sub, sup}
}

// EquivalentObjectPropertiesAxiom asserts 2+ object properties are
// equivalent.
type EquivalentObjectPropertiesAxiom struct {
	axiomBase
	Properties []ObjectPropertyExpression
}

func (EquivalentObjectPropertiesAxiom) isAxiom() {}
func (a EquivalentObjectPropertiesAxiom) String() string {
	return joinOPE("EquivalentObjectProperties", a.Properties)
}

// NewEquivalentObjectPropertiesAxiom builds an
// EquivalentObjectPropertiesAxiom. Fails with ErrInvariantViolation when
// fewer than 2 properties are given.
func NewEquivalentObjectPropertiesAxiom(props []ObjectPropertyExpression, anns ...Annotation) (EquivalentObjectPropertiesAxiom, error) {
	props = dedupeObjectProperties(props)
	if len(props) < 2 {
		return EquivalentObjectPropertiesAxiom{}, arityErr("EquivalentObjectProperties", 2, len(props))
	}
	return EquivalentObjectPropertiesAxiom{axiomBase{anns}, props}, nil
}

// DisjointObjectPropertiesAxiom asserts 2+ object properties are pairwise
// disjoint.
type DisjointObjectPropertiesAxiom struct {
	axiomBase
	Properties []ObjectPropertyExpression
}

func (DisjointObjectPropertiesAxiom) isAxiom() {}
func (a DisjointObjectPropertiesAxiom) String() string {
	return joinOPE("DisjointObjectProperties", a.Properties)
}

// NewDisjointObjectPropertiesAxiom builds a DisjointObjectPropertiesAxiom.
func NewDisjointObjectPropertiesAxiom(props []ObjectPropertyExpression, anns ...Annotation) (DisjointObjectPropertiesAxiom, error) {
	props = dedupeObjectProperties(props)
	if len(props) < 2 {
		return DisjointObjectPropertiesAxiom{}, arityErr("DisjointObjectProperties", 2, len(props))
	}
	return DisjointObjectPropertiesAxiom{axiomBase{anns}, props}, nil
}

// dedupeObjectProperties is dedupeClassExpressions' counterpart for object
// property operand lists (EquivalentObjectProperties,
// DisjointObjectProperties).
func dedupeObjectProperties(props []ObjectPropertyExpression) []ObjectPropertyExpression {
	out := make([]ObjectPropertyExpression, 0, len(props))
	for _, p := range props {
		dup := false
		for _, kept := range out {
			if EqualsObjectPropertyExpression(p, kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

func joinOPE(keyword string, props []ObjectPropertyExpression) string {
	s := keyword + "("
	for i, p := range props {
		if i > 0 {
			s += " "
		}
		s += p.String()
	}
	return s + ")"
}

// InverseObjectPropertiesAxiom asserts P1 is the inverse of P2.
type InverseObjectPropertiesAxiom struct {
	axiomBase
	P1, P2 ObjectPropertyExpression
}

func (InverseObjectPropertiesAxiom) isAxiom() {}
func (a InverseObjectPropertiesAxiom) String() string {
	return "InverseObjectProperties(" + a.P1.String() + " " + a.P2.String() + ")"
}

// NewInverseObjectPropertiesAxiom builds an InverseObjectPropertiesAxiom.
func NewInverseObjectPropertiesAxiom(p1, p2 ObjectPropertyExpression, anns ...Annotation) InverseObjectPropertiesAxiom {
	return InverseObjectPropertiesAxiom{axiomBase{anns}, p1, p2}
}

// ObjectPropertyDomainAxiom asserts the domain of an object property.
type ObjectPropertyDomainAxiom struct {
	axiomBase
	Property ObjectPropertyExpression
	Domain   ClassExpression
}

func (ObjectPropertyDomainAxiom) isAxiom() {}
func (a ObjectPropertyDomainAxiom) String() string {
	return "ObjectPropertyDomain(" + a.Property.String() + " " + a.Domain.String() + ")"
}

// NewObjectPropertyDomainAxiom builds an ObjectPropertyDomainAxiom.
func NewObjectPropertyDomainAxiom(p ObjectPropertyExpression, domain ClassExpression, anns ...Annotation) ObjectPropertyDomainAxiom {
	return ObjectPropertyDomainAxiom{axiomBase{anns}, p, domain}
}

// ObjectPropertyRangeAxiom asserts the range of an object property.
type ObjectPropertyRangeAxiom struct {
	axiomBase
	Property ObjectPropertyExpression
	Range    ClassExpression
}

func (ObjectPropertyRangeAxiom) isAxiom() {}
func (a ObjectPropertyRangeAxiom) String() string {
	return "ObjectPropertyRange(" + a.Property.String() + " " + a.Range.String() + ")"
}

// NewObjectPropertyRangeAxiom builds an ObjectPropertyRangeAxiom.
func NewObjectPropertyRangeAxiom(p ObjectPropertyExpression, rng ClassExpression, anns ...Annotation) ObjectPropertyRangeAxiom {
	return ObjectPropertyRangeAxiom{axiomBase{anns}, p, rng}
}

// ObjectPropertyCharacteristicAxiom asserts one of the object-property
// characteristics (Functional, InverseFunctional, Reflexive,
// Irreflexive, Symmetric, Asymmetric, Transitive).
type ObjectPropertyCharacteristicAxiom struct {
	axiomBase
	Kind     ObjectPropertyCharacteristicKind
	Property ObjectPropertyExpression
}

func (ObjectPropertyCharacteristicAxiom) isAxiom() {}
func (a ObjectPropertyCharacteristicAxiom) String() string {
	return a.Kind.String() + "(" + a.Property.String() + ")"
}

// NewObjectPropertyCharacteristicAxiom builds an
// ObjectPropertyCharacteristicAxiom.
func NewObjectPropertyCharacteristicAxiom(kind ObjectPropertyCharacteristicKind, p ObjectPropertyExpression, anns ...Annotation) ObjectPropertyCharacteristicAxiom {
	return ObjectPropertyCharacteristicAxiom{axiomBase{anns}, kind, p}
}

// SubDataPropertyOfAxiom asserts Sub ⊑ Sup between data properties.
type SubDataPropertyOfAxiom struct {
	axiomBase
	Sub, Sup DataPropertyExpr
}

func (SubDataPropertyOfAxiom) isAxiom() {}
func (a SubDataPropertyOfAxiom) String() string {
	return "SubDataPropertyOf(" + a.Sub.String() + " " + a.Sup.String() + ")"
}

// NewSubDataPropertyOfAxiom builds a SubDataPropertyOfAxiom.
func NewSubDataPropertyOfAxiom(sub, sup DataPropertyExpr, anns ...Annotation) SubDataPropertyOfAxiom {
	return SubDataPropertyOfAxiom{axiomBase{anns}, sub, sup}
}

// EquivalentDataPropertiesAxiom asserts 2+ data properties are equivalent.
type EquivalentDataPropertiesAxiom struct {
	axiomBase
	Properties []DataPropertyExpr
}

func (EquivalentDataPropertiesAxiom) isAxiom() {}
func (a EquivalentDataPropertiesAxiom) String() string {
	return joinDP("EquivalentDataProperties", a.Properties)
}

// NewEquivalentDataPropertiesAxiom builds an EquivalentDataPropertiesAxiom.
func NewEquivalentDataPropertiesAxiom(props []DataPropertyExpr, anns ...Annotation) (EquivalentDataPropertiesAxiom, error) {
	props = dedupeDataProperties(props)
	if len(props) < 2 {
		return EquivalentDataPropertiesAxiom{}, arityErr("EquivalentDataProperties", 2, len(props))
	}
	return EquivalentDataPropertiesAxiom{axiomBase{anns}, props}, nil
}

// DisjointDataPropertiesAxiom asserts 2+ data properties are pairwise
// disjoint.
type DisjointDataPropertiesAxiom struct {
	axiomBase
	Properties []DataPropertyExpr
}

func (DisjointDataPropertiesAxiom) isAxiom() {}
func (a DisjointDataPropertiesAxiom) String() string {
	return joinDP("DisjointDataProperties", a.Properties)
}

// NewDisjointDataPropertiesAxiom builds a DisjointDataPropertiesAxiom.
func NewDisjointDataPropertiesAxiom(props []DataPropertyExpr, anns ...Annotation) (DisjointDataPropertiesAxiom, error) {
	props = dedupeDataProperties(props)
	if len(props) < 2 {
		return DisjointDataPropertiesAxiom{}, arityErr("DisjointDataProperties", 2, len(props))
	}
	return DisjointDataPropertiesAxiom{axiomBase{anns}, props}, nil
}

// dedupeDataProperties is dedupeClassExpressions' counterpart for data
// property operand lists (EquivalentDataProperties, DisjointDataProperties).
func dedupeDataProperties(props []DataPropertyExpr) []DataPropertyExpr {
	out := make([]DataPropertyExpr, 0, len(props))
	for _, p := range props {
		dup := false
		for _, kept := range out {
			if p.Equals(kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

func joinDP(keyword string, props []DataPropertyExpr) string {
	s := keyword + "("
	for i, p := range props {
		if i > 0 {
			s += " "
		}
		s += p.String()
	}
	return s + ")"
}

// DataPropertyDomainAxiom asserts the domain of a data property.
type DataPropertyDomainAxiom struct {
	axiomBase
	Property DataPropertyExpr
	Domain   ClassExpression
}

func (DataPropertyDomainAxiom) isAxiom() {}
func (a DataPropertyDomainAxiom) String() string {
	return "DataPropertyDomain(" + a.Property.String() + " " + a.Domain.String() + ")"
}

// NewDataPropertyDomainAxiom builds a DataPropertyDomainAxiom.
func NewDataPropertyDomainAxiom(p DataPropertyExpr, domain ClassExpression, anns ...Annotation) DataPropertyDomainAxiom {
	return DataPropertyDomainAxiom{axiomBase{anns}, p, domain}
}

// DataPropertyRangeAxiom asserts the range of a data property.
type DataPropertyRangeAxiom struct {
	axiomBase
	Property DataPropertyExpr
	Range    DataRange
}

func (DataPropertyRangeAxiom) isAxiom() {}
func (a DataPropertyRangeAxiom) String() string {
	return "DataPropertyRange(" + a.Property.String() + " " + a.Range.String() + ")"
}

// NewDataPropertyRangeAxiom builds a DataPropertyRangeAxiom.
func NewDataPropertyRangeAxiom(p DataPropertyExpr, rng DataRange, anns ...Annotation) DataPropertyRangeAxiom {
	return DataPropertyRangeAxiom{axiomBase{anns}, p, rng}
}

// FunctionalDataPropertyAxiom asserts a data property is functional.
type FunctionalDataPropertyAxiom struct {
	axiomBase
	Property DataPropertyExpr
}

func (FunctionalDataPropertyAxiom) isAxiom() {}
func (a FunctionalDataPropertyAxiom) String() string {
	return "FunctionalDataProperty(" + a.Property.String() + ")"
}

// NewFunctionalDataPropertyAxiom builds a FunctionalDataPropertyAxiom.
func NewFunctionalDataPropertyAxiom(p DataPropertyExpr, anns ...Annotation) FunctionalDataPropertyAxiom {
	return FunctionalDataPropertyAxiom{axiomBase{anns}, p}
}

// ClassAssertionAxiom asserts that Individual is a member of Class.
type ClassAssertionAxiom struct {
	axiomBase
	Individual Individual
	Class      ClassExpression
}

func (ClassAssertionAxiom) isAxiom() {}
func (a ClassAssertionAxiom) String() string {
	return "ClassAssertion(" + a.Class.String() + " " + a.Individual.String() + ")"
}

// NewClassAssertionAxiom builds a ClassAssertionAxiom.
func NewClassAssertionAxiom(ind Individual, class ClassExpression, anns ...Annotation) ClassAssertionAxiom {
	return ClassAssertionAxiom{axiomBase{anns}, ind, class}
}

// ObjectPropertyAssertionAxiom asserts Subject-Property->Object.
type ObjectPropertyAssertionAxiom struct {
	axiomBase
	Property       ObjectPropertyExpression
	Subject, Object Individual
}

func (ObjectPropertyAssertionAxiom) isAxiom() {}
func (a ObjectPropertyAssertionAxiom) String() string {
	return "ObjectPropertyAssertion(" + a.Property.String() + " " + a.Subject.String() + " " + a.Object.String() + ")"
}

// NewObjectPropertyAssertionAxiom builds an ObjectPropertyAssertionAxiom.
func NewObjectPropertyAssertionAxiom(subj Individual, p ObjectPropertyExpression, obj Individual, anns ...Annotation) ObjectPropertyAssertionAxiom {
	return ObjectPropertyAssertionAxiom{axiomBase{anns}, p, subj, obj}
}

// NegativeObjectPropertyAssertionAxiom asserts Subject-Property->Object does
// NOT hold.
type NegativeObjectPropertyAssertionAxiom struct {
	axiomBase
	Property        ObjectPropertyExpression
	Subject, Object Individual
}

func (NegativeObjectPropertyAssertionAxiom) isAxiom() {}
func (a NegativeObjectPropertyAssertionAxiom) String() string {
	return "NegativeObjectPropertyAssertion(" + a.Property.String() + " " + a.Subject.String() + " " + a.Object.String() + ")"
}

// NewNegativeObjectPropertyAssertionAxiom builds a
// NegativeObjectPropertyAssertionAxiom.
func NewNegativeObjectPropertyAssertionAxiom(subj Individual, p ObjectPropertyExpression, obj Individual, anns ...Annotation) NegativeObjectPropertyAssertionAxiom {
	return NegativeObjectPropertyAssertionAxiom{axiomBase{anns}, p, subj, obj}
}

// DataPropertyAssertionAxiom asserts Subject-Property->Literal.
type DataPropertyAssertionAxiom struct {
	axiomBase
	Property DataPropertyExpr
	Subject  Individual
	Value    Literal
}

func (DataPropertyAssertionAxiom) isAxiom() {}
func (a DataPropertyAssertionAxiom) String() string {
	return "DataPropertyAssertion(" + a.Property.String() + " " + a.Subject.String() + " " + a.Value.String() + ")"
}

// NewDataPropertyAssertionAxiom builds a DataPropertyAssertionAxiom.
func NewDataPropertyAssertionAxiom(subj Individual, p DataPropertyExpr, v Literal, anns ...Annotation) DataPropertyAssertionAxiom {
	return DataPropertyAssertionAxiom{axiomBase{anns}, p, subj, v}
}

// NegativeDataPropertyAssertionAxiom asserts Subject-Property->Literal does
// NOT hold.
type NegativeDataPropertyAssertionAxiom struct {
	axiomBase
	Property DataPropertyExpr
	Subject  Individual
	Value    Literal
}

func (NegativeDataPropertyAssertionAxiom) isAxiom() {}
func (a NegativeDataPropertyAssertionAxiom) String() string {
	return "NegativeDataPropertyAssertion(" + a.Property.String() + " " + a.Subject.String() + " " + a.Value.String() + ")"
}

// NewNegativeDataPropertyAssertionAxiom builds a
// NegativeDataPropertyAssertionAxiom.
func NewNegativeDataPropertyAssertionAxiom(subj Individual, p DataPropertyExpr, v Literal, anns ...Annotation) NegativeDataPropertyAssertionAxiom {
	return NegativeDataPropertyAssertionAxiom{axiomBase{anns}, p, subj, v}
}

// SameIndividualAxiom asserts 2+ individuals denote the same thing.
type SameIndividualAxiom struct {
	axiomBase
	Individuals []Individual
}

func (SameIndividualAxiom) isAxiom() {}
func (a SameIndividualAxiom) String() string { return joinInd("SameIndividual", a.Individuals) }

// NewSameIndividualAxiom builds a SameIndividualAxiom. Fails with
// ErrInvariantViolation when fewer than 2 individuals are given.
func NewSameIndividualAxiom(inds []Individual, anns ...Annotation) (SameIndividualAxiom, error) {
	inds = dedupeIndividuals(inds)
	if len(inds) < 2 {
		return SameIndividualAxiom{}, arityErr("SameIndividual", 2, len(inds))
	}
	return SameIndividualAxiom{axiomBase{anns}, inds}, nil
}

// DifferentIndividualsAxiom asserts 2+ individuals are pairwise distinct.
type DifferentIndividualsAxiom struct {
	axiomBase
	Individuals []Individual
}

func (DifferentIndividualsAxiom) isAxiom() {}
func (a DifferentIndividualsAxiom) String() string {
	return joinInd("DifferentIndividuals", a.Individuals)
}

// NewDifferentIndividualsAxiom builds a DifferentIndividualsAxiom. Fails
// with ErrInvariantViolation when fewer than 2 individuals are given.
func NewDifferentIndividualsAxiom(inds []Individual, anns ...Annotation) (DifferentIndividualsAxiom, error) {
	inds = dedupeIndividuals(inds)
	if len(inds) < 2 {
		return DifferentIndividualsAxiom{}, arityErr("DifferentIndividuals", 2, len(inds))
	}
	return DifferentIndividualsAxiom{axiomBase{anns}, inds}, nil
}

func joinInd(keyword string, inds []Individual) string {
	s := keyword + "("
	for i, ind := range inds {
		if i > 0 {
			s += " "
		}
		s += ind.String()
	}
	return s + ")"
}

// AnnotationAssertionAxiom attaches an annotation value to a subject (an
// IRI or an anonymous individual).
type AnnotationAssertionAxiom struct {
	axiomBase
	Subject  AnnotationValue // IRIValue or AnonymousIndividualValue
	Property IRI
	Value    AnnotationValue
}

func (AnnotationAssertionAxiom) isAxiom() {}
func (a AnnotationAssertionAxiom) String() string {
	return "AnnotationAssertion(" + a.Property.Functional() + " " + a.Subject.String() + " " + a.Value.String() + ")"
}

// NewAnnotationAssertionAxiom builds an AnnotationAssertionAxiom.
func NewAnnotationAssertionAxiom(subject AnnotationValue, property IRI, value AnnotationValue, anns ...Annotation) AnnotationAssertionAxiom {
	return AnnotationAssertionAxiom{axiomBase{anns}, subject, property, value}
}

// SubAnnotationPropertyOfAxiom asserts Sub ⊑ Sup between annotation
// properties.
type SubAnnotationPropertyOfAxiom struct {
	axiomBase
	Sub, Sup IRI
}

func (SubAnnotationPropertyOfAxiom) isAxiom() {}
func (a SubAnnotationPropertyOfAxiom) String() string {
	return "SubAnnotationPropertyOf(" + a.Sub.Functional() + " " + a.Sup.Functional() + ")"
}

// NewSubAnnotationPropertyOfAxiom builds a SubAnnotationPropertyOfAxiom.
func NewSubAnnotationPropertyOfAxiom(sub, sup IRI, anns ...Annotation) SubAnnotationPropertyOfAxiom {
	return SubAnnotationPropertyOfAxiom{axiomBase{anns}, sub, sup}
}

// AnnotationPropertyDomainAxiom asserts the domain of an annotation
// property.
type AnnotationPropertyDomainAxiom struct {
	axiomBase
	Property IRI
	Domain   IRI
}

func (AnnotationPropertyDomainAxiom) isAxiom() {}
func (a AnnotationPropertyDomainAxiom) String() string {
	return "AnnotationPropertyDomain(" + a.Property.Functional() + " " + a.Domain.Functional() + ")"
}

// NewAnnotationPropertyDomainAxiom builds an AnnotationPropertyDomainAxiom.
func NewAnnotationPropertyDomainAxiom(p, domain IRI, anns ...Annotation) AnnotationPropertyDomainAxiom {
	return AnnotationPropertyDomainAxiom{axiomBase{anns}, p, domain}
}

// AnnotationPropertyRangeAxiom asserts the range of an annotation property.
type AnnotationPropertyRangeAxiom struct {
	axiomBase
	Property IRI
	Range    IRI
}

func (AnnotationPropertyRangeAxiom) isAxiom() {}
func (a AnnotationPropertyRangeAxiom) String() string {
	return "AnnotationPropertyRange(" + a.Property.Functional() + " " + a.Range.Functional() + ")"
}

// NewAnnotationPropertyRangeAxiom builds an AnnotationPropertyRangeAxiom.
func NewAnnotationPropertyRangeAxiom(p, rng IRI, anns ...Annotation) AnnotationPropertyRangeAxiom {
	return AnnotationPropertyRangeAxiom{axiomBase{anns}, p, rng}
}

// EqualsAxiom reports structural equality between two axioms: same variant,
// same payload fields, and annotation sets that coincide
// whenever either side carries one.
func EqualsAxiom(a, b Axiom) bool {
	if !annotationSetEquals(a.Annotations(), b.Annotations()) {
		return false
	}
	switch av := a.(type) {
	case DeclarationAxiom:
		bv, ok := b.(DeclarationAxiom)
		return ok && av.Entity.Equals(bv.Entity)
	case SubClassOfAxiom:
		bv, ok := b.(SubClassOfAxiom)
		return ok && EqualsClassExpression(av.Sub, bv.Sub) && EqualsClassExpression(av.Sup, bv.Sup)
	case EquivalentClassesAxiom:
		bv, ok := b.(EquivalentClassesAxiom)
		return ok && ceSetEquals(av.Classes, bv.Classes)
	case DisjointClassesAxiom:
		bv, ok := b.(DisjointClassesAxiom)
		return ok && ceSetEquals(av.Classes, bv.Classes)
	case DisjointUnionAxiom:
		bv, ok := b.(DisjointUnionAxiom)
		return ok && av.Class.Equals(bv.Class) && ceSetEquals(av.Disjoint, bv.Disjoint)
	case SubObjectPropertyOfAxiom:
		bv, ok := b.(SubObjectPropertyOfAxiom)
		return ok && EqualsObjectPropertyExpression(av.Sub, bv.Sub) && EqualsObjectPropertyExpression(av.Sup, bv.Sup)
	case EquivalentObjectPropertiesAxiom:
		bv, ok := b.(EquivalentObjectPropertiesAxiom)
		return ok && opeSetEquals(av.Properties, bv.Properties)
	case DisjointObjectPropertiesAxiom:
		bv, ok := b.(DisjointObjectPropertiesAxiom)
		return ok && opeSetEquals(av.Properties, bv.Properties)
	case InverseObjectPropertiesAxiom:
		bv, ok := b.(InverseObjectPropertiesAxiom)
		return ok && EqualsObjectPropertyExpression(av.P1, bv.P1) && EqualsObjectPropertyExpression(av.P2, bv.P2)
	case ObjectPropertyDomainAxiom:
		bv, ok := b.(ObjectPropertyDomainAxiom)
		return ok && EqualsObjectPropertyExpression(av.Property, bv.Property) && EqualsClassExpression(av.Domain, bv.Domain)
	case ObjectPropertyRangeAxiom:
		bv, ok := b.(ObjectPropertyRangeAxiom)
		return ok && EqualsObjectPropertyExpression(av.Property, bv.Property) && EqualsClassExpression(av.Range, bv.Range)
	case ObjectPropertyCharacteristicAxiom:
		bv, ok := b.(ObjectPropertyCharacteristicAxiom)
		return ok && av.Kind == bv.Kind && EqualsObjectPropertyExpression(av.Property, bv.Property)
	case SubDataPropertyOfAxiom:
		bv, ok := b.(SubDataPropertyOfAxiom)
		return ok && av.Sub.Equals(bv.Sub) && av.Sup.Equals(bv.Sup)
	case EquivalentDataPropertiesAxiom:
		bv, ok := b.(EquivalentDataPropertiesAxiom)
		return ok && dpSetEquals(av.Properties, bv.Properties)
	case DisjointDataPropertiesAxiom:
		bv, ok := b.(DisjointDataPropertiesAxiom)
		return ok && dpSetEquals(av.Properties, bv.Properties)
	case DataPropertyDomainAxiom:
		bv, ok := b.(DataPropertyDomainAxiom)
		return ok && av.Property.Equals(bv.Property) && EqualsClassExpression(av.Domain, bv.Domain)
	case DataPropertyRangeAxiom:
		bv, ok := b.(DataPropertyRangeAxiom)
		return ok && av.Property.Equals(bv.Property) && EqualsDataRange(av.Range, bv.Range)
	case FunctionalDataPropertyAxiom:
		bv, ok := b.(FunctionalDataPropertyAxiom)
		return ok && av.Property.Equals(bv.Property)
	case ClassAssertionAxiom:
		bv, ok := b.(ClassAssertionAxiom)
		return ok && EqualsIndividual(av.Individual, bv.Individual) && EqualsClassExpression(av.Class, bv.Class)
	case ObjectPropertyAssertionAxiom:
		bv, ok := b.(ObjectPropertyAssertionAxiom)
		return ok && EqualsObjectPropertyExpression(av.Property, bv.Property) && EqualsIndividual(av.Subject, bv.Subject) && EqualsIndividual(av.Object, bv.Object)
	case NegativeObjectPropertyAssertionAxiom:
		bv, ok := b.(NegativeObjectPropertyAssertionAxiom)
		return ok && EqualsObjectPropertyExpression(av.Property, bv.Property) && EqualsIndividual(av.Subject, bv.Subject) && EqualsIndividual(av.Object, bv.Object)
	case DataPropertyAssertionAxiom:
		bv, ok := b.(DataPropertyAssertionAxiom)
		return ok && av.Property.Equals(bv.Property) && EqualsIndividual(av.Subject, bv.Subject) && av.Value.Equals(bv.Value)
	case NegativeDataPropertyAssertionAxiom:
		bv, ok := b.(NegativeDataPropertyAssertionAxiom)
		return ok && av.Property.Equals(bv.Property) && EqualsIndividual(av.Subject, bv.Subject) && av.Value.Equals(bv.Value)
	case SameIndividualAxiom:
		bv, ok := b.(SameIndividualAxiom)
		return ok && individualSetEquals(av.Individuals, bv.Individuals)
	case DifferentIndividualsAxiom:
		bv, ok := b.(DifferentIndividualsAxiom)
		return ok && individualSetEquals(av.Individuals, bv.Individuals)
	case AnnotationAssertionAxiom:
		bv, ok := b.(AnnotationAssertionAxiom)
		return ok && EqualsAnnotationValue(av.Subject, bv.Subject) && av.Property.Equals(bv.Property) && EqualsAnnotationValue(av.Value, bv.Value)
	case SubAnnotationPropertyOfAxiom:
		bv, ok := b.(SubAnnotationPropertyOfAxiom)
		return ok && av.Sub.Equals(bv.Sub) && av.Sup.Equals(bv.Sup)
	case AnnotationPropertyDomainAxiom:
		bv, ok := b.(AnnotationPropertyDomainAxiom)
		return ok && av.Property.Equals(bv.Property) && av.Domain.Equals(bv.Domain)
	case AnnotationPropertyRangeAxiom:
		bv, ok := b.(AnnotationPropertyRangeAxiom)
		return ok && av.Property.Equals(bv.Property) && av.Range.Equals(bv.Range)
	default:
		return false
	}
}

// HashAxiom returns a stable structural hash of an Axiom, excluding the
// annotation set's contribution when it is empty.
func HashAxiom(a Axiom) uint64 {
	var payload uint64
	switch v := a.(type) {
	case DeclarationAxiom:
		payload = mixHash(primeDeclaration, v.Entity.Hash(), primeDeclaration)
	case SubClassOfAxiom:
		payload = mixHash(mixHash(primeSubClassOf, HashClassExpression(v.Sub), primeSubClassOf), HashClassExpression(v.Sup), primeSubClassOf)
	case EquivalentClassesAxiom:
		payload = hashUnordered(ceHashes(v.Classes), primeEquivalentClasses)
	case DisjointClassesAxiom:
		payload = hashUnordered(ceHashes(v.Classes), primeDisjointClasses)
	case DisjointUnionAxiom:
		payload = mixHash(v.Class.Hash(), hashUnordered(ceHashes(v.Disjoint), primeDisjointUnion), primeDisjointUnion)
	case SubObjectPropertyOfAxiom:
		payload = mixHash(HashObjectPropertyExpression(v.Sub), HashObjectPropertyExpression(v.Sup), primeSubObjectPropertyOf)
	case EquivalentObjectPropertiesAxiom:
		payload = opeSetHash(v.Properties, primeEquivalentObjectProperties)
	case DisjointObjectPropertiesAxiom:
		payload = opeSetHash(v.Properties, primeDisjointObjectProperties)
	case InverseObjectPropertiesAxiom:
		payload = mixHash(HashObjectPropertyExpression(v.P1), HashObjectPropertyExpression(v.P2), primeInverseObjectProperties)
	case ObjectPropertyDomainAxiom:
		payload = mixHash(HashObjectPropertyExpression(v.Property), HashClassExpression(v.Domain), primeObjectPropertyDomain)
	case ObjectPropertyRangeAxiom:
		payload = mixHash(HashObjectPropertyExpression(v.Property), HashClassExpression(v.Range), primeObjectPropertyRange)
	case ObjectPropertyCharacteristicAxiom:
		payload = mixHash(uint64(v.Kind)+1, HashObjectPropertyExpression(v.Property), primeObjectPropertyCharacteristic)
	case SubDataPropertyOfAxiom:
		payload = mixHash(v.Sub.Hash(), v.Sup.Hash(), primeSubDataPropertyOf)
	case EquivalentDataPropertiesAxiom:
		payload = dpSetHash(v.Properties, primeEquivalentDataProperties)
	case DisjointDataPropertiesAxiom:
		payload = dpSetHash(v.Properties, primeDisjointDataProperties)
	case DataPropertyDomainAxiom:
		payload = mixHash(v.Property.Hash(), HashClassExpression(v.Domain), primeDataPropertyDomain)
	case DataPropertyRangeAxiom:
		payload = mixHash(v.Property.Hash(), HashDataRange(v.Range), primeDataPropertyRange)
	case FunctionalDataPropertyAxiom:
		payload = mixHash(primeFunctionalDataProperty, v.Property.Hash(), primeFunctionalDataProperty)
	case ClassAssertionAxiom:
		payload = mixHash(HashIndividual(v.Individual), HashClassExpression(v.Class), primeClassAssertion)
	case ObjectPropertyAssertionAxiom:
		payload = mixHash(mixHash(HashObjectPropertyExpression(v.Property), HashIndividual(v.Subject), primeObjectPropertyAssertion), HashIndividual(v.Object), primeObjectPropertyAssertion)
	case NegativeObjectPropertyAssertionAxiom:
		payload = mixHash(mixHash(HashObjectPropertyExpression(v.Property), HashIndividual(v.Subject), primeNegativeObjectPropertyAssertion), HashIndividual(v.Object), primeNegativeObjectPropertyAssertion)
	case DataPropertyAssertionAxiom:
		payload = mixHash(mixHash(v.Property.Hash(), HashIndividual(v.Subject), primeDataPropertyAssertion), v.Value.Hash(), primeDataPropertyAssertion)
	case NegativeDataPropertyAssertionAxiom:
		payload = mixHash(mixHash(v.Property.Hash(), HashIndividual(v.Subject), primeNegativeDataPropertyAssertion), v.Value.Hash(), primeNegativeDataPropertyAssertion)
	case SameIndividualAxiom:
		payload = individualSetHash(v.Individuals, primeSameIndividual)
	case DifferentIndividualsAxiom:
		payload = individualSetHash(v.Individuals, primeDifferentIndividuals)
	case AnnotationAssertionAxiom:
		payload = mixHash(mixHash(HashAnnotationValue(v.Subject), v.Property.Hash(), primeAnnotationAssertion), HashAnnotationValue(v.Value), primeAnnotationAssertion)
	case SubAnnotationPropertyOfAxiom:
		payload = mixHash(v.Sub.Hash(), v.Sup.Hash(), primeSubAnnotationPropertyOf)
	case AnnotationPropertyDomainAxiom:
		payload = mixHash(v.Property.Hash(), v.Domain.Hash(), primeAnnotationPropertyDomain)
	case AnnotationPropertyRangeAxiom:
		payload = mixHash(v.Property.Hash(), v.Range.Hash(), primeAnnotationPropertyRange)
	default:
		payload = 0
	}
	if annHash := annotationSetHash(a.Annotations(), 1000271); annHash != 0 {
		payload = mixHash(payload, annHash, 1000271)
	}
	return payload
}
