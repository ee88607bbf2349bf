package owl2

import "testing"

func iri(t *testing.T, s string) IRI {
	t.Helper()
	v, err := NewIRI(s)
	if err != nil {
		t.Fatalf("NewIRI(%q): %v", s, err)
	}
	return v
}

func TestEqualsClassExpression(t *testing.T) {
	a := NewClassExpr(iri(t, "http://ex.org/A"))
	b := NewClassExpr(iri(t, "http://ex.org/B"))

	i1, err := NewObjectIntersectionOf(a, b)
	if err != nil {
		t.Fatalf("NewObjectIntersectionOf: %v", err)
	}
	i2, err := NewObjectIntersectionOf(b, a) // reordered
	if err != nil {
		t.Fatalf("NewObjectIntersectionOf: %v", err)
	}

	if !EqualsClassExpression(i1, i2) {
		t.Error("intersections with reordered operands should be equal (set semantics)")
	}
	if EqualsClassExpression(a, b) {
		t.Error("distinct atomic classes should not be equal")
	}
	if EqualsClassExpression(i1, a) {
		t.Error("an intersection should never equal an atomic class")
	}
}

func TestHashClassExpressionOrderIndependent(t *testing.T) {
	a := NewClassExpr(iri(t, "http://ex.org/A"))
	b := NewClassExpr(iri(t, "http://ex.org/B"))

	u1, err := NewObjectUnionOf(a, b)
	if err != nil {
		t.Fatalf("NewObjectUnionOf: %v", err)
	}
	u2, err := NewObjectUnionOf(b, a)
	if err != nil {
		t.Fatalf("NewObjectUnionOf: %v", err)
	}

	if HashClassExpression(u1) != HashClassExpression(u2) {
		t.Error("union hash must not depend on operand order")
	}
}

// ObjectOneOf(ex:a _:23 ex:b _:23) must collapse to a 3-element set, not
// store the duplicate anonymous individual verbatim.
func TestNewObjectOneOfDedupesDuplicateIndividuals(t *testing.T) {
	a := NewNamedIndividual(iri(t, "http://ex.org/a"))
	b := NewNamedIndividual(iri(t, "http://ex.org/b"))
	anon := NewAnonymousIndividual("23")

	oneOf, err := NewObjectOneOf(a, anon, b, anon)
	if err != nil {
		t.Fatalf("NewObjectOneOf: %v", err)
	}
	if len(oneOf.Individuals) != 3 {
		t.Fatalf("len(Individuals) = %d, want 3 (duplicate _:23 collapsed): %+v", len(oneOf.Individuals), oneOf.Individuals)
	}
}

func TestNewObjectIntersectionOfDedupesDuplicateOperands(t *testing.T) {
	a := NewClassExpr(iri(t, "http://ex.org/A"))

	_, err := NewObjectIntersectionOf(a, a)
	if err == nil {
		t.Fatal("expected an arity error: deduped to a single operand")
	}
	if _, ok := err.(*ErrInvariantViolation); !ok {
		t.Fatalf("expected *ErrInvariantViolation, got %T: %v", err, err)
	}
}

func TestNewDataOneOfDedupesDuplicateLiterals(t *testing.T) {
	l1 := TypedLiteral("1", iri(t, "http://www.w3.org/2001/XMLSchema#integer"))
	l2 := TypedLiteral("1", iri(t, "http://www.w3.org/2001/XMLSchema#integer"))
	l3 := TypedLiteral("2", iri(t, "http://www.w3.org/2001/XMLSchema#integer"))

	dr, err := NewDataOneOf(l1, l2, l3)
	if err != nil {
		t.Fatalf("NewDataOneOf: %v", err)
	}
	if len(dr.Literals) != 2 {
		t.Fatalf("len(Literals) = %d, want 2", len(dr.Literals))
	}
}

func TestNewDisjointClassesAxiomRejectsAllDuplicates(t *testing.T) {
	a := NewClassExpr(iri(t, "http://ex.org/A"))

	_, err := NewDisjointClassesAxiom([]ClassExpression{a, a})
	if err == nil {
		t.Fatal("DisjointClasses(A A) should fail arity validation once deduped to one operand")
	}
}

func TestNewEquivalentClassesAxiomDedupesOperands(t *testing.T) {
	a := NewClassExpr(iri(t, "http://ex.org/A"))
	b := NewClassExpr(iri(t, "http://ex.org/B"))

	ax, err := NewEquivalentClassesAxiom([]ClassExpression{a, b, a})
	if err != nil {
		t.Fatalf("NewEquivalentClassesAxiom: %v", err)
	}
	if len(ax.Classes) != 2 {
		t.Fatalf("len(Classes) = %d, want 2", len(ax.Classes))
	}
}

func TestNewSameIndividualAxiomDedupesOperands(t *testing.T) {
	a := NewNamedIndividual(iri(t, "http://ex.org/a"))
	b := NewNamedIndividual(iri(t, "http://ex.org/b"))

	ax, err := NewSameIndividualAxiom([]Individual{a, b, a, b})
	if err != nil {
		t.Fatalf("NewSameIndividualAxiom: %v", err)
	}
	if len(ax.Individuals) != 2 {
		t.Fatalf("len(Individuals) = %d, want 2", len(ax.Individuals))
	}
}

func TestNewDisjointObjectPropertiesAxiomDedupesOperands(t *testing.T) {
	p := NewObjectProperty(iri(t, "http://ex.org/p"))
	q := NewObjectProperty(iri(t, "http://ex.org/q"))

	ax, err := NewDisjointObjectPropertiesAxiom([]ObjectPropertyExpression{p, q, p})
	if err != nil {
		t.Fatalf("NewDisjointObjectPropertiesAxiom: %v", err)
	}
	if len(ax.Properties) != 2 {
		t.Fatalf("len(Properties) = %d, want 2", len(ax.Properties))
	}
}

func TestNewDisjointDataPropertiesAxiomDedupesOperands(t *testing.T) {
	p := NewDataProperty(iri(t, "http://ex.org/p"))

	_, err := NewDisjointDataPropertiesAxiom([]DataPropertyExpr{p, p})
	if err == nil {
		t.Fatal("DisjointDataProperties(p p) should fail arity validation once deduped to one operand")
	}
}

func TestEqualsAxiomIgnoresAnnotationsWhenBothEmpty(t *testing.T) {
	sub := NewClassExpr(iri(t, "http://ex.org/Dog"))
	sup := NewClassExpr(iri(t, "http://ex.org/Animal"))

	a := NewSubClassOfAxiom(sub, sup)
	b := NewSubClassOfAxiom(sub, sup)

	if !EqualsAxiom(a, b) {
		t.Error("identical axioms with no annotations should be equal")
	}
}

func TestEqualsAxiomComparesAnnotationsWhenEitherSideNonEmpty(t *testing.T) {
	sub := NewClassExpr(iri(t, "http://ex.org/Dog"))
	sup := NewClassExpr(iri(t, "http://ex.org/Animal"))
	ann := NewAnnotation(iri(t, "http://ex.org/comment"), IRIValue{IRI: iri(t, "http://ex.org/note")})

	plain := NewSubClassOfAxiom(sub, sup)
	annotated := NewSubClassOfAxiom(sub, sup, ann)

	if EqualsAxiom(plain, annotated) {
		t.Error("an annotated axiom must not equal its unannotated counterpart")
	}
	if !EqualsAxiom(annotated, NewSubClassOfAxiom(sub, sup, ann)) {
		t.Error("two axioms with the same annotation set should be equal")
	}
}

func TestHashAxiomStableAcrossEquivalentClassesOperandOrder(t *testing.T) {
	a := NewClassExpr(iri(t, "http://ex.org/A"))
	b := NewClassExpr(iri(t, "http://ex.org/B"))

	ax1, err := NewEquivalentClassesAxiom([]ClassExpression{a, b})
	if err != nil {
		t.Fatalf("NewEquivalentClassesAxiom: %v", err)
	}
	ax2, err := NewEquivalentClassesAxiom([]ClassExpression{b, a})
	if err != nil {
		t.Fatalf("NewEquivalentClassesAxiom: %v", err)
	}

	if HashAxiom(ax1) != HashAxiom(ax2) {
		t.Error("EquivalentClasses hash must not depend on operand order")
	}
	if !EqualsAxiom(ax1, ax2) {
		t.Error("EquivalentClasses must compare as a set")
	}
}

func TestOntologyAddAxiomDedupesStructurallyEqualAxioms(t *testing.T) {
	o := NewOntology()
	sub := NewClassExpr(iri(t, "http://ex.org/Dog"))
	sup := NewClassExpr(iri(t, "http://ex.org/Animal"))

	if !o.AddAxiom(NewSubClassOfAxiom(sub, sup)) {
		t.Fatal("first insertion should report added=true")
	}
	if o.AddAxiom(NewSubClassOfAxiom(sub, sup)) {
		t.Fatal("structurally identical axiom should report added=false")
	}
	if o.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", o.Len())
	}
}
