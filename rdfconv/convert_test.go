package rdfconv

import (
	"testing"

	"github.com/knakk/owl2"
)

func mustIRIT(t *testing.T, s string) owl2.IRI {
	t.Helper()
	iri, err := owl2.NewIRI(s)
	if err != nil {
		t.Fatalf("NewIRI(%q): %v", s, err)
	}
	return iri
}

func TestConvertDeclaration(t *testing.T) {
	o := owl2.NewOntology()
	a := owl2.DeclarationAxiom{Entity: owl2.NewEntity(owl2.EntityClass, mustIRIT(t, "http://ex.org/Person"))}
	o.AddAxiom(a)

	ts, err := Convert(o, Options{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := Triple{
		Subj: URITerm{IRI: mustIRIT(t, "http://ex.org/Person")},
		Pred: rdfType,
		Obj:  owlClass,
	}
	if !ts.Contains(want) {
		t.Fatalf("missing triple %s in %v", want, ts)
	}
}

func TestConvertSubClassOfAtomic(t *testing.T) {
	o := owl2.NewOntology()
	sub := owl2.NewClassExpr(mustIRIT(t, "http://ex.org/Dog"))
	sup := owl2.NewClassExpr(mustIRIT(t, "http://ex.org/Animal"))
	ax := owl2.NewSubClassOfAxiom(sub, sup)
	o.AddAxiom(ax)

	ts, err := Convert(o, Options{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := Triple{
		Subj: URITerm{IRI: sub.IRI},
		Pred: rdfsSubClassOf,
		Obj:  URITerm{IRI: sup.IRI},
	}
	if !ts.Contains(want) {
		t.Fatalf("missing triple %s in %v", want, ts)
	}
}

func TestConvertSubClassOfComplexFiller(t *testing.T) {
	o := owl2.NewOntology()
	sub := owl2.NewClassExpr(mustIRIT(t, "http://ex.org/HappyParent"))
	prop := owl2.NewObjectProperty(mustIRIT(t, "http://ex.org/hasChild"))
	filler := owl2.NewClassExpr(mustIRIT(t, "http://ex.org/Happy"))
	restriction := owl2.NewObjectSomeValuesFrom(prop, filler)
	ax := owl2.NewSubClassOfAxiom(sub, restriction)
	o.AddAxiom(ax)

	ts, err := Convert(o, Options{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	var blank BlankTerm
	found := false
	for _, tr := range ts {
		if tr.Subj.Eq(URITerm{IRI: sub.IRI}) && tr.Pred.Eq(rdfsSubClassOf) {
			b, ok := tr.Obj.(BlankTerm)
			if !ok {
				t.Fatalf("expected blank node object, got %T", tr.Obj)
			}
			blank = b
			found = true
		}
	}
	if !found {
		t.Fatalf("no rdfs:subClassOf triple found in %v", ts)
	}
	if !ts.Contains(Triple{Subj: blank, Pred: rdfType, Obj: owlRestriction}) {
		t.Errorf("missing restriction type triple")
	}
	if !ts.Contains(Triple{Subj: blank, Pred: owlOnProperty, Obj: URITerm{IRI: prop.IRI}}) {
		t.Errorf("missing onProperty triple")
	}
	if !ts.Contains(Triple{Subj: blank, Pred: owlSomeValuesFrom, Obj: URITerm{IRI: filler.IRI}}) {
		t.Errorf("missing someValuesFrom triple")
	}
}

func TestConvertDisjointClassesPairwiseForTwo(t *testing.T) {
	o := owl2.NewOntology()
	a := owl2.NewClassExpr(mustIRIT(t, "http://ex.org/A"))
	b := owl2.NewClassExpr(mustIRIT(t, "http://ex.org/B"))
	ax, err := owl2.NewDisjointClassesAxiom([]owl2.ClassExpression{a, b})
	if err != nil {
		t.Fatalf("NewDisjointClassesAxiom: %v", err)
	}
	o.AddAxiom(ax)

	ts, err := Convert(o, Options{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := Triple{Subj: URITerm{IRI: a.IRI}, Pred: owlDisjointWith, Obj: URITerm{IRI: b.IRI}}
	if !ts.Contains(want) {
		t.Fatalf("missing triple %s in %v", want, ts)
	}
}

func TestConvertDisjointClassesAllDisjointForN(t *testing.T) {
	o := owl2.NewOntology()
	a := owl2.NewClassExpr(mustIRIT(t, "http://ex.org/A"))
	b := owl2.NewClassExpr(mustIRIT(t, "http://ex.org/B"))
	c := owl2.NewClassExpr(mustIRIT(t, "http://ex.org/C"))
	ax, err := owl2.NewDisjointClassesAxiom([]owl2.ClassExpression{a, b, c})
	if err != nil {
		t.Fatalf("NewDisjointClassesAxiom: %v", err)
	}
	o.AddAxiom(ax)

	ts, err := Convert(o, Options{DisjointClasses: MappingAllDisjointClasses})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	var found bool
	for _, tr := range ts {
		if tr.Pred.Eq(rdfType) && tr.Obj.Eq(owlAllDisjointClasses) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an owl:AllDisjointClasses node in %v", ts)
	}
}

func TestConvertClassAssertion(t *testing.T) {
	o := owl2.NewOntology()
	ind := owl2.NewNamedIndividual(mustIRIT(t, "http://ex.org/fido"))
	class := owl2.NewClassExpr(mustIRIT(t, "http://ex.org/Dog"))
	ax := owl2.NewClassAssertionAxiom(ind, class)
	o.AddAxiom(ax)

	ts, err := Convert(o, Options{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := Triple{Subj: URITerm{IRI: ind.IRI}, Pred: rdfType, Obj: URITerm{IRI: class.IRI}}
	if !ts.Contains(want) {
		t.Fatalf("missing triple %s in %v", want, ts)
	}
}

func TestConvertDataPropertyAssertion(t *testing.T) {
	o := owl2.NewOntology()
	ind := owl2.NewNamedIndividual(mustIRIT(t, "http://ex.org/fido"))
	prop := owl2.NewDataProperty(mustIRIT(t, "http://ex.org/age"))
	lit := owl2.TypedLiteral("3", mustIRIT(t, "http://www.w3.org/2001/XMLSchema#integer"))
	ax := owl2.NewDataPropertyAssertionAxiom(ind, prop, lit)
	o.AddAxiom(ax)

	ts, err := Convert(o, Options{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := Triple{Subj: URITerm{IRI: ind.IRI}, Pred: URITerm{IRI: prop.IRI}, Obj: literalTermFrom(lit)}
	if !ts.Contains(want) {
		t.Fatalf("missing triple %s in %v", want, ts)
	}
}

func TestConvertUnsupportedClassExpression(t *testing.T) {
	o := owl2.NewOntology()
	a := owl2.NewClassExpr(mustIRIT(t, "http://ex.org/A"))
	complement := owl2.NewObjectComplementOf(a)
	ax := owl2.NewSubClassOfAxiom(complement, a)
	o.AddAxiom(ax)

	_, err := Convert(o, Options{})
	if err == nil {
		t.Fatal("expected Unsupported error, got nil")
	}
	if _, ok := err.(*Unsupported); !ok {
		t.Fatalf("expected *Unsupported, got %T: %v", err, err)
	}
}
