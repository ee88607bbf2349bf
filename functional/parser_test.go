package functional

import (
	"strings"
	"testing"

	"github.com/knakk/owl2"
)

func mustParse(t *testing.T, src string) *owl2.Ontology {
	t.Helper()
	o, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return o
}

func TestParseAtomicSubClassOf(t *testing.T) {
	src := `
Prefix(:=<http://example.org/>)
Ontology(<http://example.org/onto>
    SubClassOf(:Dog :Animal)
)`
	o := mustParse(t, src)
	if o.Len() != 1 {
		t.Fatalf("expected 1 axiom, got %d", o.Len())
	}
	sc, ok := o.Axioms()[0].(owl2.SubClassOfAxiom)
	if !ok {
		t.Fatalf("expected SubClassOfAxiom, got %T", o.Axioms()[0])
	}
	dog, _ := owl2.NewIRI("http://example.org/Dog")
	animal, _ := owl2.NewIRI("http://example.org/Animal")
	if !owl2.EqualsClassExpression(sc.Sub, owl2.NewClassExpr(dog)) {
		t.Errorf("unexpected Sub: %v", sc.Sub)
	}
	if !owl2.EqualsClassExpression(sc.Sup, owl2.NewClassExpr(animal)) {
		t.Errorf("unexpected Sup: %v", sc.Sup)
	}
}

func TestParseCardinalityDefaultFiller(t *testing.T) {
	src := `
Prefix(:=<http://example.org/>)
Ontology(
    SubClassOf(:Pack ObjectMinCardinality(2 :hasMember))
)`
	o := mustParse(t, src)
	sc := o.Axioms()[0].(owl2.SubClassOfAxiom)
	card, ok := sc.Sup.(owl2.ObjectMinCardinality)
	if !ok {
		t.Fatalf("expected ObjectMinCardinality, got %T", sc.Sup)
	}
	if !owl2.EqualsClassExpression(card.Filler, owl2.ThingExpr) {
		t.Errorf("expected default filler owl:Thing, got %v", card.Filler)
	}
}

func TestParseDatatypeRestrictionRoundTrip(t *testing.T) {
	src := `
Prefix(xsd:=<http://www.w3.org/2001/XMLSchema#>)
Prefix(:=<http://example.org/>)
Ontology(
    SubClassOf(:Adult DataSomeValuesFrom(:age DatatypeRestriction(xsd:integer xsd:minInclusive "18"^^xsd:integer)))
)`
	o := mustParse(t, src)
	sc := o.Axioms()[0].(owl2.SubClassOfAxiom)
	dsvf, ok := sc.Sup.(owl2.DataSomeValuesFrom)
	if !ok {
		t.Fatalf("expected DataSomeValuesFrom, got %T", sc.Sup)
	}
	dr, ok := dsvf.Range.(owl2.DatatypeRestriction)
	if !ok {
		t.Fatalf("expected DatatypeRestriction, got %T", dsvf.Range)
	}
	if len(dr.Facets) != 1 || dr.Facets[0].Value.Lexical != "18" {
		t.Errorf("unexpected facets: %+v", dr.Facets)
	}

	out := Render(o)
	o2, err := Parse(out)
	if err != nil {
		t.Fatalf("round-trip parse failed: %v\nrendered:\n%s", err, out)
	}
	if !o.Equals(o2) {
		t.Errorf("round-trip ontology not equal\nrendered:\n%s", out)
	}
}

func TestParseAnnotationCarryingAxiomEquality(t *testing.T) {
	src := `
Prefix(:=<http://example.org/>)
Ontology(
    SubClassOf(Annotation(:comment "why") :Dog :Animal)
)`
	o1 := mustParse(t, src)
	o2 := mustParse(t, src)
	if !o1.Equals(o2) {
		t.Errorf("expected identical parses to be equal ontologies")
	}

	srcNoAnn := `
Prefix(:=<http://example.org/>)
Ontology(
    SubClassOf(:Dog :Animal)
)`
	o3 := mustParse(t, srcNoAnn)
	if o1.Equals(o3) {
		t.Errorf("annotation-carrying axiom must not equal its bare counterpart")
	}
}

func TestParseObjectOneOfMixedIndividuals(t *testing.T) {
	src := `
Prefix(:=<http://example.org/>)
Ontology(
    SubClassOf(:Rainbow ObjectOneOf(:red _:b0 :blue))
)`
	o := mustParse(t, src)
	sc := o.Axioms()[0].(owl2.SubClassOfAxiom)
	oneOf, ok := sc.Sup.(owl2.ObjectOneOf)
	if !ok {
		t.Fatalf("expected ObjectOneOf, got %T", sc.Sup)
	}
	if len(oneOf.Individuals) != 3 {
		t.Fatalf("expected 3 individuals, got %d", len(oneOf.Individuals))
	}
	if _, ok := oneOf.Individuals[1].(owl2.AnonymousIndividualExpr); !ok {
		t.Errorf("expected middle individual to be anonymous, got %T", oneOf.Individuals[1])
	}
}

func TestParseBareNameResolvesAgainstDefaultPrefix(t *testing.T) {
	src := `
Prefix(:=<http://example.org/>)
Ontology(
    SubClassOf(Dog Animal)
)`
	o := mustParse(t, src)
	sc := o.Axioms()[0].(owl2.SubClassOfAxiom)
	dog, _ := owl2.NewIRI("http://example.org/Dog")
	if !owl2.EqualsClassExpression(sc.Sub, owl2.NewClassExpr(dog)) {
		t.Errorf("bare name did not resolve against the default prefix: %v", sc.Sub)
	}
}

func TestParseBuiltinPrefixesNeedNoDeclaration(t *testing.T) {
	src := `
Prefix(:=<http://example.org/>)
Ontology(
    DataPropertyRange(:age xsd:integer)
)`
	o := mustParse(t, src)
	rng := o.Axioms()[0].(owl2.DataPropertyRangeAxiom)
	dt, ok := rng.Range.(owl2.DatatypeExpr)
	if !ok {
		t.Fatalf("expected DatatypeExpr, got %T", rng.Range)
	}
	if dt.IRI.String() != "http://www.w3.org/2001/XMLSchema#integer" {
		t.Errorf("xsd:integer resolved to %q", dt.IRI.String())
	}
}

func TestRenderParseRoundTripManyAxiomKinds(t *testing.T) {
	mk := func(s string) owl2.IRI {
		iri, err := owl2.NewIRI("http://example.org/" + s)
		if err != nil {
			t.Fatalf("NewIRI: %v", err)
		}
		return iri
	}
	xsdInt, _ := owl2.NewIRI("http://www.w3.org/2001/XMLSchema#integer")
	xsdMaxEx, _ := owl2.NewIRI("http://www.w3.org/2001/XMLSchema#maxExclusive")

	o := owl2.NewOntology()
	o.SetIRI(mk("onto"))
	o.SetVersionIRI(mk("onto/1.0"))
	o.Annotate(owl2.NewAnnotation(mk("creator"), owl2.LiteralValue{Literal: owl2.LangLiteral("me", "en")}))

	a, b, c := owl2.NewClassExpr(mk("A")), owl2.NewClassExpr(mk("B")), owl2.NewClassExpr(mk("C"))
	p := owl2.NewObjectProperty(mk("p"))
	d := owl2.NewDataProperty(mk("d"))
	fido := owl2.NewNamedIndividual(mk("fido"))
	anon := owl2.NewAnonymousIndividual("n1")

	o.AddAxiom(owl2.NewDeclarationAxiom(owl2.NewEntity(owl2.EntityClass, mk("A"))))
	o.AddAxiom(owl2.NewSubClassOfAxiom(a, b,
		owl2.NewAnnotation(mk("note"), owl2.LiteralValue{Literal: owl2.PlainLiteral("why")})))
	eq, err := owl2.NewEquivalentClassesAxiom([]owl2.ClassExpression{a, owl2.NewObjectSomeValuesFrom(p, b)})
	if err != nil {
		t.Fatalf("NewEquivalentClassesAxiom: %v", err)
	}
	o.AddAxiom(eq)
	dis, err := owl2.NewDisjointClassesAxiom([]owl2.ClassExpression{a, b, c})
	if err != nil {
		t.Fatalf("NewDisjointClassesAxiom: %v", err)
	}
	o.AddAxiom(dis)
	du, err := owl2.NewDisjointUnionAxiom(mk("AB"), []owl2.ClassExpression{a, b})
	if err != nil {
		t.Fatalf("NewDisjointUnionAxiom: %v", err)
	}
	o.AddAxiom(du)
	o.AddAxiom(owl2.NewSubObjectPropertyOfAxiom(owl2.NewObjectInverseOf(p), p))
	o.AddAxiom(owl2.NewInverseObjectPropertiesAxiom(p, owl2.NewObjectProperty(mk("q"))))
	o.AddAxiom(owl2.NewObjectPropertyCharacteristicAxiom(owl2.CharacteristicTransitive, p))
	o.AddAxiom(owl2.NewObjectPropertyDomainAxiom(p, a))
	restr, err := owl2.NewDatatypeRestriction(owl2.NewDatatypeExpr(xsdInt),
		owl2.FacetRestriction{Facet: xsdMaxEx, Value: owl2.TypedLiteral("20", xsdInt)})
	if err != nil {
		t.Fatalf("NewDatatypeRestriction: %v", err)
	}
	o.AddAxiom(owl2.NewDataPropertyRangeAxiom(d, restr))
	o.AddAxiom(owl2.NewFunctionalDataPropertyAxiom(d))
	o.AddAxiom(owl2.NewClassAssertionAxiom(fido, owl2.NewObjectHasSelf(p)))
	o.AddAxiom(owl2.NewObjectPropertyAssertionAxiom(fido, p, anon))
	o.AddAxiom(owl2.NewNegativeDataPropertyAssertionAxiom(fido, d, owl2.TypedLiteral("3", xsdInt)))
	same, err := owl2.NewSameIndividualAxiom([]owl2.Individual{fido, anon})
	if err != nil {
		t.Fatalf("NewSameIndividualAxiom: %v", err)
	}
	o.AddAxiom(same)
	o.AddAxiom(owl2.NewAnnotationAssertionAxiom(owl2.IRIValue{IRI: mk("A")}, mk("label"),
		owl2.LiteralValue{Literal: owl2.PlainLiteral("the A class")}))
	o.AddAxiom(owl2.NewSubAnnotationPropertyOfAxiom(mk("note"), mk("comment")))

	out := Render(o)
	o2, err := Parse(out)
	if err != nil {
		t.Fatalf("round-trip parse failed: %v\nrendered:\n%s", err, out)
	}
	if !o.Equals(o2) {
		t.Errorf("round-trip ontology not equal\nrendered:\n%s", out)
	}
}

func TestParseUnknownKeywordFails(t *testing.T) {
	src := `
Ontology(
    NotARealAxiom(<http://example.org/A> <http://example.org/B>)
)`
	_, err := Parse(src)
	if err == nil {
		t.Fatal("expected ParseError for unknown axiom keyword")
	}
	if !strings.Contains(err.Error(), "unrecognized axiom keyword") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseErrorReportsPosition(t *testing.T) {
	_, err := Parse("Ontology(")
	if err == nil {
		t.Fatal("expected error for unterminated ontology")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Line == 0 {
		t.Errorf("expected non-zero line in ParseError")
	}
}
