package owllink

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/knakk/owl2"
)

func mustIRI(t *testing.T, s string) owl2.IRI {
	t.Helper()
	iri, err := owl2.NewIRI(s)
	if err != nil {
		t.Fatalf("NewIRI(%q): %v", s, err)
	}
	return iri
}

func TestEncodeDeclaration(t *testing.T) {
	ax := owl2.DeclarationAxiom{Entity: owl2.NewEntity(owl2.EntityClass, mustIRI(t, "http://ex.org/Person"))}
	toks, err := Encode(ax)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(toks) == 0 {
		t.Fatal("expected non-empty token stream")
	}
	root, ok := toks[0].(xml.StartElement)
	if !ok || root.Name.Local != elDeclaration || root.Name.Space != nsOWL {
		t.Fatalf("unexpected root token: %+v", toks[0])
	}
}

func TestEncodeTellProducesWellFormedXML(t *testing.T) {
	sub := owl2.NewClassExpr(mustIRI(t, "http://ex.org/Dog"))
	sup := owl2.NewClassExpr(mustIRI(t, "http://ex.org/Animal"))
	ax := owl2.NewSubClassOfAxiom(sub, sup)

	var buf bytes.Buffer
	if err := EncodeTell(&buf, "urn:uuid:test", []owl2.Axiom{ax}); err != nil {
		t.Fatalf("EncodeTell: %v", err)
	}

	dec := xml.NewDecoder(&buf)
	var sawSubClassOf bool
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == elSubClassOf {
			sawSubClassOf = true
		}
	}
	if !sawSubClassOf {
		t.Fatal("expected an owl:SubClassOf element in the Tell request")
	}
}

func TestEncodeUnsupportedClassExpression(t *testing.T) {
	a := owl2.NewClassExpr(mustIRI(t, "http://ex.org/A"))
	complement := owl2.NewObjectComplementOf(a)
	ax := owl2.NewSubClassOfAxiom(complement, a)

	_, err := Encode(ax)
	if err == nil {
		t.Fatal("expected an UnsupportedAxiom error")
	}
	if _, ok := err.(*UnsupportedAxiom); !ok {
		t.Fatalf("expected *UnsupportedAxiom, got %T: %v", err, err)
	}
}

func TestEncodeDataPropertyAssertionLiteral(t *testing.T) {
	ind := owl2.NewNamedIndividual(mustIRI(t, "http://ex.org/fido"))
	prop := owl2.NewDataProperty(mustIRI(t, "http://ex.org/age"))
	lit := owl2.TypedLiteral("3", mustIRI(t, "http://www.w3.org/2001/XMLSchema#integer"))
	ax := owl2.NewDataPropertyAssertionAxiom(ind, prop, lit)

	toks, err := Encode(ax)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var sawLexical bool
	for _, tok := range toks {
		if cd, ok := tok.(xml.CharData); ok && string(cd) == "3" {
			sawLexical = true
		}
	}
	if !sawLexical {
		t.Fatalf("expected literal lexical form \"3\" in token stream: %v", toks)
	}
}
