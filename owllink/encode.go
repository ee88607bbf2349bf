package owllink

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/knakk/owl2"
)

// UnsupportedAxiom is returned by Encode when an axiom or class expression
// variant has no OWLLink translator.
type UnsupportedAxiom struct {
	Construct string
}

func (e *UnsupportedAxiom) Error() string {
	return fmt.Sprintf("owllink: unsupported construct: %s", e.Construct)
}

func owlName(local string) xml.Name { return xml.Name{Space: nsOWL, Local: local} }

func start(local string) xml.StartElement {
	return xml.StartElement{Name: owlName(local)}
}

func startAttr(local string, attrs ...xml.Attr) xml.StartElement {
	return xml.StartElement{Name: owlName(local), Attr: attrs}
}

func iriAttr(iri owl2.IRI) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: attrIRI}, Value: iri.String()}
}

func end(s xml.StartElement) xml.EndElement {
	return xml.EndElement{Name: s.Name}
}

// Encode translates a single axiom into the OWLLink XML token tree that
// represents it (an `owl:`-namespaced root element and its children). The
// caller is responsible for embedding the result inside a containing
// request element (e.g. Tell).
func Encode(ax owl2.Axiom) ([]xml.Token, error) {
	var toks []xml.Token
	if err := encodeAxiom(&toks, ax); err != nil {
		return nil, err
	}
	return toks, nil
}

func encodeAxiom(toks *[]xml.Token, ax owl2.Axiom) error {
	switch v := ax.(type) {
	case owl2.DeclarationAxiom:
		return encodeDeclaration(toks, v)
	case owl2.SubClassOfAxiom:
		s := start(elSubClassOf)
		*toks = append(*toks, s)
		if err := encodeClassExpression(toks, v.Sub); err != nil {
			return err
		}
		if err := encodeClassExpression(toks, v.Sup); err != nil {
			return err
		}
		*toks = append(*toks, end(s))
		return nil
	case owl2.EquivalentClassesAxiom:
		return encodeClassExpressionList(toks, elEquivalentClasses, v.Classes)
	case owl2.DisjointClassesAxiom:
		return encodeClassExpressionList(toks, elDisjointClasses, v.Classes)
	case owl2.ClassAssertionAxiom:
		s := start(elClassAssertion)
		*toks = append(*toks, s)
		if err := encodeClassExpression(toks, v.Class); err != nil {
			return err
		}
		if err := encodeIndividual(toks, v.Individual); err != nil {
			return err
		}
		*toks = append(*toks, end(s))
		return nil
	case owl2.ObjectPropertyAssertionAxiom:
		s := start(elObjectPropertyAssertion)
		*toks = append(*toks, s)
		if err := encodeObjectPropertyExpression(toks, v.Property); err != nil {
			return err
		}
		if err := encodeIndividual(toks, v.Subject); err != nil {
			return err
		}
		if err := encodeIndividual(toks, v.Object); err != nil {
			return err
		}
		*toks = append(*toks, end(s))
		return nil
	case owl2.DataPropertyAssertionAxiom:
		s := start(elDataPropertyAssertion)
		*toks = append(*toks, s)
		encodeDataProperty(toks, v.Property)
		if err := encodeIndividual(toks, v.Subject); err != nil {
			return err
		}
		encodeLiteral(toks, v.Value)
		*toks = append(*toks, end(s))
		return nil
	case owl2.ObjectPropertyDomainAxiom:
		s := start(elObjectPropertyDomain)
		*toks = append(*toks, s)
		if err := encodeObjectPropertyExpression(toks, v.Property); err != nil {
			return err
		}
		if err := encodeClassExpression(toks, v.Domain); err != nil {
			return err
		}
		*toks = append(*toks, end(s))
		return nil
	case owl2.ObjectPropertyRangeAxiom:
		s := start(elObjectPropertyRange)
		*toks = append(*toks, s)
		if err := encodeObjectPropertyExpression(toks, v.Property); err != nil {
			return err
		}
		if err := encodeClassExpression(toks, v.Range); err != nil {
			return err
		}
		*toks = append(*toks, end(s))
		return nil
	case owl2.DataPropertyDomainAxiom:
		s := start(elDataPropertyDomain)
		*toks = append(*toks, s)
		encodeDataProperty(toks, v.Property)
		if err := encodeClassExpression(toks, v.Domain); err != nil {
			return err
		}
		*toks = append(*toks, end(s))
		return nil
	case owl2.DataPropertyRangeAxiom:
		s := start(elDataPropertyRange)
		*toks = append(*toks, s)
		encodeDataProperty(toks, v.Property)
		if err := encodeDataRange(toks, v.Range); err != nil {
			return err
		}
		*toks = append(*toks, end(s))
		return nil
	default:
		return &UnsupportedAxiom{Construct: fmt.Sprintf("axiom %T", ax)}
	}
}

func encodeDeclaration(toks *[]xml.Token, d owl2.DeclarationAxiom) error {
	var local string
	switch d.Entity.Kind {
	case owl2.EntityClass:
		local = elClass
	case owl2.EntityDatatype:
		local = elDatatype
	case owl2.EntityObjectProperty:
		local = elObjectProperty
	case owl2.EntityDataProperty:
		local = elDataProperty
	case owl2.EntityAnnotationProperty:
		local = "AnnotationProperty"
	case owl2.EntityNamedIndividual:
		local = elNamedIndividual
	default:
		return &UnsupportedAxiom{Construct: fmt.Sprintf("entity kind %v", d.Entity.Kind)}
	}
	s := start(elDeclaration)
	*toks = append(*toks, s)
	leaf := startAttr(local, iriAttr(d.Entity.IRI))
	*toks = append(*toks, leaf, end(leaf))
	*toks = append(*toks, end(s))
	return nil
}

func encodeClassExpressionList(toks *[]xml.Token, elName string, ces []owl2.ClassExpression) error {
	s := start(elName)
	*toks = append(*toks, s)
	for _, ce := range ces {
		if err := encodeClassExpression(toks, ce); err != nil {
			return err
		}
	}
	*toks = append(*toks, end(s))
	return nil
}

func encodeClassExpression(toks *[]xml.Token, ce owl2.ClassExpression) error {
	switch v := ce.(type) {
	case owl2.ClassExpr:
		leaf := startAttr(elClass, iriAttr(v.IRI))
		*toks = append(*toks, leaf, end(leaf))
		return nil
	case owl2.ObjectIntersectionOf:
		return encodeNaryClassExpr(toks, elObjectIntersectionOf, v.Operands)
	case owl2.ObjectUnionOf:
		return encodeNaryClassExpr(toks, elObjectUnionOf, v.Operands)
	case owl2.ObjectSomeValuesFrom:
		s := start(elObjectSomeValuesFrom)
		*toks = append(*toks, s)
		if err := encodeObjectPropertyExpression(toks, v.Property); err != nil {
			return err
		}
		if err := encodeClassExpression(toks, v.Filler); err != nil {
			return err
		}
		*toks = append(*toks, end(s))
		return nil
	case owl2.ObjectAllValuesFrom:
		s := start(elObjectAllValuesFrom)
		*toks = append(*toks, s)
		if err := encodeObjectPropertyExpression(toks, v.Property); err != nil {
			return err
		}
		if err := encodeClassExpression(toks, v.Filler); err != nil {
			return err
		}
		*toks = append(*toks, end(s))
		return nil
	case owl2.ObjectHasValue:
		s := start(elObjectHasValue)
		*toks = append(*toks, s)
		if err := encodeObjectPropertyExpression(toks, v.Property); err != nil {
			return err
		}
		if err := encodeIndividual(toks, v.Value); err != nil {
			return err
		}
		*toks = append(*toks, end(s))
		return nil
	case owl2.DataSomeValuesFrom:
		s := start(elDataSomeValuesFrom)
		*toks = append(*toks, s)
		encodeDataProperty(toks, v.Property)
		if err := encodeDataRange(toks, v.Range); err != nil {
			return err
		}
		*toks = append(*toks, end(s))
		return nil
	case owl2.DataAllValuesFrom:
		s := start(elDataAllValuesFrom)
		*toks = append(*toks, s)
		encodeDataProperty(toks, v.Property)
		if err := encodeDataRange(toks, v.Range); err != nil {
			return err
		}
		*toks = append(*toks, end(s))
		return nil
	case owl2.DataHasValue:
		s := start(elDataHasValue)
		*toks = append(*toks, s)
		encodeDataProperty(toks, v.Property)
		encodeLiteral(toks, v.Value)
		*toks = append(*toks, end(s))
		return nil
	default:
		return &UnsupportedAxiom{Construct: fmt.Sprintf("class expression %T", ce)}
	}
}

func encodeNaryClassExpr(toks *[]xml.Token, elName string, operands []owl2.ClassExpression) error {
	s := start(elName)
	*toks = append(*toks, s)
	for _, op := range operands {
		if err := encodeClassExpression(toks, op); err != nil {
			return err
		}
	}
	*toks = append(*toks, end(s))
	return nil
}

func encodeDataRange(toks *[]xml.Token, dr owl2.DataRange) error {
	switch v := dr.(type) {
	case owl2.DatatypeExpr:
		leaf := startAttr(elDatatype, iriAttr(v.IRI))
		*toks = append(*toks, leaf, end(leaf))
		return nil
	default:
		return &UnsupportedAxiom{Construct: fmt.Sprintf("data range %T", dr)}
	}
}

func encodeDataProperty(toks *[]xml.Token, p owl2.DataPropertyExpr) {
	leaf := startAttr(elDataProperty, iriAttr(p.IRI))
	*toks = append(*toks, leaf, end(leaf))
}

func encodeObjectPropertyExpression(toks *[]xml.Token, ope owl2.ObjectPropertyExpression) error {
	switch v := ope.(type) {
	case owl2.ObjectPropertyExpr:
		leaf := startAttr(elObjectProperty, iriAttr(v.IRI))
		*toks = append(*toks, leaf, end(leaf))
		return nil
	default:
		return &UnsupportedAxiom{Construct: fmt.Sprintf("object property expression %T", ope)}
	}
}

func encodeIndividual(toks *[]xml.Token, ind owl2.Individual) error {
	switch v := ind.(type) {
	case owl2.NamedIndividualExpr:
		leaf := startAttr(elNamedIndividual, iriAttr(v.IRI))
		*toks = append(*toks, leaf, end(leaf))
		return nil
	case owl2.AnonymousIndividualExpr:
		leaf := startAttr("AnonymousIndividual", xml.Attr{Name: xml.Name{Local: attrNodeID}, Value: v.NodeID})
		*toks = append(*toks, leaf, end(leaf))
		return nil
	default:
		return &UnsupportedAxiom{Construct: fmt.Sprintf("individual %T", ind)}
	}
}

func encodeLiteral(toks *[]xml.Token, l owl2.Literal) {
	var attrs []xml.Attr
	if l.HasDatatype() {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: attrDatatypeIRI}, Value: l.Datatype.String()})
	}
	if l.HasLang() {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Space: xmlNamespace, Local: attrXMLLang}, Value: l.Lang})
	}
	s := startAttr(elLiteral, attrs...)
	*toks = append(*toks, s, xml.CharData([]byte(l.Lexical)), end(s))
}

// writeRequest writes a complete RequestMessage document holding one
// command element with the given attributes and child tokens.
func writeRequest(w io.Writer, command string, attrs []xml.Attr, children ...xml.Token) error {
	enc := xml.NewEncoder(w)
	root := xml.StartElement{
		Name: xml.Name{Local: elRequestMessage},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns"}, Value: nsOWLLink},
			{Name: xml.Name{Local: "xmlns:owl"}, Value: nsOWL},
		},
	}
	cmd := xml.StartElement{Name: xml.Name{Local: command}, Attr: attrs}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	if err := enc.EncodeToken(cmd); err != nil {
		return err
	}
	for _, c := range children {
		if err := enc.EncodeToken(c); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(xml.EndElement{Name: cmd.Name}); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.EndElement{Name: root.Name}); err != nil {
		return err
	}
	return enc.Flush()
}

func kbAttr(kbURI string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: attrKB}, Value: kbURI}
}

// EncodeCreateKB writes a CreateKB request for the given knowledge-base
// URI.
func EncodeCreateKB(w io.Writer, kbURI string) error {
	return writeRequest(w, elCreateKB, []xml.Attr{kbAttr(kbURI)})
}

// EncodeTell writes a complete Tell request containing every axiom in
// axioms, addressed to the knowledge base identified by kbURI.
func EncodeTell(w io.Writer, kbURI string, axioms []owl2.Axiom) error {
	var children []xml.Token
	for _, ax := range axioms {
		toks, err := Encode(ax)
		if err != nil {
			return err
		}
		children = append(children, toks...)
	}
	return writeRequest(w, elTell, []xml.Attr{kbAttr(kbURI)}, children...)
}

// EncodeRequest writes a single-command request of the given element name
// (e.g. IsKBSatisfiable, GetAllClasses, ReleaseKB) addressed to kbURI, with
// the command's own child tokens (e.g. the axiom being tested for
// entailment) spliced in between its start and end tags.
func EncodeRequest(w io.Writer, command, kbURI string, children ...xml.Token) error {
	return writeRequest(w, command, []xml.Attr{kbAttr(kbURI)}, children...)
}
