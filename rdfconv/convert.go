package rdfconv

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/knakk/owl2"
)

var (
	nsOWL  = mustIRI("http://www.w3.org/2002/07/owl#")
	nsRDF  = mustIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#")
	nsRDFS = mustIRI("http://www.w3.org/2000/01/rdf-schema#")

	rdfType        = term(nsRDF, "type")
	rdfFirst       = term(nsRDF, "first")
	rdfRest        = term(nsRDF, "rest")
	rdfNil         = term(nsRDF, "nil")
	rdfsSubClassOf = term(nsRDFS, "subClassOf")
	rdfsDomain     = term(nsRDFS, "domain")
	rdfsRange      = term(nsRDFS, "range")

	owlClass              = term(nsOWL, "Class")
	owlDatatype           = term(nsRDFS, "Datatype")
	owlObjectProperty     = term(nsOWL, "ObjectProperty")
	owlDatatypeProperty   = term(nsOWL, "DatatypeProperty")
	owlAnnotationProperty = term(nsOWL, "AnnotationProperty")
	owlNamedIndividual    = term(nsOWL, "NamedIndividual")
	owlRestriction        = term(nsOWL, "Restriction")
	owlOnProperty         = term(nsOWL, "onProperty")
	owlSomeValuesFrom     = term(nsOWL, "someValuesFrom")
	owlAllValuesFrom      = term(nsOWL, "allValuesFrom")
	owlHasValue           = term(nsOWL, "hasValue")
	owlIntersectionOf     = term(nsOWL, "intersectionOf")
	owlUnionOf            = term(nsOWL, "unionOf")
	owlEquivalentClass    = term(nsOWL, "equivalentClass")
	owlDisjointWith       = term(nsOWL, "disjointWith")
	owlAllDisjointClasses = term(nsOWL, "AllDisjointClasses")
	owlMembers            = term(nsOWL, "members")
)

func mustIRI(s string) owl2.IRI { return owl2.MustNewIRI(s) }
func term(ns owl2.IRI, local string) URITerm {
	return URITerm{IRI: owl2.MustNewIRI(ns.String() + local)}
}

// Convert maps o to the set of RDF triples implied by its axioms, per the
// OWL 2 Mapping to RDF Graphs (the subset this converter implements). Any
// axiom or expression variant without a translator fails with
// *Unsupported rather than being silently dropped.
func Convert(o *owl2.Ontology, opts Options) (TripleSet, error) {
	c := &converter{opts: opts}
	for _, ax := range o.Axioms() {
		if err := c.convertAxiom(ax); err != nil {
			return nil, err
		}
	}
	return c.triples, nil
}

type converter struct {
	triples TripleSet
	opts    Options
}

func (c *converter) emit(s Term, p URITerm, o Term) {
	c.triples.Add(Triple{Subj: s, Pred: p, Obj: o})
}

func (c *converter) newBlank() BlankTerm {
	return BlankTerm{ID: uuid.New().String()}
}

// rdfList emits an rdf:first/rdf:rest-terminated list of items and returns
// the head term (rdf:nil for an empty list).
func (c *converter) rdfList(items []Term) Term {
	if len(items) == 0 {
		return rdfNil
	}
	head := c.newBlank()
	node := Term(head)
	for i, item := range items {
		b := node.(BlankTerm)
		c.emit(b, rdfFirst, item)
		if i == len(items)-1 {
			c.emit(b, rdfRest, rdfNil)
			break
		}
		next := c.newBlank()
		c.emit(b, rdfRest, next)
		node = next
	}
	return head
}

func (c *converter) individualTerm(ind owl2.Individual) (Term, error) {
	switch v := ind.(type) {
	case owl2.NamedIndividualExpr:
		return URITerm{IRI: v.IRI}, nil
	case owl2.AnonymousIndividualExpr:
		return BlankTerm{ID: v.NodeID}, nil
	default:
		return nil, &Unsupported{Construct: fmt.Sprintf("individual %T", ind)}
	}
}

func (c *converter) objectPropertyTerm(ope owl2.ObjectPropertyExpression) (URITerm, error) {
	switch v := ope.(type) {
	case owl2.ObjectPropertyExpr:
		return URITerm{IRI: v.IRI}, nil
	default:
		return URITerm{}, &Unsupported{Construct: fmt.Sprintf("object property expression %T", ope)}
	}
}

// classTerm resolves a class expression to an RDF term, minting a blank
// node and its auxiliary triples for complex expressions.
func (c *converter) classTerm(ce owl2.ClassExpression) (Term, error) {
	switch v := ce.(type) {
	case owl2.ClassExpr:
		return URITerm{IRI: v.IRI}, nil
	case owl2.ObjectSomeValuesFrom:
		prop, err := c.objectPropertyTerm(v.Property)
		if err != nil {
			return nil, err
		}
		filler, err := c.classTerm(v.Filler)
		if err != nil {
			return nil, err
		}
		b := c.newBlank()
		c.emit(b, rdfType, owlRestriction)
		c.emit(b, owlOnProperty, prop)
		c.emit(b, owlSomeValuesFrom, filler)
		return b, nil
	case owl2.ObjectAllValuesFrom:
		prop, err := c.objectPropertyTerm(v.Property)
		if err != nil {
			return nil, err
		}
		filler, err := c.classTerm(v.Filler)
		if err != nil {
			return nil, err
		}
		b := c.newBlank()
		c.emit(b, rdfType, owlRestriction)
		c.emit(b, owlOnProperty, prop)
		c.emit(b, owlAllValuesFrom, filler)
		return b, nil
	case owl2.ObjectHasValue:
		prop, err := c.objectPropertyTerm(v.Property)
		if err != nil {
			return nil, err
		}
		val, err := c.individualTerm(v.Value)
		if err != nil {
			return nil, err
		}
		b := c.newBlank()
		c.emit(b, rdfType, owlRestriction)
		c.emit(b, owlOnProperty, prop)
		c.emit(b, owlHasValue, val)
		return b, nil
	case owl2.DataSomeValuesFrom:
		filler, err := c.dataRangeTerm(v.Range)
		if err != nil {
			return nil, err
		}
		b := c.newBlank()
		c.emit(b, rdfType, owlRestriction)
		c.emit(b, owlOnProperty, URITerm{IRI: v.Property.IRI})
		c.emit(b, owlSomeValuesFrom, filler)
		return b, nil
	case owl2.DataAllValuesFrom:
		filler, err := c.dataRangeTerm(v.Range)
		if err != nil {
			return nil, err
		}
		b := c.newBlank()
		c.emit(b, rdfType, owlRestriction)
		c.emit(b, owlOnProperty, URITerm{IRI: v.Property.IRI})
		c.emit(b, owlAllValuesFrom, filler)
		return b, nil
	case owl2.DataHasValue:
		b := c.newBlank()
		c.emit(b, rdfType, owlRestriction)
		c.emit(b, owlOnProperty, URITerm{IRI: v.Property.IRI})
		c.emit(b, owlHasValue, literalTermFrom(v.Value))
		return b, nil
	case owl2.ObjectIntersectionOf:
		return c.nAryClass(v.Operands, owlIntersectionOf)
	case owl2.ObjectUnionOf:
		return c.nAryClass(v.Operands, owlUnionOf)
	default:
		return nil, &Unsupported{Construct: fmt.Sprintf("class expression %T", ce)}
	}
}

func (c *converter) nAryClass(operands []owl2.ClassExpression, pred URITerm) (Term, error) {
	terms := make([]Term, len(operands))
	for i, op := range operands {
		t, err := c.classTerm(op)
		if err != nil {
			return nil, err
		}
		terms[i] = t
	}
	b := c.newBlank()
	c.emit(b, rdfType, owlClass)
	c.emit(b, pred, c.rdfList(terms))
	return b, nil
}

func (c *converter) dataRangeTerm(dr owl2.DataRange) (Term, error) {
	switch v := dr.(type) {
	case owl2.DatatypeExpr:
		return URITerm{IRI: v.IRI}, nil
	default:
		return nil, &Unsupported{Construct: fmt.Sprintf("data range %T", dr)}
	}
}

func (c *converter) convertAxiom(ax owl2.Axiom) error {
	switch v := ax.(type) {
	case owl2.DeclarationAxiom:
		return c.convertDeclaration(v)
	case owl2.SubClassOfAxiom:
		sub, err := c.classTerm(v.Sub)
		if err != nil {
			return err
		}
		sup, err := c.classTerm(v.Sup)
		if err != nil {
			return err
		}
		c.emit(sub, rdfsSubClassOf, sup)
		return nil
	case owl2.EquivalentClassesAxiom:
		return c.convertPairwise(v.Classes, owlEquivalentClass)
	case owl2.DisjointClassesAxiom:
		return c.convertDisjointClasses(v.Classes)
	case owl2.ClassAssertionAxiom:
		ind, err := c.individualTerm(v.Individual)
		if err != nil {
			return err
		}
		class, err := c.classTerm(v.Class)
		if err != nil {
			return err
		}
		c.emit(ind, rdfType, class)
		return nil
	case owl2.ObjectPropertyAssertionAxiom:
		subj, err := c.individualTerm(v.Subject)
		if err != nil {
			return err
		}
		prop, err := c.objectPropertyTerm(v.Property)
		if err != nil {
			return err
		}
		obj, err := c.individualTerm(v.Object)
		if err != nil {
			return err
		}
		c.emit(subj, prop, obj)
		return nil
	case owl2.DataPropertyAssertionAxiom:
		subj, err := c.individualTerm(v.Subject)
		if err != nil {
			return err
		}
		c.emit(subj, URITerm{IRI: v.Property.IRI}, literalTermFrom(v.Value))
		return nil
	case owl2.ObjectPropertyDomainAxiom:
		prop, err := c.objectPropertyTerm(v.Property)
		if err != nil {
			return err
		}
		dom, err := c.classTerm(v.Domain)
		if err != nil {
			return err
		}
		c.emit(prop, rdfsDomain, dom)
		return nil
	case owl2.ObjectPropertyRangeAxiom:
		prop, err := c.objectPropertyTerm(v.Property)
		if err != nil {
			return err
		}
		rng, err := c.classTerm(v.Range)
		if err != nil {
			return err
		}
		c.emit(prop, rdfsRange, rng)
		return nil
	case owl2.DataPropertyDomainAxiom:
		dom, err := c.classTerm(v.Domain)
		if err != nil {
			return err
		}
		c.emit(URITerm{IRI: v.Property.IRI}, rdfsDomain, dom)
		return nil
	case owl2.DataPropertyRangeAxiom:
		rng, err := c.dataRangeTerm(v.Range)
		if err != nil {
			return err
		}
		c.emit(URITerm{IRI: v.Property.IRI}, rdfsRange, rng)
		return nil
	default:
		return &Unsupported{Construct: fmt.Sprintf("axiom %T", ax)}
	}
}

func (c *converter) convertDeclaration(d owl2.DeclarationAxiom) error {
	var class URITerm
	switch d.Entity.Kind {
	case owl2.EntityClass:
		class = owlClass
	case owl2.EntityDatatype:
		class = owlDatatype
	case owl2.EntityObjectProperty:
		class = owlObjectProperty
	case owl2.EntityDataProperty:
		class = owlDatatypeProperty
	case owl2.EntityAnnotationProperty:
		class = owlAnnotationProperty
	case owl2.EntityNamedIndividual:
		class = owlNamedIndividual
	default:
		return &Unsupported{Construct: fmt.Sprintf("entity kind %v", d.Entity.Kind)}
	}
	c.emit(URITerm{IRI: d.Entity.IRI}, rdfType, class)
	return nil
}

func (c *converter) convertPairwise(classes []owl2.ClassExpression, pred URITerm) error {
	terms := make([]Term, len(classes))
	for i, ce := range classes {
		t, err := c.classTerm(ce)
		if err != nil {
			return err
		}
		terms[i] = t
	}
	for i := 0; i < len(terms); i++ {
		for j := i + 1; j < len(terms); j++ {
			c.emit(terms[i], pred, terms[j])
		}
	}
	return nil
}

func (c *converter) convertDisjointClasses(classes []owl2.ClassExpression) error {
	terms := make([]Term, len(classes))
	for i, ce := range classes {
		t, err := c.classTerm(ce)
		if err != nil {
			return err
		}
		terms[i] = t
	}
	if len(terms) == 2 || c.opts.DisjointClasses == MappingPairwise {
		for i := 0; i < len(terms); i++ {
			for j := i + 1; j < len(terms); j++ {
				c.emit(terms[i], owlDisjointWith, terms[j])
			}
		}
		return nil
	}
	b := c.newBlank()
	c.emit(b, rdfType, owlAllDisjointClasses)
	c.emit(b, owlMembers, c.rdfList(terms))
	return nil
}
