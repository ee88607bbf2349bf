// Package rdfconv maps an owl2.Ontology to the set of RDF triples implied
// by the OWL 2 Mapping to RDF Graphs specification (the subset described
// in the component's design notes).
package rdfconv

import "github.com/knakk/owl2"

// Term is an RDF node: a URITerm, a BlankTerm, or (object position only) a
// LiteralTerm.
type Term interface {
	isTerm()
	String() string
	Eq(other Term) bool
}

// URITerm is an RDF resource identified by an IRI.
type URITerm struct{ IRI owl2.IRI }

func (URITerm) isTerm() {}
func (t URITerm) String() string { return t.IRI.Functional() }
func (t URITerm) Eq(other Term) bool {
	o, ok := other.(URITerm)
	return ok && t.IRI.Equals(o.IRI)
}

// BlankTerm is an RDF blank node, identified by a document-unique ID.
type BlankTerm struct{ ID string }

func (BlankTerm) isTerm() {}
func (t BlankTerm) String() string { return "_:" + t.ID }
func (t BlankTerm) Eq(other Term) bool {
	o, ok := other.(BlankTerm)
	return ok && t.ID == o.ID
}

// LiteralTerm is an RDF literal; valid only in object position.
type LiteralTerm struct {
	Lexical  string
	Lang     string
	Datatype owl2.IRI
}

func (LiteralTerm) isTerm() {}
func (t LiteralTerm) String() string {
	switch {
	case t.Lang != "":
		return `"` + t.Lexical + `"@` + t.Lang
	case !t.Datatype.IsZero():
		return `"` + t.Lexical + `"^^` + t.Datatype.Functional()
	default:
		return `"` + t.Lexical + `"`
	}
}
func (t LiteralTerm) Eq(other Term) bool {
	o, ok := other.(LiteralTerm)
	return ok && t.Lexical == o.Lexical && t.Lang == o.Lang && t.Datatype.Equals(o.Datatype)
}

func literalTermFrom(l owl2.Literal) LiteralTerm {
	return LiteralTerm{Lexical: l.Lexical, Lang: l.Lang, Datatype: l.Datatype}
}

// Triple is a (subject, predicate, object) RDF statement.
type Triple struct {
	Subj Term
	Pred URITerm
	Obj  Term
}

func (t Triple) String() string {
	return t.Subj.String() + " " + t.Pred.String() + " " + t.Obj.String() + " ."
}

// Eq reports whether two triples denote the same statement.
func (t Triple) Eq(other Triple) bool {
	return t.Subj.Eq(other.Subj) && t.Pred.Eq(other.Pred) && t.Obj.Eq(other.Obj)
}

// TripleSet is an unordered, duplicate-free collection of triples. Per the
// mapping specification, emission order is not a contract; TripleSet is a
// plain slice and Add is the only way equality-deduplication is enforced.
type TripleSet []Triple

// Add appends t to the set unless an equal triple is already present.
func (ts *TripleSet) Add(t Triple) {
	for _, existing := range *ts {
		if existing.Eq(t) {
			return
		}
	}
	*ts = append(*ts, t)
}

// Contains reports whether the set holds a triple equal to t.
func (ts TripleSet) Contains(t Triple) bool {
	for _, existing := range ts {
		if existing.Eq(t) {
			return true
		}
	}
	return false
}
