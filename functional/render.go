package functional

import (
	"sort"
	"strings"

	"github.com/knakk/owl2"
)

// Render serializes o as an OWL 2 Functional-Style Syntax document: prefix
// declarations, followed by the Ontology(...) block. It relies on the
// structural object model's own String() methods for every axiom and
// expression, so Render(Parse(src)) round-trips to an equivalent (not
// necessarily byte-identical) document.
func Render(o *owl2.Ontology) string {
	var sb strings.Builder

	prefixes := o.Prefixes.Prefixes()
	sort.Strings(prefixes)
	for _, pfx := range prefixes {
		ns, _ := o.Prefixes.Namespace(pfx)
		sb.WriteString("Prefix(")
		sb.WriteString(pfx)
		sb.WriteString(":=")
		sb.WriteString(ns.Functional())
		sb.WriteString(")\n")
	}

	sb.WriteString("\nOntology(")
	if !o.IRI.IsZero() {
		sb.WriteString(o.IRI.Functional())
		if !o.VersionIRI.IsZero() {
			sb.WriteString(" ")
			sb.WriteString(o.VersionIRI.Functional())
		}
	}
	for _, a := range o.Anns {
		sb.WriteString("\n    ")
		sb.WriteString(a.String())
	}
	for _, ax := range o.Axioms() {
		sb.WriteString("\n    ")
		sb.WriteString(renderAxiom(ax))
	}
	sb.WriteString("\n)\n")
	return sb.String()
}

// renderAxiom renders ax with its axiom annotations spliced in right after
// the opening keyword paren, matching the grammar's
// 'Keyword' '(' axiomAnnotations ... ')' shape.
func renderAxiom(ax owl2.Axiom) string {
	s := ax.String()
	anns := ax.Annotations()
	if len(anns) == 0 {
		return s
	}
	idx := strings.IndexByte(s, '(')
	if idx < 0 {
		return s
	}
	var pre strings.Builder
	for _, a := range anns {
		pre.WriteString(a.String())
		pre.WriteString(" ")
	}
	return s[:idx+1] + pre.String() + s[idx+1:]
}
