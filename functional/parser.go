package functional

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/knakk/owl2"
)

// Parse parses src as an OWL 2 Functional-Style Syntax ontology document
// and returns the resulting Ontology. Parsing is not resumable: on the
// first unexpected token the parser fails with a ParseError and returns no
// partial result.
func Parse(src string) (o *owl2.Ontology, err error) {
	p := &parser{l: newLexer(src), prefixes: owl2.DefaultPrefixes()}
	defer p.recover(&err)
	return p.parseDocument(), nil
}

// parser is a one-token-lookahead recursive-descent parser, mirroring the
// decoder/lexer split used throughout this module: lexing runs on its own
// goroutine and feeds a channel of tokens, while the parser pulls tokens
// with next/peek/backup (one token of backup) and fails via panic+recover.
type parser struct {
	l         *lexer
	tokens    [3]token
	peekCount int

	prefixes owl2.PrefixMap
}

func (p *parser) next() token {
	if p.peekCount > 0 {
		p.peekCount--
	} else {
		p.tokens[0] = p.l.nextToken()
	}
	return p.tokens[p.peekCount]
}

func (p *parser) peek() token {
	if p.peekCount > 0 {
		return p.tokens[p.peekCount-1]
	}
	p.peekCount = 1
	p.tokens[0] = p.l.nextToken()
	return p.tokens[0]
}

func (p *parser) backup() {
	p.peekCount++
}

func (p *parser) errorf(pos token, format string, args ...interface{}) {
	panic(&ParseError{Line: pos.line, Col: pos.col, Detail: fmt.Sprintf(format, args...)})
}

func (p *parser) recover(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	if _, ok := e.(runtime.Error); ok {
		panic(e)
	}
	if pe, ok := e.(*ParseError); ok {
		*errp = pe
		return
	}
	*errp = fmt.Errorf("%v", e)
}

func (p *parser) expect(typ tokenType, context string) token {
	t := p.next()
	if t.typ == tokenError {
		p.errorf(t, "syntax error: %s", t.text)
	}
	if t.typ != typ {
		p.errorf(t, "unexpected %s while parsing %s", t, context)
	}
	return t
}

func (p *parser) expectIdent(text, context string) token {
	t := p.next()
	if t.typ == tokenError {
		p.errorf(t, "syntax error: %s", t.text)
	}
	if t.typ != tokenIdent || t.text != text {
		p.errorf(t, "expected keyword %q while parsing %s, got %s", text, context, t)
	}
	return t
}

// parseDocument parses { prefixDeclaration } Ontology.
func (p *parser) parseDocument() *owl2.Ontology {
	for p.peekKeyword("Prefix") {
		p.parsePrefixDecl()
	}
	o := p.parseOntology()
	p.expect(tokenEOF, "end of document")
	return o
}

func (p *parser) peekKeyword(text string) bool {
	t := p.peek()
	return t.typ == tokenIdent && t.text == text
}

// parsePrefixDecl parses Prefix(pfx:=<iri>).
func (p *parser) parsePrefixDecl() {
	p.expectIdent("Prefix", "prefix declaration")
	p.expect(tokenLParen, "prefix declaration")
	name := p.expect(tokenPName, "prefix declaration")
	prefix, local := splitPName(name.text)
	if local != "" {
		p.errorf(name, "malformed prefix name %q", name.text)
	}
	p.expect(tokenEquals, "prefix declaration")
	iriTok := p.expect(tokenFullIRI, "prefix declaration")
	iri, err := owl2.NewIRI(iriTok.text)
	if err != nil {
		p.errorf(iriTok, "invalid IRI in prefix declaration: %v", err)
	}
	p.prefixes.Set(prefix, iri)
	p.expect(tokenRParen, "prefix declaration")
}

// splitPName splits "prefix:local" lexer text on the first colon.
func splitPName(text string) (prefix, local string) {
	idx := strings.IndexByte(text, ':')
	if idx < 0 {
		return text, ""
	}
	return text[:idx], text[idx+1:]
}

// parseIRI parses either a full IRI or a prefixed name, resolving the
// latter against the parser's accumulated prefix map.
func (p *parser) parseIRI() owl2.IRI {
	t := p.next()
	switch t.typ {
	case tokenFullIRI:
		iri, err := owl2.NewIRI(t.text)
		if err != nil {
			p.errorf(t, "invalid IRI: %v", err)
		}
		return iri
	case tokenPName:
		iri, err := owl2.Resolve(p.prefixes, t.text)
		if err != nil {
			p.errorf(t, "%v", err)
		}
		return iri
	case tokenIdent:
		// The colon is optional for names in the default namespace, so a
		// bare identifier resolves against the default prefix.
		iri, err := owl2.Resolve(p.prefixes, t.text)
		if err != nil {
			p.errorf(t, "%v", err)
		}
		return iri
	case tokenError:
		p.errorf(t, "syntax error: %s", t.text)
	}
	p.errorf(t, "expected IRI, got %s", t)
	return owl2.IRI{}
}

// parseOntology parses Ontology(...).
func (p *parser) parseOntology() *owl2.Ontology {
	p.expectIdent("Ontology", "ontology")
	p.expect(tokenLParen, "ontology")
	o := owl2.NewOntology()
	o.Prefixes = p.prefixes

	if t := p.peek(); t.typ == tokenFullIRI || t.typ == tokenPName {
		o.SetIRI(p.parseIRI())
		if t2 := p.peek(); t2.typ == tokenFullIRI || t2.typ == tokenPName {
			o.SetVersionIRI(p.parseIRI())
		}
	}

	for p.peekKeyword("Import") {
		p.next()
		p.expect(tokenLParen, "import")
		p.parseIRI()
		p.expect(tokenRParen, "import")
	}

	for p.peekKeyword("Annotation") {
		o.Annotate(p.parseAnnotation())
	}

	for {
		t := p.peek()
		if t.typ == tokenRParen {
			break
		}
		o.AddAxiom(p.parseAxiom())
	}
	p.expect(tokenRParen, "ontology")
	return o
}

// parseAxiomAnnotations parses the repeated leading { Annotation } that
// every axiom production allows.
func (p *parser) parseAxiomAnnotations() []owl2.Annotation {
	var anns []owl2.Annotation
	for p.peekKeyword("Annotation") {
		anns = append(anns, p.parseAnnotation())
	}
	return anns
}

func (p *parser) parseAnnotation() owl2.Annotation {
	p.expectIdent("Annotation", "annotation")
	p.expect(tokenLParen, "annotation")
	// Nested annotations on annotations are not modeled; skip any that
	// appear before the property/value pair.
	for p.peekKeyword("Annotation") {
		p.parseAnnotation()
	}
	prop := p.parseIRI()
	val := p.parseAnnotationValue()
	p.expect(tokenRParen, "annotation")
	return owl2.NewAnnotation(prop, val)
}

func (p *parser) parseAnnotationValue() owl2.AnnotationValue {
	t := p.peek()
	switch {
	case t.typ == tokenString:
		return owl2.LiteralValue{Literal: p.parseLiteral()}
	case t.typ == tokenPName && strings.HasPrefix(t.text, "_:"):
		p.next()
		return owl2.AnonymousIndividualValue{Individual: owl2.NewAnonymousIndividual(t.text[2:])}
	default:
		return owl2.IRIValue{IRI: p.parseIRI()}
	}
}

// parseLiteral parses "lex", "lex"@lang, or "lex"^^datatype.
func (p *parser) parseLiteral() owl2.Literal {
	s := p.expect(tokenString, "literal")
	switch t := p.peek(); t.typ {
	case tokenLangTag:
		p.next()
		return owl2.LangLiteral(s.text, t.text)
	case tokenCaret2:
		p.next()
		dtype := p.parseIRI()
		return owl2.TypedLiteral(s.text, dtype)
	default:
		return owl2.PlainLiteral(s.text)
	}
}

// parseIndividual parses a named individual (IRI) or an anonymous
// individual ("_:nodeID").
func (p *parser) parseIndividual() owl2.Individual {
	t := p.peek()
	if t.typ == tokenPName && strings.HasPrefix(t.text, "_:") {
		p.next()
		return owl2.NewAnonymousIndividual(t.text[2:])
	}
	return owl2.NewNamedIndividual(p.parseIRI())
}

func (p *parser) parseInteger() int {
	t := p.expect(tokenInteger, "cardinality")
	n, err := strconv.Atoi(t.text)
	if err != nil {
		p.errorf(t, "invalid integer %q", t.text)
	}
	return n
}

// --- Entities & declarations -------------------------------------------

var entityKeywords = map[string]owl2.EntityKind{
	"Class":              owl2.EntityClass,
	"ObjectProperty":      owl2.EntityObjectProperty,
	"DataProperty":        owl2.EntityDataProperty,
	"AnnotationProperty":  owl2.EntityAnnotationProperty,
	"NamedIndividual":     owl2.EntityNamedIndividual,
	"Datatype":            owl2.EntityDatatype,
}

func (p *parser) parseEntity() owl2.Entity {
	t := p.next()
	if t.typ != tokenIdent {
		p.errorf(t, "expected entity keyword, got %s", t)
	}
	kind, ok := entityKeywords[t.text]
	if !ok {
		p.errorf(t, "unknown entity keyword %q", t.text)
	}
	p.expect(tokenLParen, "entity")
	iri := p.parseIRI()
	p.expect(tokenRParen, "entity")
	return owl2.NewEntity(kind, iri)
}

// --- Class expressions ---------------------------------------------------

func (p *parser) parseClassExpression() owl2.ClassExpression {
	t := p.peek()
	if t.typ == tokenFullIRI || t.typ == tokenPName {
		return owl2.NewClassExpr(p.parseIRI())
	}
	if t.typ != tokenIdent {
		p.errorf(t, "expected class expression, got %s", t)
	}
	switch t.text {
	case "ObjectIntersectionOf":
		p.next()
		ops := p.parseClassExpressionList(2)
		ce, err := owl2.NewObjectIntersectionOf(ops...)
		p.mustNoErr(t, err)
		return ce
	case "ObjectUnionOf":
		p.next()
		ops := p.parseClassExpressionList(2)
		ce, err := owl2.NewObjectUnionOf(ops...)
		p.mustNoErr(t, err)
		return ce
	case "ObjectComplementOf":
		p.next()
		p.expect(tokenLParen, "ObjectComplementOf")
		op := p.parseClassExpression()
		p.expect(tokenRParen, "ObjectComplementOf")
		return owl2.NewObjectComplementOf(op)
	case "ObjectOneOf":
		p.next()
		p.expect(tokenLParen, "ObjectOneOf")
		var inds []owl2.Individual
		for {
			inds = append(inds, p.parseIndividual())
			if p.peek().typ == tokenRParen {
				break
			}
		}
		p.expect(tokenRParen, "ObjectOneOf")
		ce, err := owl2.NewObjectOneOf(inds...)
		p.mustNoErr(t, err)
		return ce
	case "ObjectSomeValuesFrom":
		p.next()
		p.expect(tokenLParen, "ObjectSomeValuesFrom")
		prop := p.parseObjectPropertyExpression()
		filler := p.parseClassExpression()
		p.expect(tokenRParen, "ObjectSomeValuesFrom")
		return owl2.NewObjectSomeValuesFrom(prop, filler)
	case "ObjectAllValuesFrom":
		p.next()
		p.expect(tokenLParen, "ObjectAllValuesFrom")
		prop := p.parseObjectPropertyExpression()
		filler := p.parseClassExpression()
		p.expect(tokenRParen, "ObjectAllValuesFrom")
		return owl2.NewObjectAllValuesFrom(prop, filler)
	case "ObjectHasValue":
		p.next()
		p.expect(tokenLParen, "ObjectHasValue")
		prop := p.parseObjectPropertyExpression()
		ind := p.parseIndividual()
		p.expect(tokenRParen, "ObjectHasValue")
		return owl2.NewObjectHasValue(prop, ind)
	case "ObjectHasSelf":
		p.next()
		p.expect(tokenLParen, "ObjectHasSelf")
		prop := p.parseObjectPropertyExpression()
		p.expect(tokenRParen, "ObjectHasSelf")
		return owl2.NewObjectHasSelf(prop)
	case "ObjectMinCardinality", "ObjectMaxCardinality", "ObjectExactCardinality":
		p.next()
		p.expect(tokenLParen, t.text)
		n := p.parseInteger()
		prop := p.parseObjectPropertyExpression()
		var filler owl2.ClassExpression
		if p.peek().typ != tokenRParen {
			filler = p.parseClassExpression()
		}
		p.expect(tokenRParen, t.text)
		return p.buildObjectCardinality(t, n, prop, filler)
	case "DataSomeValuesFrom":
		p.next()
		p.expect(tokenLParen, "DataSomeValuesFrom")
		prop := p.parseDataPropertyExpression()
		rng := p.parseDataRange()
		p.expect(tokenRParen, "DataSomeValuesFrom")
		return owl2.NewDataSomeValuesFrom(prop, rng)
	case "DataAllValuesFrom":
		p.next()
		p.expect(tokenLParen, "DataAllValuesFrom")
		prop := p.parseDataPropertyExpression()
		rng := p.parseDataRange()
		p.expect(tokenRParen, "DataAllValuesFrom")
		return owl2.NewDataAllValuesFrom(prop, rng)
	case "DataHasValue":
		p.next()
		p.expect(tokenLParen, "DataHasValue")
		prop := p.parseDataPropertyExpression()
		lit := p.parseLiteral()
		p.expect(tokenRParen, "DataHasValue")
		return owl2.NewDataHasValue(prop, lit)
	case "DataMinCardinality", "DataMaxCardinality", "DataExactCardinality":
		p.next()
		p.expect(tokenLParen, t.text)
		n := p.parseInteger()
		prop := p.parseDataPropertyExpression()
		var rng owl2.DataRange
		if p.peek().typ != tokenRParen {
			rng = p.parseDataRange()
		}
		p.expect(tokenRParen, t.text)
		return p.buildDataCardinality(t, n, prop, rng)
	}
	// Not a construct keyword: a bare default-namespace class name, unless
	// a '(' follows, which would make it an unknown construct.
	p.next()
	if p.peek().typ == tokenLParen {
		p.errorf(t, "unknown class expression keyword %q", t.text)
	}
	iri, err := owl2.Resolve(p.prefixes, t.text)
	if err != nil {
		p.errorf(t, "%v", err)
	}
	return owl2.NewClassExpr(iri)
}

func (p *parser) buildObjectCardinality(kw token, n int, prop owl2.ObjectPropertyExpression, filler owl2.ClassExpression) owl2.ClassExpression {
	var ce owl2.ClassExpression
	var err error
	switch kw.text {
	case "ObjectMinCardinality":
		ce, err = owl2.NewObjectMinCardinality(n, prop, filler)
	case "ObjectMaxCardinality":
		ce, err = owl2.NewObjectMaxCardinality(n, prop, filler)
	case "ObjectExactCardinality":
		ce, err = owl2.NewObjectExactCardinality(n, prop, filler)
	}
	p.mustNoErr(kw, err)
	return ce
}

func (p *parser) buildDataCardinality(kw token, n int, prop owl2.DataPropertyExpr, rng owl2.DataRange) owl2.ClassExpression {
	var ce owl2.ClassExpression
	var err error
	switch kw.text {
	case "DataMinCardinality":
		ce, err = owl2.NewDataMinCardinality(n, prop, rng)
	case "DataMaxCardinality":
		ce, err = owl2.NewDataMaxCardinality(n, prop, rng)
	case "DataExactCardinality":
		ce, err = owl2.NewDataExactCardinality(n, prop, rng)
	}
	p.mustNoErr(kw, err)
	return ce
}

func (p *parser) parseClassExpressionList(min int) []owl2.ClassExpression {
	p.expect(tokenLParen, "class expression list")
	var out []owl2.ClassExpression
	for {
		out = append(out, p.parseClassExpression())
		if p.peek().typ == tokenRParen {
			break
		}
	}
	p.expect(tokenRParen, "class expression list")
	_ = min
	return out
}

func (p *parser) mustNoErr(pos token, err error) {
	if err != nil {
		p.errorf(pos, "%v", err)
	}
}

// --- Property expressions -------------------------------------------------

func (p *parser) parseObjectPropertyExpression() owl2.ObjectPropertyExpression {
	if p.peekKeyword("ObjectInverseOf") {
		p.next()
		p.expect(tokenLParen, "ObjectInverseOf")
		iri := p.parseIRI()
		p.expect(tokenRParen, "ObjectInverseOf")
		return owl2.NewObjectInverseOf(owl2.NewObjectProperty(iri))
	}
	return owl2.NewObjectProperty(p.parseIRI())
}

func (p *parser) parseDataPropertyExpression() owl2.DataPropertyExpr {
	return owl2.NewDataProperty(p.parseIRI())
}

// --- Data ranges -----------------------------------------------------------

func (p *parser) parseDataRange() owl2.DataRange {
	t := p.peek()
	if t.typ == tokenFullIRI || t.typ == tokenPName {
		return owl2.NewDatatypeExpr(p.parseIRI())
	}
	if t.typ != tokenIdent {
		p.errorf(t, "expected data range, got %s", t)
	}
	switch t.text {
	case "DataIntersectionOf":
		p.next()
		p.expect(tokenLParen, "DataIntersectionOf")
		var ops []owl2.DataRange
		for {
			ops = append(ops, p.parseDataRange())
			if p.peek().typ == tokenRParen {
				break
			}
		}
		p.expect(tokenRParen, "DataIntersectionOf")
		dr, err := owl2.NewDataIntersectionOf(ops...)
		p.mustNoErr(t, err)
		return dr
	case "DataUnionOf":
		p.next()
		p.expect(tokenLParen, "DataUnionOf")
		var ops []owl2.DataRange
		for {
			ops = append(ops, p.parseDataRange())
			if p.peek().typ == tokenRParen {
				break
			}
		}
		p.expect(tokenRParen, "DataUnionOf")
		dr, err := owl2.NewDataUnionOf(ops...)
		p.mustNoErr(t, err)
		return dr
	case "DataComplementOf":
		p.next()
		p.expect(tokenLParen, "DataComplementOf")
		op := p.parseDataRange()
		p.expect(tokenRParen, "DataComplementOf")
		return owl2.NewDataComplementOf(op)
	case "DataOneOf":
		p.next()
		p.expect(tokenLParen, "DataOneOf")
		var lits []owl2.Literal
		for {
			lits = append(lits, p.parseLiteral())
			if p.peek().typ == tokenRParen {
				break
			}
		}
		p.expect(tokenRParen, "DataOneOf")
		dr, err := owl2.NewDataOneOf(lits...)
		p.mustNoErr(t, err)
		return dr
	case "DatatypeRestriction":
		p.next()
		p.expect(tokenLParen, "DatatypeRestriction")
		base := owl2.NewDatatypeExpr(p.parseIRI())
		var facets []owl2.FacetRestriction
		for {
			facet := p.parseIRI()
			val := p.parseLiteral()
			facets = append(facets, owl2.FacetRestriction{Facet: facet, Value: val})
			if p.peek().typ == tokenRParen {
				break
			}
		}
		p.expect(tokenRParen, "DatatypeRestriction")
		dr, err := owl2.NewDatatypeRestriction(base, facets...)
		p.mustNoErr(t, err)
		return dr
	}
	// Not a construct keyword: a bare default-namespace datatype name,
	// unless a '(' follows.
	p.next()
	if p.peek().typ == tokenLParen {
		p.errorf(t, "unknown data range keyword %q", t.text)
	}
	iri, err := owl2.Resolve(p.prefixes, t.text)
	if err != nil {
		p.errorf(t, "%v", err)
	}
	return owl2.NewDatatypeExpr(iri)
}

// --- Axioms ----------------------------------------------------------------

var charKeywords = map[string]owl2.ObjectPropertyCharacteristicKind{
	"FunctionalObjectProperty":        owl2.CharacteristicFunctional,
	"InverseFunctionalObjectProperty": owl2.CharacteristicInverseFunctional,
	"ReflexiveObjectProperty":         owl2.CharacteristicReflexive,
	"IrreflexiveObjectProperty":       owl2.CharacteristicIrreflexive,
	"SymmetricObjectProperty":         owl2.CharacteristicSymmetric,
	"AsymmetricObjectProperty":        owl2.CharacteristicAsymmetric,
	"TransitiveObjectProperty":        owl2.CharacteristicTransitive,
}

func (p *parser) parseAxiom() owl2.Axiom {
	kw := p.next()
	if kw.typ != tokenIdent {
		p.errorf(kw, "expected axiom keyword, got %s", kw)
	}
	p.expect(tokenLParen, kw.text)
	anns := p.parseAxiomAnnotations()

	var ax owl2.Axiom
	switch kw.text {
	case "Declaration":
		ax = owl2.NewDeclarationAxiom(p.parseEntity(), anns...)
	case "SubClassOf":
		sub := p.parseClassExpression()
		sup := p.parseClassExpression()
		ax = owl2.NewSubClassOfAxiom(sub, sup, anns...)
	case "EquivalentClasses":
		ces := p.parseNClassExpressions()
		a, err := owl2.NewEquivalentClassesAxiom(ces, anns...)
		p.mustNoErr(kw, err)
		ax = a
	case "DisjointClasses":
		ces := p.parseNClassExpressions()
		a, err := owl2.NewDisjointClassesAxiom(ces, anns...)
		p.mustNoErr(kw, err)
		ax = a
	case "DisjointUnion":
		class := p.parseIRI()
		ces := p.parseNClassExpressions()
		a, err := owl2.NewDisjointUnionAxiom(class, ces, anns...)
		p.mustNoErr(kw, err)
		ax = a
	case "SubObjectPropertyOf":
		sub := p.parseObjectPropertyExpression()
		sup := p.parseObjectPropertyExpression()
		ax = owl2.NewSubObjectPropertyOfAxiom(sub, sup, anns...)
	case "EquivalentObjectProperties":
		ps := p.parseNObjectProperties()
		a, err := owl2.NewEquivalentObjectPropertiesAxiom(ps, anns...)
		p.mustNoErr(kw, err)
		ax = a
	case "DisjointObjectProperties":
		ps := p.parseNObjectProperties()
		a, err := owl2.NewDisjointObjectPropertiesAxiom(ps, anns...)
		p.mustNoErr(kw, err)
		ax = a
	case "InverseObjectProperties":
		p1 := p.parseObjectPropertyExpression()
		p2 := p.parseObjectPropertyExpression()
		ax = owl2.NewInverseObjectPropertiesAxiom(p1, p2, anns...)
	case "ObjectPropertyDomain":
		prop := p.parseObjectPropertyExpression()
		dom := p.parseClassExpression()
		ax = owl2.NewObjectPropertyDomainAxiom(prop, dom, anns...)
	case "ObjectPropertyRange":
		prop := p.parseObjectPropertyExpression()
		rng := p.parseClassExpression()
		ax = owl2.NewObjectPropertyRangeAxiom(prop, rng, anns...)
	case "SubDataPropertyOf":
		sub := p.parseDataPropertyExpression()
		sup := p.parseDataPropertyExpression()
		ax = owl2.NewSubDataPropertyOfAxiom(sub, sup, anns...)
	case "EquivalentDataProperties":
		ps := p.parseNDataProperties()
		a, err := owl2.NewEquivalentDataPropertiesAxiom(ps, anns...)
		p.mustNoErr(kw, err)
		ax = a
	case "DisjointDataProperties":
		ps := p.parseNDataProperties()
		a, err := owl2.NewDisjointDataPropertiesAxiom(ps, anns...)
		p.mustNoErr(kw, err)
		ax = a
	case "DataPropertyDomain":
		prop := p.parseDataPropertyExpression()
		dom := p.parseClassExpression()
		ax = owl2.NewDataPropertyDomainAxiom(prop, dom, anns...)
	case "DataPropertyRange":
		prop := p.parseDataPropertyExpression()
		rng := p.parseDataRange()
		ax = owl2.NewDataPropertyRangeAxiom(prop, rng, anns...)
	case "FunctionalDataProperty":
		prop := p.parseDataPropertyExpression()
		ax = owl2.NewFunctionalDataPropertyAxiom(prop, anns...)
	case "ClassAssertion":
		class := p.parseClassExpression()
		ind := p.parseIndividual()
		ax = owl2.NewClassAssertionAxiom(ind, class, anns...)
	case "ObjectPropertyAssertion":
		prop := p.parseObjectPropertyExpression()
		subj := p.parseIndividual()
		obj := p.parseIndividual()
		ax = owl2.NewObjectPropertyAssertionAxiom(subj, prop, obj, anns...)
	case "NegativeObjectPropertyAssertion":
		prop := p.parseObjectPropertyExpression()
		subj := p.parseIndividual()
		obj := p.parseIndividual()
		ax = owl2.NewNegativeObjectPropertyAssertionAxiom(subj, prop, obj, anns...)
	case "DataPropertyAssertion":
		prop := p.parseDataPropertyExpression()
		subj := p.parseIndividual()
		val := p.parseLiteral()
		ax = owl2.NewDataPropertyAssertionAxiom(subj, prop, val, anns...)
	case "NegativeDataPropertyAssertion":
		prop := p.parseDataPropertyExpression()
		subj := p.parseIndividual()
		val := p.parseLiteral()
		ax = owl2.NewNegativeDataPropertyAssertionAxiom(subj, prop, val, anns...)
	case "SameIndividual":
		inds := p.parseNIndividuals()
		a, err := owl2.NewSameIndividualAxiom(inds, anns...)
		p.mustNoErr(kw, err)
		ax = a
	case "DifferentIndividuals":
		inds := p.parseNIndividuals()
		a, err := owl2.NewDifferentIndividualsAxiom(inds, anns...)
		p.mustNoErr(kw, err)
		ax = a
	case "AnnotationAssertion":
		prop := p.parseIRI()
		subj := p.parseAnnotationValue()
		val := p.parseAnnotationValue()
		ax = owl2.NewAnnotationAssertionAxiom(subj, prop, val, anns...)
	case "SubAnnotationPropertyOf":
		sub := p.parseIRI()
		sup := p.parseIRI()
		ax = owl2.NewSubAnnotationPropertyOfAxiom(sub, sup, anns...)
	case "AnnotationPropertyDomain":
		prop := p.parseIRI()
		dom := p.parseIRI()
		ax = owl2.NewAnnotationPropertyDomainAxiom(prop, dom, anns...)
	case "AnnotationPropertyRange":
		prop := p.parseIRI()
		rng := p.parseIRI()
		ax = owl2.NewAnnotationPropertyRangeAxiom(prop, rng, anns...)
	default:
		if kind, ok := charKeywords[kw.text]; ok {
			prop := p.parseObjectPropertyExpression()
			ax = owl2.NewObjectPropertyCharacteristicAxiom(kind, prop, anns...)
			break
		}
		p.errorf(kw, "unrecognized axiom keyword %q", kw.text)
	}
	p.expect(tokenRParen, kw.text)
	return ax
}

func (p *parser) parseNClassExpressions() []owl2.ClassExpression {
	var out []owl2.ClassExpression
	for {
		out = append(out, p.parseClassExpression())
		if p.peek().typ == tokenRParen {
			break
		}
	}
	return out
}

func (p *parser) parseNObjectProperties() []owl2.ObjectPropertyExpression {
	var out []owl2.ObjectPropertyExpression
	for {
		out = append(out, p.parseObjectPropertyExpression())
		if p.peek().typ == tokenRParen {
			break
		}
	}
	return out
}

func (p *parser) parseNDataProperties() []owl2.DataPropertyExpr {
	var out []owl2.DataPropertyExpr
	for {
		out = append(out, p.parseDataPropertyExpression())
		if p.peek().typ == tokenRParen {
			break
		}
	}
	return out
}

func (p *parser) parseNIndividuals() []owl2.Individual {
	var out []owl2.Individual
	for {
		out = append(out, p.parseIndividual())
		if p.peek().typ == tokenRParen {
			break
		}
	}
	return out
}
