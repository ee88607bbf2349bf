package owl2

// ClassExpression is the closed sum type of OWL 2 class expressions.
// Callers type-switch on the concrete type; use
// EqualsClassExpression / HashClassExpression for structural comparison
// rather than Go's == operator, since operand slices compare as sets.
type ClassExpression interface {
	isClassExpression()
	String() string
}

// ClassExpr is an atomic named class, including owl:Thing and owl:Nothing.
type ClassExpr struct {
	IRI IRI
}

func (ClassExpr) isClassExpression() {}
func (c ClassExpr) String() string   { return c.IRI.Functional() }

// NewClassExpr builds an atomic class expression.
func NewClassExpr(iri IRI) ClassExpr { return ClassExpr{IRI: iri} }

// ThingExpr and NothingExpr are the built-in top/bottom class expressions.
// ThingExpr is the default filler of object cardinality restrictions.
var (
	ThingExpr   = ClassExpr{IRI: OWLThing}
	NothingExpr = ClassExpr{IRI: OWLNothing}
)

// ObjectIntersectionOf is the conjunction of 2+ class expressions.
type ObjectIntersectionOf struct{ Operands []ClassExpression }

func (ObjectIntersectionOf) isClassExpression() {}
func (e ObjectIntersectionOf) String() string   { return joinCE("ObjectIntersectionOf", e.Operands) }

// NewObjectIntersectionOf builds an ObjectIntersectionOf. Fails with
// ErrInvariantViolation when fewer than 2 operands are given.
func NewObjectIntersectionOf(operands ...ClassExpression) (ObjectIntersectionOf, error) {
	operands = dedupeClassExpressions(operands)
	if len(operands) < 2 {
		return ObjectIntersectionOf{}, arityErr("ObjectIntersectionOf", 2, len(operands))
	}
	return ObjectIntersectionOf{Operands: operands}, nil
}

// ObjectUnionOf is the disjunction of 2+ class expressions.
type ObjectUnionOf struct{ Operands []ClassExpression }

func (ObjectUnionOf) isClassExpression() {}
func (e ObjectUnionOf) String() string   { return joinCE("ObjectUnionOf", e.Operands) }

// NewObjectUnionOf builds an ObjectUnionOf. Fails with ErrInvariantViolation
// when fewer than 2 operands are given.
func NewObjectUnionOf(operands ...ClassExpression) (ObjectUnionOf, error) {
	operands = dedupeClassExpressions(operands)
	if len(operands) < 2 {
		return ObjectUnionOf{}, arityErr("ObjectUnionOf", 2, len(operands))
	}
	return ObjectUnionOf{Operands: operands}, nil
}

// ObjectComplementOf is the negation of a class expression.
type ObjectComplementOf struct{ Operand ClassExpression }

func (ObjectComplementOf) isClassExpression() {}
func (e ObjectComplementOf) String() string {
	return "ObjectComplementOf(" + e.Operand.String() + ")"
}

// NewObjectComplementOf builds an ObjectComplementOf.
func NewObjectComplementOf(operand ClassExpression) ObjectComplementOf {
	return ObjectComplementOf{Operand: operand}
}

// ObjectOneOf is the enumeration of 1+ individuals.
type ObjectOneOf struct{ Individuals []Individual }

func (ObjectOneOf) isClassExpression() {}
func (e ObjectOneOf) String() string {
	s := "ObjectOneOf("
	for i, ind := range e.Individuals {
		if i > 0 {
			s += " "
		}
		s += ind.String()
	}
	return s + ")"
}

// NewObjectOneOf builds an ObjectOneOf. Fails with ErrInvariantViolation
// when no individuals are given.
func NewObjectOneOf(individuals ...Individual) (ObjectOneOf, error) {
	individuals = dedupeIndividuals(individuals)
	if len(individuals) < 1 {
		return ObjectOneOf{}, arityErr("ObjectOneOf", 1, len(individuals))
	}
	return ObjectOneOf{Individuals: individuals}, nil
}

// ObjectSomeValuesFrom is an existential object restriction.
type ObjectSomeValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (ObjectSomeValuesFrom) isClassExpression() {}
func (e ObjectSomeValuesFrom) String() string {
	return "ObjectSomeValuesFrom(" + e.Property.String() + " " + e.Filler.String() + ")"
}

// NewObjectSomeValuesFrom builds an ObjectSomeValuesFrom restriction.
func NewObjectSomeValuesFrom(p ObjectPropertyExpression, filler ClassExpression) ObjectSomeValuesFrom {
	return ObjectSomeValuesFrom{Property: p, Filler: filler}
}

// ObjectAllValuesFrom is a universal object restriction.
type ObjectAllValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (ObjectAllValuesFrom) isClassExpression() {}
func (e ObjectAllValuesFrom) String() string {
	return "ObjectAllValuesFrom(" + e.Property.String() + " " + e.Filler.String() + ")"
}

// NewObjectAllValuesFrom builds an ObjectAllValuesFrom restriction.
func NewObjectAllValuesFrom(p ObjectPropertyExpression, filler ClassExpression) ObjectAllValuesFrom {
	return ObjectAllValuesFrom{Property: p, Filler: filler}
}

// ObjectHasValue restricts a property to have a specific individual filler.
type ObjectHasValue struct {
	Property ObjectPropertyExpression
	Value    Individual
}

func (ObjectHasValue) isClassExpression() {}
func (e ObjectHasValue) String() string {
	return "ObjectHasValue(" + e.Property.String() + " " + e.Value.String() + ")"
}

// NewObjectHasValue builds an ObjectHasValue restriction.
func NewObjectHasValue(p ObjectPropertyExpression, v Individual) ObjectHasValue {
	return ObjectHasValue{Property: p, Value: v}
}

// ObjectHasSelf restricts a property to be reflexive on the described
// individual.
type ObjectHasSelf struct{ Property ObjectPropertyExpression }

func (ObjectHasSelf) isClassExpression() {}
func (e ObjectHasSelf) String() string {
	return "ObjectHasSelf(" + e.Property.String() + ")"
}

// NewObjectHasSelf builds an ObjectHasSelf restriction.
func NewObjectHasSelf(p ObjectPropertyExpression) ObjectHasSelf {
	return ObjectHasSelf{Property: p}
}

// ObjectMinCardinality, ObjectMaxCardinality and ObjectExactCardinality are
// object property cardinality restrictions. Filler defaults to ThingExpr
// when omitted (pass nil).
type ObjectMinCardinality struct {
	N        int
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (ObjectMinCardinality) isClassExpression() {}
func (e ObjectMinCardinality) String() string {
	return cardString("ObjectMinCardinality", e.N, e.Property.String(), e.Filler)
}

// NewObjectMinCardinality builds an ObjectMinCardinality restriction. filler
// may be nil, defaulting to owl:Thing. Fails with ErrInvariantViolation for
// negative n.
func NewObjectMinCardinality(n int, p ObjectPropertyExpression, filler ClassExpression) (ObjectMinCardinality, error) {
	if n < 0 {
		return ObjectMinCardinality{}, negativeCardErr(n)
	}
	if filler == nil {
		filler = ThingExpr
	}
	return ObjectMinCardinality{N: n, Property: p, Filler: filler}, nil
}

type ObjectMaxCardinality struct {
	N        int
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (ObjectMaxCardinality) isClassExpression() {}
func (e ObjectMaxCardinality) String() string {
	return cardString("ObjectMaxCardinality", e.N, e.Property.String(), e.Filler)
}

// NewObjectMaxCardinality builds an ObjectMaxCardinality restriction.
func NewObjectMaxCardinality(n int, p ObjectPropertyExpression, filler ClassExpression) (ObjectMaxCardinality, error) {
	if n < 0 {
		return ObjectMaxCardinality{}, negativeCardErr(n)
	}
	if filler == nil {
		filler = ThingExpr
	}
	return ObjectMaxCardinality{N: n, Property: p, Filler: filler}, nil
}

type ObjectExactCardinality struct {
	N        int
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (ObjectExactCardinality) isClassExpression() {}
func (e ObjectExactCardinality) String() string {
	return cardString("ObjectExactCardinality", e.N, e.Property.String(), e.Filler)
}

// NewObjectExactCardinality builds an ObjectExactCardinality restriction.
func NewObjectExactCardinality(n int, p ObjectPropertyExpression, filler ClassExpression) (ObjectExactCardinality, error) {
	if n < 0 {
		return ObjectExactCardinality{}, negativeCardErr(n)
	}
	if filler == nil {
		filler = ThingExpr
	}
	return ObjectExactCardinality{N: n, Property: p, Filler: filler}, nil
}

// DataSomeValuesFrom is an existential data restriction.
type DataSomeValuesFrom struct {
	Property DataPropertyExpr
	Range    DataRange
}

func (DataSomeValuesFrom) isClassExpression() {}
func (e DataSomeValuesFrom) String() string {
	return "DataSomeValuesFrom(" + e.Property.String() + " " + e.Range.String() + ")"
}

// NewDataSomeValuesFrom builds a DataSomeValuesFrom restriction.
func NewDataSomeValuesFrom(p DataPropertyExpr, r DataRange) DataSomeValuesFrom {
	return DataSomeValuesFrom{Property: p, Range: r}
}

// DataAllValuesFrom is a universal data restriction.
type DataAllValuesFrom struct {
	Property DataPropertyExpr
	Range    DataRange
}

func (DataAllValuesFrom) isClassExpression() {}
func (e DataAllValuesFrom) String() string {
	return "DataAllValuesFrom(" + e.Property.String() + " " + e.Range.String() + ")"
}

// NewDataAllValuesFrom builds a DataAllValuesFrom restriction.
func NewDataAllValuesFrom(p DataPropertyExpr, r DataRange) DataAllValuesFrom {
	return DataAllValuesFrom{Property: p, Range: r}
}

// DataHasValue restricts a data property to a specific literal filler.
type DataHasValue struct {
	Property DataPropertyExpr
	Value    Literal
}

func (DataHasValue) isClassExpression() {}
func (e DataHasValue) String() string {
	return "DataHasValue(" + e.Property.String() + " " + e.Value.String() + ")"
}

// NewDataHasValue builds a DataHasValue restriction.
func NewDataHasValue(p DataPropertyExpr, v Literal) DataHasValue {
	return DataHasValue{Property: p, Value: v}
}

// DataMinCardinality, DataMaxCardinality and DataExactCardinality are data
// property cardinality restrictions. Range defaults to rdfs:Literal when
// omitted (pass nil).
type DataMinCardinality struct {
	N        int
	Property DataPropertyExpr
	Range    DataRange
}

func (DataMinCardinality) isClassExpression() {}
func (e DataMinCardinality) String() string {
	return cardString("DataMinCardinality", e.N, e.Property.String(), e.Range)
}

// NewDataMinCardinality builds a DataMinCardinality restriction. r may be
// nil, defaulting to rdfs:Literal.
func NewDataMinCardinality(n int, p DataPropertyExpr, r DataRange) (DataMinCardinality, error) {
	if n < 0 {
		return DataMinCardinality{}, negativeCardErr(n)
	}
	if r == nil {
		r = DatatypeExpr{IRI: RDFSLiteral}
	}
	return DataMinCardinality{N: n, Property: p, Range: r}, nil
}

type DataMaxCardinality struct {
	N        int
	Property DataPropertyExpr
	Range    DataRange
}

func (DataMaxCardinality) isClassExpression() {}
func (e DataMaxCardinality) String() string {
	return cardString("DataMaxCardinality", e.N, e.Property.String(), e.Range)
}

// NewDataMaxCardinality builds a DataMaxCardinality restriction.
func NewDataMaxCardinality(n int, p DataPropertyExpr, r DataRange) (DataMaxCardinality, error) {
	if n < 0 {
		return DataMaxCardinality{}, negativeCardErr(n)
	}
	if r == nil {
		r = DatatypeExpr{IRI: RDFSLiteral}
	}
	return DataMaxCardinality{N: n, Property: p, Range: r}, nil
}

type DataExactCardinality struct {
	N        int
	Property DataPropertyExpr
	Range    DataRange
}

func (DataExactCardinality) isClassExpression() {}
func (e DataExactCardinality) String() string {
	return cardString("DataExactCardinality", e.N, e.Property.String(), e.Range)
}

// NewDataExactCardinality builds a DataExactCardinality restriction.
func NewDataExactCardinality(n int, p DataPropertyExpr, r DataRange) (DataExactCardinality, error) {
	if n < 0 {
		return DataExactCardinality{}, negativeCardErr(n)
	}
	if r == nil {
		r = DatatypeExpr{IRI: RDFSLiteral}
	}
	return DataExactCardinality{N: n, Property: p, Range: r}, nil
}

// EqualsClassExpression reports structural equality between two class
// expressions, comparing operand slices as sets.
func EqualsClassExpression(a, b ClassExpression) bool {
	switch av := a.(type) {
	case ClassExpr:
		bv, ok := b.(ClassExpr)
		return ok && av.IRI.Equals(bv.IRI)
	case ObjectIntersectionOf:
		bv, ok := b.(ObjectIntersectionOf)
		return ok && ceSetEquals(av.Operands, bv.Operands)
	case ObjectUnionOf:
		bv, ok := b.(ObjectUnionOf)
		return ok && ceSetEquals(av.Operands, bv.Operands)
	case ObjectComplementOf:
		bv, ok := b.(ObjectComplementOf)
		return ok && EqualsClassExpression(av.Operand, bv.Operand)
	case ObjectOneOf:
		bv, ok := b.(ObjectOneOf)
		return ok && individualSetEquals(av.Individuals, bv.Individuals)
	case ObjectSomeValuesFrom:
		bv, ok := b.(ObjectSomeValuesFrom)
		return ok && EqualsObjectPropertyExpression(av.Property, bv.Property) && EqualsClassExpression(av.Filler, bv.Filler)
	case ObjectAllValuesFrom:
		bv, ok := b.(ObjectAllValuesFrom)
		return ok && EqualsObjectPropertyExpression(av.Property, bv.Property) && EqualsClassExpression(av.Filler, bv.Filler)
	case ObjectHasValue:
		bv, ok := b.(ObjectHasValue)
		return ok && EqualsObjectPropertyExpression(av.Property, bv.Property) && EqualsIndividual(av.Value, bv.Value)
	case ObjectHasSelf:
		bv, ok := b.(ObjectHasSelf)
		return ok && EqualsObjectPropertyExpression(av.Property, bv.Property)
	case ObjectMinCardinality:
		bv, ok := b.(ObjectMinCardinality)
		return ok && av.N == bv.N && EqualsObjectPropertyExpression(av.Property, bv.Property) && EqualsClassExpression(av.Filler, bv.Filler)
	case ObjectMaxCardinality:
		bv, ok := b.(ObjectMaxCardinality)
		return ok && av.N == bv.N && EqualsObjectPropertyExpression(av.Property, bv.Property) && EqualsClassExpression(av.Filler, bv.Filler)
	case ObjectExactCardinality:
		bv, ok := b.(ObjectExactCardinality)
		return ok && av.N == bv.N && EqualsObjectPropertyExpression(av.Property, bv.Property) && EqualsClassExpression(av.Filler, bv.Filler)
	case DataSomeValuesFrom:
		bv, ok := b.(DataSomeValuesFrom)
		return ok && av.Property.Equals(bv.Property) && EqualsDataRange(av.Range, bv.Range)
	case DataAllValuesFrom:
		bv, ok := b.(DataAllValuesFrom)
		return ok && av.Property.Equals(bv.Property) && EqualsDataRange(av.Range, bv.Range)
	case DataHasValue:
		bv, ok := b.(DataHasValue)
		return ok && av.Property.Equals(bv.Property) && av.Value.Equals(bv.Value)
	case DataMinCardinality:
		bv, ok := b.(DataMinCardinality)
		return ok && av.N == bv.N && av.Property.Equals(bv.Property) && EqualsDataRange(av.Range, bv.Range)
	case DataMaxCardinality:
		bv, ok := b.(DataMaxCardinality)
		return ok && av.N == bv.N && av.Property.Equals(bv.Property) && EqualsDataRange(av.Range, bv.Range)
	case DataExactCardinality:
		bv, ok := b.(DataExactCardinality)
		return ok && av.N == bv.N && av.Property.Equals(bv.Property) && EqualsDataRange(av.Range, bv.Range)
	default:
		return false
	}
}

// HashClassExpression returns a stable structural hash of a ClassExpression.
func HashClassExpression(e ClassExpression) uint64 {
	switch v := e.(type) {
	case ClassExpr:
		return mixHash(primeClass, v.IRI.Hash(), primeClass)
	case ObjectIntersectionOf:
		return hashUnordered(ceHashes(v.Operands), primeObjectIntersectionOf)
	case ObjectUnionOf:
		return hashUnordered(ceHashes(v.Operands), primeObjectUnionOf)
	case ObjectComplementOf:
		return mixHash(primeObjectComplementOf, HashClassExpression(v.Operand), primeObjectComplementOf)
	case ObjectOneOf:
		return individualSetHash(v.Individuals, primeObjectOneOf)
	case ObjectSomeValuesFrom:
		return mixHash(HashObjectPropertyExpression(v.Property), HashClassExpression(v.Filler), primeObjectSomeValuesFrom)
	case ObjectAllValuesFrom:
		return mixHash(HashObjectPropertyExpression(v.Property), HashClassExpression(v.Filler), primeObjectAllValuesFrom)
	case ObjectHasValue:
		return mixHash(HashObjectPropertyExpression(v.Property), HashIndividual(v.Value), primeObjectHasValue)
	case ObjectHasSelf:
		return mixHash(primeObjectHasSelf, HashObjectPropertyExpression(v.Property), primeObjectHasSelf)
	case ObjectMinCardinality:
		return mixHash(mixHash(uint64(v.N)+1, HashObjectPropertyExpression(v.Property), primeObjectMinCardinality), HashClassExpression(v.Filler), primeObjectMinCardinality)
	case ObjectMaxCardinality:
		return mixHash(mixHash(uint64(v.N)+1, HashObjectPropertyExpression(v.Property), primeObjectMaxCardinality), HashClassExpression(v.Filler), primeObjectMaxCardinality)
	case ObjectExactCardinality:
		return mixHash(mixHash(uint64(v.N)+1, HashObjectPropertyExpression(v.Property), primeObjectExactCardinality), HashClassExpression(v.Filler), primeObjectExactCardinality)
	case DataSomeValuesFrom:
		return mixHash(v.Property.Hash(), HashDataRange(v.Range), primeDataSomeValuesFrom)
	case DataAllValuesFrom:
		return mixHash(v.Property.Hash(), HashDataRange(v.Range), primeDataAllValuesFrom)
	case DataHasValue:
		return mixHash(v.Property.Hash(), v.Value.Hash(), primeDataHasValue)
	case DataMinCardinality:
		return mixHash(mixHash(uint64(v.N)+1, v.Property.Hash(), primeDataMinCardinality), HashDataRange(v.Range), primeDataMinCardinality)
	case DataMaxCardinality:
		return mixHash(mixHash(uint64(v.N)+1, v.Property.Hash(), primeDataMaxCardinality), HashDataRange(v.Range), primeDataMaxCardinality)
	case DataExactCardinality:
		return mixHash(mixHash(uint64(v.N)+1, v.Property.Hash(), primeDataExactCardinality), HashDataRange(v.Range), primeDataExactCardinality)
	default:
		return 0
	}
}

func ceHashes(ces []ClassExpression) []uint64 {
	out := make([]uint64, len(ces))
	for i, c := range ces {
		out[i] = HashClassExpression(c)
	}
	return out
}

// dedupeClassExpressions drops operands structurally equal to one already
// kept, preserving first-occurrence order, so n-ary constructors hold an
// order-free set rather than a duplicate-bearing slice.
func dedupeClassExpressions(ces []ClassExpression) []ClassExpression {
	out := make([]ClassExpression, 0, len(ces))
	for _, c := range ces {
		dup := false
		for _, kept := range out {
			if EqualsClassExpression(c, kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

// dedupeIndividuals is dedupeClassExpressions' counterpart for individual
// enumerations (ObjectOneOf, SameIndividual, DifferentIndividuals).
func dedupeIndividuals(inds []Individual) []Individual {
	out := make([]Individual, 0, len(inds))
	for _, ind := range inds {
		dup := false
		for _, kept := range out {
			if EqualsIndividual(ind, kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, ind)
		}
	}
	return out
}

func ceSetEquals(a, b []ClassExpression) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, av := range a {
		found := false
		for j, bv := range b {
			if used[j] {
				continue
			}
			if EqualsClassExpression(av, bv) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func joinCE(keyword string, operands []ClassExpression) string {
	s := keyword + "("
	for i, o := range operands {
		if i > 0 {
			s += " "
		}
		s += o.String()
	}
	return s + ")"
}

func cardString(keyword string, n int, prop string, filler interface{ String() string }) string {
	return keyword + "(" + itoa(n) + " " + prop + " " + filler.String() + ")"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func arityErr(construct string, min, got int) error {
	return &ErrInvariantViolation{Detail: construct + " requires at least " + itoa(min) + " operand(s), got " + itoa(got)}
}

func negativeCardErr(n int) error {
	return &ErrInvariantViolation{Detail: "cardinality must be non-negative, got " + itoa(n)}
}
