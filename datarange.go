package owl2

// DataRange is the closed sum type of OWL 2 data ranges.
type DataRange interface {
	isDataRange()
	String() string
}

// DatatypeExpr is an atomic named datatype, e.g. xsd:integer.
type DatatypeExpr struct{ IRI IRI }

func (DatatypeExpr) isDataRange()    {}
func (d DatatypeExpr) String() string { return d.IRI.Functional() }

// NewDatatypeExpr builds an atomic datatype data range.
func NewDatatypeExpr(iri IRI) DatatypeExpr { return DatatypeExpr{IRI: iri} }

// DataIntersectionOf is the conjunction of 2+ data ranges.
type DataIntersectionOf struct{ Operands []DataRange }

func (DataIntersectionOf) isDataRange() {}
func (d DataIntersectionOf) String() string { return joinDR("DataIntersectionOf", d.Operands) }

// NewDataIntersectionOf builds a DataIntersectionOf. Fails with
// ErrInvariantViolation when fewer than 2 operands are given.
func NewDataIntersectionOf(operands ...DataRange) (DataIntersectionOf, error) {
	operands = dedupeDataRanges(operands)
	if len(operands) < 2 {
		return DataIntersectionOf{}, arityErr("DataIntersectionOf", 2, len(operands))
	}
	return DataIntersectionOf{Operands: operands}, nil
}

// DataUnionOf is the disjunction of 2+ data ranges.
type DataUnionOf struct{ Operands []DataRange }

func (DataUnionOf) isDataRange() {}
func (d DataUnionOf) String() string { return joinDR("DataUnionOf", d.Operands) }

// NewDataUnionOf builds a DataUnionOf. Fails with ErrInvariantViolation when
// fewer than 2 operands are given.
func NewDataUnionOf(operands ...DataRange) (DataUnionOf, error) {
	operands = dedupeDataRanges(operands)
	if len(operands) < 2 {
		return DataUnionOf{}, arityErr("DataUnionOf", 2, len(operands))
	}
	return DataUnionOf{Operands: operands}, nil
}

// DataComplementOf is the negation of a data range.
type DataComplementOf struct{ Operand DataRange }

func (DataComplementOf) isDataRange() {}
func (d DataComplementOf) String() string {
	return "DataComplementOf(" + d.Operand.String() + ")"
}

// NewDataComplementOf builds a DataComplementOf.
func NewDataComplementOf(operand DataRange) DataComplementOf {
	return DataComplementOf{Operand: operand}
}

// DataOneOf is the enumeration of 1+ literals.
type DataOneOf struct{ Literals []Literal }

func (DataOneOf) isDataRange() {}
func (d DataOneOf) String() string {
	s := "DataOneOf("
	for i, l := range d.Literals {
		if i > 0 {
			s += " "
		}
		s += l.String()
	}
	return s + ")"
}

// NewDataOneOf builds a DataOneOf. Fails with ErrInvariantViolation when no
// literals are given.
func NewDataOneOf(literals ...Literal) (DataOneOf, error) {
	literals = dedupeLiterals(literals)
	if len(literals) < 1 {
		return DataOneOf{}, arityErr("DataOneOf", 1, len(literals))
	}
	return DataOneOf{Literals: literals}, nil
}

// FacetRestriction pairs a facet IRI (e.g. xsd:minInclusive) with a bounding
// literal.
type FacetRestriction struct {
	Facet IRI
	Value Literal
}

// Equals reports structural equality between two facet restrictions.
func (f FacetRestriction) Equals(other FacetRestriction) bool {
	return f.Facet.Equals(other.Facet) && f.Value.Equals(other.Value)
}

// Hash returns a stable structural hash of f.
func (f FacetRestriction) Hash() uint64 {
	return mixHash(f.Facet.Hash(), f.Value.Hash(), 1000261)
}

func (f FacetRestriction) String() string {
	return f.Facet.Functional() + " " + f.Value.String()
}

// DatatypeRestriction narrows a base datatype with 1+ facet restrictions.
type DatatypeRestriction struct {
	Base   DatatypeExpr
	Facets []FacetRestriction
}

func (DatatypeRestriction) isDataRange() {}
func (d DatatypeRestriction) String() string {
	s := "DatatypeRestriction(" + d.Base.String()
	for _, f := range d.Facets {
		s += " " + f.String()
	}
	return s + ")"
}

// NewDatatypeRestriction builds a DatatypeRestriction. Fails with
// ErrInvariantViolation when no facets are given.
func NewDatatypeRestriction(base DatatypeExpr, facets ...FacetRestriction) (DatatypeRestriction, error) {
	if len(facets) < 1 {
		return DatatypeRestriction{}, arityErr("DatatypeRestriction", 1, 0)
	}
	uniq := make([]FacetRestriction, 0, len(facets))
	for _, f := range facets {
		dup := false
		for _, kept := range uniq {
			if f.Equals(kept) {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, f)
		}
	}
	return DatatypeRestriction{Base: base, Facets: uniq}, nil
}

// EqualsDataRange reports structural equality between two data ranges,
// comparing operand/facet slices as sets.
func EqualsDataRange(a, b DataRange) bool {
	switch av := a.(type) {
	case DatatypeExpr:
		bv, ok := b.(DatatypeExpr)
		return ok && av.IRI.Equals(bv.IRI)
	case DataIntersectionOf:
		bv, ok := b.(DataIntersectionOf)
		return ok && drSetEquals(av.Operands, bv.Operands)
	case DataUnionOf:
		bv, ok := b.(DataUnionOf)
		return ok && drSetEquals(av.Operands, bv.Operands)
	case DataComplementOf:
		bv, ok := b.(DataComplementOf)
		return ok && EqualsDataRange(av.Operand, bv.Operand)
	case DataOneOf:
		bv, ok := b.(DataOneOf)
		return ok && literalSetEquals(av.Literals, bv.Literals)
	case DatatypeRestriction:
		bv, ok := b.(DatatypeRestriction)
		return ok && av.Base.IRI.Equals(bv.Base.IRI) && facetSetEquals(av.Facets, bv.Facets)
	default:
		return false
	}
}

// HashDataRange returns a stable structural hash of a DataRange.
func HashDataRange(d DataRange) uint64 {
	switch v := d.(type) {
	case DatatypeExpr:
		return mixHash(primeDatatype, v.IRI.Hash(), primeDatatype)
	case DataIntersectionOf:
		return hashUnordered(drHashes(v.Operands), primeDataIntersectionOf)
	case DataUnionOf:
		return hashUnordered(drHashes(v.Operands), primeDataUnionOf)
	case DataComplementOf:
		return mixHash(primeDataComplementOf, HashDataRange(v.Operand), primeDataComplementOf)
	case DataOneOf:
		hashes := make([]uint64, len(v.Literals))
		for i, l := range v.Literals {
			hashes[i] = l.Hash()
		}
		return hashUnordered(hashes, primeDataOneOf)
	case DatatypeRestriction:
		hashes := make([]uint64, len(v.Facets))
		for i, f := range v.Facets {
			hashes[i] = f.Hash()
		}
		return mixHash(v.Base.IRI.Hash(), hashUnordered(hashes, primeDatatypeRestriction), primeDatatypeRestriction)
	default:
		return 0
	}
}

func drHashes(drs []DataRange) []uint64 {
	out := make([]uint64, len(drs))
	for i, d := range drs {
		out[i] = HashDataRange(d)
	}
	return out
}

// dedupeDataRanges is dedupeClassExpressions' counterpart for data-range
// operand lists (DataIntersectionOf, DataUnionOf).
func dedupeDataRanges(drs []DataRange) []DataRange {
	out := make([]DataRange, 0, len(drs))
	for _, d := range drs {
		dup := false
		for _, kept := range out {
			if EqualsDataRange(d, kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, d)
		}
	}
	return out
}

// dedupeLiterals is dedupeClassExpressions' counterpart for literal
// enumerations (DataOneOf).
func dedupeLiterals(lits []Literal) []Literal {
	out := make([]Literal, 0, len(lits))
	for _, l := range lits {
		dup := false
		for _, kept := range out {
			if l.Equals(kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	return out
}

func drSetEquals(a, b []DataRange) bool {
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
			if EqualsDataRange(av, bv) {
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

func literalSetEquals(a, b []Literal) bool {
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
			if av.Equals(bv) {
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

func facetSetEquals(a, b []FacetRestriction) bool {
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
			if av.Equals(bv) {
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

func joinDR(keyword string, operands []DataRange) string {
	s := keyword + "("
	for i, o := range operands {
		if i > 0 {
			s += " "
		}
		s += o.String()
	}
	return s + ")"
}
