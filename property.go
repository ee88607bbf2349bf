package owl2

// ObjectPropertyExpression is either a named ObjectProperty or the inverse
// of one. It is a closed sum type.
type ObjectPropertyExpression interface {
	isObjectPropertyExpression()
	String() string
}

// ObjectPropertyExpr is a named object property.
type ObjectPropertyExpr struct {
	IRI IRI
}

func (ObjectPropertyExpr) isObjectPropertyExpression() {}

func (p ObjectPropertyExpr) String() string {
	return p.IRI.Functional()
}

// NewObjectProperty builds an ObjectPropertyExpr.
func NewObjectProperty(iri IRI) ObjectPropertyExpr {
	return ObjectPropertyExpr{IRI: iri}
}

// ObjectInverseOfExpr is the inverse of a named object property.
type ObjectInverseOfExpr struct {
	Property ObjectPropertyExpr
}

func (ObjectInverseOfExpr) isObjectPropertyExpression() {}

func (p ObjectInverseOfExpr) String() string {
	return "ObjectInverseOf(" + p.Property.String() + ")"
}

// NewObjectInverseOf builds an ObjectInverseOfExpr.
func NewObjectInverseOf(p ObjectPropertyExpr) ObjectInverseOfExpr {
	return ObjectInverseOfExpr{Property: p}
}

// EqualsObjectPropertyExpression reports structural equality between two
// object property expressions.
func EqualsObjectPropertyExpression(a, b ObjectPropertyExpression) bool {
	switch av := a.(type) {
	case ObjectPropertyExpr:
		bv, ok := b.(ObjectPropertyExpr)
		return ok && av.IRI.Equals(bv.IRI)
	case ObjectInverseOfExpr:
		bv, ok := b.(ObjectInverseOfExpr)
		return ok && av.Property.IRI.Equals(bv.Property.IRI)
	default:
		return false
	}
}

// HashObjectPropertyExpression returns a stable structural hash of an
// ObjectPropertyExpression.
func HashObjectPropertyExpression(p ObjectPropertyExpression) uint64 {
	switch v := p.(type) {
	case ObjectPropertyExpr:
		return mixHash(primeObjectProperty, v.IRI.Hash(), primeObjectProperty)
	case ObjectInverseOfExpr:
		return mixHash(primeObjectInverseOf, v.Property.IRI.Hash(), primeObjectInverseOf)
	default:
		return 0
	}
}

func opeSetEquals(a, b []ObjectPropertyExpression) bool {
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
			if EqualsObjectPropertyExpression(av, bv) {
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

func opeSetHash(items []ObjectPropertyExpression, prime uint64) uint64 {
	hashes := make([]uint64, len(items))
	for i, it := range items {
		hashes[i] = HashObjectPropertyExpression(it)
	}
	return hashUnordered(hashes, prime)
}

// DataPropertyExpr is a named data property. Unlike object properties, data
// properties have no inverse in OWL 2.
type DataPropertyExpr struct {
	IRI IRI
}

func (p DataPropertyExpr) String() string {
	return p.IRI.Functional()
}

// NewDataProperty builds a DataPropertyExpr.
func NewDataProperty(iri IRI) DataPropertyExpr {
	return DataPropertyExpr{IRI: iri}
}

// Equals reports structural equality between two data properties.
func (p DataPropertyExpr) Equals(other DataPropertyExpr) bool {
	return p.IRI.Equals(other.IRI)
}

// Hash returns a stable structural hash of p.
func (p DataPropertyExpr) Hash() uint64 {
	return mixHash(1000249, p.IRI.Hash(), 1000249)
}

func dpSetEquals(a, b []DataPropertyExpr) bool {
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

func dpSetHash(items []DataPropertyExpr, prime uint64) uint64 {
	hashes := make([]uint64, len(items))
	for i, it := range items {
		hashes[i] = it.Hash()
	}
	return hashUnordered(hashes, prime)
}
