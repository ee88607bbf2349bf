package owl2

// Individual is either a NamedIndividual (an IRI) or an AnonymousIndividual
// (a document-scoped blank-node identifier). It is a closed sum type:
// callers type-switch on the concrete type.
type Individual interface {
	isIndividual()
	String() string
}

// NamedIndividualExpr is a named individual, identified by an IRI.
type NamedIndividualExpr struct {
	IRI IRI
}

func (NamedIndividualExpr) isIndividual() {}

func (n NamedIndividualExpr) String() string {
	return n.IRI.Functional()
}

// NewNamedIndividual builds a NamedIndividualExpr.
func NewNamedIndividual(iri IRI) NamedIndividualExpr {
	return NamedIndividualExpr{IRI: iri}
}

// AnonymousIndividualExpr is an anonymous individual, identified by a
// blank-node identifier. Per OWL 2, anonymous-individual identifiers are
// document-scoped, not global.
type AnonymousIndividualExpr struct {
	NodeID string
}

func (AnonymousIndividualExpr) isIndividual() {}

func (a AnonymousIndividualExpr) String() string {
	return "_:" + a.NodeID
}

// NewAnonymousIndividual builds an AnonymousIndividualExpr.
func NewAnonymousIndividual(nodeID string) AnonymousIndividualExpr {
	return AnonymousIndividualExpr{NodeID: nodeID}
}

// EqualsIndividual reports structural equality between two individuals.
func EqualsIndividual(a, b Individual) bool {
	switch av := a.(type) {
	case NamedIndividualExpr:
		bv, ok := b.(NamedIndividualExpr)
		return ok && av.IRI.Equals(bv.IRI)
	case AnonymousIndividualExpr:
		bv, ok := b.(AnonymousIndividualExpr)
		return ok && av.NodeID == bv.NodeID
	default:
		return false
	}
}

// HashIndividual returns a stable structural hash of an Individual.
func HashIndividual(i Individual) uint64 {
	switch v := i.(type) {
	case NamedIndividualExpr:
		return mixHash(primeNamedIndividual, v.IRI.Hash(), primeNamedIndividual)
	case AnonymousIndividualExpr:
		return mixHash(primeAnonymousIndividual, fnvHash(v.NodeID, hashSeedBlankNode), primeAnonymousIndividual)
	default:
		return 0
	}
}

// individualSetEquals compares two individual slices as sets.
func individualSetEquals(a, b []Individual) bool {
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
			if EqualsIndividual(av, bv) {
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

func individualSetHash(items []Individual, prime uint64) uint64 {
	hashes := make([]uint64, len(items))
	for i, it := range items {
		hashes[i] = HashIndividual(it)
	}
	return hashUnordered(hashes, prime)
}
