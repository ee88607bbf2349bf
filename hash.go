package owl2

import "hash/fnv"

// fnvHash mixes s into an FNV-1a hash seeded with seed, so that structurally
// distinct variants sharing leaf values still hash differently.
func fnvHash(s string, seed uint64) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(seed >> (8 * uint(i)))
	}
	h.Write(buf[:])
	h.Write([]byte(s))
	return h.Sum64()
}

// mixHash folds a child hash into an accumulator using a variant-specific
// odd multiplier, so that two trees of different shape but equal leaves hash
// differently.
func mixHash(acc, child, prime uint64) uint64 {
	return (acc+child)*prime ^ (child >> 17)
}

// hashUnordered folds a set of child hashes order-independently (XOR is
// commutative), then mixes the running total with prime so the result still
// depends on the container variant. An empty set folds to prime itself,
// guarding against an undefined fold over an empty set.
func hashUnordered(children []uint64, prime uint64) uint64 {
	acc := prime
	for _, c := range children {
		acc ^= c * prime
	}
	return acc
}

// Per-variant hash-mixing primes. Each distinct structural shape is seeded
// with its own odd prime so that e.g. ObjectUnionOf and ObjectIntersectionOf
// holding the same operands never collide.
const (
	hashSeedIRI         uint64 = 14695981039346656037
	hashSeedLiteral     uint64 = 1099511628211
	hashSeedBlankNode   uint64 = 2305843009213693951

	primeClass                  uint64 = 1000000007
	primeObjectIntersectionOf    uint64 = 1000000009
	primeObjectUnionOf           uint64 = 1000000021
	primeObjectComplementOf      uint64 = 1000000033
	primeObjectOneOf             uint64 = 1000000087
	primeObjectSomeValuesFrom    uint64 = 1000000093
	primeObjectAllValuesFrom     uint64 = 1000000097
	primeObjectHasValue          uint64 = 1000000103
	primeObjectHasSelf           uint64 = 1000000123
	primeObjectMinCardinality    uint64 = 1000000181
	primeObjectMaxCardinality    uint64 = 1000000207
	primeObjectExactCardinality  uint64 = 1000000223
	primeDataSomeValuesFrom      uint64 = 1000000241
	primeDataAllValuesFrom       uint64 = 1000000271
	primeDataHasValue            uint64 = 1000000289
	primeDataMinCardinality      uint64 = 1000000297
	primeDataMaxCardinality      uint64 = 1000000321
	primeDataExactCardinality    uint64 = 1000000349

	primeDatatype            uint64 = 1000000363
	primeDataIntersectionOf  uint64 = 1000000403
	primeDataUnionOf         uint64 = 1000000409
	primeDataComplementOf    uint64 = 1000000411
	primeDataOneOf           uint64 = 1000000427
	primeDatatypeRestriction uint64 = 1000000433

	primeNamedIndividual      uint64 = 1000000447
	primeAnonymousIndividual  uint64 = 1000000453
	primeObjectProperty       uint64 = 1000000459
	primeObjectInverseOf      uint64 = 1000000483

	primeAnnotation uint64 = 1000000513

	primeDeclaration                    uint64 = 1000000531
	primeSubClassOf                     uint64 = 1000000579
	primeEquivalentClasses               uint64 = 1000000607
	primeDisjointClasses                  uint64 = 1000000613
	primeDisjointUnion                    uint64 = 1000000637
	primeSubObjectPropertyOf              uint64 = 1000000663
	primeEquivalentObjectProperties       uint64 = 1000000711
	primeDisjointObjectProperties         uint64 = 1000000741
	primeInverseObjectProperties          uint64 = 1000000763
	primeObjectPropertyDomain             uint64 = 1000000793
	primeObjectPropertyRange              uint64 = 1000000801
	primeObjectPropertyCharacteristic     uint64 = 1000000841
	primeSubDataPropertyOf                uint64 = 1000000871
	primeEquivalentDataProperties         uint64 = 1000000891
	primeDisjointDataProperties           uint64 = 1000000901
	primeDataPropertyDomain               uint64 = 1000000919
	primeDataPropertyRange                uint64 = 1000000931
	primeFunctionalDataProperty           uint64 = 1000000933
	primeClassAssertion                   uint64 = 1000000993
	primeObjectPropertyAssertion          uint64 = 1000001011
	primeNegativeObjectPropertyAssertion  uint64 = 1000001021
	primeDataPropertyAssertion            uint64 = 1000001057
	primeNegativeDataPropertyAssertion    uint64 = 1000001063
	primeSameIndividual                   uint64 = 1000001069
	primeDifferentIndividuals             uint64 = 1000001081
	primeAnnotationAssertion              uint64 = 1000001087
	primeSubAnnotationPropertyOf          uint64 = 1000001099
	primeAnnotationPropertyDomain         uint64 = 1000001119
	primeAnnotationPropertyRange          uint64 = 1000001153
)
