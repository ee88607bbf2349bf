package owl2

// PrefixMap maps a prefix name (the empty string is the default prefix) to
// a namespace IRI. It is built once by the parser (or programmatically) and
// treated as immutable afterwards; callers that need to mutate it should
// copy it with Clone first.
type PrefixMap struct {
	entries map[string]IRI
}

// NewPrefixMap returns an empty PrefixMap.
func NewPrefixMap() PrefixMap {
	return PrefixMap{entries: make(map[string]IRI)}
}

// Set associates prefix with namespace, overwriting any previous entry.
// Use prefix == "" to set the default-prefix namespace.
func (pm PrefixMap) Set(prefix string, namespace IRI) {
	pm.entries[prefix] = namespace
}

// Namespace returns the namespace IRI bound to prefix and whether it was
// present.
func (pm PrefixMap) Namespace(prefix string) (IRI, bool) {
	ns, ok := pm.entries[prefix]
	return ns, ok
}

// Clone returns an independent copy of pm.
func (pm PrefixMap) Clone() PrefixMap {
	out := NewPrefixMap()
	for k, v := range pm.entries {
		out.entries[k] = v
	}
	return out
}

// Len returns the number of bound prefixes.
func (pm PrefixMap) Len() int {
	return len(pm.entries)
}

// Prefixes returns the bound prefix names, including "" if a default
// namespace is set. Order is unspecified.
func (pm PrefixMap) Prefixes() []string {
	out := make([]string, 0, len(pm.entries))
	for k := range pm.entries {
		out = append(out, k)
	}
	return out
}

// Well-known namespaces every ontology implicitly has access to when the
// parser does not encounter an explicit Prefix(...) declaration for them.
var (
	nsOWL  = MustNewIRI("http://www.w3.org/2002/07/owl#")
	nsRDF  = MustNewIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#")
	nsRDFS = MustNewIRI("http://www.w3.org/2000/01/rdf-schema#")
	nsXSD  = MustNewIRI("http://www.w3.org/2001/XMLSchema#")
)

// DefaultPrefixes returns a PrefixMap pre-bound with the prefixes OWL 2
// reserves and makes available without declaration: owl, rdf, rdfs and
// xsd. A Prefix(...) declaration may still rebind them.
func DefaultPrefixes() PrefixMap {
	pm := NewPrefixMap()
	pm.Set("owl", nsOWL)
	pm.Set("rdf", nsRDF)
	pm.Set("rdfs", nsRDFS)
	pm.Set("xsd", nsXSD)
	return pm
}

// OWLThing and OWLNothing are the built-in top/bottom classes.
var (
	OWLThing   = MustNewIRI(nsOWL.String() + "Thing")
	OWLNothing = MustNewIRI(nsOWL.String() + "Nothing")
)

// RDFSLiteral is the built-in top datatype.
var RDFSLiteral = MustNewIRI(nsRDFS.String() + "Literal")
