// Package owllink implements the wire protocol of the OWLLink
// specification: encoding axioms and class expressions as OWLLink XML
// request elements, decoding OWLLink XML responses, and a Reasoner façade
// that drives a remote server over HTTP.
package owllink

const (
	nsOWLLink = "http://www.owllink.org/owllink#"
	nsOWL     = "http://www.w3.org/2002/07/owl#"
	nsXSD     = "http://www.w3.org/2001/XMLSchema#"

	// xmlNamespace is the predefined XML namespace; encoding/xml renders
	// attributes in it with the reserved "xml:" prefix.
	xmlNamespace = "http://www.w3.org/XML/1998/namespace"

	attrKB          = "kb"
	attrResult      = "result"
	attrIRI         = "IRI"
	attrAbbreviated = "abbreviatedIRI"
	attrNodeID      = "nodeID"
	attrDatatypeIRI = "datatypeIRI"
	attrXMLLang     = "lang"
	attrDirect      = "direct"
)

// elRequestMessage, elResponseMessage, … name the OWLLink elements this
// package produces or consumes. Only the subset exercised by the Reasoner
// façade and the axiom translators is listed. On decode, a ResponseMessage
// child outside this set is skipped; on encode, a variant without a
// translator fails with UnsupportedAxiom.
const (
	elRequestMessage         = "RequestMessage"
	elResponseMessage        = "ResponseMessage"
	elCreateKB               = "CreateKB"
	elTell                   = "Tell"
	elIsEntailed             = "IsEntailed"
	elIsKBSatisfiable        = "IsKBSatisfiable"
	elGetAllClasses          = "GetAllClasses"
	elGetAllObjectProperties = "GetAllObjectProperties"
	elGetAllDataProperties   = "GetAllDataProperties"
	elGetAllDatatypes        = "GetAllDatatypes"
	elGetSubClasses          = "GetSubClasses"
	elGetSuperClasses        = "GetSuperClasses"
	elGetInstances           = "GetInstances"
	elReleaseKB              = "ReleaseKB"

	elOK                    = "OK"
	elBooleanResponse       = "BooleanResponse"
	elSetOfClasses          = "SetOfClasses"
	elSetOfObjectProperties = "SetOfObjectProperties"
	elSetOfDataProperties   = "SetOfDataProperties"
	elSetOfDatatypes        = "SetOfDatatypes"
	elSetOfIndividuals      = "SetOfIndividuals"
	elClassSynset           = "ClassSynset"
	elIndividualSynset      = "IndividualSynset"
	elClass                 = "Class"
	elObjectProperty        = "ObjectProperty"
	elDataProperty          = "DataProperty"
	elDatatype              = "Datatype"
	elNamedIndividual       = "NamedIndividual"
	elLiteral               = "Literal"

	elDeclaration             = "Declaration"
	elSubClassOf              = "SubClassOf"
	elEquivalentClasses       = "EquivalentClasses"
	elDisjointClasses         = "DisjointClasses"
	elClassAssertion          = "ClassAssertion"
	elObjectPropertyAssertion = "ObjectPropertyAssertion"
	elDataPropertyAssertion   = "DataPropertyAssertion"
	elObjectPropertyDomain    = "ObjectPropertyDomain"
	elObjectPropertyRange     = "ObjectPropertyRange"
	elDataPropertyDomain      = "DataPropertyDomain"
	elDataPropertyRange       = "DataPropertyRange"

	elObjectIntersectionOf = "ObjectIntersectionOf"
	elObjectUnionOf        = "ObjectUnionOf"
	elObjectSomeValuesFrom = "ObjectSomeValuesFrom"
	elObjectAllValuesFrom  = "ObjectAllValuesFrom"
	elObjectHasValue       = "ObjectHasValue"
	elDataSomeValuesFrom   = "DataSomeValuesFrom"
	elDataAllValuesFrom    = "DataAllValuesFrom"
	elDataHasValue         = "DataHasValue"
)
