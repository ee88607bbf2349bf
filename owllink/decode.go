package owllink

import (
	"encoding/xml"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/knakk/owl2"
)

// builtinPrefixes resolves the abbreviatedIRI form OWLLink servers may use
// for entities, augmented with the OWLLink standard prefixes per spec.
var builtinPrefixes = map[string]string{
	"owl":     nsOWL,
	"xsd":     nsXSD,
	"owllink": nsOWLLink,
	"rdf":     "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs":    "http://www.w3.org/2000/01/rdf-schema#",
}

// Response is the parsed form of an OWLLink ResponseMessage. Only the
// fields relevant to the Reasoner façade's operations are populated; an
// absent field stays at its zero value (nil slice, false bool).
type Response struct {
	OK               bool
	HasBoolean       bool
	Boolean          bool
	Classes          []owl2.IRI
	ObjectProperties []owl2.IRI
	DataProperties   []owl2.IRI
	Datatypes        []owl2.IRI
	Individuals      []owl2.IRI
}

// DecodeResponse parses a complete OWLLink ResponseMessage document.
func DecodeResponse(r io.Reader) (resp *Response, err error) {
	defer recoverProtocolError(&err)

	dec := xml.NewDecoder(r)
	resp = &Response{}

	var sawRoot bool
	for {
		tok, terr := dec.Token()
		if terr == io.EOF {
			break
		}
		if terr != nil {
			return nil, &ProtocolError{Detail: terr.Error()}
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if !sawRoot {
				sawRoot = true
				if el.Name.Local != elResponseMessage {
					panic(&ProtocolError{Detail: "expected ResponseMessage root, got " + el.Name.Local})
				}
				continue
			}
			decodeResponseChild(dec, el, resp)
		}
	}
	if !sawRoot {
		panic(&ProtocolError{Detail: "empty response document"})
	}
	return resp, nil
}

// decodeResponseChild dispatches on a ResponseMessage child element,
// consuming its subtree from dec.
func decodeResponseChild(dec *xml.Decoder, el xml.StartElement, resp *Response) {
	switch el.Name.Local {
	case elOK:
		resp.OK = true
		skipElement(dec, el)
	case elBooleanResponse:
		resp.HasBoolean = true
		resp.Boolean = attrVal(el, attrResult) == "true"
		skipElement(dec, el)
	case elSetOfClasses:
		resp.Classes = append(resp.Classes, decodeEntitySet(dec, el, elClassSynset)...)
	case elSetOfObjectProperties:
		resp.ObjectProperties = append(resp.ObjectProperties, decodeEntitySet(dec, el, "")...)
	case elSetOfDataProperties:
		resp.DataProperties = append(resp.DataProperties, decodeEntitySet(dec, el, "")...)
	case elSetOfDatatypes:
		resp.Datatypes = append(resp.Datatypes, decodeEntitySet(dec, el, "")...)
	case elSetOfIndividuals:
		resp.Individuals = append(resp.Individuals, decodeEntitySet(dec, el, elIndividualSynset)...)
	default:
		skipElement(dec, el)
	}
}

// decodeEntitySet reads the children of a SetOf… element, flattening any
// synset elements (named synsetLocal) into the same result slice, so the
// caller sees the flat union of all synsets.
func decodeEntitySet(dec *xml.Decoder, parent xml.StartElement, synsetLocal string) []owl2.IRI {
	var out []owl2.IRI
	depth := 1
	for {
		tok, err := dec.Token()
		if err != nil {
			panic(&ProtocolError{Detail: err.Error()})
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if synsetLocal != "" && el.Name.Local == synsetLocal {
				out = append(out, decodeEntitySet(dec, el, "")...)
				continue
			}
			if iri, ok := entityIRI(el); ok {
				out = append(out, iri)
				skipElement(dec, el)
				continue
			}
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 {
				return out
			}
		}
	}
}

// entityIRI extracts the IRI of a named-entity leaf element (Class,
// ObjectProperty, DataProperty, Datatype, NamedIndividual), resolving
// abbreviatedIRI against builtinPrefixes when no absolute IRI is given.
func entityIRI(el xml.StartElement) (owl2.IRI, bool) {
	if v := attrVal(el, attrIRI); v != "" {
		iri, err := owl2.NewIRI(v)
		if err != nil {
			panic(&ProtocolError{Detail: "invalid IRI attribute: " + v})
		}
		return iri, true
	}
	if v := attrVal(el, attrAbbreviated); v != "" {
		idx := strings.IndexByte(v, ':')
		if idx < 0 {
			panic(&ProtocolError{Detail: "malformed abbreviatedIRI: " + v})
		}
		ns, ok := builtinPrefixes[v[:idx]]
		if !ok {
			panic(&ProtocolError{Detail: "unknown abbreviatedIRI prefix: " + v[:idx]})
		}
		iri, err := owl2.NewIRI(ns + v[idx+1:])
		if err != nil {
			panic(&ProtocolError{Detail: "invalid resolved IRI: " + ns + v[idx+1:]})
		}
		return iri, true
	}
	return owl2.IRI{}, false
}

func attrVal(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// skipElement consumes tokens up to and including the matching EndElement
// for start.
func skipElement(dec *xml.Decoder, start xml.StartElement) {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			panic(&ProtocolError{Detail: err.Error()})
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
}

func recoverProtocolError(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	if _, ok := e.(runtime.Error); ok {
		panic(e)
	}
	if pe, ok := e.(*ProtocolError); ok {
		*errp = pe
		return
	}
	if err, ok := e.(error); ok {
		*errp = &ProtocolError{Detail: err.Error()}
		return
	}
	*errp = &ProtocolError{Detail: fmt.Sprintf("%v", e)}
}
