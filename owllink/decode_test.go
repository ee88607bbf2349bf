package owllink

import (
	"strings"
	"testing"
)

func TestDecodeBooleanResponse(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<ResponseMessage xmlns="http://www.owllink.org/owllink#" xmlns:owl="http://www.w3.org/2002/07/owl#">
  <BooleanResponse result="true"/>
</ResponseMessage>`

	resp, err := DecodeResponse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if !resp.HasBoolean || !resp.Boolean {
		t.Fatalf("expected HasBoolean=true Boolean=true, got %+v", resp)
	}
}

func TestDecodeSetOfClasses(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<ResponseMessage xmlns="http://www.owllink.org/owllink#" xmlns:owl="http://www.w3.org/2002/07/owl#">
  <SetOfClasses>
    <Class IRI="http://ex.org/Dog"/>
    <ClassSynset>
      <Class IRI="http://ex.org/Animal"/>
      <Class abbreviatedIRI="owl:Thing"/>
    </ClassSynset>
  </SetOfClasses>
</ResponseMessage>`

	resp, err := DecodeResponse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if len(resp.Classes) != 3 {
		t.Fatalf("expected 3 flattened classes, got %d: %+v", len(resp.Classes), resp.Classes)
	}
	var sawThing bool
	for _, c := range resp.Classes {
		if c.String() == "http://www.w3.org/2002/07/owl#Thing" {
			sawThing = true
		}
	}
	if !sawThing {
		t.Fatalf("expected abbreviatedIRI owl:Thing to resolve, got %+v", resp.Classes)
	}
}

func TestDecodeOKResponse(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<ResponseMessage xmlns="http://www.owllink.org/owllink#">
  <OK/>
</ResponseMessage>`

	resp, err := DecodeResponse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if !resp.OK {
		t.Fatalf("expected OK=true, got %+v", resp)
	}
}

func TestDecodeMalformedXMLIsProtocolError(t *testing.T) {
	const doc = `<ResponseMessage><BooleanResponse result="true">`

	_, err := DecodeResponse(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected a ProtocolError")
	}
	if _, ok := err.(*ProtocolError); !ok {
		t.Fatalf("expected *ProtocolError, got %T: %v", err, err)
	}
}

func TestDecodeUnexpectedRootIsProtocolError(t *testing.T) {
	const doc = `<?xml version="1.0"?><NotAResponse/>`

	_, err := DecodeResponse(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected a ProtocolError")
	}
	if _, ok := err.(*ProtocolError); !ok {
		t.Fatalf("expected *ProtocolError, got %T: %v", err, err)
	}
}
