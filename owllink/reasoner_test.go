package owllink

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/knakk/owl2"
)

// scriptedTransport replies with the next body in script on every Do call,
// regardless of the request, and records the request bodies it saw.
type scriptedTransport struct {
	script []string
	sent   []string
}

func (s *scriptedTransport) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}
	s.sent = append(s.sent, string(body))
	i := len(s.sent) - 1
	if i >= len(s.script) {
		return nil, errNoMoreScript
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(s.script[i])),
	}, nil
}

var errNoMoreScript = &TransportError{Cause: errScriptExhausted{}}

type errScriptExhausted struct{}

func (errScriptExhausted) Error() string { return "scriptedTransport: out of responses" }

const okDoc = `<?xml version="1.0"?><ResponseMessage xmlns="http://www.owllink.org/owllink#"><OK/></ResponseMessage>`

func newTestReasoner(t *testing.T, script ...string) (*Reasoner, *scriptedTransport) {
	t.Helper()
	tr := &scriptedTransport{script: script}
	o := owl2.NewOntology()
	r, err := newReasonerForTest(o, tr)
	if err != nil {
		t.Fatalf("newReasonerForTest: %v", err)
	}
	return r, tr
}

// newReasonerForTest builds a Reasoner against tr without the exported
// constructor's own CreateKB/Tell round trip consuming the caller's script,
// by pre-seeding two OK responses for that handshake.
func newReasonerForTest(o *owl2.Ontology, tr *scriptedTransport) (*Reasoner, error) {
	handshake := &scriptedTransport{script: []string{okDoc, okDoc}}
	r := &Reasoner{serverURL: "http://reasoner.example/owllink", transport: handshake, kbURI: "urn:uuid:test"}
	if _, err := r.post(context.Background(), func(w *bytes.Buffer) error {
		return EncodeCreateKB(w, r.kbURI)
	}); err != nil {
		return nil, err
	}
	if _, err := r.post(context.Background(), func(w *bytes.Buffer) error {
		return EncodeTell(w, r.kbURI, o.Axioms())
	}); err != nil {
		return nil, err
	}
	r.state = stateReady
	r.transport = tr
	return r, nil
}

func TestReasonerIsKBSatisfiable(t *testing.T) {
	r, _ := newTestReasoner(t, `<?xml version="1.0"?><ResponseMessage xmlns="http://www.owllink.org/owllink#"><BooleanResponse result="true"/></ResponseMessage>`)

	sat, err := r.IsKBSatisfiable(context.Background())
	if err != nil {
		t.Fatalf("IsKBSatisfiable: %v", err)
	}
	if !sat {
		t.Fatal("expected satisfiable=true")
	}
}

func TestReasonerIsEntailedRequestCarriesAxiom(t *testing.T) {
	doc := `<?xml version="1.0"?><ResponseMessage xmlns="http://www.owllink.org/owllink#"><BooleanResponse result="true"/></ResponseMessage>`
	r, tr := newTestReasoner(t, doc)

	sub := owl2.NewClassExpr(mustIRI(t, "http://ex.org/A"))
	sup := owl2.NewClassExpr(mustIRI(t, "http://ex.org/B"))
	entailed, err := r.IsEntailed(context.Background(), owl2.NewSubClassOfAxiom(sub, sup))
	if err != nil {
		t.Fatalf("IsEntailed: %v", err)
	}
	if !entailed {
		t.Fatal("expected entailed=true")
	}

	if len(tr.sent) != 1 {
		t.Fatalf("expected 1 request, got %d", len(tr.sent))
	}
	body := tr.sent[0]
	for _, want := range []string{"IsEntailed", `kb="urn:uuid:test"`, "SubClassOf", "http://ex.org/A", "http://ex.org/B"} {
		if !strings.Contains(body, want) {
			t.Errorf("request body missing %q:\n%s", want, body)
		}
	}
}

func TestReasonerGetAllClasses(t *testing.T) {
	doc := `<?xml version="1.0"?><ResponseMessage xmlns="http://www.owllink.org/owllink#"><SetOfClasses><Class IRI="http://ex.org/Dog"/></SetOfClasses></ResponseMessage>`
	r, _ := newTestReasoner(t, doc)

	classes, err := r.GetAllClasses(context.Background())
	if err != nil {
		t.Fatalf("GetAllClasses: %v", err)
	}
	if len(classes) != 1 || classes[0].String() != "http://ex.org/Dog" {
		t.Fatalf("unexpected classes: %+v", classes)
	}
}

func TestReasonerNotImplementedOperations(t *testing.T) {
	r, _ := newTestReasoner(t)

	ind := owl2.NewNamedIndividual(mustIRI(t, "http://ex.org/a"))
	if _, err := r.GetTypes(context.Background(), ind, true); err == nil {
		t.Fatal("expected NotImplemented from GetTypes")
	} else if _, ok := err.(*NotImplemented); !ok {
		t.Fatalf("expected *NotImplemented, got %T: %v", err, err)
	}

	ce := owl2.NewClassExpr(mustIRI(t, "http://ex.org/A"))
	if _, err := r.GetDisjointClasses(context.Background(), ce); err == nil {
		t.Fatal("expected NotImplemented from GetDisjointClasses")
	} else if _, ok := err.(*NotImplemented); !ok {
		t.Fatalf("expected *NotImplemented, got %T: %v", err, err)
	}
}

func TestReasonerReleaseKBThenOperationFails(t *testing.T) {
	r, _ := newTestReasoner(t, okDoc)

	if err := r.ReleaseKB(context.Background()); err != nil {
		t.Fatalf("ReleaseKB: %v", err)
	}
	if _, err := r.IsKBSatisfiable(context.Background()); err == nil {
		t.Fatal("expected an error after release")
	}
}

func TestReasonerTransportFailureLeavesSessionUsable(t *testing.T) {
	r, tr := newTestReasoner(t) // empty script: first call fails

	_, err := r.IsKBSatisfiable(context.Background())
	if err == nil {
		t.Fatal("expected a transport error")
	}
	if _, ok := err.(*TransportError); !ok {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}

	// A later attempt against a recovered server succeeds: the session is
	// not faulted by a transport failure.
	tr.script = []string{"", `<?xml version="1.0"?><ResponseMessage xmlns="http://www.owllink.org/owllink#"><BooleanResponse result="true"/></ResponseMessage>`}
	sat, err := r.IsKBSatisfiable(context.Background())
	if err != nil {
		t.Fatalf("IsKBSatisfiable after transport recovery: %v", err)
	}
	if !sat {
		t.Fatal("expected satisfiable=true")
	}
}

func TestReasonerProtocolErrorFaultsSession(t *testing.T) {
	r, _ := newTestReasoner(t, `<NotAResponse/>`, okDoc)

	_, err := r.IsKBSatisfiable(context.Background())
	if err == nil {
		t.Fatal("expected a protocol error")
	}
	if _, ok := err.(*ProtocolError); !ok {
		t.Fatalf("expected *ProtocolError, got %T: %v", err, err)
	}

	// The session is terminally faulted: the next operation fails before
	// any request is sent, even though the script has a response left.
	if _, err := r.IsKBSatisfiable(context.Background()); err == nil {
		t.Fatal("expected the session to stay faulted after a protocol error")
	}
}
