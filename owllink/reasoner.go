package owllink

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/knakk/owl2"
)

// Transport is the HTTP collaborator a Reasoner POSTs OWLLink requests
// through. *http.Client satisfies it; tests may substitute a fake.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// reasonerState tracks the reasoner session lifecycle:
//
//	[New] --create_kb--> [Ready] --op*--> [Ready] --release_kb--> [Released]
//	                       |
//	                       +--protocol error--> [Faulted] (terminal)
//
// A TransportError leaves the session in Ready: the server-side knowledge
// base is intact and a later attempt may succeed. A ProtocolError faults
// the session permanently, since the server-side state is uncertain.
type reasonerState int

const (
	stateNew reasonerState = iota
	stateReady
	stateReleased
	stateFaulted
)

// Reasoner is a typed façade over an OWLLink server, driving the wire
// encoding over HTTP against a per-session knowledge base.
type Reasoner struct {
	serverURL string
	kbURI     string
	transport Transport
	state     reasonerState
}

// NewReasoner constructs its knowledge-base URI as a fresh UUID, issues a
// CreateKB followed by a Tell carrying every axiom in o, and stores the
// URI. http.DefaultClient is used as the transport; callers needing a
// custom one should set Reasoner.transport directly (only exported via
// WithTransport, which must be used before the first operation).
func NewReasoner(ctx context.Context, o *owl2.Ontology, serverURL string) (*Reasoner, error) {
	r := &Reasoner{
		serverURL: serverURL,
		kbURI:     "urn:uuid:" + uuid.New().String(),
		transport: http.DefaultClient,
		state:     stateNew,
	}
	if _, err := r.post(ctx, func(w *bytes.Buffer) error {
		return EncodeCreateKB(w, r.kbURI)
	}); err != nil {
		return nil, err
	}
	if _, err := r.post(ctx, func(w *bytes.Buffer) error {
		return EncodeTell(w, r.kbURI, o.Axioms())
	}); err != nil {
		return nil, err
	}
	r.state = stateReady
	return r, nil
}

// WithTransport overrides the HTTP collaborator used for subsequent
// requests. Intended for tests.
func (r *Reasoner) WithTransport(t Transport) *Reasoner {
	r.transport = t
	return r
}

// fail inspects an operation error and faults the session when it is a
// ProtocolError; transport failures leave the session usable so a caller
// may retry.
func (r *Reasoner) fail(err error) error {
	var pe *ProtocolError
	if errors.As(err, &pe) {
		r.state = stateFaulted
	}
	return err
}

func (r *Reasoner) checkReady() error {
	switch r.state {
	case stateReleased:
		return errors.New("owllink: reasoner session already released")
	case stateFaulted:
		return errors.New("owllink: reasoner session is faulted")
	}
	return nil
}

// post sends the request built by build to the server and decodes the
// response, translating transport and XML failures into TransportError
// and ProtocolError.
func (r *Reasoner) post(ctx context.Context, build func(*bytes.Buffer) error) (*Response, error) {
	var buf bytes.Buffer
	if err := build(&buf); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.serverURL, &buf)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	req.Header.Set("Content-Type", "application/xml")

	resp, err := r.transport.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &TransportError{Cancelled: true, Cause: ctx.Err()}
		}
		return nil, &TransportError{Cause: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Cause: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	return DecodeResponse(resp.Body)
}

// IsEntailed reports whether ax is entailed by the knowledge base.
func (r *Reasoner) IsEntailed(ctx context.Context, ax owl2.Axiom) (bool, error) {
	if err := r.checkReady(); err != nil {
		return false, err
	}
	resp, err := r.post(ctx, func(w *bytes.Buffer) error {
		toks, err := Encode(ax)
		if err != nil {
			return err
		}
		return EncodeRequest(w, elIsEntailed, r.kbURI, toks...)
	})
	if err != nil {
		return false, r.fail(err)
	}
	if !resp.HasBoolean {
		return false, r.fail(&ProtocolError{Detail: "IsEntailed response carried no BooleanResponse"})
	}
	return resp.Boolean, nil
}

// IsKBSatisfiable reports whether the knowledge base is satisfiable.
func (r *Reasoner) IsKBSatisfiable(ctx context.Context) (bool, error) {
	if err := r.checkReady(); err != nil {
		return false, err
	}
	resp, err := r.post(ctx, func(w *bytes.Buffer) error {
		return EncodeRequest(w, elIsKBSatisfiable, r.kbURI)
	})
	if err != nil {
		return false, r.fail(err)
	}
	if !resp.HasBoolean {
		return false, r.fail(&ProtocolError{Detail: "IsKBSatisfiable response carried no BooleanResponse"})
	}
	return resp.Boolean, nil
}

// GetAllClasses returns every named class known to the knowledge base.
func (r *Reasoner) GetAllClasses(ctx context.Context) ([]owl2.IRI, error) {
	return r.getEntitySet(ctx, elGetAllClasses, func(resp *Response) []owl2.IRI { return resp.Classes })
}

// GetAllObjectProperties returns every named object property known to the
// knowledge base.
func (r *Reasoner) GetAllObjectProperties(ctx context.Context) ([]owl2.IRI, error) {
	return r.getEntitySet(ctx, elGetAllObjectProperties, func(resp *Response) []owl2.IRI { return resp.ObjectProperties })
}

// GetAllDataProperties returns every named data property known to the
// knowledge base.
func (r *Reasoner) GetAllDataProperties(ctx context.Context) ([]owl2.IRI, error) {
	return r.getEntitySet(ctx, elGetAllDataProperties, func(resp *Response) []owl2.IRI { return resp.DataProperties })
}

// GetAllDatatypes returns every datatype known to the knowledge base.
func (r *Reasoner) GetAllDatatypes(ctx context.Context) ([]owl2.IRI, error) {
	return r.getEntitySet(ctx, elGetAllDatatypes, func(resp *Response) []owl2.IRI { return resp.Datatypes })
}

func (r *Reasoner) getEntitySet(ctx context.Context, command string, pick func(*Response) []owl2.IRI) ([]owl2.IRI, error) {
	if err := r.checkReady(); err != nil {
		return nil, err
	}
	resp, err := r.post(ctx, func(w *bytes.Buffer) error {
		return EncodeRequest(w, command, r.kbURI)
	})
	if err != nil {
		return nil, r.fail(err)
	}
	return pick(resp), nil
}

// GetSubClasses returns the classes ce is asserted/entailed to subsume,
// restricted to direct subclasses when direct is true.
func (r *Reasoner) GetSubClasses(ctx context.Context, ce owl2.ClassExpression, direct bool) ([]owl2.IRI, error) {
	return r.getClassesOf(ctx, elGetSubClasses, ce, direct)
}

// GetSuperClasses returns the classes ce is asserted/entailed to be
// subsumed by, restricted to direct superclasses when direct is true.
func (r *Reasoner) GetSuperClasses(ctx context.Context, ce owl2.ClassExpression, direct bool) ([]owl2.IRI, error) {
	return r.getClassesOf(ctx, elGetSuperClasses, ce, direct)
}

func (r *Reasoner) getClassesOf(ctx context.Context, command string, ce owl2.ClassExpression, direct bool) ([]owl2.IRI, error) {
	if err := r.checkReady(); err != nil {
		return nil, err
	}
	resp, err := r.post(ctx, func(w *bytes.Buffer) error {
		var toks []xml.Token
		if err := encodeClassExpression(&toks, ce); err != nil {
			return err
		}
		attr := xml.Attr{Name: xml.Name{Local: attrDirect}, Value: boolAttr(direct)}
		return writeRequest(w, command, []xml.Attr{kbAttr(r.kbURI), attr}, toks...)
	})
	if err != nil {
		return nil, r.fail(err)
	}
	return resp.Classes, nil
}

// GetInstances returns the individuals asserted/entailed to be members of
// ce, restricted to direct instances when direct is true.
func (r *Reasoner) GetInstances(ctx context.Context, ce owl2.ClassExpression, direct bool) ([]owl2.IRI, error) {
	if err := r.checkReady(); err != nil {
		return nil, err
	}
	resp, err := r.post(ctx, func(w *bytes.Buffer) error {
		var toks []xml.Token
		if err := encodeClassExpression(&toks, ce); err != nil {
			return err
		}
		attr := xml.Attr{Name: xml.Name{Local: attrDirect}, Value: boolAttr(direct)}
		return writeRequest(w, elGetInstances, []xml.Attr{kbAttr(r.kbURI), attr}, toks...)
	})
	if err != nil {
		return nil, r.fail(err)
	}
	return resp.Individuals, nil
}

// GetTypes returns the classes ind is an instance of. Not implemented;
// callers must not rely on it.
func (r *Reasoner) GetTypes(ctx context.Context, ind owl2.Individual, direct bool) ([]owl2.IRI, error) {
	return nil, &NotImplemented{Operation: "GetTypes"}
}

// GetDisjointClasses returns the classes disjoint with ce. Not
// implemented; callers must not rely on it.
func (r *Reasoner) GetDisjointClasses(ctx context.Context, ce owl2.ClassExpression) ([]owl2.IRI, error) {
	return nil, &NotImplemented{Operation: "GetDisjointClasses"}
}

// ReleaseKB tells the server to discard the knowledge base and transitions
// the session to Released; no further operations are valid afterward.
func (r *Reasoner) ReleaseKB(ctx context.Context) error {
	if err := r.checkReady(); err != nil {
		return err
	}
	_, err := r.post(ctx, func(w *bytes.Buffer) error {
		return EncodeRequest(w, elReleaseKB, r.kbURI)
	})
	if err != nil {
		return r.fail(err)
	}
	r.state = stateReleased
	return nil
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
