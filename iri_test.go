package owl2

import "testing"

func TestNewIRI(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"http://example.org/A", "http://example.org/A", true},
		{"<http://example.org/A>", "http://example.org/A", true},
		{"urn:uuid:01234567-89ab-cdef-0123-456789abcdef", "urn:uuid:01234567-89ab-cdef-0123-456789abcdef", true},
		{"", "", false},
		{"<>", "", false},
		{"http://example.org/with space", "", false},
		{"http://example.org/with<bracket", "", false},
	}
	for _, tt := range tests {
		got, err := NewIRI(tt.input)
		if tt.ok && err != nil {
			t.Errorf("NewIRI(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("NewIRI(%q): expected error, got %v", tt.input, got)
			} else if _, isInvalid := err.(*ErrInvalidIRI); !isInvalid {
				t.Errorf("NewIRI(%q): expected *ErrInvalidIRI, got %T", tt.input, err)
			}
			continue
		}
		if got.String() != tt.want {
			t.Errorf("NewIRI(%q) = %q, want %q", tt.input, got.String(), tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	pm := NewPrefixMap()
	pm.Set("ex", MustNewIRI("http://e/"))
	pm.Set("", MustNewIRI("http://default/"))

	tests := []struct {
		curie string
		want  string
	}{
		{"ex:foo", "http://e/foo"},
		{":bar", "http://default/bar"},
		{"bar", "http://default/bar"}, // no colon: default prefix
	}
	for _, tt := range tests {
		got, err := Resolve(pm, tt.curie)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.curie, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.curie, got.String(), tt.want)
		}
	}
}

func TestResolveUnknownPrefix(t *testing.T) {
	pm := NewPrefixMap()
	_, err := Resolve(pm, "nope:foo")
	if err == nil {
		t.Fatal("expected an error for an unbound prefix")
	}
	if _, ok := err.(*ErrUnknownPrefix); !ok {
		t.Fatalf("expected *ErrUnknownPrefix, got %T: %v", err, err)
	}
}

func TestDefaultPrefixes(t *testing.T) {
	pm := DefaultPrefixes()
	got, err := Resolve(pm, "xsd:integer")
	if err != nil {
		t.Fatalf("Resolve(xsd:integer): %v", err)
	}
	if got.String() != "http://www.w3.org/2001/XMLSchema#integer" {
		t.Errorf("xsd:integer resolved to %q", got.String())
	}
}

func TestNewLiteralRejectsLangAndDatatype(t *testing.T) {
	dt := MustNewIRI("http://www.w3.org/2001/XMLSchema#string")
	_, err := NewLiteral("hi", "en", dt)
	if err == nil {
		t.Fatal("expected an error for a literal with both language tag and datatype")
	}
	if _, ok := err.(*ErrMalformedLiteral); !ok {
		t.Fatalf("expected *ErrMalformedLiteral, got %T: %v", err, err)
	}
}

func TestEntityEqualityIsVariantAware(t *testing.T) {
	iri := MustNewIRI("http://example.org/Name")
	asClass := NewEntity(EntityClass, iri)
	asDatatype := NewEntity(EntityDatatype, iri)

	if asClass.Equals(asDatatype) {
		t.Error("the same IRI used as Class and as Datatype must not be equal")
	}
	if !asClass.Equals(NewEntity(EntityClass, iri)) {
		t.Error("entities of the same kind and IRI must be equal")
	}
}
