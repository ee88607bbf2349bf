package functional

import "testing"

func collectTokens(src string) []token {
	l := newLexer(src)
	var out []token
	for {
		tok := l.nextToken()
		out = append(out, tok)
		if tok.typ == tokenEOF || tok.typ == tokenError {
			break
		}
	}
	return out
}

func TestLexBasicTokens(t *testing.T) {
	toks := collectTokens(`Class(<http://example.org/A>)`)
	want := []tokenType{tokenIdent, tokenLParen, tokenFullIRI, tokenRParen, tokenEOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].typ != w {
			t.Errorf("token %d: got type %d, want %d (text %q)", i, toks[i].typ, w, toks[i].text)
		}
	}
}

func TestLexLiteralWithLangAndDatatype(t *testing.T) {
	toks := collectTokens(`"hello"@en "5"^^xsd:integer`)
	if toks[0].typ != tokenString || toks[0].text != "hello" {
		t.Fatalf("unexpected first token: %+v", toks[0])
	}
	if toks[1].typ != tokenLangTag || toks[1].text != "en" {
		t.Fatalf("unexpected lang token: %+v", toks[1])
	}
	if toks[2].typ != tokenString || toks[2].text != "5" {
		t.Fatalf("unexpected string token: %+v", toks[2])
	}
	if toks[3].typ != tokenCaret2 {
		t.Fatalf("unexpected datatype marker: %+v", toks[3])
	}
	if toks[4].typ != tokenPName || toks[4].text != "xsd:integer" {
		t.Fatalf("unexpected pname: %+v", toks[4])
	}
}

func TestLexSkipsComments(t *testing.T) {
	toks := collectTokens("# a comment\nClass(<http://x/>)")
	if toks[0].typ != tokenIdent || toks[0].text != "Class" {
		t.Fatalf("expected comment to be skipped, got %+v", toks[0])
	}
}

func TestLexCardinalityInteger(t *testing.T) {
	toks := collectTokens(`ObjectMinCardinality(2 :p)`)
	var gotInt bool
	for _, tok := range toks {
		if tok.typ == tokenInteger && tok.text == "2" {
			gotInt = true
		}
	}
	if !gotInt {
		t.Fatalf("expected integer token '2', got %+v", toks)
	}
}
