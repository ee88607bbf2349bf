package functional

import "fmt"

// ParseError reports a lexical or grammatical failure encountered while
// parsing a Functional-Syntax document. Parsing is not resumable: the
// first ParseError aborts the whole parse.
type ParseError struct {
	Line, Col int
	Detail    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("functional syntax: %d:%d: %s", e.Line, e.Col, e.Detail)
}
