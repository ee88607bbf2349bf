package rdfconv

import "fmt"

// Unsupported is returned when Convert encounters an axiom or class
// expression variant it has no translator for. Per this component's
// design notes, the converter never silently drops a construct: it fails
// loudly instead.
type Unsupported struct {
	Construct string
}

func (e *Unsupported) Error() string {
	return fmt.Sprintf("rdfconv: unsupported construct: %s", e.Construct)
}
