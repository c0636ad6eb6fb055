package compare

import (
	"errors"
	"fmt"
)

// ErrNoComparableDocuments means no reference document had a hypothesis
// file for the engine, so there is nothing to average.
var ErrNoComparableDocuments = errors.New("no comparable documents")

// EngineError scopes an evaluation failure to one engine.
type EngineError struct {
	Engine string
	Err    error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine %s: %v", e.Engine, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
