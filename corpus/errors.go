package corpus

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingHypothesis marks a reference document the engine did not
	// transcribe. It is logged and the document skipped.
	ErrMissingHypothesis = errors.New("hypothesis file missing")
	// ErrEmptyCorpus is returned when the reference folder has no documents.
	ErrEmptyCorpus = errors.New("reference folder has no documents")
)

// IOError is a failure to list or read the corpus. It aborts the run.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("corpus: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
