package processor

import "fmt"

// DocumentError reports a failure while decoding, parsing or rewriting a
// document. Op names the step that failed and Err carries the underlying
// parser or writer detail.
type DocumentError struct {
	Op  string
	Err error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
