package packager

import "fmt"

// PartError reports which package part could not be built or written.
type PartError struct {
	Part string
	Err  error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("package part %s: %v", e.Part, e.Err)
}

func (e *PartError) Unwrap() error {
	return e.Err
}

func partError(part string, err error) error {
	return &PartError{Part: part, Err: err}
}
