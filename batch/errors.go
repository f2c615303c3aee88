package batch

import "fmt"

// SetError reports the failure of a single named point set.
type SetError struct {
	Name string
	Err  error
}

func (e *SetError) Error() string {
	return fmt.Sprintf("set %q: %v", e.Name, e.Err)
}

func (e *SetError) Unwrap() error {
	return e.Err
}
