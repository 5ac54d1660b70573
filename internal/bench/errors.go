package bench

import "fmt"

// InitError marks a service whose one-time initialization failed.
// It is fatal for that service only: the batch orchestrator catches it,
// drops the service from the batch result and moves on.
type InitError struct {
	Service string
	Err     error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initialize service %q: %v", e.Service, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
