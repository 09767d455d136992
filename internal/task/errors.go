package task

import "fmt"

// ValidationError reports a title rejected at creation time. It is returned
// before any store mutation happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError reports a reference to an id absent from the store. Deleting
// an absent id is not this error: idempotent delete treats it as success.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("task not found: %d", e.ID) }

// TransportError reports that the client failed to reach the server at all.
// The request was never answered, so nothing can be said about server state.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }
