package apperror

import "fmt"

// ExternalServiceError wraps a failed or timed-out call to the LLM provider.
// It is always recovered locally: the chat service downgrades the reply
// instead of failing the request.
type ExternalServiceError struct {
	Provider string
	Err      error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("external service %s failed: %v", e.Provider, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// ValidationError means an input was rejected before any work happened: a
// request body that failed field validation, or generated SQL that failed
// the read-only/allow-list check (such a statement is never executed).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// QueryTimeoutError means execution exceeded the configured query deadline.
type QueryTimeoutError struct {
	Err error
}

func (e *QueryTimeoutError) Error() string {
	return fmt.Sprintf("query timed out: %v", e.Err)
}

func (e *QueryTimeoutError) Unwrap() error {
	return e.Err
}

// QueryTooLargeError means the result hit the row cap. Rows up to the cap
// are still returned alongside this condition.
type QueryTooLargeError struct {
	RowLimit int
}

func (e *QueryTooLargeError) Error() string {
	return fmt.Sprintf("query result exceeded %d rows", e.RowLimit)
}

// PersistenceError wraps a failed store write. It is the only condition the
// chat endpoint surfaces as a server error.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
