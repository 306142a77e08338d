package services

// ValidationError aggregates field-level problems with a create or update
// request. It is raised before any transaction is opened, and again when a
// unique constraint fires inside the transaction, so races lost on the
// optimistic pre-check surface in the same shape.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }
