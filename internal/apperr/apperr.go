// Package apperr defines the error taxonomy shared by every entity
// service. Handlers translate the Kind of an *Error into an HTTP status;
// services never touch HTTP concepts directly.
package apperr

// Kind classifies a service failure.
type Kind int

const (
	// MissingIdentifier means the request did not carry a usable record id.
	MissingIdentifier Kind = iota
	// Validation means one or more field rules were violated; Fields holds
	// every violation (field validation is exhaustive, not short-circuit).
	Validation
	// Consistency means a referential or uniqueness check failed. Only the
	// first failing check is reported.
	Consistency
	// NotFound means the record addressed by id does not exist.
	NotFound
	// Persistence means the storage engine accepted the statement but
	// affected no rows.
	Persistence
	// Storage means the underlying query or connection failed.
	Storage
)

// Error is the single error type services return. Message is user facing
// (Portuguese, matching the API's wire format); Fields is only populated
// for Validation errors.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	cause   error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the underlying storage error, when there is one.
func (e *Error) Unwrap() error { return e.cause }

// MissingID reports an absent or unusable identifier.
func MissingID(msg string) *Error {
	return &Error{Kind: MissingIdentifier, Message: msg}
}

// Invalid reports field-rule violations.
func Invalid(fields map[string][]string) *Error {
	return &Error{Kind: Validation, Message: "Os dados informados são inválidos", Fields: fields}
}

// Inconsistent reports the first failing referential or uniqueness check.
func Inconsistent(msg string) *Error {
	return &Error{Kind: Consistency, Message: msg}
}

// NotFoundf reports a lookup that matched no rows.
func NotFoundf(msg string) *Error {
	return &Error{Kind: NotFound, Message: msg}
}

// Unpersisted reports a write that affected no rows despite no error.
func Unpersisted(msg string) *Error {
	return &Error{Kind: Persistence, Message: msg}
}

// Unavailable wraps a storage-level failure.
func Unavailable(msg string, cause error) *Error {
	return &Error{Kind: Storage, Message: msg, cause: cause}
}
