package run

import "github.com/cockroachdb/errors"

// Kind is the error taxonomy the Run Coordinator surfaces (spec.md §7).
type Kind string

const (
	KindAlreadyRunning     Kind = "AlreadyRunning"
	KindInsufficientVoters Kind = "InsufficientVoters"
	KindNumerical          Kind = "Numerical"
	KindStoreUnavailable   Kind = "StoreUnavailable"
	KindWriteConflict      Kind = "WriteConflict"
	KindInternal           Kind = "Internal"
)

// ErrAlreadyRunning is returned immediately, without waiting, when the
// coordinator's lease is already held.
var ErrAlreadyRunning = errors.New("run: clustering already in progress")

// Error is a Kind-tagged failure of a Run. Callers map Kind to operator
// behavior (retry, surface, ignore) per spec.md §7's taxonomy table.
type Error struct {
	Kind  Kind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

func wrapKind(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}
