package analytics

import (
	"errors"
	"fmt"

	"github.com/kickstats/kickstats-data/internal/store"
)

// Sentinel error kinds. Callers branch with errors.Is; the HTTP layer maps
// them to 404 / 400 / 503.
var (
	// ErrNotFound means a named team, player, or league does not exist in
	// the snapshot. A collection query that matches nothing is NOT ErrNotFound.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument means a query argument failed validation before any
	// store read happened.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStoreUnavailable means an underlying store read failed. The engine
	// never retries; that is the caller's call to make.
	ErrStoreUnavailable = errors.New("store unavailable")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// storeError tags a failed read with ErrStoreUnavailable while keeping the
// original error in the chain, so callers can distinguish "absent" from
// "unreachable".
type storeError struct {
	op  string
	err error
}

func (e *storeError) Error() string {
	return fmt.Sprintf("%s: %v", e.op, e.err)
}

func (e *storeError) Unwrap() []error {
	return []error{ErrStoreUnavailable, e.err}
}

func storeFail(op string, err error) error {
	return &storeError{op: op, err: err}
}

// lookupErr translates a single-entity lookup failure: absent entities become
// ErrNotFound, anything else is a store failure.
func lookupErr(op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return storeFail(op, err)
}
