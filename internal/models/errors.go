package models

import "errors"

// Sentinel errors shared across the store, service and handler layers.
// Handlers map them onto HTTP statuses; everything else is a 500.
var (
	// ErrNotFound means the requested id has no matching record.
	ErrNotFound = errors.New("record not found")

	// ErrStoreUnavailable means the backing store is unreachable or
	// misconfigured. Distinct from ErrNotFound so callers can degrade
	// instead of reporting a miss.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrDuplicateID means a freshly generated id collided with an
	// existing record. The store rejects the write instead of
	// overwriting; creation retries with a new id.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrConflict means the request contradicts current entity state,
	// e.g. assigning a unit to an incident that already has one.
	ErrConflict = errors.New("conflict with current state")

	// ErrCoordination means a dispatch transition failed partway and was
	// rolled back; both records are back in their prior state.
	ErrCoordination = errors.New("dispatch coordination failed")
)
