package statistics

import "errors"

var (
	// ErrUnknownPeriodKind is returned when a period kind outside the
	// closed week/month set is requested. Callers must not default
	// silently.
	ErrUnknownPeriodKind = errors.New("unknown period kind")

	ErrSnapshotNotFound = errors.New("statistics snapshot not found")
)
