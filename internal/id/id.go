// Package id generates run identifiers.
package id

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// New returns a ULID for the current time. ulid.Make is monotonic within a
// millisecond and safe for concurrent use, so IDs issued in quick succession
// still sort in issue order.
func New() string {
	return ulid.Make().String()
}

// Time extracts the creation time encoded in a run ID.
func Time(runID string) (time.Time, error) {
	u, err := ulid.ParseStrict(runID)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(u.Time()), nil
}
