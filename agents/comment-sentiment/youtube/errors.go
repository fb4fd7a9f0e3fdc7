package youtube

import (
	"errors"
	"fmt"
)

// ErrVideoNotFound is returned when the API answers cleanly but knows no
// video by the requested ID. Check with errors.Is.
var ErrVideoNotFound = errors.New("video not found")

// SourceError wraps a failed Data API call: bad key, exhausted quota,
// transport trouble. The operation name and the underlying cause are kept
// for callers to inspect with errors.As.
type SourceError struct {
	Op  string
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("youtube %s failed: %v", e.Op, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
