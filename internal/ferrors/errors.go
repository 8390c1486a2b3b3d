// Package ferrors defines the sentinel error kinds fsidx reports, so
// callers can distinguish them with errors.Is / errors.As regardless of the
// wrapping added along the way.
package ferrors

import "fmt"

// ConfigInvalid is returned when a configuration file is missing required
// keys, fails validation, or cannot be parsed.
var ConfigInvalid = fmt.Errorf("invalid configuration")

// IoFailure is returned when a root's database cannot be read or written
// due to an I/O error. It is fatal for the current root only.
var IoFailure = fmt.Errorf("i/o failure")

// QueryParseError is returned by the token parser or glob compiler. It
// aborts the search before anything runs.
var QueryParseError = fmt.Errorf("query parse error")

// Cancelled is returned when a search or update is stopped by a cancel
// signal. It is not an error from the user's point of view.
var Cancelled = fmt.Errorf("cancelled")

// WalkWarning describes a non-fatal problem encountered while walking one
// directory entry (permission denied, broken symlink, ...). Walking
// continues with the next sibling after one is reported.
type WalkWarning struct {
	Path string
	Err  error
}

func (w *WalkWarning) Error() string {
	return fmt.Sprintf("walk warning at %q: %v", w.Path, w.Err)
}

func (w *WalkWarning) Unwrap() error { return w.Err }

// MalformedDatabase describes a structural problem found while decoding a
// database file, anchored to the byte offset where it was detected.
type MalformedDatabase struct {
	Path   string
	Offset int64
	Reason string
}

func (m *MalformedDatabase) Error() string {
	return fmt.Sprintf("malformed database %q at offset %d: %s", m.Path, m.Offset, m.Reason)
}
