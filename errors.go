package vis

import "github.com/pkg/errors"

// Error kinds surfaced by the core, per the error handling design: local
// failures return an error (never a panic) and leave the document in its
// pre-operation state. Replace is the exception: its insert still runs
// after a failed delete, so its error can come with a changed document.
var (
	// ErrOutOfRange is returned when pos or pos+len exceeds the document
	// size for delete, or pos exceeds size for insert.
	ErrOutOfRange = errors.New("vis: position out of range")

	// ErrOutOfMemory is returned when a buffer, piece, change, or action
	// allocation cannot proceed. Go's allocator does not itself report
	// failure, so this is surfaced only when an operation would grow a
	// backing buffer past the Editor's configured ceiling (see
	// WithMaxBufferBytes).
	ErrOutOfMemory = errors.New("vis: out of memory")

	// ErrNotRegularFile is returned when Load's target exists but is not
	// a regular file (directory, device, socket, ...).
	ErrNotRegularFile = errors.New("vis: not a regular file")

	// ErrClosed is returned by Insert, Delete and Replace when called on an
	// Editor after Close has released its resources. Other methods do not
	// check whether the Editor has been closed.
	ErrClosed = errors.New("vis: editor closed")
)
