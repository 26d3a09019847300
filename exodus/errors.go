package exodus

import "errors"

// Error kinds surfaced by the reader. All failures returned from the public
// surface wrap one of these, with the offending name or id in the message,
// so callers can tell bad input apart from an unsupported or corrupt file
// using errors.Is.
var (
	// ErrMissingDimension indicates a required dimension is absent from the
	// file. Fatal at open time.
	ErrMissingDimension = errors.New("missing dimension")
	// ErrMissingVariable indicates a required variable is absent from the
	// file. Fatal at first use of the missing field.
	ErrMissingVariable = errors.New("missing variable")
	// ErrUnknownName indicates a block or side set name not present in the
	// mesh. Recoverable; the caller can retry with a corrected name.
	ErrUnknownName = errors.New("unknown name")
	// ErrUnsupportedTopology indicates a cell shape or side number outside
	// the static side node table.
	ErrUnsupportedTopology = errors.New("unsupported topology")
	// ErrHeterogeneousSideSet indicates a side set whose entries reference
	// more than one local side id.
	ErrHeterogeneousSideSet = errors.New("heterogeneous side ids")
	// ErrOutOfRange indicates a computed element or node index outside its
	// owning table. Signals either a corrupt file or an index bug.
	ErrOutOfRange = errors.New("index out of range")
	// ErrClosed is returned for operations on a closed mesh.
	ErrClosed = errors.New("mesh is closed")
)
