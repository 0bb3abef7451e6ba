package vertex

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is returned when adding an edge would push a record's
// edgesTo or edgesFrom list past its 32767-entry cap.
var ErrCapacityExceeded = errors.New("vertex: edge capacity exceeded")

// ErrPreconditionViolation is returned by Merge when the two records being
// merged do not share the same id.
var ErrPreconditionViolation = errors.New("vertex: precondition violated")

// ErrInvalidInput is returned by CompressChain when either record is
// flagged as a branch; branches are not eligible for chain compression.
var ErrInvalidInput = errors.New("vertex: invalid input")

// ErrFraming is returned by UnmarshalText when a text-format record line is
// malformed. Binary records do not use it: FromBytes tolerates truncation,
// and EdgeFromBytes reports a short edge record through its ok result.
var ErrFraming = errors.New("vertex: malformed or truncated record")

func vertexErrorf(op string, err error) error {
	return fmt.Errorf("vertex: %s: %w", op, err)
}
