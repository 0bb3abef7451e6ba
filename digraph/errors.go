package digraph

import (
	"errors"
	"fmt"
)

// ErrVertexOutOfRange is returned by operations that must reject an
// out-of-range vertex index rather than silently ignore it: iterator
// creation and degree queries.
var ErrVertexOutOfRange = errors.New("digraph: vertex index out of range")

// ErrCapacityExceeded is returned when adding an edge would push a vertex's
// out-edge list past its 32767-entry capacity.
var ErrCapacityExceeded = errors.New("digraph: edge capacity exceeded")

func digraphErrorf(op string, err error) error {
	return fmt.Errorf("digraph: %s: %w", op, err)
}
