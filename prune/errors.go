package prune

import (
	"errors"
	"fmt"
)

// ErrPreconditionViolation is returned by Prune when coverage is not
// positive.
var ErrPreconditionViolation = errors.New("prune: precondition violated")

func pruneErrorf(op string, err error) error {
	return fmt.Errorf("prune: %s: %w", op, err)
}
