package compress

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a branch record is fed to the
// compressor; branches are not eligible for chain compression.
var ErrInvalidInput = errors.New("compress: invalid input")

func compressErrorf(op string, err error) error {
	return fmt.Errorf("compress: %s: %w", op, err)
}
