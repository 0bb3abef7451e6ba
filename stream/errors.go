package stream

import (
	"errors"
	"fmt"
)

// ErrFraming is returned when a record's leading tag byte is unrecognized,
// or when a fixed-size edge record is truncated.
var ErrFraming = errors.New("stream: framing error")

// ErrUnknownPartition is returned by PartitionedWriter when a Partitioner
// names a key with no registered writer.
var ErrUnknownPartition = errors.New("stream: unknown partition")

func streamErrorf(op string, err error) error {
	return fmt.Errorf("stream: %s: %w", op, err)
}
