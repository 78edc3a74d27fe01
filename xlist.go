// Package xlist provides small generic containers built on
// singly-linked node chains: a positional list and a FIFO queue.
//
// Neither container is safe for concurrent use. See the cq package for
// a concurrent FIFO hand-off built on top of [Queue].
package xlist

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is reported when a 1-based position falls
	// outside of the range that an operation accepts.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmpty is reported when removing from an empty container.
	ErrEmpty = errors.New("container is empty")
)

// IndexError describes a rejected position. It wraps
// [ErrIndexOutOfRange].
type IndexError struct {
	// Index is the position that was requested.
	Index int

	// Max is the largest position that the operation would have
	// accepted. It is zero if no position was valid.
	Max int
}

func (err *IndexError) Error() string {
	if err.Max < 1 {
		return fmt.Sprintf("index %d: %v: no valid positions", err.Index, ErrIndexOutOfRange)
	}
	return fmt.Sprintf("index %d: %v [1, %d]", err.Index, ErrIndexOutOfRange, err.Max)
}

func (err *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// noCopy trips go vet's copylocks check. Copying a container after
// first use aliases its nodes.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
