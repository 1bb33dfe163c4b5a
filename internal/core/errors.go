package core

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation reports that a device could not allocate a grid image.
	ErrAllocation = errors.New("grid buffer allocation failed")
	// ErrShapeMismatch reports a pixel payload that disagrees with its buffer.
	ErrShapeMismatch = errors.New("pixel data does not match buffer shape")
	// ErrStopped is returned when a stopped simulation is asked to run again.
	ErrStopped = errors.New("simulation stopped")
)

// AllocationError describes a rejected buffer allocation.
type AllocationError struct {
	Size   Size
	Reason string
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocate %v: %s", e.Size, e.Reason)
}

func (e *AllocationError) Unwrap() error { return ErrAllocation }

// ShapeMismatchError describes a Write whose payload length is wrong.
type ShapeMismatchError struct {
	Size Size
	Want int
	Got  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("write %v: want %d bytes, got %d", e.Size, e.Want, e.Got)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// CheckShape returns a *ShapeMismatchError unless pix covers size exactly.
func CheckShape(size Size, pix []byte) error {
	if len(pix) != size.Bytes() {
		return &ShapeMismatchError{Size: size, Want: size.Bytes(), Got: len(pix)}
	}
	return nil
}

// SetupError wraps anything that prevents a simulation from starting.
type SetupError struct {
	Stage string
	Err   error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("setup %s: %v", e.Stage, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }
