package posenet

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every error caused by a model or
	// integration mistake, such as a tensor with the wrong shape.  These are
	// not transient and retrying the same decode will fail again.
	ErrConfiguration = errors.New("posenet configuration error")
	// ErrIndexOutOfRange is matched by errors from reading outside of a
	// tensor's shape
	ErrIndexOutOfRange = errors.New("tensor index out of range")
	// ErrUnsupportedAlgorithm is returned when decoding is requested with an
	// algorithm that has no implementation
	ErrUnsupportedAlgorithm = errors.New("unsupported pose algorithm")
)

// ConfigError describes a configuration problem with the decoder inputs
type ConfigError struct {
	// Field is the tensor or parameter name at fault
	Field string
	// Reason is a readable description of the problem
	Reason string
}

// Error returns the error description
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration.Error(), e.Field, e.Reason)
}

// Is allows errors.Is(err, ErrConfiguration) to match
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// IndexError is returned when a tensor is read outside its shape
type IndexError struct {
	Tensor string
	Index  [3]int
	Shape  [3]int
}

// Error returns the error description
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s index %v, shape %v", ErrIndexOutOfRange.Error(),
		e.Tensor, e.Index, e.Shape)
}

// Is allows errors.Is(err, ErrIndexOutOfRange) to match
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
