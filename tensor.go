package posenet

import (
	"fmt"
)

// TensorFormat defines the memory layout of a tensor's backing data
type TensorFormat int

const (
	// TensorNCHW stores data channel major, then row, then column
	TensorNCHW TensorFormat = iota
	// TensorNHWC stores data row major with channels interleaved per cell
	TensorNHWC
)

// String returns a readable description of the TensorFormat
func (t TensorFormat) String() string {
	switch t {
	case TensorNCHW:
		return "NCHW"
	case TensorNHWC:
		return "NHWC"
	default:
		return "UNKNOW"
	}
}

// Tensor is a read only view over a named 3-D float32 model output.  The
// logical shape is always [channels, height, width] regardless of the
// memory layout of the backing data.
type Tensor struct {
	// Name is the output feature name given by the model
	Name string
	// Fmt is the memory layout of data
	Fmt TensorFormat
	// dims holds [channels, height, width]
	dims [3]int
	data []float32
}

// NewTensor returns a Tensor wrapping the given data.  The shape must be
// three dimensional [channels, height, width] and describe exactly len(data)
// elements.  The data slice is not copied and must not be modified after
// being handed over.
func NewTensor(name string, shape []int, format TensorFormat,
	data []float32) (*Tensor, error) {

	if len(shape) != 3 {
		return nil, &ConfigError{
			Field:  name,
			Reason: fmt.Sprintf("tensor rank is %d, expected 3", len(shape)),
		}
	}

	if format != TensorNCHW && format != TensorNHWC {
		return nil, &ConfigError{
			Field:  name,
			Reason: fmt.Sprintf("unsupported tensor format %d", format),
		}
	}

	n := 1

	for _, d := range shape {
		if d <= 0 {
			return nil, &ConfigError{
				Field:  name,
				Reason: fmt.Sprintf("tensor shape %v has a non-positive dimension", shape),
			}
		}
		n *= d
	}

	if n != len(data) {
		return nil, &ConfigError{
			Field: name,
			Reason: fmt.Sprintf("tensor shape %v needs %d elements, got %d",
				shape, n, len(data)),
		}
	}

	return &Tensor{
		Name: name,
		Fmt:  format,
		dims: [3]int{shape[0], shape[1], shape[2]},
		data: data,
	}, nil
}

// Shape returns the tensor dimensions as [channels, height, width]
func (t *Tensor) Shape() [3]int {
	return t.dims
}

// Channels returns the size of the first dimension
func (t *Tensor) Channels() int {
	return t.dims[0]
}

// Height returns the number of grid rows
func (t *Tensor) Height() int {
	return t.dims[1]
}

// Width returns the number of grid columns
func (t *Tensor) Width() int {
	return t.dims[2]
}

// At returns the value stored at the given channel, row and column.  An
// *IndexError is returned if any coordinate falls outside the tensor shape.
func (t *Tensor) At(channel, row, col int) (float32, error) {

	if channel < 0 || channel >= t.dims[0] ||
		row < 0 || row >= t.dims[1] ||
		col < 0 || col >= t.dims[2] {
		return 0, &IndexError{
			Tensor: t.Name,
			Index:  [3]int{channel, row, col},
			Shape:  t.dims,
		}
	}

	return t.data[t.offset(channel, row, col)], nil
}

// offset converts an in range logical index into a position in data
func (t *Tensor) offset(channel, row, col int) int {

	if t.Fmt == TensorNHWC {
		return (row*t.dims[2]+col)*t.dims[0] + channel
	}

	return (channel*t.dims[1]+row)*t.dims[2] + col
}

// String returns the Tensor's attributes formatted as a string
func (t *Tensor) String() string {
	return fmt.Sprintf("name=%s, dims=[%d, %d, %d], n_elems=%d, fmt=%s",
		t.Name, t.dims[0], t.dims[1], t.dims[2], len(t.data), t.Fmt.String())
}
