package posenet

import "github.com/x448/float16"

var f16LookupTable [65536]float32

func init() {
	// precompute float16 lookup table for faster conversion to float32
	for i := range f16LookupTable {
		f16 := float16.Frombits(uint16(i))
		f16LookupTable[i] = f16.Float32()
	}
}

// NewTensorFloat16 returns a Tensor from half precision output data given as
// raw float16 bit patterns, as produced by runtimes that leave outputs in
// FP16.  The values are widened to float32 into a new buffer.
func NewTensorFloat16(name string, shape []int, format TensorFormat,
	data []uint16) (*Tensor, error) {

	buf := make([]float32, len(data))

	for i, bits := range data {
		buf[i] = f16LookupTable[bits]
	}

	return NewTensor(name, shape, format, buf)
}
