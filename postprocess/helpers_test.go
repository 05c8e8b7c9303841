package postprocess

import (
	"github.com/swdee/go-posenet"
	"testing"
)

// frame holds writable NCHW buffers for building synthetic model outputs
type frame struct {
	h, w     int
	stride   int
	input    posenet.Size
	heatmap  []float32
	offsets  []float32
	fwd, bwd []float32
}

// newFrame returns a zeroed frame with an h by w output grid
func newFrame(h, w, stride int) *frame {
	return &frame{
		h:       h,
		w:       w,
		stride:  stride,
		input:   posenet.Size{Width: float64((w-1)*stride + 1), Height: float64((h-1)*stride + 1)},
		heatmap: make([]float32, posenet.JointCount*h*w),
		offsets: make([]float32, 2*posenet.JointCount*h*w),
		fwd:     make([]float32, 2*posenet.EdgeCount*h*w),
		bwd:     make([]float32, 2*posenet.EdgeCount*h*w),
	}
}

func (f *frame) idx(c, row, col int) int {
	return (c*f.h+row)*f.w + col
}

// setConfidence sets the heatmap score of the joint at a cell
func (f *frame) setConfidence(kind posenet.JointKind, row, col int, v float32) {
	f.heatmap[f.idx(int(kind), row, col)] = v
}

// setOffset sets the offset vector of the joint at a cell
func (f *frame) setOffset(kind posenet.JointKind, row, col int, dx, dy float32) {
	f.offsets[f.idx(int(kind), row, col)] = dy
	f.offsets[f.idx(int(kind)+posenet.JointCount, row, col)] = dx
}

// outputs binds the frame buffers as model outputs
func (f *frame) outputs(t *testing.T) *posenet.Outputs {
	t.Helper()

	build := func(name string, c int, data []float32) *posenet.Tensor {
		tensor, err := posenet.NewTensor(name, []int{c, f.h, f.w}, posenet.TensorNCHW, data)

		if err != nil {
			t.Fatalf("error creating tensor %s: %v", name, err)
		}

		return tensor
	}

	out, err := posenet.NewOutputs([]*posenet.Tensor{
		build(posenet.FeatureHeatmap, posenet.JointCount, f.heatmap),
		build(posenet.FeatureOffsets, 2*posenet.JointCount, f.offsets),
		build(posenet.FeatureForwardDisplacement, 2*posenet.EdgeCount, f.fwd),
		build(posenet.FeatureBackwardDisplacement, 2*posenet.EdgeCount, f.bwd),
	}, f.input, f.stride)

	if err != nil {
		t.Fatalf("error binding outputs: %v", err)
	}

	return out
}

// pointsEqual compares points within epsilon
func pointsEqual(a, b posenet.Point, epsilon float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx <= epsilon && dx >= -epsilon && dy <= epsilon && dy >= -epsilon
}
