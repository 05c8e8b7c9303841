package posenet

import (
	"errors"
	"testing"
)

var modelInput = Size{Width: 257, Height: 257}

// mustTensor creates a zero filled NCHW tensor
func mustTensor(t *testing.T, name string, c, h, w int) *Tensor {
	t.Helper()

	tensor, err := NewTensor(name, []int{c, h, w}, TensorNCHW, make([]float32, c*h*w))

	if err != nil {
		t.Fatalf("error creating tensor %s: %v", name, err)
	}

	return tensor
}

// outputTensors returns a correctly shaped set of model outputs
func outputTensors(t *testing.T, h, w int) []*Tensor {
	return []*Tensor{
		mustTensor(t, FeatureHeatmap, JointCount, h, w),
		mustTensor(t, FeatureOffsets, 2*JointCount, h, w),
		mustTensor(t, FeatureForwardDisplacement, 2*EdgeCount, h, w),
		mustTensor(t, FeatureBackwardDisplacement, 2*EdgeCount, h, w),
	}
}

func TestNewOutputs(t *testing.T) {

	outputs, err := NewOutputs(outputTensors(t, 9, 9), modelInput, 32)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outputs.Height() != 9 || outputs.Width() != 9 {
		t.Errorf("expected 9x9 grid, got %dx%d", outputs.Height(), outputs.Width())
	}

	if outputs.OutputStride != 32 || outputs.ModelInputSize != modelInput {
		t.Errorf("model constants not carried, got stride=%d size=%v",
			outputs.OutputStride, outputs.ModelInputSize)
	}
}

func TestNewOutputsBindsDisplacementMaps(t *testing.T) {

	ts := outputTensors(t, 9, 9)

	outputs, err := NewOutputs(ts, modelInput, 32)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outputs.ForwardDisplacementMap != ts[2] || outputs.BackwardDisplacementMap != ts[3] {
		t.Errorf("displacement tensors bound to the wrong fields")
	}
}

func TestOutputsValidateHandBuilt(t *testing.T) {

	ts := outputTensors(t, 9, 9)

	tests := []struct {
		name    string
		outputs Outputs
		field   string
	}{
		{
			name:    "empty",
			outputs: Outputs{ModelInputSize: modelInput, OutputStride: 32},
			field:   FeatureHeatmap,
		},
		{
			name: "missingBackward",
			outputs: Outputs{
				Heatmap: ts[0], Offsets: ts[1], ForwardDisplacementMap: ts[2],
				ModelInputSize: modelInput, OutputStride: 32,
			},
			field: FeatureBackwardDisplacement,
		},
		{
			name: "zeroStride",
			outputs: Outputs{
				Heatmap: ts[0], Offsets: ts[1], ForwardDisplacementMap: ts[2],
				BackwardDisplacementMap: ts[3], ModelInputSize: modelInput,
			},
			field: "outputStride",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ce *ConfigError

			if err := tc.outputs.Validate(); !errors.As(err, &ce) || ce.Field != tc.field {
				t.Errorf("expected configuration error on %s, got %v", tc.field, err)
			}
		})
	}

	valid := Outputs{
		Heatmap: ts[0], Offsets: ts[1], ForwardDisplacementMap: ts[2],
		BackwardDisplacementMap: ts[3], ModelInputSize: modelInput, OutputStride: 32,
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewOutputsConfigErrors(t *testing.T) {

	tests := []struct {
		name    string
		tensors func(t *testing.T) []*Tensor
		size    Size
		stride  int
	}{
		{
			name: "offsetsChannels",
			tensors: func(t *testing.T) []*Tensor {
				ts := outputTensors(t, 9, 9)
				ts[1] = mustTensor(t, FeatureOffsets, 2*JointCount-1, 9, 9)
				return ts
			},
			size: modelInput, stride: 32,
		},
		{
			name: "displacementGrid",
			tensors: func(t *testing.T) []*Tensor {
				ts := outputTensors(t, 9, 9)
				ts[2] = mustTensor(t, FeatureForwardDisplacement, 2*EdgeCount, 9, 8)
				return ts
			},
			size: modelInput, stride: 32,
		},
		{
			name: "heatmapChannels",
			tensors: func(t *testing.T) []*Tensor {
				ts := outputTensors(t, 9, 9)
				ts[0] = mustTensor(t, FeatureHeatmap, JointCount+1, 9, 9)
				return ts
			},
			size: modelInput, stride: 32,
		},
		{
			name: "missing",
			tensors: func(t *testing.T) []*Tensor {
				return outputTensors(t, 9, 9)[:3]
			},
			size: modelInput, stride: 32,
		},
		{
			name: "unknownName",
			tensors: func(t *testing.T) []*Tensor {
				return append(outputTensors(t, 9, 9), mustTensor(t, "segments", 1, 9, 9))
			},
			size: modelInput, stride: 32,
		},
		{
			name: "duplicate",
			tensors: func(t *testing.T) []*Tensor {
				ts := outputTensors(t, 9, 9)
				return append(ts, ts[0])
			},
			size: modelInput, stride: 32,
		},
		{
			name: "nilTensor",
			tensors: func(t *testing.T) []*Tensor {
				return append(outputTensors(t, 9, 9), nil)
			},
			size: modelInput, stride: 32,
		},
		{
			name:    "zeroStride",
			tensors: func(t *testing.T) []*Tensor { return outputTensors(t, 9, 9) },
			size:    modelInput, stride: 0,
		},
		{
			name:    "zeroInputSize",
			tensors: func(t *testing.T) []*Tensor { return outputTensors(t, 9, 9) },
			size:    Size{Width: 0, Height: 257}, stride: 32,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			outputs, err := NewOutputs(tc.tensors(t), tc.size, tc.stride)

			if outputs != nil {
				t.Errorf("expected no outputs on error")
			}

			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("expected configuration error, got %v", err)
			}

			var ce *ConfigError

			if !errors.As(err, &ce) {
				t.Errorf("expected *ConfigError, got %T", err)
			}
		})
	}
}

func TestOutputsOffsetChannelSplit(t *testing.T) {

	ts := outputTensors(t, 3, 4)
	offsets := ts[1]

	// vertical component at channel kind, horizontal at kind+JointCount
	kind := RightWrist
	cell := Cell{Row: 2, Col: 1}
	offsets.data[offsets.offset(int(kind), cell.Row, cell.Col)] = 3.5
	offsets.data[offsets.offset(int(kind)+JointCount, cell.Row, cell.Col)] = -1.25

	outputs, err := NewOutputs(ts, modelInput, 16)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	off, err := outputs.Offset(kind, cell)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if off.X != -1.25 || off.Y != 3.5 {
		t.Errorf("expected offset (-1.25, 3.5), got (%v, %v)", off.X, off.Y)
	}

	pos, err := outputs.Position(kind, cell)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pos.X != 1*16-1.25 || pos.Y != 2*16+3.5 {
		t.Errorf("expected position (14.75, 35.5), got (%v, %v)", pos.X, pos.Y)
	}
}

func TestOutputsDisplacement(t *testing.T) {

	ts := outputTensors(t, 3, 3)
	fwd, bwd := ts[2], ts[3]

	edge := 4
	cell := Cell{Row: 1, Col: 2}
	fwd.data[fwd.offset(edge, cell.Row, cell.Col)] = 7
	fwd.data[fwd.offset(edge+EdgeCount, cell.Row, cell.Col)] = -2
	bwd.data[bwd.offset(edge, cell.Row, cell.Col)] = -7
	bwd.data[bwd.offset(edge+EdgeCount, cell.Row, cell.Col)] = 2

	outputs, err := NewOutputs(ts, modelInput, 32)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := outputs.ForwardDisplacement(edge, cell)

	if err != nil || f != (Point{X: -2, Y: 7}) {
		t.Errorf("forward displacement expected (-2, 7), got %v err=%v", f, err)
	}

	b, err := outputs.BackwardDisplacement(edge, cell)

	if err != nil || b != (Point{X: 2, Y: -7}) {
		t.Errorf("backward displacement expected (2, -7), got %v err=%v", b, err)
	}

	if _, err := outputs.ForwardDisplacement(EdgeCount, cell); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected index error for edge %d, got %v", EdgeCount, err)
	}
}

func TestOutputsCellFor(t *testing.T) {

	outputs, err := NewOutputs(outputTensors(t, 9, 9), modelInput, 32)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		pos  Point
		cell Cell
		ok   bool
	}{
		{Point{X: 0, Y: 0}, Cell{0, 0}, true},
		{Point{X: 47, Y: 15}, Cell{Row: 0, Col: 1}, true},
		{Point{X: 48, Y: 16}, Cell{Row: 1, Col: 2}, true},
		{Point{X: 256, Y: 256}, Cell{Row: 8, Col: 8}, true},
		{Point{X: 272, Y: 0}, Cell{}, false},
		{Point{X: 0, Y: -17}, Cell{}, false},
	}

	for _, tc := range tests {
		cell, ok := outputs.CellFor(tc.pos)

		if ok != tc.ok || cell != tc.cell {
			t.Errorf("CellFor(%v) expected %v,%v got %v,%v", tc.pos, tc.cell, tc.ok, cell, ok)
		}
	}
}

func TestEdges(t *testing.T) {

	edges := Edges()

	if len(edges) != EdgeCount {
		t.Fatalf("expected %d edges, got %d", EdgeCount, len(edges))
	}

	for i, e := range edges {
		if !e.From.Valid() || !e.To.Valid() || e.From == e.To {
			t.Errorf("edge %d is malformed: %v", i, e)
		}
	}

	// returned slice is a copy
	edges[0] = SkeletonEdge{From: Nose, To: Nose}

	if Edges()[0] != (SkeletonEdge{From: LeftHip, To: LeftShoulder}) {
		t.Errorf("modifying the returned edges changed the skeleton")
	}
}

func TestJointKindOrder(t *testing.T) {

	kinds := JointKinds()

	if len(kinds) != JointCount {
		t.Fatalf("expected %d joint kinds, got %d", JointCount, len(kinds))
	}

	if Nose != 0 || LeftShoulder != 5 || LeftHip != 11 || RightAnkle != 16 {
		t.Errorf("joint channel order changed")
	}

	if RightAnkle.String() != "rightAnkle" || JointKind(17).String() != "unknown" {
		t.Errorf("unexpected joint names %q %q", RightAnkle.String(), JointKind(17).String())
	}
}
