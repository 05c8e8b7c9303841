package main

import (
	"fmt"
	"github.com/swdee/go-posenet"
	ort "github.com/yalue/onnxruntime_go"
	"gocv.io/x/gocv"
)

// outputNames are the PoseNet output features in the order they are bound to
// the ONNX session
var outputNames = []string{
	posenet.FeatureHeatmap,
	posenet.FeatureOffsets,
	posenet.FeatureForwardDisplacement,
	posenet.FeatureBackwardDisplacement,
}

// Model wraps an ONNX Runtime session of a PoseNet model and produces the
// four raw output tensors for a frame
type Model struct {
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	outputs []*ort.Tensor[float32]
	// inputNCHW is true when the model takes channel first input
	inputNCHW bool
	// outputFmt is the memory layout of the output tensors
	outputFmt posenet.TensorFormat
	width     int
	height    int
}

// NewModel loads the ONNX model file and allocates its input and output
// tensors.  The ONNX Runtime environment must already be initialized.
func NewModel(modelFile, inputName string, outputFmt posenet.TensorFormat) (*Model, error) {

	inputs, outputs, err := ort.GetInputOutputInfo(modelFile)

	if err != nil {
		return nil, fmt.Errorf("error reading model info: %w", err)
	}

	var inDims ort.Shape

	for _, in := range inputs {
		if in.Name == inputName {
			inDims = in.Dimensions
		}
	}

	if len(inDims) != 4 {
		return nil, fmt.Errorf("model input %q not found or not rank 4", inputName)
	}

	m := &Model{outputFmt: outputFmt}

	// treat dynamic batch as a single frame
	inDims[0] = 1

	if inDims[1] == 3 {
		m.inputNCHW = true
		m.height, m.width = int(inDims[2]), int(inDims[3])
	} else {
		m.height, m.width = int(inDims[1]), int(inDims[2])
	}

	m.input, err = ort.NewEmptyTensor[float32](inDims)

	if err != nil {
		return nil, fmt.Errorf("error creating input tensor: %w", err)
	}

	outValues := make([]ort.Value, 0, len(outputNames))

	for _, name := range outputNames {

		var dims ort.Shape

		for _, out := range outputs {
			if out.Name == name {
				dims = out.Dimensions
			}
		}

		if len(dims) != 4 {
			m.Close()
			return nil, fmt.Errorf("model output %q not found or not rank 4", name)
		}

		dims[0] = 1
		t, err := ort.NewEmptyTensor[float32](dims)

		if err != nil {
			m.Close()
			return nil, fmt.Errorf("error creating output tensor %s: %w", name, err)
		}

		m.outputs = append(m.outputs, t)
		outValues = append(outValues, t)
	}

	m.session, err = ort.NewAdvancedSession(modelFile, []string{inputName},
		outputNames, []ort.Value{m.input}, outValues, nil)

	if err != nil {
		m.Close()
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	return m, nil
}

// InputSize returns the model input resolution
func (m *Model) InputSize() (int, int) {
	return m.width, m.height
}

// Inference runs the model on an RGB image already resized to the model
// input resolution and returns the output tensors
func (m *Model) Inference(rgbImg gocv.Mat) ([]*posenet.Tensor, error) {

	// normalize pixels to [-1, 1]
	floatImg := gocv.NewMat()
	defer floatImg.Close()
	rgbImg.ConvertToWithParams(&floatImg, gocv.MatTypeCV32FC3, 1.0/127.5, -1.0)

	data, err := floatImg.DataPtrFloat32()

	if err != nil {
		return nil, fmt.Errorf("error getting data pointer to Mat: %w", err)
	}

	dst := m.input.GetData()

	if m.inputNCHW {
		// de-interleave HWC pixels into planar channels
		plane := m.width * m.height

		for i := 0; i < plane; i++ {
			for c := 0; c < 3; c++ {
				dst[c*plane+i] = data[i*3+c]
			}
		}
	} else {
		copy(dst, data)
	}

	if err := m.session.Run(); err != nil {
		return nil, fmt.Errorf("error running model: %w", err)
	}

	tensors := make([]*posenet.Tensor, len(m.outputs))

	for i, out := range m.outputs {

		dims := out.GetShape()
		shape := []int{int(dims[1]), int(dims[2]), int(dims[3])}

		if m.outputFmt == posenet.TensorNHWC {
			shape = []int{int(dims[3]), int(dims[1]), int(dims[2])}
		}

		// copy as the session reuses the output buffers on the next run
		buf := make([]float32, len(out.GetData()))
		copy(buf, out.GetData())

		tensors[i], err = posenet.NewTensor(outputNames[i], shape, m.outputFmt, buf)

		if err != nil {
			return nil, err
		}
	}

	return tensors, nil
}

// Close releases the session and tensors
func (m *Model) Close() {

	if m.session != nil {
		m.session.Destroy()
	}

	if m.input != nil {
		m.input.Destroy()
	}

	for _, out := range m.outputs {
		out.Destroy()
	}
}
