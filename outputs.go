package posenet

import (
	"fmt"
	"math"
)

// Feature names of the PoseNet model outputs
const (
	FeatureHeatmap              = "heatmap"
	FeatureOffsets              = "offsets"
	FeatureBackwardDisplacement = "displacementBwd"
	FeatureForwardDisplacement  = "displacementFwd"
)

// Outputs binds the four PoseNet output tensors of a single inference
// together with the model constants needed to decode them.  Construct with
// NewOutputs, which guarantees every tensor is present and has the expected
// shape.
type Outputs struct {
	Heatmap                 *Tensor
	Offsets                 *Tensor
	ForwardDisplacementMap  *Tensor
	BackwardDisplacementMap *Tensor
	// ModelInputSize is the resolution of the image the model was run on
	ModelInputSize Size
	// OutputStride is the downsampling factor between model input pixels
	// and output grid cells
	OutputStride int
}

// NewOutputs matches the given tensors to the PoseNet outputs by feature name
// and validates their shapes.  All errors returned match ErrConfiguration.
// Tensor values are not read.
func NewOutputs(tensors []*Tensor, modelInputSize Size,
	stride int) (*Outputs, error) {

	o := &Outputs{
		ModelInputSize: modelInputSize,
		OutputStride:   stride,
	}

	for _, t := range tensors {
		if t == nil {
			return nil, &ConfigError{Field: "tensors", Reason: "nil tensor"}
		}

		var slot **Tensor

		switch t.Name {
		case FeatureHeatmap:
			slot = &o.Heatmap
		case FeatureOffsets:
			slot = &o.Offsets
		case FeatureForwardDisplacement:
			slot = &o.ForwardDisplacementMap
		case FeatureBackwardDisplacement:
			slot = &o.BackwardDisplacementMap
		default:
			return nil, &ConfigError{Field: t.Name, Reason: "unrecognised model output"}
		}

		if *slot != nil {
			return nil, &ConfigError{Field: t.Name, Reason: "duplicate model output"}
		}

		*slot = t
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate checks the model constants are positive, every tensor is present
// and the tensor shapes agree with the heatmap grid.  Outputs built by hand
// rather than by NewOutputs must pass Validate before they are decoded.
func (o *Outputs) Validate() error {

	if !o.ModelInputSize.positive() {
		return &ConfigError{
			Field:  "modelInputSize",
			Reason: fmt.Sprintf("must be positive, got %vx%v", o.ModelInputSize.Width, o.ModelInputSize.Height),
		}
	}

	if o.OutputStride <= 0 {
		return &ConfigError{
			Field:  "outputStride",
			Reason: fmt.Sprintf("must be positive, got %d", o.OutputStride),
		}
	}

	required := []struct {
		name     string
		tensor   *Tensor
		channels int
	}{
		{FeatureHeatmap, o.Heatmap, JointCount},
		{FeatureOffsets, o.Offsets, 2 * JointCount},
		{FeatureForwardDisplacement, o.ForwardDisplacementMap, 2 * EdgeCount},
		{FeatureBackwardDisplacement, o.BackwardDisplacementMap, 2 * EdgeCount},
	}

	for _, r := range required {
		if r.tensor == nil {
			return &ConfigError{Field: r.name, Reason: "missing model output"}
		}
	}

	height := o.Heatmap.Height()
	width := o.Heatmap.Width()

	for _, r := range required {
		want := [3]int{r.channels, height, width}

		if r.tensor.Shape() != want {
			return &ConfigError{
				Field:  r.name,
				Reason: fmt.Sprintf("shape %v, expected %v", r.tensor.Shape(), want),
			}
		}
	}

	return nil
}

// Height returns the number of rows in the output grid
func (o *Outputs) Height() int {
	return o.Heatmap.Height()
}

// Width returns the number of columns in the output grid
func (o *Outputs) Width() int {
	return o.Heatmap.Width()
}

// Confidence returns the heatmap value for the joint at the given cell
func (o *Outputs) Confidence(kind JointKind, cell Cell) (float64, error) {
	v, err := o.Heatmap.At(int(kind), cell.Row, cell.Col)
	return float64(v), err
}

// Offset returns the sub cell position correction for the joint at the given
// cell.  The vertical component is stored at channel kind and the horizontal
// component at channel kind+JointCount.
func (o *Outputs) Offset(kind JointKind, cell Cell) (Point, error) {

	dy, err := o.Offsets.At(int(kind), cell.Row, cell.Col)

	if err != nil {
		return Point{}, err
	}

	dx, err := o.Offsets.At(int(kind)+JointCount, cell.Row, cell.Col)

	if err != nil {
		return Point{}, err
	}

	return Point{X: float64(dx), Y: float64(dy)}, nil
}

// Position returns the joint position in model input space for the given
// cell, being the cell origin scaled by the output stride plus the offset
func (o *Outputs) Position(kind JointKind, cell Cell) (Point, error) {

	offset, err := o.Offset(kind, cell)

	if err != nil {
		return Point{}, err
	}

	coarse := Point{
		X: float64(cell.Col * o.OutputStride),
		Y: float64(cell.Row * o.OutputStride),
	}

	return coarse.Add(offset), nil
}

// ForwardDisplacement returns the displacement vector for the edge at the
// given cell, pointing from the edge's From joint towards its To joint
func (o *Outputs) ForwardDisplacement(edge int, cell Cell) (Point, error) {
	return displacement(o.ForwardDisplacementMap, edge, cell)
}

// BackwardDisplacement returns the displacement vector for the edge at the
// given cell, pointing from the edge's To joint back to its From joint
func (o *Outputs) BackwardDisplacement(edge int, cell Cell) (Point, error) {
	return displacement(o.BackwardDisplacementMap, edge, cell)
}

// displacement reads the vertical component at channel edge and the
// horizontal component at channel edge+EdgeCount
func displacement(t *Tensor, edge int, cell Cell) (Point, error) {

	if edge < 0 || edge >= EdgeCount {
		return Point{}, &IndexError{
			Tensor: t.Name,
			Index:  [3]int{edge, cell.Row, cell.Col},
			Shape:  t.Shape(),
		}
	}

	dy, err := t.At(edge, cell.Row, cell.Col)

	if err != nil {
		return Point{}, err
	}

	dx, err := t.At(edge+EdgeCount, cell.Row, cell.Col)

	if err != nil {
		return Point{}, err
	}

	return Point{X: float64(dx), Y: float64(dy)}, nil
}

// CellFor returns the grid cell nearest to a position in model input space.
// The boolean is false when the position maps outside the grid.
func (o *Outputs) CellFor(p Point) (Cell, bool) {

	row := int(math.Round(p.Y / float64(o.OutputStride)))
	col := int(math.Round(p.X / float64(o.OutputStride)))

	if row < 0 || row >= o.Height() || col < 0 || col >= o.Width() {
		return Cell{}, false
	}

	return Cell{Row: row, Col: col}, true
}
