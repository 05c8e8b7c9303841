package postprocess

import (
	"fmt"
	"github.com/swdee/go-posenet"
	"gonum.org/v1/gonum/mat"
)

// Transform is a 2D affine transform held as a 3x3 homogeneous matrix
type Transform struct {
	m *mat.Dense
}

// NewScaleTransform returns the transform mapping positions in model input
// space onto an image of the display size.  The x and y axes are scaled
// independently and there is no translation or rotation.
func NewScaleTransform(modelInput, display posenet.Size) (Transform, error) {

	if modelInput.Width <= 0 || modelInput.Height <= 0 {
		return Transform{}, &posenet.ConfigError{
			Field:  "modelInputSize",
			Reason: fmt.Sprintf("must be positive, got %vx%v", modelInput.Width, modelInput.Height),
		}
	}

	if display.Width <= 0 || display.Height <= 0 {
		return Transform{}, &posenet.ConfigError{
			Field:  "displaySize",
			Reason: fmt.Sprintf("must be positive, got %vx%v", display.Width, display.Height),
		}
	}

	scaleX := display.Width / modelInput.Width
	scaleY := display.Height / modelInput.Height

	return Transform{
		m: mat.NewDense(3, 3, []float64{
			scaleX, 0, 0,
			0, scaleY, 0,
			0, 0, 1,
		}),
	}, nil
}

// Scale returns the x and y scale factors of the transform
func (t Transform) Scale() (float64, float64) {
	return t.m.At(0, 0), t.m.At(1, 1)
}

// Apply returns p mapped through the transform
func (t Transform) Apply(p posenet.Point) posenet.Point {

	var out mat.VecDense
	out.MulVec(t.m, mat.NewVecDense(3, []float64{p.X, p.Y, 1}))

	return posenet.Point{X: out.AtVec(0), Y: out.AtVec(1)}
}

// Invert returns the transform mapping display space back to model input
// space
func (t Transform) Invert() (Transform, error) {

	var inv mat.Dense

	if err := inv.Inverse(t.m); err != nil {
		return Transform{}, fmt.Errorf("error inverting transform: %w", err)
	}

	return Transform{m: &inv}, nil
}

// Remap rewrites every joint position of the pose in place from model input
// space into display space.  Invalid joints are mapped as well.
func Remap(pose *Pose, modelInput, display posenet.Size) error {

	if pose == nil {
		return &posenet.ConfigError{Field: "pose", Reason: "nil pose"}
	}

	t, err := NewScaleTransform(modelInput, display)

	if err != nil {
		return err
	}

	for i := range pose.Joints {
		pose.Joints[i].Position = t.Apply(pose.Joints[i].Position)
	}

	return nil
}
