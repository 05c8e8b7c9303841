package posenet

// JointKind identifies one of the body landmarks the model is trained on.
// The numeric value is the heatmap channel for the joint, so the order
// must match the model outputs exactly.
type JointKind int

const (
	Nose JointKind = iota
	LeftEye
	RightEye
	LeftEar
	RightEar
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
)

// JointCount is the number of joints in a skeleton
const JointCount = 17

var jointNames = [JointCount]string{
	"nose", "leftEye", "rightEye", "leftEar", "rightEar",
	"leftShoulder", "rightShoulder", "leftElbow", "rightElbow",
	"leftWrist", "rightWrist", "leftHip", "rightHip",
	"leftKnee", "rightKnee", "leftAnkle", "rightAnkle",
}

// JointKinds returns every JointKind in channel order
func JointKinds() []JointKind {
	kinds := make([]JointKind, JointCount)

	for i := range kinds {
		kinds[i] = JointKind(i)
	}

	return kinds
}

// Valid reports if k is one of the defined joints
func (k JointKind) Valid() bool {
	return k >= 0 && k < JointCount
}

// String returns the joint name
func (k JointKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return jointNames[k]
}

// Cell is a grid coordinate in the model output tensors
type Cell struct {
	Row int
	Col int
}

// Point is a position in pixel space
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width and height in pixels
type Size struct {
	Width  float64
	Height float64
}

// positive reports if both dimensions are greater than zero
func (s Size) positive() bool {
	return s.Width > 0 && s.Height > 0
}
