package postprocess

import (
	"github.com/swdee/go-posenet"
)

// Joint is a single decoded body landmark
type Joint struct {
	// Kind is the landmark this joint represents
	Kind posenet.JointKind
	// Cell is the output grid cell the joint was found in
	Cell posenet.Cell
	// Position is the joint location, in model input space after assembly
	// and in display space after remapping
	Position posenet.Point
	// Confidence is the raw heatmap score at Cell
	Confidence float64
	// IsValid is set when Confidence reaches the joint confidence threshold
	IsValid bool
}

// Pose is a complete skeleton.  Every JointKind always has an entry.
type Pose struct {
	// Joints is indexed by JointKind
	Joints [posenet.JointCount]Joint
	// Confidence is the mean confidence of all joints, valid or not
	Confidence float64
}

// Joint returns the joint of the given kind
func (p *Pose) Joint(kind posenet.JointKind) Joint {
	return p.Joints[kind]
}

// ValidJoints returns the joints marked valid in JointKind order
func (p *Pose) ValidJoints() []Joint {

	valid := make([]Joint, 0, posenet.JointCount)

	for _, j := range p.Joints {
		if j.IsValid {
			valid = append(valid, j)
		}
	}

	return valid
}

// Segments returns the skeleton edges whose two joints are both valid
func (p *Pose) Segments() []posenet.SkeletonEdge {

	var segs []posenet.SkeletonEdge

	for _, e := range posenet.Edges() {
		if p.Joints[e.From].IsValid && p.Joints[e.To].IsValid {
			segs = append(segs, e)
		}
	}

	return segs
}
