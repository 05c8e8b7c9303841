package render

import (
	"github.com/swdee/go-posenet"
	"github.com/swdee/go-posenet/postprocess"
	"gocv.io/x/gocv"
	"image"
	"image/color"
)

// PoseStyle defines the parameters used for rendering a pose skeleton
type PoseStyle struct {
	// UsePalette colors each limb and joint by body part.  If set to false
	// then SegmentColor and JointColor are used
	UsePalette       bool
	SegmentColor     color.RGBA
	SegmentThickness int
	JointColor       color.RGBA
	JointRadius      int
}

// DefaultPoseStyle returns default pose style settings
func DefaultPoseStyle() PoseStyle {
	return PoseStyle{
		UsePalette:       false,
		SegmentColor:     Teal,
		SegmentThickness: 2,
		JointColor:       SystemPink,
		JointRadius:      4,
	}
}

// PoseSkeleton renders the decoded pose onto the image.  A segment is drawn
// for each skeleton edge where both joints are valid, then the valid joints
// are drawn as filled circles over the segments.  Joint positions must
// already be mapped to the image resolution.
func PoseSkeleton(img *gocv.Mat, pose *postprocess.Pose, style PoseStyle) {

	if pose == nil {
		return
	}

	// draw skeleton lines
	for i, edge := range posenet.Edges() {

		from := pose.Joint(edge.From)
		to := pose.Joint(edge.To)

		if !from.IsValid || !to.IsValid {
			continue
		}

		clr := style.SegmentColor

		if style.UsePalette {
			clr = limbColors[i]
		}

		gocv.Line(img, toPt(from.Position), toPt(to.Position), clr,
			style.SegmentThickness)
	}

	// draw circles at skeleton joints
	for _, joint := range pose.ValidJoints() {

		clr := style.JointColor

		if style.UsePalette {
			clr = keyPointColors[joint.Kind]
		}

		gocv.Circle(img, toPt(joint.Position), style.JointRadius, clr, -1)
	}
}

// toPt converts a pixel position to an image point
func toPt(p posenet.Point) image.Point {
	return image.Pt(int(p.X), int(p.Y))
}
