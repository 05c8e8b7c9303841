package render

import (
	"fmt"
	"github.com/swdee/go-posenet/postprocess"
	"gocv.io/x/gocv"
	"image"
	"image/color"
	"math"
)

// Font defines the parameters for rendering the pose label text
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	// Pad is the space in pixels between the text and the label box edge
	Pad int
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     White,
		Thickness: 1,
		Pad:       4,
	}
}

// PoseBounds returns the rectangle enclosing the valid joints of the pose.
// The boolean is false when no joint is valid.
func PoseBounds(pose *postprocess.Pose) (image.Rectangle, bool) {

	joints := pose.ValidJoints()

	if len(joints) == 0 {
		return image.Rectangle{}, false
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, j := range joints {
		minX = math.Min(minX, j.Position.X)
		minY = math.Min(minY, j.Position.Y)
		maxX = math.Max(maxX, j.Position.X)
		maxY = math.Max(maxY, j.Position.Y)
	}

	return image.Rect(int(minX), int(minY), int(maxX), int(maxY)), true
}

// PoseLabel renders the pose confidence as a text label above the valid
// joints.  Nothing is drawn when no joint is valid.
func PoseLabel(img *gocv.Mat, pose *postprocess.Pose, font Font, clr color.RGBA) {

	if pose == nil {
		return
	}

	bounds, ok := PoseBounds(pose)

	if !ok {
		return
	}

	text := fmt.Sprintf("pose %.2f", pose.Confidence)
	textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

	left := bounds.Min.X
	top := bounds.Min.Y

	// keep the label on the image when the pose touches the top edge
	if minTop := textSize.Y + 2*font.Pad; top < minTop {
		top = minTop
	}

	// label box sits above the pose, left aligned to its bounds
	bRect := image.Rect(left, top-textSize.Y-2*font.Pad,
		left+textSize.X+2*font.Pad, top)
	gocv.Rectangle(img, bRect, clr, -1)

	gocv.PutTextWithParams(img, text, image.Pt(left+font.Pad, top-font.Pad),
		font.Face, font.Scale, font.Color, font.Thickness,
		gocv.LineAA, false)
}
