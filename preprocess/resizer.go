package preprocess

import (
	"github.com/swdee/go-posenet"
	"gocv.io/x/gocv"
	"image"
)

// Resizer defines the struct used for scaling source frames to the model
// input resolution
type Resizer struct {
	// srcWidth is the width of the source image
	srcWidth int
	// srcHeight is the height of the source image
	srcHeight int
	// destWidth is the model input width to scale to
	destWidth int
	// destHeight is the model input height to scale to
	destHeight int
}

// NewResizer returns a resizer used for scaling an image to the needed
// dimensions for input tensor size
func NewResizer(srcWidth, srcHeight, destWidth, destHeight int) *Resizer {
	return &Resizer{
		srcWidth:   srcWidth,
		srcHeight:  srcHeight,
		destWidth:  destWidth,
		destHeight: destHeight,
	}
}

// Resize stretches the source image to the model input dimensions.  The
// aspect ratio is not kept so the x and y axes may be scaled by different
// amounts, which is reversed by remapping the decoded pose to DisplaySize.
func (r *Resizer) Resize(src gocv.Mat, dest *gocv.Mat) {
	gocv.Resize(src, dest, image.Pt(r.destWidth, r.destHeight),
		0, 0, gocv.InterpolationArea)
}

// ModelInputSize returns the resolution frames are scaled to
func (r *Resizer) ModelInputSize() posenet.Size {
	return posenet.Size{Width: float64(r.destWidth), Height: float64(r.destHeight)}
}

// DisplaySize returns the resolution of the source frames
func (r *Resizer) DisplaySize() posenet.Size {
	return posenet.Size{Width: float64(r.srcWidth), Height: float64(r.srcHeight)}
}
