package render

import "image/color"

var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// Teal matches the default segment color of the original pose overlay
	Teal = color.RGBA{R: 90, G: 200, B: 250, A: 255}
	// SystemPink matches the default joint color of the original pose overlay
	SystemPink = color.RGBA{R: 255, G: 45, B: 85, A: 255}

	// body part colors used when PoseStyle.UsePalette is set
	faceColor  = color.RGBA{R: 255, G: 204, B: 0, A: 255}
	leftColor  = color.RGBA{R: 52, G: 199, B: 89, A: 255}
	rightColor = color.RGBA{R: 0, G: 122, B: 255, A: 255}
	torsoColor = color.RGBA{R: 175, G: 82, B: 222, A: 255}

	// keyPointColors are indexed by JointKind, the face joints then the
	// left and right body joints which alternate
	keyPointColors = []color.RGBA{
		faceColor, faceColor, faceColor, faceColor, faceColor,
		leftColor, rightColor, leftColor, rightColor, leftColor, rightColor,
		leftColor, rightColor, leftColor, rightColor, leftColor, rightColor,
	}

	// limbColors are indexed by edge in posenet.Edges() order
	limbColors = []color.RGBA{
		leftColor, leftColor, leftColor, leftColor, leftColor,
		rightColor, rightColor, rightColor, rightColor, rightColor,
		torsoColor, torsoColor,
	}
)
