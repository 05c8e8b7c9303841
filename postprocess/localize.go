package postprocess

import (
	"fmt"
	"github.com/swdee/go-posenet"
)

// localizeJoint scans the heatmap channel of the joint for the cell with the
// greatest confidence and refines its position with the offsets output.
// Cells are visited row by row and a later cell only wins on a strictly
// greater score, so ties resolve to the earliest cell.  A channel without
// any positive score resolves to cell (0,0) with confidence 0.
func localizeJoint(outputs *posenet.Outputs, kind posenet.JointKind) (Joint, error) {

	var bestCell posenet.Cell
	bestConf := 0.0

	for row := 0; row < outputs.Height(); row++ {
		for col := 0; col < outputs.Width(); col++ {

			cell := posenet.Cell{Row: row, Col: col}
			conf, err := outputs.Confidence(kind, cell)

			if err != nil {
				return Joint{}, fmt.Errorf("error reading %s confidence: %w", kind, err)
			}

			if conf > bestConf {
				bestConf = conf
				bestCell = cell
			}
		}
	}

	pos, err := outputs.Position(kind, bestCell)

	if err != nil {
		return Joint{}, fmt.Errorf("error reading %s offset: %w", kind, err)
	}

	return Joint{
		Kind:       kind,
		Cell:       bestCell,
		Position:   pos,
		Confidence: bestConf,
	}, nil
}
