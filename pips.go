package dicesvg

import (
	"strings"

	"oss.pipworks.com/dicesvg/diceskins"
	"oss.pipworks.com/dicesvg/lib/geo"
	"oss.pipworks.com/dicesvg/lib/svg"
)

// pipCells maps a face value to the occupied cells of a 3x3 keypad
// grid, numbered 1-9 row-major from the top left.
var pipCells = map[int][]int{
	1: {5},
	2: {3, 7},
	3: {3, 5, 7},
	4: {1, 3, 7, 9},
	5: {1, 3, 5, 7, 9},
	6: {1, 4, 7, 3, 6, 9},
}

// PipLayout returns the keypad cells occupied for a face value.
// Values outside 1-6 have no layout and return nil.
func PipLayout(value int) []int {
	cells, ok := pipCells[value]
	if !ok {
		return nil
	}
	out := make([]int, len(cells))
	copy(out, cells)
	return out
}

// Cell centers sit at 25%, 50% and 75% of the die edge, offset by the
// die's position on the (possibly padded) canvas.
func pipCenters(value int, die *geo.Box) []*geo.Point {
	cells := pipCells[value]
	pts := make([]*geo.Point, 0, len(cells))
	for _, cell := range cells {
		col := float64((cell - 1) % 3)
		row := float64((cell - 1) / 3)
		pts = append(pts, geo.NewPoint(
			die.TopLeft.X+die.Width*(0.25+0.25*col),
			die.TopLeft.Y+die.Height*(0.25+0.25*row),
		))
	}
	return pts
}

func renderPips(value int, skin diceskins.Skin, die *geo.Box) string {
	r := die.Width * 0.09

	var sb strings.Builder
	for _, p := range pipCenters(value, die) {
		el := svg.NewElement("circle")
		el.Cx = p.X
		el.Cy = p.Y
		el.R = r
		el.Fill = skin.Pip
		sb.WriteString(el.Render())
	}
	return sb.String()
}
