package clockface

import "math"

// Positions are measured in clock-position units: 60 to a revolution,
// 0 at twelve o'clock, increasing clockwise.
const positionsPerTurn = 60

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Coord maps a clock position at the given distance from center onto one
// pixel axis. Trigonometric zero points at three o'clock, so positions are
// shifted back a quarter turn first.
func Coord(axis Axis, position, length, center float64) float64 {
	position -= 15
	if position < 0 {
		position += positionsPerTurn
	}
	radians := position * 2 * math.Pi / positionsPerTurn

	switch axis {
	case AxisX:
		return center + length*math.Cos(radians)
	case AxisY:
		return center + length*math.Sin(radians)
	default:
		return 0
	}
}

// Point returns both coordinates of a clock position.
func Point(position, length, center float64) (x, y float64) {
	return Coord(AxisX, position, length, center), Coord(AxisY, position, length, center)
}
