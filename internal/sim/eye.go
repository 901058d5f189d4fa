package sim

import (
	"math"

	"evosim/internal/config"
)

// Eye is a vision sensor. Its field of view is split into equally wide
// cells; each cell reports how much food it sees and how close it is.
type Eye struct {
	FOVRange float32
	FOVAngle float32
	Cells    int
}

// NewEye creates an eye from its configuration
func NewEye(cfg config.EyeConfig) Eye {
	return Eye{FOVRange: cfg.FOVRange, FOVAngle: cfg.FOVAngle, Cells: cfg.Cells}
}

// ProcessVision returns one activation per cell for an observer at position
// facing rotation. Food closer than FOVRange and inside the field of view
// adds (FOVRange - distance) / FOVRange to the cell covering it.
func (e Eye) ProcessVision(position Point, rotation float32, foods []*Food) []float32 {
	cells := make([]float32, e.Cells)

	for _, food := range foods {
		dist := position.Distance(food.Position)
		if dist >= e.FOVRange {
			continue
		}

		dx := food.Position.X - position.X
		dy := food.Position.Y - position.Y
		angle := wrapAngle(float32(math.Atan2(float64(dy), float64(dx))) - rotation)
		if angle < -e.FOVAngle/2 || angle > e.FOVAngle/2 {
			continue
		}

		// Shift into [0, FOVAngle] so the leftmost edge is cell 0.
		angle += e.FOVAngle / 2
		cell := int(angle / e.FOVAngle * float32(e.Cells))
		cell = min(cell, e.Cells-1)

		cells[cell] += (e.FOVRange - dist) / e.FOVRange
	}

	return cells
}
