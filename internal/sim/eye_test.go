package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEye() Eye {
	return Eye{FOVRange: 1, FOVAngle: math.Pi / 2, Cells: 9}
}

func foods(points ...Point) []*Food {
	out := make([]*Food, len(points))
	for i, p := range points {
		out[i] = &Food{Position: p}
	}
	return out
}

func TestEyeSeesFoodStraightAhead(t *testing.T) {
	vision := testEye().ProcessVision(Point{0.5, 0.5}, 0, foods(Point{0.75, 0.5}))

	require.Len(t, vision, 9)
	for i, v := range vision {
		if i == 4 {
			assert.InDelta(t, 0.75, v, 1e-6)
		} else {
			assert.Zero(t, v, "cell %d", i)
		}
	}
}

func TestEyeFollowsRotation(t *testing.T) {
	eye := testEye()
	food := foods(Point{0.5, 0.75})

	assert.Equal(t, make([]float32, 9), eye.ProcessVision(Point{0.5, 0.5}, 0, food))
	assert.InDelta(t, 0.75, eye.ProcessVision(Point{0.5, 0.5}, math.Pi/2, food)[4], 1e-6)
}

func TestEyeIgnoresFoodOutOfRange(t *testing.T) {
	eye := Eye{FOVRange: 0.1, FOVAngle: math.Pi, Cells: 3}
	vision := eye.ProcessVision(Point{0.5, 0.5}, 0, foods(Point{0.7, 0.5}, Point{0.3, 0.5}))
	assert.Equal(t, []float32{0, 0, 0}, vision)
}

func TestEyeSplitsFieldOfView(t *testing.T) {
	eye := Eye{FOVRange: 1, FOVAngle: math.Pi, Cells: 2}
	// Angles grow counterclockwise from the heading, so food below the
	// animal (-Y) falls into cell 0.
	vision := eye.ProcessVision(Point{0.5, 0.5}, 0, foods(
		Point{0.6, 0.6},
		Point{0.6, 0.4},
		Point{0.6, 0.41},
	))
	require.Len(t, vision, 2)
	assert.Greater(t, vision[0], float32(1))
	assert.Greater(t, vision[1], float32(0.8))
	assert.Less(t, vision[1], float32(1))
}

func TestEyeCloserFoodIsBrighter(t *testing.T) {
	eye := testEye()
	near := eye.ProcessVision(Point{0.5, 0.5}, 0, foods(Point{0.55, 0.5}))
	far := eye.ProcessVision(Point{0.5, 0.5}, 0, foods(Point{0.9, 0.5}))
	assert.Greater(t, near[4], far[4])
}
