package rasterize

import (
	"math"
	"testing"
)

func TestVectorFieldUnitNorm(t *testing.T) {

	vx, vy := VectorField(5, 5, 2, 2, 10, 10, 3)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {

			distX := float64(x) - 5
			distY := float64(y) - 5

			if math.Sqrt(distX*distX+distY*distY) > 3 {
				continue
			}

			// inside the radius every cell except the target holds a unit
			// vector
			if x == 2 && y == 2 {
				continue
			}

			mag := math.Sqrt(float64(vx[y*10+x]*vx[y*10+x] + vy[y*10+x]*vy[y*10+x]))

			if math.Abs(mag-1.0) > epsilon {
				t.Errorf("cell (%d,%d): expected unit magnitude, got %f", x, y, mag)
			}
		}
	}
}

func TestVectorFieldMasking(t *testing.T) {

	vx, vy := VectorField(5, 5, 2, 2, 10, 10, 3)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {

			distX := float64(x) - 5
			distY := float64(y) - 5

			if math.Sqrt(distX*distX+distY*distY) <= 3 {
				continue
			}

			if vx[y*10+x] != 0 || vy[y*10+x] != 0 {
				t.Errorf("cell (%d,%d) outside radius: expected (0,0), got (%f,%f)",
					x, y, vx[y*10+x], vy[y*10+x])
			}
		}
	}
}

func TestVectorFieldDirection(t *testing.T) {

	// source and target at the same cell, neighbors point back toward it
	vx, vy := VectorField(5, 5, 5, 5, 10, 10, 3)

	tests := []struct {
		x, y       int
		expectedVx float32
		expectedVy float32
	}{
		{3, 5, 1, 0},  // left of target points right
		{7, 5, -1, 0}, // right of target points left
		{5, 3, 0, 1},  // above target points down
		{5, 7, 0, -1}, // below target points up
	}

	for _, tc := range tests {
		gotX := vx[tc.y*10+tc.x]
		gotY := vy[tc.y*10+tc.x]

		if math.Abs(float64(gotX-tc.expectedVx)) > epsilon ||
			math.Abs(float64(gotY-tc.expectedVy)) > epsilon {
			t.Errorf("cell (%d,%d): expected (%f,%f), got (%f,%f)",
				tc.x, tc.y, tc.expectedVx, tc.expectedVy, gotX, gotY)
		}
	}

	// the degenerate cell at the target itself stays zero
	if vx[5*10+5] != 0 || vy[5*10+5] != 0 {
		t.Errorf("target cell: expected (0,0), got (%f,%f)", vx[5*10+5], vy[5*10+5])
	}
}

func TestVectorFieldDiagonal(t *testing.T) {

	vx, vy := VectorField(5, 5, 0, 0, 10, 10, 3)

	// cell at the source points diagonally toward the target at unit length
	inv := float32(1 / math.Sqrt2)

	if math.Abs(float64(vx[5*10+5]+inv)) > epsilon ||
		math.Abs(float64(vy[5*10+5]+inv)) > epsilon {
		t.Errorf("source cell: expected (%f,%f), got (%f,%f)",
			-inv, -inv, vx[5*10+5], vy[5*10+5])
	}
}
