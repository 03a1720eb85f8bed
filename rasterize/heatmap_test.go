package rasterize

import (
	"math"
	"testing"
)

const epsilon = 1e-6

func TestHeatmapPeak(t *testing.T) {

	grid := Heatmap(5, 5, 2, 10, 10)

	// center lands exactly on a cell so the peak value is 1.0
	if math.Abs(float64(grid[5*10+5])-1.0) > epsilon {
		t.Errorf("expected peak value 1.0 at center, got %f", grid[5*10+5])
	}

	// every other cell is strictly smaller
	for i, v := range grid {
		if i == 5*10+5 {
			continue
		}

		if v >= 1.0 {
			t.Errorf("cell %d: expected value < 1.0, got %f", i, v)
		}
	}
}

func TestHeatmapRange(t *testing.T) {

	grid := Heatmap(3.7, 6.2, 2, 12, 9)

	for i, v := range grid {
		if v < 0 || v > 1 {
			t.Errorf("cell %d: value %f outside [0, 1]", i, v)
		}
	}
}

func TestHeatmapRadialSymmetry(t *testing.T) {

	grid := Heatmap(5, 5, 2, 11, 11)

	// cells equidistant from the center hold equal values
	pairs := [][4]int{
		{5, 3, 5, 7}, // (x, y) pairs either side of center
		{3, 5, 7, 5},
		{4, 4, 6, 6},
		{4, 6, 6, 4},
		{5, 0, 0, 5},
	}

	for _, p := range pairs {
		a := grid[p[1]*11+p[0]]
		b := grid[p[3]*11+p[2]]

		if math.Abs(float64(a-b)) > epsilon {
			t.Errorf("cells (%d,%d) and (%d,%d) equidistant from center: %f != %f",
				p[0], p[1], p[2], p[3], a, b)
		}
	}
}

func TestHeatmapFractionalCenter(t *testing.T) {

	grid := Heatmap(5.5, 5.5, 2, 11, 11)

	// no cell reaches 1.0 when the center sits between cells
	for i, v := range grid {
		if float64(v) >= 1.0 {
			t.Errorf("cell %d: expected value < 1.0 for fractional center, got %f", i, v)
		}
	}

	// the four cells around the fractional center are equal by symmetry
	vals := []float32{
		grid[5*11+5], grid[5*11+6], grid[6*11+5], grid[6*11+6],
	}

	for i := 1; i < len(vals); i++ {
		if math.Abs(float64(vals[i]-vals[0])) > epsilon {
			t.Errorf("cells around fractional center differ: %f != %f", vals[i], vals[0])
		}
	}
}

func TestHeatmapOffGridCenter(t *testing.T) {

	// centers outside the grid are intentional, the grid still holds the
	// decayed tail of the Gaussian
	grid := Heatmap(-4, -4, 2, 10, 10)

	if grid[0] <= 0 {
		t.Errorf("expected non-zero tail value at nearest corner, got %f", grid[0])
	}

	// the nearest corner holds the largest value
	for i, v := range grid {
		if v > grid[0] {
			t.Errorf("cell %d: value %f exceeds nearest corner value %f", i, v, grid[0])
		}
	}
}
