// Package rasterize renders the per keypoint Gaussian belief maps and
// centroid vector fields over the downsampled output grid.  Grids are flat
// row major float32 slices indexed y*width+x
package rasterize

import (
	"math"
)

// Heatmap renders a 2D Gaussian belief map of the given grid size centered
// at (cx, cy).  Each cell holds exp(-d²/(2σ²)) of its distance d to the
// center, no normalization is applied so the peak value is 1.0 when the
// center lands exactly on a cell.  The center may be fractional or lie
// outside the grid, the full grid is still evaluated which produces a
// decayed tail of an off grid Gaussian
func Heatmap(cx, cy, sigma float64, height, width int) []float32 {

	grid := make([]float32, height*width)
	denom := 2 * sigma * sigma

	for y := 0; y < height; y++ {
		dy := float64(y) - cy

		for x := 0; x < width; x++ {
			dx := float64(x) - cx

			grid[y*width+x] = float32(math.Exp(-(dx*dx + dy*dy) / denom))
		}
	}

	return grid
}
