package rasterize

import (
	"math"
)

// VectorField renders a pair of grids (vx, vy) holding unit vectors that
// point from each cell toward the target point (tx, ty).  Only cells within
// radius of the source point (sx, sy) are written, everything outside the
// disk is exactly zero so each keypoint only supervises its local
// neighborhood.  The cell at the target itself has no direction and stays
// zero
func VectorField(sx, sy, tx, ty float64, height, width int, radius float64) (vx, vy []float32) {

	vx = make([]float32, height*width)
	vy = make([]float32, height*width)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {

			// distance from this cell to the source keypoint
			distX := float64(x) - sx
			distY := float64(y) - sy

			if math.Sqrt(distX*distX+distY*distY) > radius {
				continue
			}

			// direction from this cell toward the target
			dirX := tx - float64(x)
			dirY := ty - float64(y)

			magnitude := math.Sqrt(dirX*dirX + dirY*dirY)

			if magnitude == 0 {
				continue
			}

			vx[y*width+x] = float32(dirX / magnitude)
			vy[y*width+x] = float32(dirY / magnitude)
		}
	}

	return vx, vy
}
