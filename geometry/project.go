package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Point2D is a point in pixel coordinates
type Point2D struct {
	X float64
	Y float64
}

// Degenerate reports whether the point is the invalid sentinel produced
// when projecting a point with non positive depth
func (p Point2D) Degenerate() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Projector projects 3D points in the object frame onto the image plane
// using the precomputed projection matrix P = K * [R|t]
type Projector struct {
	// p is the 3x4 projection matrix
	p *mat.Dense
}

// NewProjector creates a Projector from the 3x3 intrinsic matrix k and the
// 3x4 extrinsic matrix [R|t]
func NewProjector(k, extrinsic mat.Matrix) *Projector {

	p := mat.NewDense(3, 4, nil)
	p.Mul(k, extrinsic)

	return &Projector{p: p}
}

// Project maps the given object frame points to pixel coordinates.  Each
// point is homogenized, multiplied by the projection matrix and divided by
// its homogeneous depth.  Points with depth <= 0 lie behind the camera and
// have no valid pixel coordinate, these are returned as the NaN sentinel
// rather than a finite but wrong pixel, check with Point2D.Degenerate
func (pr *Projector) Project(points []Point3D) []Point2D {

	pixels := make([]Point2D, len(points))
	ph := mat.NewVecDense(4, nil)
	out := mat.NewVecDense(3, nil)

	for i, pt := range points {
		ph.SetVec(0, pt.X)
		ph.SetVec(1, pt.Y)
		ph.SetVec(2, pt.Z)
		ph.SetVec(3, 1)

		out.MulVec(pr.p, ph)

		depth := out.AtVec(2)

		if depth <= 0 {
			pixels[i] = Point2D{X: math.NaN(), Y: math.NaN()}
			continue
		}

		pixels[i] = Point2D{
			X: out.AtVec(0) / depth,
			Y: out.AtVec(1) / depth,
		}
	}

	return pixels
}

// Centroid returns the arithmetic mean of the given pixel points.  The
// centroid keypoint is defined over projected 2D coordinates, not as the
// projection of the 3D box center, the two differ under perspective.  If
// any input point is degenerate the result is degenerate
func Centroid(points []Point2D) Point2D {

	if len(points) == 0 {
		return Point2D{X: math.NaN(), Y: math.NaN()}
	}

	var sumX, sumY float64

	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}

	n := float64(len(points))

	return Point2D{X: sumX / n, Y: sumY / n}
}
