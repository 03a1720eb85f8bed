package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const epsilon = 1e-9

// testProjector returns a projector with identity rotation, translation
// (0, 0, 10) and focal length 100 with principal point (50, 50)
func testProjector() *Projector {

	k := mat.NewDense(3, 3, []float64{
		100, 0, 50,
		0, 100, 50,
		0, 0, 1,
	})

	extrinsic := mat.NewDense(3, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 10,
	})

	return NewProjector(k, extrinsic)
}

func TestProject(t *testing.T) {

	tests := []struct {
		point     Point3D
		expectedX float64
		expectedY float64
	}{
		// point on the optical axis lands on the principal point
		{Point3D{0, 0, 0}, 50, 50},
		// x offset of 2 at depth 10 moves 100*2/10 pixels
		{Point3D{2, 0, 0}, 70, 50},
		{Point3D{0, 2, 0}, 50, 70},
		// deeper points move less
		{Point3D{2, 0, 10}, 60, 50},
	}

	pr := testProjector()

	for _, tc := range tests {
		pixels := pr.Project([]Point3D{tc.point})

		if len(pixels) != 1 {
			t.Fatalf("expected 1 projected point, got %d", len(pixels))
		}

		if math.Abs(pixels[0].X-tc.expectedX) > epsilon ||
			math.Abs(pixels[0].Y-tc.expectedY) > epsilon {
			t.Errorf("point %v: expected pixel (%f, %f), got (%f, %f)",
				tc.point, tc.expectedX, tc.expectedY, pixels[0].X, pixels[0].Y)
		}
	}
}

func TestProjectBehindCamera(t *testing.T) {

	pr := testProjector()

	// depth is z+10, so z = -10 and anything closer is degenerate
	tests := []struct {
		point      Point3D
		degenerate bool
	}{
		{Point3D{0, 0, -10}, true},
		{Point3D{0, 0, -20}, true},
		{Point3D{0, 0, -9.99}, false},
	}

	for _, tc := range tests {
		pixels := pr.Project([]Point3D{tc.point})

		if pixels[0].Degenerate() != tc.degenerate {
			t.Errorf("point %v: expected degenerate=%t, got %t",
				tc.point, tc.degenerate, pixels[0].Degenerate())
		}
	}
}

func TestCentroid(t *testing.T) {

	points := []Point2D{
		{0, 0},
		{10, 0},
		{0, 10},
		{10, 10},
	}

	c := Centroid(points)

	if math.Abs(c.X-5) > epsilon || math.Abs(c.Y-5) > epsilon {
		t.Errorf("expected centroid (5, 5), got (%f, %f)", c.X, c.Y)
	}
}

func TestCentroidDegeneratePropagates(t *testing.T) {

	points := []Point2D{
		{0, 0},
		{math.NaN(), math.NaN()},
	}

	if !Centroid(points).Degenerate() {
		t.Errorf("expected degenerate centroid when an input point is degenerate")
	}
}

func TestCentroidEmpty(t *testing.T) {

	if !Centroid(nil).Degenerate() {
		t.Errorf("expected degenerate centroid for no points")
	}
}
