// Package render draws generated ground truth onto images for visual
// inspection of annotation and projection quality
package render

import (
	"fmt"
	"image"

	"github.com/swdee/go-posegt/geometry"
	"gocv.io/x/gocv"
)

// boxEdges pairs the corner indices joined by a bounding box edge, using
// the fixed vertex enumeration order of geometry.BoxVertices
var boxEdges = [24]int{
	0, 1, 0, 2, 0, 3,
	1, 4, 1, 5,
	2, 4, 2, 6,
	3, 5, 3, 6,
	4, 7, 5, 7, 6, 7,
}

// ProjectedBox renders the projected 3D bounding box corners and edges for
// one object instance.  corners are the 8 full resolution projected points
// returned by the generator, in vertex enumeration order
func ProjectedBox(img *gocv.Mat, corners []geometry.Point2D, font Font,
	lineThickness int) {

	// draw box edges
	for i := 0; i < len(boxEdges)/2; i++ {
		a := corners[boxEdges[2*i]]
		b := corners[boxEdges[2*i+1]]

		gocv.Line(img, image.Pt(int(a.X), int(a.Y)), image.Pt(int(b.X), int(b.Y)),
			boxColor, lineThickness)
	}

	// draw circles at the corners with their keypoint index
	for i, c := range corners {
		pt := image.Pt(int(c.X), int(c.Y))

		gocv.Circle(img, pt, 3, cornerColors[i%len(cornerColors)], -1)

		gocv.PutTextWithParams(img, fmt.Sprintf("%d", i),
			image.Pt(pt.X+4, pt.Y-4), font.Face, font.Scale, font.Color,
			font.Thickness, font.LineType, false)
	}

	// mark the centroid keypoint
	centroid := geometry.Centroid(corners)
	gocv.Circle(img, image.Pt(int(centroid.X), int(centroid.Y)), 4,
		cornerColors[len(cornerColors)-1], -1)
}
