package render

import "image/color"

var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}

	// cornerColors is a list of distinct colors used to paint each of the
	// 8 bounding box corner keypoints plus the centroid
	cornerColors = []color.RGBA{
		{R: 255, G: 56, B: 56, A: 255},  // #FF3838
		{R: 255, G: 178, B: 29, A: 255}, // #FFB21D
		{R: 207, G: 210, B: 49, A: 255}, // #CFD231
		{R: 72, G: 249, B: 10, A: 255},  // #48F90A
		{R: 0, G: 212, B: 187, A: 255},  // #00D4BB
		{R: 0, G: 194, B: 255, A: 255},  // #00C2FF
		{R: 132, G: 56, B: 255, A: 255}, // #8438FF
		{R: 255, G: 55, B: 199, A: 255}, // #FF37C7
		{R: 255, G: 255, B: 255, A: 255}, // centroid
	}

	// boxColor is the color used to draw the projected box edges
	boxColor = color.RGBA{R: 146, G: 204, B: 23, A: 255} // #92CC17
)
