package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/swdee/go-posegt"
	"gocv.io/x/gocv"
	xdraw "golang.org/x/image/draw"
)

// BeliefOverlay blends a colormapped composite of all belief map channels
// over the source image.  The composite takes the per cell maximum across
// the 9 belief channels, upscales it to image resolution and applies a jet
// colormap with the given blend weight.  img must be an 8 bit color image
// at the full resolution the ground truth was generated from
func BeliefOverlay(img *gocv.Mat, gt *posegt.GroundTruth, weight float64) error {

	// per cell maximum over all belief channels
	composite := make([]float32, gt.Height*gt.Width)

	for c := 0; c < posegt.NumBeliefMaps; c++ {
		channel := gt.Channel(c)

		for i, v := range channel {
			if v > composite[i] {
				composite[i] = v
			}
		}
	}

	grid := gocv.NewMatWithSize(gt.Height, gt.Width, gocv.MatTypeCV32F)
	defer grid.Close()

	buf, err := grid.DataPtrFloat32()

	if err != nil {
		return fmt.Errorf("error accessing grid Mat memory: %w", err)
	}

	copy(buf, composite)

	// scale [0,1] beliefs to 8 bit
	gray := gocv.NewMat()
	defer gray.Close()

	grid.ConvertToWithParams(&gray, gocv.MatTypeCV8U, 255, 0)

	// upscale to image resolution, nearest neighbor keeps cell boundaries
	// visible
	scaled := gocv.NewMat()
	defer scaled.Close()

	gocv.Resize(gray, &scaled, image.Pt(img.Cols(), img.Rows()), 0, 0,
		gocv.InterpolationNearestNeighbor)

	colored := gocv.NewMat()
	defer colored.Close()

	gocv.ApplyColorMap(scaled, &colored, gocv.ColormapJet)

	gocv.AddWeighted(*img, 1.0-weight, colored, weight, 0, img)

	return nil
}

// BeliefImage renders a single belief map channel as a grayscale image
// upscaled by the given integer factor, for dumping individual channels to
// disk without involving OpenCV
func BeliefImage(gt *posegt.GroundTruth, channel, scale int) *image.Gray {

	src := image.NewGray(image.Rect(0, 0, gt.Width, gt.Height))
	grid := gt.Channel(channel)

	for y := 0; y < gt.Height; y++ {
		for x := 0; x < gt.Width; x++ {
			src.SetGray(x, y, grayLevel(grid[y*gt.Width+x]))
		}
	}

	if scale <= 1 {
		return src
	}

	dst := image.NewGray(image.Rect(0, 0, gt.Width*scale, gt.Height*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return dst
}

// grayLevel converts a [0,1] belief value to an 8 bit gray level
func grayLevel(v float32) color.Gray {

	if v < 0 {
		v = 0
	}

	if v > 1 {
		v = 1
	}

	return color.Gray{Y: uint8(v * 255)}
}
