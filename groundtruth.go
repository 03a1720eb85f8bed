package posegt

import (
	"fmt"

	"github.com/swdee/go-posegt/geometry"
	"github.com/swdee/go-posegt/rasterize"
	"github.com/x448/float16"
)

// channel layout constants of the ground truth tensor
const (
	// NumCorners is the number of bounding box corner keypoints
	NumCorners = 8
	// NumBeliefMaps is one belief map per corner plus one for the centroid
	NumBeliefMaps = NumCorners + 1
	// NumVectorChannels is an x and y component grid per corner
	NumVectorChannels = NumCorners * 2
	// NumChannels is the total channel count of the ground truth tensor
	NumChannels = NumBeliefMaps + NumVectorChannels
)

// Params defines the configuration parameters used for ground truth map
// generation
type Params struct {
	// DownsampleFactor is the ratio between the input image resolution and
	// the output map resolution, matching the stride of the network being
	// trained
	DownsampleFactor int
	// GaussianSigma is the standard deviation of the rendered belief map
	// Gaussians, in downsampled grid units
	GaussianSigma float64
	// VectorRadius is the radius around each corner keypoint within which
	// the centroid vector field is written, in downsampled grid units
	VectorRadius float64
}

// LineMODParams returns an instance of Params configured with the defaults
// used for training on the LineMOD dataset featuring:
// - Downsample Factor: 8
// - Gaussian Sigma: 2.0
// - Vector Radius: 3
func LineMODParams() Params {
	return Params{
		DownsampleFactor: 8,
		GaussianSigma:    2.0,
		VectorRadius:     3,
	}
}

// GroundTruth is the generated supervision tensor for one object instance.
// Data is a flat CHW float32 slice of NumChannels channels at the
// downsampled grid resolution.  Channels 0-7 are the corner belief maps in
// vertex enumeration order, channel 8 the centroid belief map, channels
// 9-24 the interleaved (x, y) vector field pairs per corner
type GroundTruth struct {
	// Height and Width are the downsampled grid dimensions
	Height int
	Width  int
	// Data holds the channel stacked maps
	Data []float32
}

// Channel returns the flat grid of the given channel as a subslice of Data
func (g *GroundTruth) Channel(c int) []float32 {
	size := g.Height * g.Width
	return g.Data[c*size : (c+1)*size]
}

// At returns the value at channel c, row y, column x
func (g *GroundTruth) At(c, y, x int) float32 {
	return g.Data[c*g.Height*g.Width+y*g.Width+x]
}

// ToFloat16 converts the tensor data to half precision for consumers
// training in fp16
func (g *GroundTruth) ToFloat16() []float16.Float16 {

	out := make([]float16.Float16, len(g.Data))

	for i, v := range g.Data {
		out[i] = float16.Fromfloat32(v)
	}

	return out
}

// Generator produces ground truth tensors from object instance annotations.
// Generate is a pure function of its inputs with no shared mutable state, a
// single Generator may be used from multiple goroutines concurrently as
// long as the model table is not modified after creation
type Generator struct {
	// Params are the map generation configuration parameters
	Params Params
	// models is the read only object model lookup table
	models *ModelTable
}

// NewGenerator returns a Generator using the given model table and
// parameters
func NewGenerator(models *ModelTable, p Params) *Generator {
	return &Generator{
		Params: p,
		models: models,
	}
}

// Generate creates the ground truth tensor for one annotated object
// instance in an image of imgHeight x imgWidth pixels.  It also returns the
// 8 projected corner points at full image resolution for diagnostics and
// visualization.
//
// Keypoint centers are divided by the downsample factor in real arithmetic,
// so belief map peaks and vector origins sit at fractional sub-cell
// positions rather than being floored to the nearest cell.
//
// Generation fails with ErrInvalidInputSize when the downsampled grid would
// be empty, ErrModelNotFound for an unknown category and
// ErrDegenerateProjection when any box corner lies behind the camera.  A
// failed instance produces no tensor
func (g *Generator) Generate(imgHeight, imgWidth int, ann Annotation) (*GroundTruth, []geometry.Point2D, error) {

	ds := g.Params.DownsampleFactor

	gridH := imgHeight / ds
	gridW := imgWidth / ds

	if gridH < 1 || gridW < 1 {
		return nil, nil, fmt.Errorf("image %dx%d with downsample factor %d: %w",
			imgWidth, imgHeight, ds, ErrInvalidInputSize)
	}

	model, err := g.models.Lookup(ann.CategoryID)

	if err != nil {
		return nil, nil, err
	}

	k, err := ann.Intrinsics()

	if err != nil {
		return nil, nil, err
	}

	pose, err := ann.Pose()

	if err != nil {
		return nil, nil, err
	}

	// build and project the bounding box corners
	vertices := geometry.BoxVertices(model.MinX, model.MinY, model.MinZ,
		model.SizeX, model.SizeY, model.SizeZ)

	projector := geometry.NewProjector(k, pose)
	projected := projector.Project(vertices[:])

	for i, p := range projected {
		if p.Degenerate() {
			return nil, nil, fmt.Errorf("vertex %d: %w", i, ErrDegenerateProjection)
		}
	}

	// centroid is the mean of the projected 2D corners at full resolution
	centroid := geometry.Centroid(projected)

	gt := &GroundTruth{
		Height: gridH,
		Width:  gridW,
		Data:   make([]float32, NumChannels*gridH*gridW),
	}

	downCentroid := geometry.Point2D{
		X: centroid.X / float64(ds),
		Y: centroid.Y / float64(ds),
	}

	for i, p := range projected {
		down := geometry.Point2D{
			X: p.X / float64(ds),
			Y: p.Y / float64(ds),
		}

		belief := rasterize.Heatmap(down.X, down.Y, g.Params.GaussianSigma,
			gridH, gridW)
		copy(gt.Channel(i), belief)

		vx, vy := rasterize.VectorField(down.X, down.Y,
			downCentroid.X, downCentroid.Y, gridH, gridW, g.Params.VectorRadius)
		copy(gt.Channel(NumBeliefMaps+2*i), vx)
		copy(gt.Channel(NumBeliefMaps+2*i+1), vy)
	}

	belief := rasterize.Heatmap(downCentroid.X, downCentroid.Y,
		g.Params.GaussianSigma, gridH, gridW)
	copy(gt.Channel(NumCorners), belief)

	return gt, projected, nil
}
