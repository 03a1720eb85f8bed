package dataset

import (
	"fmt"

	"github.com/swdee/go-posegt"
	"github.com/swdee/go-posegt/augment"
	"github.com/swdee/go-posegt/geometry"
	"gocv.io/x/gocv"
)

// Item is one training sample, an input image tensor paired with its
// ground truth supervision maps
type Item struct {
	// Index is the sample index within the source
	Index int
	// Input is the image as a flat CHW float32 tensor scaled to [0, 1]
	Input []float32
	// InputHeight and InputWidth are the image dimensions
	InputHeight int
	InputWidth  int
	// GroundTruth holds the generated belief maps and vector fields
	GroundTruth *posegt.GroundTruth
	// Projected are the full resolution projected box corners for
	// diagnostics
	Projected []geometry.Point2D
}

// Dataset composes a sample source with a ground truth generator and
// optional augmentation into indexed training pairs
type Dataset struct {
	source SampleSource
	gen    *posegt.Generator
	aug    *augment.Augmenter
}

// NewDataset returns a Dataset producing training pairs from the given
// source and generator.  aug may be nil to disable augmentation, eg: for
// validation data
func NewDataset(source SampleSource, gen *posegt.Generator,
	aug *augment.Augmenter) *Dataset {

	return &Dataset{
		source: source,
		gen:    gen,
		aug:    aug,
	}
}

// Len returns the number of samples in the dataset
func (d *Dataset) Len() int {
	return d.source.Len()
}

// Get loads, augments and converts the sample at the given index.  Ground
// truth is generated from the first annotation of the sample.  Generation
// errors propagate to the caller, a failed sample produces no Item
func (d *Dataset) Get(index int) (*Item, error) {

	img, anns, err := d.source.Sample(index)

	if err != nil {
		return nil, fmt.Errorf("sample %d: %w", index, err)
	}

	defer img.Close()

	if len(anns) == 0 {
		return nil, fmt.Errorf("sample %d has no annotations", index)
	}

	useImg := img

	if d.aug != nil {
		augmented := gocv.NewMat()
		defer augmented.Close()

		if err := d.aug.Apply(img, &augmented); err != nil {
			return nil, fmt.Errorf("sample %d: %w", index, err)
		}

		useImg = augmented
	}

	input, err := ToCHWFloat32(useImg)

	if err != nil {
		return nil, fmt.Errorf("sample %d: %w", index, err)
	}

	gt, projected, err := d.gen.Generate(useImg.Rows(), useImg.Cols(), anns[0])

	if err != nil {
		return nil, fmt.Errorf("sample %d: %w", index, err)
	}

	return &Item{
		Index:       index,
		Input:       input,
		InputHeight: useImg.Rows(),
		InputWidth:  useImg.Cols(),
		GroundTruth: gt,
		Projected:   projected,
	}, nil
}

// ToCHWFloat32 converts an 8 bit interleaved HWC image Mat into a planar
// CHW float32 tensor with values scaled to [0, 1], the layout consumed by
// the training loop
func ToCHWFloat32(img gocv.Mat) ([]float32, error) {

	if img.Empty() {
		return nil, fmt.Errorf("image is empty")
	}

	if !img.IsContinuous() {
		img = img.Clone()
		defer img.Close()
	}

	src, err := img.DataPtrUint8()

	if err != nil {
		return nil, fmt.Errorf("error getting uint8 data from image: %w", err)
	}

	height := img.Rows()
	width := img.Cols()
	channels := img.Channels()

	out := make([]float32, channels*height*width)
	planeSize := height * width

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < channels; c++ {
				out[c*planeSize+y*width+x] =
					float32(src[(y*width+x)*channels+c]) / 255.0
			}
		}
	}

	return out, nil
}
