// Package augment implements the photometric training augmentations applied
// to input images before ground truth generation
package augment

import (
	"fmt"
	"math/rand"
	"time"

	"gocv.io/x/gocv"
)

// Params defines the configuration parameters used for image augmentation
type Params struct {
	// NoiseStdDev is the standard deviation of the additive Gaussian pixel
	// noise
	NoiseStdDev float64
	// ContrastJitter is the maximum contrast deviation, the contrast
	// multiplier is drawn uniformly from [1-ContrastJitter, 1+ContrastJitter]
	ContrastJitter float64
	// BrightnessJitter is the maximum brightness deviation as a fraction of
	// the full 8 bit range, the additive offset is drawn uniformly from
	// [-BrightnessJitter, BrightnessJitter] * 255
	BrightnessJitter float64
}

// DefaultParams returns an instance of Params configured with the default
// training augmentation values featuring:
// - Noise StdDev: 2.0
// - Contrast Jitter: 0.2
// - Brightness Jitter: 0.2
func DefaultParams() Params {
	return Params{
		NoiseStdDev:      2.0,
		ContrastJitter:   0.2,
		BrightnessJitter: 0.2,
	}
}

// Augmenter applies additive Gaussian noise and random contrast and
// brightness jitter to 8 bit color images.  An Augmenter keeps its own
// random number generator so it is not safe for concurrent use, create one
// per worker goroutine
type Augmenter struct {
	// Params are the augmentation configuration parameters
	Params Params
	// rng is the random source for noise and jitter draws
	rng *rand.Rand
}

// NewAugmenter returns an Augmenter seeded from the current time
func NewAugmenter(p Params) *Augmenter {
	return NewSeededAugmenter(p, time.Now().UnixNano())
}

// NewSeededAugmenter returns an Augmenter with a fixed random seed so the
// augmentation sequence is reproducible
func NewSeededAugmenter(p Params, seed int64) *Augmenter {
	return &Augmenter{
		Params: p,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Apply augments the src image into dest.  The image is converted to float,
// Gaussian noise is added, then a random contrast multiplier and brightness
// offset are applied before converting back to 8 bit with saturation so
// values clip to [0, 255].  src must be a 3 channel 8 bit Mat
func (a *Augmenter) Apply(src gocv.Mat, dest *gocv.Mat) error {

	if src.Empty() || src.Channels() != 3 || src.Type() != gocv.MatTypeCV8UC3 {
		return fmt.Errorf("augment requires a non-empty CV8UC3 image")
	}

	f32 := gocv.NewMat()
	defer f32.Close()

	src.ConvertTo(&f32, gocv.MatTypeCV32FC3)

	// fill a noise Mat with Gaussian samples
	noise := gocv.NewMatWithSize(src.Rows(), src.Cols(), gocv.MatTypeCV32FC3)
	defer noise.Close()

	buf, err := noise.DataPtrFloat32()

	if err != nil {
		return fmt.Errorf("error accessing noise Mat memory: %w", err)
	}

	for i := range buf {
		buf[i] = float32(a.rng.NormFloat64() * a.Params.NoiseStdDev)
	}

	noisy := gocv.NewMat()
	defer noisy.Close()

	gocv.Add(f32, noise, &noisy)

	// contrast multiplier and brightness offset over the full 8 bit range
	alpha := 1.0 + a.uniform(a.Params.ContrastJitter)
	beta := a.uniform(a.Params.BrightnessJitter) * 255

	// converting back to 8 bit saturates, clipping the result to [0, 255]
	noisy.ConvertToWithParams(dest, gocv.MatTypeCV8UC3, float32(alpha), float32(beta))

	return nil
}

// uniform draws a value uniformly from [-jitter, jitter]
func (a *Augmenter) uniform(jitter float64) float64 {
	return (a.rng.Float64()*2 - 1) * jitter
}
