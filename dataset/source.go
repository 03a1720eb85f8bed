// Package dataset turns indexed (image, annotation) samples into training
// pairs of input tensors and ground truth maps, with optional augmentation
// and batched loading across worker goroutines
package dataset

import (
	"github.com/swdee/go-posegt"
	"gocv.io/x/gocv"
)

// SampleSource is the minimal capability the dataset needs from an indexed
// annotation store.  Implementations typically wrap a COCO style index of a
// BOP/LineMOD dataset, the dataset never depends on a concrete storage
// format.  Sample returns the decoded image and the object instance
// annotations for the given index, ownership of the Mat passes to the
// caller which must Close it
type SampleSource interface {
	// Len returns the number of samples available
	Len() int
	// Sample returns the image and annotations at the given index
	Sample(index int) (gocv.Mat, []posegt.Annotation, error)
}
