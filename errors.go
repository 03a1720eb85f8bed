package posegt

import (
	"errors"
)

// errors returned during ground truth generation.  all of these indicate a
// structural problem with the input sample, none are retryable as generation
// is deterministic
var (
	// ErrModelNotFound occurs when an annotation references a category ID
	// that has no ObjectModel in the model table
	ErrModelNotFound = errors.New("no object model for category")
	// ErrMalformedPose occurs when the annotation rotation or translation
	// arrays do not reshape to a 3x3 matrix and 3x1 vector
	ErrMalformedPose = errors.New("pose does not reshape to 3x3 rotation and 3x1 translation")
	// ErrMalformedIntrinsics occurs when the annotation camera matrix does
	// not reshape to 3x3
	ErrMalformedIntrinsics = errors.New("camera intrinsics do not reshape to 3x3")
	// ErrInvalidInputSize occurs when the image is smaller than one cell of
	// the downsampled output grid.  The caller should skip or resize the
	// sample
	ErrInvalidInputSize = errors.New("image size too small for downsample factor")
	// ErrDegenerateProjection occurs when a bounding box vertex has non
	// positive depth in the camera frame, ie: it lies behind the camera and
	// has no valid pixel coordinate
	ErrDegenerateProjection = errors.New("projected point has non-positive depth")
)
