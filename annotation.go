package posegt

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Annotation holds a single object instance annotation in the BOP camera
// convention.  CamRm2c and CamTm2c are the model to camera rigid transform,
// CamK the camera intrinsic matrix, all row major
type Annotation struct {
	// CategoryID is the object category used to look up the ObjectModel
	CategoryID int `json:"category_id"`
	// CamK is the row major 3x3 camera intrinsic matrix
	CamK []float64 `json:"cam_K"`
	// CamRm2c is the row major 3x3 model to camera rotation matrix
	CamRm2c []float64 `json:"cam_R_m2c"`
	// CamTm2c is the model to camera translation vector
	CamTm2c []float64 `json:"cam_t_m2c"`
}

// Pose builds the 3x4 extrinsic matrix [R|t] from the annotation rotation
// and translation.  An ErrMalformedPose error is returned when the arrays
// have the wrong number of elements
func (a Annotation) Pose() (*mat.Dense, error) {

	if len(a.CamRm2c) != 9 || len(a.CamTm2c) != 3 {
		return nil, fmt.Errorf("rotation has %d elements, translation has %d: %w",
			len(a.CamRm2c), len(a.CamTm2c), ErrMalformedPose)
	}

	pose := mat.NewDense(3, 4, nil)

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			pose.Set(row, col, a.CamRm2c[row*3+col])
		}

		pose.Set(row, 3, a.CamTm2c[row])
	}

	return pose, nil
}

// Intrinsics builds the 3x3 camera intrinsic matrix K from the annotation.
// An ErrMalformedIntrinsics error is returned when the array has the wrong
// number of elements
func (a Annotation) Intrinsics() (*mat.Dense, error) {

	if len(a.CamK) != 9 {
		return nil, fmt.Errorf("intrinsics have %d elements: %w",
			len(a.CamK), ErrMalformedIntrinsics)
	}

	return mat.NewDense(3, 3, a.CamK), nil
}
