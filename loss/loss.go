// Package loss implements the training objective for multi stage belief
// map pose networks
package loss

import (
	"fmt"
)

// MSE returns the mean squared error between two equal length tensors
func MSE(pred, target []float32) (float32, error) {

	if len(pred) != len(target) {
		return 0, fmt.Errorf("length mismatch %d != %d", len(pred), len(target))
	}

	if len(pred) == 0 {
		return 0, fmt.Errorf("empty tensors")
	}

	var sum float64

	for i := range pred {
		diff := float64(pred[i] - target[i])
		sum += diff * diff
	}

	return float32(sum / float64(len(pred))), nil
}

// Composite is the training objective of a multi stage network, the sum
// over all stages of the belief map MSE plus the vector field MSE
type Composite struct {
	// Stages is the number of refinement stages in the network
	Stages int
}

// NewComposite returns a Composite loss for a network with the given
// number of stages
func NewComposite(stages int) *Composite {
	return &Composite{Stages: stages}
}

// Loss sums the belief and vector field errors across all stages
func (c *Composite) Loss(predBelief, gtBelief, predVector, gtVector []float32) (float32, error) {

	var beliefLoss, vectorLoss float32

	for i := 0; i < c.Stages; i++ {
		b, err := MSE(predBelief, gtBelief)

		if err != nil {
			return 0, fmt.Errorf("belief stage %d: %w", i, err)
		}

		v, err := MSE(predVector, gtVector)

		if err != nil {
			return 0, fmt.Errorf("vector stage %d: %w", i, err)
		}

		beliefLoss += b
		vectorLoss += v
	}

	return beliefLoss + vectorLoss, nil
}
