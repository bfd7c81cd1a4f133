package summary

import "math"

// silenceGate is the smallest peak derivative treated as signal. Below it
// the whole sequence is considered non-transient, which avoids amplifying
// rounding noise in near-silent or constant material.
const silenceGate = 0.001

// ComputeTransientWeights fills in the TransientWeight of every element of
// seq from the absolute derivative of the per-column peak amplitude,
// normalized by the largest derivative and compressed with a square root so
// moderate attacks still register visually. Weights are in [0, 1]; the
// column with the steepest change scores exactly 1.
//
// The first column has no left neighbour, so its derivative mirrors the
// second column's. Sequences of length 0 or 1 are left untouched.
func ComputeTransientWeights(seq Sequence) {
	if len(seq) <= 1 {
		return
	}

	derivative := make([]float64, len(seq))
	prev := seq[0].Peak()
	for i := 1; i < len(seq); i++ {
		peak := seq[i].Peak()
		derivative[i] = math.Abs(peak - prev)
		prev = peak
	}
	derivative[0] = derivative[1]

	maxDerivative := 0.0
	for _, d := range derivative {
		if d > maxDerivative {
			maxDerivative = d
		}
	}
	if maxDerivative <= silenceGate {
		return
	}

	for i := range seq {
		seq[i].TransientWeight = math.Sqrt(derivative[i] / maxDerivative)
	}
}
