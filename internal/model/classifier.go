package model

// Classifier is the opaque capability the serving pipeline depends on.
// Implementations must be read-only per call and safe for concurrent use.
type Classifier interface {
	Predict(features []float64) (int, error)
	PredictProbabilities(features []float64) ([]float64, error)
}

// Transformer applies a fitted, per-feature affine transform.
type Transformer interface {
	Transform(features []float64) ([]float64, error)
}

func argmax(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}
