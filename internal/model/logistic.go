package model

import (
	"errors"
	"fmt"
	"math"
)

// LogisticRegression is a fitted multinomial logistic regression.
// Coefficients is classes x features; Intercepts is per class.
type LogisticRegression struct {
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

func (lr *LogisticRegression) validate() error {
	if len(lr.Coefficients) == 0 {
		return errors.New("logistic regression has no coefficients")
	}
	if len(lr.Intercepts) != len(lr.Coefficients) {
		return fmt.Errorf("logistic regression intercepts length mismatch: %d vs %d",
			len(lr.Intercepts), len(lr.Coefficients))
	}
	width := len(lr.Coefficients[0])
	for _, row := range lr.Coefficients {
		if len(row) != width {
			return errors.New("logistic regression coefficient rows have uneven length")
		}
	}
	return nil
}

func (lr *LogisticRegression) Predict(features []float64) (int, error) {
	probs, err := lr.PredictProbabilities(features)
	if err != nil {
		return 0, err
	}
	return argmax(probs), nil
}

// PredictProbabilities computes the softmax over per-class linear scores.
func (lr *LogisticRegression) PredictProbabilities(features []float64) ([]float64, error) {
	if len(lr.Coefficients) == 0 {
		return nil, errors.New("logistic regression not loaded")
	}
	if len(features) != len(lr.Coefficients[0]) {
		return nil, fmt.Errorf("expected %d features, got %d", len(lr.Coefficients[0]), len(features))
	}

	scores := make([]float64, len(lr.Coefficients))
	for k, row := range lr.Coefficients {
		score := lr.Intercepts[k]
		for i, w := range row {
			score += w * features[i]
		}
		scores[k] = score
	}

	// softmax, shifted by the max score for numerical stability
	maxScore := scores[argmax(scores)]
	var sum float64
	probs := make([]float64, len(scores))
	for k, score := range scores {
		probs[k] = math.Exp(score - maxScore)
		sum += probs[k]
	}
	for k := range probs {
		probs[k] /= sum
	}
	return probs, nil
}
