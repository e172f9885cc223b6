package model

import (
	"errors"
	"fmt"
)

// StackingEnsemble combines the probability outputs of heterogeneous base
// estimators through a logistic-regression meta estimator. The structure
// is entirely internal to the loaded artifact; callers only see the
// Classifier interface.
type StackingEnsemble struct {
	classes int
	bases   []Classifier
	meta    *LogisticRegression
}

func (se *StackingEnsemble) Classes() int {
	return se.classes
}

func (se *StackingEnsemble) Predict(features []float64) (int, error) {
	probs, err := se.PredictProbabilities(features)
	if err != nil {
		return 0, err
	}
	return argmax(probs), nil
}

// PredictProbabilities stacks each base estimator's class distribution into
// one meta-feature vector and lets the meta estimator produce the final
// distribution.
func (se *StackingEnsemble) PredictProbabilities(features []float64) ([]float64, error) {
	if len(se.bases) == 0 || se.meta == nil {
		return nil, errors.New("stacking ensemble not loaded")
	}

	stacked := make([]float64, 0, len(se.bases)*se.classes)
	for i, base := range se.bases {
		probs, err := base.PredictProbabilities(features)
		if err != nil {
			return nil, fmt.Errorf("base estimator %d: %w", i, err)
		}
		if len(probs) != se.classes {
			return nil, fmt.Errorf("base estimator %d returned %d classes, expected %d", i, len(probs), se.classes)
		}
		stacked = append(stacked, probs...)
	}

	final, err := se.meta.PredictProbabilities(stacked)
	if err != nil {
		return nil, fmt.Errorf("meta estimator: %w", err)
	}
	if len(final) != se.classes {
		return nil, fmt.Errorf("meta estimator returned %d classes, expected %d", len(final), se.classes)
	}
	return final, nil
}
