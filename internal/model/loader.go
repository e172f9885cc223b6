package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	estimatorTypeLogisticRegression = "logistic_regression"
	estimatorTypeDecisionTree       = "decision_tree"
)

// Artifacts holds the fitted scaler and classifier loaded at startup.
// Immutable after load; shared read-only by all requests.
type Artifacts struct {
	Scaler     *StandardScaler
	Classifier Classifier
}

type classifierArtifact struct {
	Version        string              `json:"version"`
	Classes        int                 `json:"classes"`
	BaseEstimators []estimatorSpec     `json:"base_estimators"`
	MetaEstimator  *LogisticRegression `json:"meta_estimator"`
}

type estimatorSpec struct {
	Name               string              `json:"name"`
	Type               string              `json:"type"`
	LogisticRegression *LogisticRegression `json:"logistic_regression,omitempty"`
	DecisionTree       *DecisionTree       `json:"decision_tree,omitempty"`
}

// Load reads both model artifacts from disk. Any failure here is a
// configuration fault: the caller logs it and leaves the predictor
// unconfigured rather than serving with partial artifacts.
func Load(scalerPath, classifierPath string) (*Artifacts, error) {
	scaler, err := LoadScaler(scalerPath)
	if err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}
	classifier, err := LoadClassifier(classifierPath)
	if err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}
	return &Artifacts{Scaler: scaler, Classifier: classifier}, nil
}

// LoadScaler reads a fitted StandardScaler artifact from a JSON file.
func LoadScaler(path string) (*StandardScaler, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scaler StandardScaler
	if err := json.Unmarshal(payload, &scaler); err != nil {
		return nil, err
	}
	if err := scaler.validate(); err != nil {
		return nil, err
	}
	log.Info().Msgf("Loaded scaler artifact version %s with %d features", scaler.Version, len(scaler.Mean))
	return &scaler, nil
}

// LoadClassifier reads a fitted stacking ensemble artifact from a JSON file.
func LoadClassifier(path string) (*StackingEnsemble, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var artifact classifierArtifact
	if err := json.Unmarshal(payload, &artifact); err != nil {
		return nil, err
	}

	if artifact.Classes <= 0 {
		return nil, errors.New("classifier artifact has no class count")
	}
	if len(artifact.BaseEstimators) == 0 {
		return nil, errors.New("classifier artifact has no base estimators")
	}
	if artifact.MetaEstimator == nil {
		return nil, errors.New("classifier artifact has no meta estimator")
	}
	if err := artifact.MetaEstimator.validate(); err != nil {
		return nil, fmt.Errorf("meta estimator: %w", err)
	}

	bases := make([]Classifier, 0, len(artifact.BaseEstimators))
	for _, spec := range artifact.BaseEstimators {
		base, err := buildEstimator(spec)
		if err != nil {
			return nil, err
		}
		bases = append(bases, base)
	}

	log.Info().Msgf("Loaded classifier artifact version %s with %d base estimators over %d classes",
		artifact.Version, len(bases), artifact.Classes)
	return &StackingEnsemble{
		classes: artifact.Classes,
		bases:   bases,
		meta:    artifact.MetaEstimator,
	}, nil
}

func buildEstimator(spec estimatorSpec) (Classifier, error) {
	switch spec.Type {
	case estimatorTypeLogisticRegression:
		if spec.LogisticRegression == nil {
			return nil, fmt.Errorf("estimator %q has no logistic regression payload", spec.Name)
		}
		if err := spec.LogisticRegression.validate(); err != nil {
			return nil, fmt.Errorf("estimator %q: %w", spec.Name, err)
		}
		return spec.LogisticRegression, nil
	case estimatorTypeDecisionTree:
		if spec.DecisionTree == nil {
			return nil, fmt.Errorf("estimator %q has no decision tree payload", spec.Name)
		}
		if err := spec.DecisionTree.validate(); err != nil {
			return nil, fmt.Errorf("estimator %q: %w", spec.Name, err)
		}
		return spec.DecisionTree, nil
	default:
		return nil, fmt.Errorf("unsupported estimator type %q", spec.Type)
	}
}
