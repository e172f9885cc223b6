package model

import (
	"errors"
	"fmt"
)

// DecisionTree is a fitted classification tree stored as a flat node list.
// Leaves carry the training class counts so the tree can emit a
// probability distribution, not just a label.
type DecisionTree struct {
	Nodes []TreeNode `json:"nodes"`
}

type TreeNode struct {
	FeatureIdx  int       `json:"feature_idx"`
	Threshold   float64   `json:"threshold"`
	LeftChild   int       `json:"left_child"`
	RightChild  int       `json:"right_child"`
	ClassCounts []float64 `json:"class_counts,omitempty"`
	IsLeaf      bool      `json:"is_leaf"`
}

func (dt *DecisionTree) validate() error {
	if len(dt.Nodes) == 0 {
		return errors.New("decision tree has no nodes")
	}
	for i, node := range dt.Nodes {
		if node.IsLeaf {
			if len(node.ClassCounts) == 0 {
				return fmt.Errorf("leaf node %d has no class counts", i)
			}
			continue
		}
		if node.LeftChild < 0 || node.LeftChild >= len(dt.Nodes) ||
			node.RightChild < 0 || node.RightChild >= len(dt.Nodes) {
			return fmt.Errorf("node %d has child index out of range", i)
		}
	}
	return nil
}

func (dt *DecisionTree) Predict(features []float64) (int, error) {
	probs, err := dt.PredictProbabilities(features)
	if err != nil {
		return 0, err
	}
	return argmax(probs), nil
}

// PredictProbabilities walks the tree to a leaf and normalizes its class counts.
func (dt *DecisionTree) PredictProbabilities(features []float64) ([]float64, error) {
	if len(dt.Nodes) == 0 {
		return nil, errors.New("decision tree not loaded")
	}
	idx := 0
	for {
		node := dt.Nodes[idx]
		if node.IsLeaf {
			return normalizeCounts(node.ClassCounts)
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(features) {
			return nil, fmt.Errorf("feature index %d out of range", node.FeatureIdx)
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
		if idx < 0 || idx >= len(dt.Nodes) {
			return nil, errors.New("invalid tree state")
		}
	}
}

func normalizeCounts(counts []float64) ([]float64, error) {
	var total float64
	for _, c := range counts {
		total += c
	}
	if total <= 0 {
		return nil, errors.New("leaf class counts sum to zero")
	}
	probs := make([]float64, len(counts))
	for i, c := range counts {
		probs[i] = c / total
	}
	return probs, nil
}
