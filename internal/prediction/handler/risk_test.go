package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretRisk(t *testing.T) {
	probs := []float64{0.1, 0.7, 0.2}

	tests := []struct {
		name           string
		class          int
		wantLevel      string
		wantConfidence float64
	}{
		{"low", 0, "Low Risk", 0.1},
		{"moderate", 1, "Moderate Risk", 0.7},
		{"high", 2, "High Risk", 0.2},
		{"negative class", -1, "Unknown", 0},
		{"class beyond domain", 3, "Unknown", 0},
		{"far out of range", 42, "Unknown", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, confidence := interpretRisk(tt.class, probs)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantConfidence, confidence)
		})
	}
}

func TestInterpretRisk_ConfidenceTracksPrediction(t *testing.T) {
	for class := 0; class < 3; class++ {
		probs := []float64{0.2, 0.3, 0.5}
		_, confidence := interpretRisk(class, probs)
		assert.Equal(t, probs[class], confidence)
	}
}
