package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/repositories/sql/assessment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScaler struct {
	calls int
}

func (s *stubScaler) Transform(features []float64) ([]float64, error) {
	s.calls++
	return features, nil
}

type stubClassifier struct {
	class int
	probs []float64
	calls int
}

func (s *stubClassifier) Predict(features []float64) (int, error) {
	s.calls++
	return s.class, nil
}

func (s *stubClassifier) PredictProbabilities(features []float64) ([]float64, error) {
	s.calls++
	return s.probs, nil
}

type stubArchive struct {
	records   []*assessment.Assessment
	createErr error
}

func (a *stubArchive) Create(record *assessment.Assessment) error {
	if a.createErr != nil {
		return a.createErr
	}
	a.records = append(a.records, record)
	return nil
}

func (a *stubArchive) Ping() error {
	return nil
}

func fullInputs() map[string]interface{} {
	inputs := make(map[string]interface{}, len(featureOrder))
	for i, name := range featureOrder {
		inputs[name] = float64(i + 1)
	}
	return inputs
}

func newRequest(inputs map[string]interface{}) PredictRequest {
	return PredictRequest{
		PatientInfo: map[string]interface{}{"name": "Jane Doe", "contact": "none"},
		ModelInputs: inputs,
	}
}

func TestPredict_ModerateRisk(t *testing.T) {
	archive := &stubArchive{}
	predictor := NewV1Predictor(
		&stubScaler{},
		&stubClassifier{class: 1, probs: []float64{0.1, 0.7, 0.2}},
		archive,
	)

	response, apiErr := predictor.Predict(newRequest(fullInputs()))
	require.Nil(t, apiErr)

	assert.Equal(t, 1, response.Prediction)
	assert.Equal(t, 0.7, response.Confidence)
	assert.Equal(t, "Moderate Risk", response.RiskLevel)
	assert.Contains(t, response.PredictionText, "Moderate Risk")
	assert.Contains(t, response.PredictionText, "70.00%")
	assert.Len(t, archive.records, 1)
}

func TestPredict_ConfidenceEqualsPredictedClassProbability(t *testing.T) {
	tests := []struct {
		class int
		probs []float64
	}{
		{0, []float64{0.8, 0.15, 0.05}},
		{1, []float64{0.25, 0.5, 0.25}},
		{2, []float64{0.05, 0.05, 0.9}},
	}
	for _, tt := range tests {
		predictor := NewV1Predictor(
			&stubScaler{},
			&stubClassifier{class: tt.class, probs: tt.probs},
			&stubArchive{},
		)
		response, apiErr := predictor.Predict(newRequest(fullInputs()))
		require.Nil(t, apiErr)
		assert.Equal(t, tt.probs[tt.class], response.Confidence)
	}
}

func TestPredict_MissingFeature(t *testing.T) {
	archive := &stubArchive{}
	classifier := &stubClassifier{class: 0, probs: []float64{1, 0, 0}}
	predictor := NewV1Predictor(&stubScaler{}, classifier, archive)

	inputs := fullInputs()
	delete(inputs, "hb_level")

	response, apiErr := predictor.Predict(newRequest(inputs))
	require.Nil(t, response)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "hb_level")

	// archive-before-infer: the submission is recorded, inference never ran
	assert.Len(t, archive.records, 1)
	assert.Zero(t, classifier.calls)
}

func TestPredict_UnconfiguredDependencies(t *testing.T) {
	archive := &stubArchive{}
	tests := []struct {
		name      string
		predictor *V1Predictor
	}{
		{"all nil", NewV1Predictor(nil, nil, nil)},
		{"no scaler", NewV1Predictor(nil, &stubClassifier{probs: []float64{1, 0, 0}}, archive)},
		{"no classifier", NewV1Predictor(&stubScaler{}, nil, archive)},
		{"no archive", NewV1Predictor(&stubScaler{}, &stubClassifier{probs: []float64{1, 0, 0}}, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, apiErr := tt.predictor.Predict(newRequest(fullInputs()))
			require.Nil(t, response)
			require.NotNil(t, apiErr)
			assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
			assert.Equal(t, msgConfigurationError, apiErr.Message)
		})
	}
	// configuration faults short-circuit before archival
	assert.Empty(t, archive.records)
}

func TestPredict_ArchiveUnavailable_NoInference(t *testing.T) {
	scaler := &stubScaler{}
	classifier := &stubClassifier{class: 0, probs: []float64{1, 0, 0}}
	predictor := NewV1Predictor(scaler, classifier, nil)

	_, apiErr := predictor.Predict(newRequest(fullInputs()))
	require.NotNil(t, apiErr)
	assert.Equal(t, msgConfigurationError, apiErr.Message)
	assert.Zero(t, scaler.calls)
	assert.Zero(t, classifier.calls)
}

func TestPredict_ArchiveWriteFailure(t *testing.T) {
	classifier := &stubClassifier{class: 0, probs: []float64{1, 0, 0}}
	predictor := NewV1Predictor(
		&stubScaler{},
		classifier,
		&stubArchive{createErr: errors.New("connection refused")},
	)

	response, apiErr := predictor.Predict(newRequest(fullInputs()))
	require.Nil(t, response)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, msgUnexpectedError, apiErr.Message)
	// prediction is never attempted on unarchived data
	assert.Zero(t, classifier.calls)
}

func TestPredict_ResubmissionArchivesIndependently(t *testing.T) {
	archive := &stubArchive{}
	predictor := NewV1Predictor(
		&stubScaler{},
		&stubClassifier{class: 2, probs: []float64{0.1, 0.2, 0.7}},
		archive,
	)

	request := newRequest(fullInputs())
	first, apiErr := predictor.Predict(request)
	require.Nil(t, apiErr)
	second, apiErr := predictor.Predict(request)
	require.Nil(t, apiErr)

	// two independent records, numerically identical responses
	assert.Len(t, archive.records, 2)
	assert.Equal(t, first, second)
}
