package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	interrors "github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/errors"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/model"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/repositories/sql/assessment"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/pkg/api"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/pkg/metric"
	"github.com/rs/zerolog/log"
)

const (
	msgConfigurationError = "Server configuration error. Check connections and model files."
	msgUnexpectedError    = "An unexpected error occurred during prediction."
)

// Predictor runs one submission through the archive-then-infer pipeline.
type Predictor interface {
	Predict(request PredictRequest) (*PredictResponse, *api.Error)
}

// V1Predictor holds the shared, immutable-after-init serving state: the
// fitted scaler, the ensemble classifier, and the archive repository.
type V1Predictor struct {
	scaler     model.Transformer
	classifier model.Classifier
	archive    assessment.Repository
}

func NewV1Predictor(scaler model.Transformer, classifier model.Classifier, archive assessment.Repository) *V1Predictor {
	return &V1Predictor{
		scaler:     scaler,
		classifier: classifier,
		archive:    archive,
	}
}

// Predict drives the request through archive -> normalize -> scale ->
// infer -> interpret. A configuration fault short-circuits before any
// archival or computation; archival failure prevents inference so no
// prediction ever lacks an audit record.
func (p *V1Predictor) Predict(request PredictRequest) (*PredictResponse, *api.Error) {
	startTime := time.Now()

	if p.scaler == nil || p.classifier == nil || p.archive == nil {
		metric.Incr(metric.PredictionErrorCount, outcomeTags(metric.TagValueOutcomeConfigError))
		return nil, api.NewInternalServerError(msgConfigurationError)
	}

	if err := p.archiveSubmission(request); err != nil {
		log.Error().Err(err).Msg("Failed to archive submission")
		metric.Incr(metric.PredictionErrorCount, outcomeTags(metric.TagValueOutcomeServerError))
		return nil, api.NewInternalServerError(msgUnexpectedError)
	}

	vector, err := buildFeatureVector(request.ModelInputs)
	if err != nil {
		var missing *interrors.MissingFeatureError
		if errors.As(err, &missing) {
			metric.Incr(metric.PredictionErrorCount, outcomeTags(metric.TagValueOutcomeBadRequest))
			return nil, api.NewBadRequestError(fmt.Sprintf("Missing feature in request: '%s'", missing.Feature))
		}
		log.Error().Err(err).Msg("Failed to build feature vector")
		metric.Incr(metric.PredictionErrorCount, outcomeTags(metric.TagValueOutcomeServerError))
		return nil, api.NewInternalServerError(msgUnexpectedError)
	}

	scaled, err := p.scaler.Transform(vector)
	if err != nil {
		log.Error().Err(err).Msg("Scaler transform failed")
		metric.Incr(metric.PredictionErrorCount, outcomeTags(metric.TagValueOutcomeServerError))
		return nil, api.NewInternalServerError(msgUnexpectedError)
	}

	probabilities, err := p.classifier.PredictProbabilities(scaled)
	if err != nil {
		log.Error().Err(err).Msg("Classifier inference failed")
		metric.Incr(metric.PredictionErrorCount, outcomeTags(metric.TagValueOutcomeServerError))
		return nil, api.NewInternalServerError(msgUnexpectedError)
	}
	predictedClass, err := p.classifier.Predict(scaled)
	if err != nil {
		log.Error().Err(err).Msg("Classifier inference failed")
		metric.Incr(metric.PredictionErrorCount, outcomeTags(metric.TagValueOutcomeServerError))
		return nil, api.NewInternalServerError(msgUnexpectedError)
	}

	riskLevel, confidence := interpretRisk(predictedClass, probabilities)

	tags := metric.BuildTag(
		metric.NewTag(metric.TagOutcome, metric.TagValueOutcomeSuccess),
		metric.NewTag(metric.TagRiskLevel, riskLevel),
	)
	metric.Incr(metric.PredictionCount, tags)
	metric.Timing(metric.PredictionLatency, time.Since(startTime), tags)

	return &PredictResponse{
		Prediction: predictedClass,
		Confidence: confidence,
		PredictionText: fmt.Sprintf("The model predicts a status of **%s** with **%.2f%%** confidence.",
			riskLevel, confidence*100),
		RiskLevel: riskLevel,
	}, nil
}

// archiveSubmission appends the raw payload plus model inputs and a UTC
// timestamp to the archive. Each write is an independent append; duplicate
// submissions are archived as separate rows on purpose.
func (p *V1Predictor) archiveSubmission(request PredictRequest) error {
	patientInfo, err := json.Marshal(request.PatientInfo)
	if err != nil {
		return err
	}
	modelInputs, err := json.Marshal(request.ModelInputs)
	if err != nil {
		return err
	}

	startTime := time.Now()
	record := &assessment.Assessment{
		PatientInfo:     string(patientInfo),
		PredictionInput: string(modelInputs),
	}
	if err := p.archive.Create(record); err != nil {
		return err
	}
	metric.Incr(metric.ArchiveWriteCount, nil)
	metric.Timing(metric.ArchiveWriteLatency, time.Since(startTime), nil)
	return nil
}

func outcomeTags(outcome string) []string {
	return metric.BuildTag(metric.NewTag(metric.TagOutcome, outcome))
}
