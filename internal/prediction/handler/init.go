package handler

import (
	"sync"

	"github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/configs"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/model"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/repositories/sql/assessment"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/pkg/infra"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/pkg/metric"
	"github.com/rs/zerolog/log"
)

var (
	defaultPredictor Predictor
	once             sync.Once
)

// Init loads the model artifacts and wires the archive repository into the
// default predictor. Load failures are logged and leave the corresponding
// dependency nil: the predictor then answers every request with the
// configuration error until an operator fixes the deployment.
func Init(cfg configs.Configs) {
	once.Do(func() {
		var scaler model.Transformer
		var classifier model.Classifier
		artifacts, err := model.Load(cfg.ModelScalerPath, cfg.ModelClassifierPath)
		if err != nil {
			log.Error().Err(err).Msg("Failed to load model artifacts, prediction endpoint disabled")
		} else {
			scaler = artifacts.Scaler
			classifier = artifacts.Classifier
			metric.Incr(metric.ArtifactLoadCount, nil)
		}

		var archive assessment.Repository
		if infra.SQL != nil {
			archive, err = assessment.NewRepository(infra.SQL)
			if err != nil {
				log.Error().Err(err).Msg("Failed to build archive repository, prediction endpoint disabled")
				archive = nil
			}
		} else {
			log.Error().Msg("Submission archive unavailable, prediction endpoint disabled")
		}

		defaultPredictor = NewV1Predictor(scaler, classifier, archive)
	})
}

// Instance returns the default predictor.
func Instance() Predictor {
	if defaultPredictor == nil {
		log.Fatal().Msg("Predictor not initialized")
	}
	return defaultPredictor
}
