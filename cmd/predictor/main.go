package main

import (
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/rs/zerolog/log"

	"github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/configs"
	predictionHandler "github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/prediction/handler"
	predictionRouter "github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/prediction/route"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/pkg/httpframework"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/pkg/infra"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/pkg/logger"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/pkg/metric"
)

type AppConfig struct {
	Configs configs.Configs
}

func (cfg *AppConfig) GetStaticConfig() interface{} {
	return &cfg.Configs
}

var appConfig AppConfig

func main() {
	configs.InitConfig(&appConfig)

	logger.Init(appConfig.Configs)
	metric.Init(appConfig.Configs)

	// Submission archive; a failed connection leaves the endpoint
	// fail-closed rather than crashing the process
	infra.InitDBConnectors(appConfig.Configs)

	// load artifacts and wire the prediction pipeline
	predictionHandler.Init(appConfig.Configs)

	// the existing frontend is served from a different origin
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	httpframework.Init(cors.New(corsConfig))

	predictionRouter.Init()

	port := appConfig.Configs.AppPort
	if port == 0 {
		port = 5000
		log.Warn().Int("port", port).Msg("App port not set, defaulting to 5000")
	}
	if err := httpframework.Instance().Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatal().Err(err).Msg("HTTP server exited")
	}
}
