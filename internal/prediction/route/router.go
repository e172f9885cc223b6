package route

import (
	"sync"

	"github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/prediction/controller"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/pkg/httpframework"
)

var initPredictionRouterOnce sync.Once

func Init() {
	initPredictionRouterOnce.Do(func() {
		router := httpframework.Instance()

		// paths are a wire contract with the existing frontend
		router.GET("/", controller.NewPredictionController().Home)
		router.POST("/predict", controller.NewPredictionController().Predict)
	})
}
