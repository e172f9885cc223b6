package controller

import (
	"net/http"
	"sync"

	"github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/prediction/handler"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/pkg/api"
	"github.com/gin-gonic/gin"
)

type Prediction interface {
	Home(ctx *gin.Context)
	Predict(ctx *gin.Context)
}

var (
	predictionController Prediction
	once                 sync.Once
)

type V1 struct {
	Predictor handler.Predictor
}

func NewPredictionController() Prediction {
	if predictionController == nil {
		once.Do(func() {
			predictionController = &V1{
				Predictor: handler.Instance(),
			}
		})
	}
	return predictionController
}

// Home is the liveness probe.
func (c *V1) Home(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Medical Risk Prediction API is running!")
}

func (c *V1) Predict(ctx *gin.Context) {
	var request handler.PredictRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(api.NewBadRequestError(err.Error()).StatusCode, gin.H{"error": err.Error()})
		return
	}
	response, apiErr := c.Predictor.Predict(request)
	if apiErr != nil {
		ctx.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, response)
}
