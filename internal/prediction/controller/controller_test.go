package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/prediction/handler"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/pkg/api"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPredictor struct {
	response *handler.PredictResponse
	apiErr   *api.Error
}

func (s *stubPredictor) Predict(request handler.PredictRequest) (*handler.PredictResponse, *api.Error) {
	return s.response, s.apiErr
}

func newTestRouter(predictor handler.Predictor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	c := &V1{Predictor: predictor}
	router.GET("/", c.Home)
	router.POST("/predict", c.Predict)
	return router
}

func postPredict(t *testing.T, router *gin.Engine, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHome(t *testing.T) {
	router := newTestRouter(&stubPredictor{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Medical Risk Prediction API is running!", recorder.Body.String())
}

func TestPredict_Success(t *testing.T) {
	router := newTestRouter(&stubPredictor{
		response: &handler.PredictResponse{
			Prediction:     1,
			Confidence:     0.7,
			PredictionText: "The model predicts a status of **Moderate Risk** with **70.00%** confidence.",
			RiskLevel:      "Moderate Risk",
		},
	})

	body, err := json.Marshal(map[string]interface{}{
		"patientInfo": map[string]interface{}{"name": "Jane Doe"},
		"modelInputs": map[string]interface{}{"age": 31},
	})
	require.NoError(t, err)

	recorder := postPredict(t, router, body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response handler.PredictResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Prediction)
	assert.Equal(t, 0.7, response.Confidence)
	assert.Equal(t, "Moderate Risk", response.RiskLevel)
	assert.Contains(t, response.PredictionText, "70.00%")
}

func TestPredict_MalformedJSON(t *testing.T) {
	router := newTestRouter(&stubPredictor{})

	recorder := postPredict(t, router, []byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.NotEmpty(t, response["error"])
}

func TestPredict_MissingFeature(t *testing.T) {
	router := newTestRouter(&stubPredictor{
		apiErr: api.NewBadRequestError("Missing feature in request: 'hb_level'"),
	})

	recorder := postPredict(t, router, []byte(`{"patientInfo":{},"modelInputs":{}}`))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "hb_level")
}

func TestPredict_ConfigurationError(t *testing.T) {
	router := newTestRouter(&stubPredictor{
		apiErr: api.NewInternalServerError("Server configuration error. Check connections and model files."),
	})

	recorder := postPredict(t, router, []byte(`{"patientInfo":{},"modelInputs":{}}`))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Server configuration error. Check connections and model files.", response["error"])
}
