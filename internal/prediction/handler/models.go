package handler

// PredictRequest is the wire payload for one submission. PatientInfo is an
// open-ended mapping stored verbatim in the archive; ModelInputs carries
// the named clinical measurements the classifier was trained on.
type PredictRequest struct {
	PatientInfo map[string]interface{} `json:"patientInfo"`
	ModelInputs map[string]interface{} `json:"modelInputs"`
}

type PredictResponse struct {
	Prediction     int     `json:"prediction"`
	Confidence     float64 `json:"confidence"`
	PredictionText string  `json:"prediction_text"`
	RiskLevel      string  `json:"risk_level"`
}
