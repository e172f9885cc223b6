package handler

import (
	"encoding/json"

	interrors "github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/errors"
)

// featureOrder is the fixed feature schema the artifacts were trained
// against. The positions are a binding contract with the fitted scaler and
// classifier; reordering silently corrupts predictions.
var featureOrder = [...]string{
	"age",
	"bmi",
	"gestational_age",
	"previous_c_section",
	"previous_miscarriages",
	"previous_preterm_birth",
	"chronic_hypertension",
	"diabetes",
	"gestational_diabetes",
	"preeclampsia_history",
	"multiple_pregnancy",
	"smoking",
	"alcohol_use",
	"family_history",
	"hb_level",
	"urine_protein",
	"blood_glucose",
	"Systolic_BP",
	"Diastolic_BP",
}

// FeatureOrder returns a copy of the fixed feature schema.
func FeatureOrder() []string {
	order := make([]string, len(featureOrder))
	copy(order, featureOrder[:])
	return order
}

// buildFeatureVector maps the named model inputs into a dense vector
// positionally aligned to featureOrder. Missing names are a client fault;
// non-numeric values are an unexpected fault.
func buildFeatureVector(inputs map[string]interface{}) ([]float64, error) {
	vector := make([]float64, len(featureOrder))
	for i, name := range featureOrder {
		raw, ok := inputs[name]
		if !ok {
			return nil, &interrors.MissingFeatureError{Feature: name}
		}
		value, ok := toFloat(raw)
		if !ok {
			return nil, &interrors.InvalidFeatureError{Feature: name, Value: raw}
		}
		vector[i] = value
	}
	return vector, nil
}

func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
