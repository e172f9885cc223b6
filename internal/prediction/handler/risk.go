package handler

// riskLevels is fixed for the lifetime of the trained classifier.
var riskLevels = map[int]string{
	0: "Low Risk",
	1: "Moderate Risk",
	2: "High Risk",
}

const riskLevelUnknown = "Unknown"

// interpretRisk maps the predicted class to its human-readable tier and
// extracts the probability mass of that class. Class codes outside the
// trained domain map to "Unknown" instead of failing; they are not
// expected in normal operation.
func interpretRisk(predictedClass int, probabilities []float64) (string, float64) {
	level, ok := riskLevels[predictedClass]
	if !ok {
		level = riskLevelUnknown
	}
	var confidence float64
	if predictedClass >= 0 && predictedClass < len(probabilities) {
		confidence = probabilities[predictedClass]
	}
	return level, confidence
}
