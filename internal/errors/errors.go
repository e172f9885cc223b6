package errors

import "fmt"

// MissingFeatureError indicates that a required model feature was absent
// from the request payload.
type MissingFeatureError struct {
	Feature string
}

func (m *MissingFeatureError) Error() string {
	return fmt.Sprintf("missing feature '%s'", m.Feature)
}

// InvalidFeatureError indicates that a model feature carried a value that
// cannot be interpreted as a number.
type InvalidFeatureError struct {
	Feature string
	Value   interface{}
}

func (m *InvalidFeatureError) Error() string {
	return fmt.Sprintf("feature '%s' has non-numeric value %v", m.Feature, m.Value)
}
