package planner

import "fmt"

// ParameterError reports caller input that could not be normalized into the
// shape a tool expects, e.g. an unparsable JSON-encoded list.
type ParameterError struct {
	Param   string
	Message string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter %q: %s", e.Param, e.Message)
}

func newParameterError(param, msg string) error {
	return &ParameterError{Param: param, Message: msg}
}

// ValidationError reports well-typed input that is semantically invalid,
// e.g. an end date before the start date.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
