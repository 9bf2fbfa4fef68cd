package validation

import "fmt"

// MissingParamError reports a required field that was absent or empty.
type MissingParamError struct {
	Param string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("missing param: %s", e.Param)
}

// InvalidParamError reports a field whose value failed a rule, either a
// format check or a cross-field comparison.
type InvalidParamError struct {
	Param string
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid param: %s", e.Param)
}
