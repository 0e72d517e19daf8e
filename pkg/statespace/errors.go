// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package statespace

import (
	"errors"
	"fmt"
)

// InapplicableOperatorError reports that an operator was applied to a state that fails
// its applicability check. It indicates a defect in a problem domain (a candidate
// operator that should have been filtered out), never a normal search outcome, so it is
// always propagated to the caller.
type InapplicableOperatorError struct {
	Operator Operator
	State    State
}

func (e InapplicableOperatorError) Error() string {
	return fmt.Sprintf("operator %q cannot be applied to state %v", e.Operator.Name(), e.State)
}

func IsInapplicableOperatorError(err error) bool { return IsErrorType[InapplicableOperatorError](err) }

// ConfigurationError reports an invalid construction-time parameter, for example a
// negative shuffle grade. Construction fails fast, the error is never deferred to run time.
type ConfigurationError struct{ Reason string }

func (e ConfigurationError) Error() string { return "invalid configuration: " + e.Reason }

func IsConfigurationError(err error) bool { return IsErrorType[ConfigurationError](err) }

func IsErrorType[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
