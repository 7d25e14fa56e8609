// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package spawner

import "fmt"

// Validation reason strings, stable for error-message matching.
const (
	ReasonUnknownKeys        = "unknown form data keys"
	ReasonProjectNotValid    = "brics_project not valid"
	ReasonUnknownProject     = "unknown brics_project"
	ReasonRuntimeNotValid    = "runtime not valid"
	ReasonNgpusNotValid      = "ngpus not valid"
	ReasonPartitionInvalid   = "partition not valid"
	ReasonReservationInvalid = "reservation not valid"
)

// validationErrorPrefix wraps every validation failure surfaced from
// form interpretation.
const validationErrorPrefix = "Invalid spawner options input"

// ValidationError is a malformed or out-of-policy form submission.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func newValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func wrapValidationError(err error) error {
	return fmt.Errorf("%s: %w", validationErrorPrefix, err)
}
