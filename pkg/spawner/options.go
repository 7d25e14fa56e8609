// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package spawner

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormOptions is the validated, shell-safe job-launch input handed to
// the scheduler adapter. Partition and Reservation are nil when the
// user left them empty.
type FormOptions struct {
	BricsProject string  `json:"brics_project" validate:"required,brics_project"`
	Runtime      string  `json:"runtime" validate:"required,datetime=15:04:05"`
	Ngpus        string  `json:"ngpus" validate:"required,single_digit"`
	Partition    *string `json:"partition" validate:"omitempty,scheduler_name"`
	Reservation  *string `json:"reservation" validate:"omitempty,scheduler_name"`
}

var allowedFields = map[string]struct{}{
	"brics_project": {},
	"runtime":       {},
	"ngpus":         {},
	"partition":     {},
	"reservation":   {},
}

var (
	// Project identifiers start lowercase, then letters, digits, hyphen,
	// underscore, with at most one '.' scope separator per the portal's
	// project-naming convention.
	projectPattern = regexp.MustCompile(`^[a-z][a-z0-9\-_]+(\.[a-z0-9\-_]+)?$`)
	// Partition and reservation names as accepted by the scheduler.
	schedulerNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\-_]*$`)
	singleDigitPattern   = regexp.MustCompile(`^[0-9]$`)
)

var formValidate = newFormValidate()

func newFormValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json tag names so field errors map onto form field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	})

	_ = v.RegisterValidation("brics_project", func(fl validator.FieldLevel) bool {
		return projectPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("scheduler_name", func(fl validator.FieldLevel) bool {
		return schedulerNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("single_digit", func(fl validator.FieldLevel) bool {
		return singleDigitPattern.MatchString(fl.Field().String())
	})

	return v
}

// ValidateFormData validates raw form data against the set of projects
// the session is authorized for. Each field arrives as a sequence of
// strings of which only the first element is consulted.
func ValidateFormData(formData map[string][]string, validProjects map[string]struct{}) (*FormOptions, error) {
	for key := range formData {
		if _, ok := allowedFields[key]; !ok {
			return nil, newValidationError(ReasonUnknownKeys)
		}
	}

	options := &FormOptions{
		BricsProject: firstValue(formData, "brics_project"),
		Runtime:      firstValue(formData, "runtime"),
		Ngpus:        firstValue(formData, "ngpus"),
		Partition:    optionalValue(formData, "partition"),
		Reservation:  optionalValue(formData, "reservation"),
	}

	fieldErrors := validate(options)

	// Project syntax is checked before membership, matching the error a
	// client sees for a value that is both malformed and unlisted.
	if reason, found := fieldErrors["brics_project"]; found {
		return nil, newValidationError(reason)
	}
	if _, ok := validProjects[options.BricsProject]; !ok {
		return nil, newValidationError(ReasonUnknownProject)
	}

	for _, field := range []string{"runtime", "ngpus", "partition", "reservation"} {
		if reason, found := fieldErrors[field]; found {
			return nil, newValidationError(reason)
		}
	}

	return options, nil
}

// InterpretFormData validates the form data and defuses every non-nil
// value for safe inclusion in a shell command line. Nil optional fields
// stay nil. Any failure is wrapped with a fixed prefix preserving the
// original reason.
func InterpretFormData(formData map[string][]string, validProjects map[string]struct{}) (*FormOptions, error) {
	options, err := ValidateFormData(formData, validProjects)
	if err != nil {
		return nil, wrapValidationError(err)
	}

	options.BricsProject = Defuse(options.BricsProject)
	options.Runtime = Defuse(options.Runtime)
	options.Ngpus = Defuse(options.Ngpus)
	if options.Partition != nil {
		defused := Defuse(*options.Partition)
		options.Partition = &defused
	}
	if options.Reservation != nil {
		defused := Defuse(*options.Reservation)
		options.Reservation = &defused
	}

	return options, nil
}

func validate(options *FormOptions) map[string]string {
	err := formValidate.Struct(options)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return map[string]string{"brics_project": ReasonProjectNotValid}
	}

	reasons := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		reasons[fe.Field()] = fe.Field() + " not valid"
	}
	return reasons
}

func firstValue(formData map[string][]string, key string) string {
	values := formData[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// optionalValue normalizes an absent or empty optional field to nil.
func optionalValue(formData map[string][]string, key string) *string {
	value := firstValue(formData, key)
	if value == "" {
		return nil
	}
	return &value
}
