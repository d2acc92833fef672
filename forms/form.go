package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// State is a form's position in its submission lifecycle
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSuccess
	StateFailure
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their json names so error maps line up with
	// the wire payloads
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Form is the shared submission lifecycle embedded by every concrete
// form. Validation runs synchronously before any network call, and the
// submitting state blocks concurrent re-submission.
type Form struct {
	state       State
	fieldErrors map[string]string
	submitError string
}

// State returns the current lifecycle state
func (f *Form) State() State { return f.state }

// Submitting reports whether a submission is in flight
func (f *Form) Submitting() bool { return f.state == StateSubmitting }

// FieldErrors returns per-field validation messages from the last
// submission attempt
func (f *Form) FieldErrors() map[string]string { return f.fieldErrors }

// SubmitError returns the top-level error from the last failed
// submission, empty otherwise
func (f *Form) SubmitError() string { return f.submitError }

// begin moves editing → submitting after validating values. It returns
// false when the form is already submitting or validation failed, in
// which case no network call may be made.
func (f *Form) begin(values interface{}) bool {
	if f.state == StateSubmitting {
		return false
	}

	f.submitError = ""
	f.fieldErrors = validateStruct(values)
	if len(f.fieldErrors) > 0 {
		f.state = StateEditing
		return false
	}

	f.state = StateSubmitting
	return true
}

// succeed ends a submission in the success state
func (f *Form) succeed() {
	f.state = StateSuccess
}

// fail ends a submission in the failure state with a top-level message
func (f *Form) fail(message string) {
	f.submitError = message
	f.state = StateFailure
}

// validateStruct maps validator errors to field → message
func validateStruct(values interface{}) map[string]string {
	err := validate.Struct(values)
	if err == nil {
		return nil
	}

	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_form"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

// messageFor mirrors the platform's user-facing validation wording
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return "Must be at least " + fe.Param() + " characters"
		}
		return "Must be at least " + fe.Param()
	case "max":
		return "Must be at most " + fe.Param()
	case "gte":
		if fe.Param() == "0" {
			return "Cannot be negative"
		}
		return "Must be at least " + fe.Param()
	default:
		return "Invalid value"
	}
}
