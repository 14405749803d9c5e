// Package exception renders go-playground/validator field errors into the
// structured shape the HTTP boundary returns for 422 validation failures.
package exception

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ERROR_TYPE_VALIDATION_ERROR = "VALIDATION_ERROR"
	SUBCODE_VALIDATION_FAILED   = 1001
)

// ExceptionError is one field-level validation failure.
type ExceptionError struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	ErrorSubcode int    `json:"error_subcode"`
}

// ExceptionErrors is the full validation-failure response body.
type ExceptionErrors struct {
	HttpStatusCode int               `json:"http_status_code"`
	GlobalMessage  string            `json:"global_message"`
	ErrItems       []*ExceptionError `json:"err_items"`
}

// Append adds an additional item and returns the receiver for chaining.
func (e *ExceptionErrors) Append(item *ExceptionError) *ExceptionErrors {
	e.ErrItems = append(e.ErrItems, item)
	return e
}

// NewValidationFailedErrors converts validator.ValidationErrors into an
// ExceptionErrors, one ExceptionError per failing field, preserving the
// library's reported order.
func NewValidationFailedErrors(errs validator.ValidationErrors) *ExceptionErrors {
	out := &ExceptionErrors{
		HttpStatusCode: 422,
		GlobalMessage:  "validation failed",
	}
	for _, fe := range errs {
		out.ErrItems = append(out.ErrItems, &ExceptionError{
			Message:      fieldMessage(fe),
			Type:         ERROR_TYPE_VALIDATION_ERROR,
			ErrorSubcode: SUBCODE_VALIDATION_FAILED,
		})
	}
	return out
}

// fieldMessage renders a single field error into the human-readable phrases
// the API has always used ("Age is required", "Cost must be greater than
// 0"), dispatching on the validator tag that failed.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed on the %q rule", field, fe.Tag())
	}
}
