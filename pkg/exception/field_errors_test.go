package exception_test

import (
	"errors"
	"testing"

	"github.com/facilityinv/catalogue-api/internal/http/validation"
	. "github.com/facilityinv/catalogue-api/pkg/exception"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func Test_NewValidationFailedErrors(t *testing.T) {
	type Widget struct {
		Name string `json:"name" validate:"required"`
		Cost string `json:"cost" validate:"required"`
	}

	type testCase struct {
		name     string
		widget   Widget
		expected *ExceptionErrors
	}

	testCases := []testCase{
		{
			name:   "missing cost which is required",
			widget: Widget{Name: "Bolt", Cost: ""},
			expected: &ExceptionErrors{
				HttpStatusCode: 422,
				GlobalMessage:  "validation failed",
				ErrItems: []*ExceptionError{
					{Message: "Cost is required", Type: ERROR_TYPE_VALIDATION_ERROR, ErrorSubcode: SUBCODE_VALIDATION_FAILED},
				},
			},
		},
		{
			name:   "missing name and cost",
			widget: Widget{Name: "", Cost: ""},
			expected: &ExceptionErrors{
				HttpStatusCode: 422,
				GlobalMessage:  "validation failed",
				ErrItems: []*ExceptionError{
					{Message: "Name is required", Type: ERROR_TYPE_VALIDATION_ERROR, ErrorSubcode: SUBCODE_VALIDATION_FAILED},
					{Message: "Cost is required", Type: ERROR_TYPE_VALIDATION_ERROR, ErrorSubcode: SUBCODE_VALIDATION_FAILED},
				},
			},
		},
	}

	validate, _ := validation.GetValidator()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.widget)
			var vErrs validator.ValidationErrors
			if errors.As(err, &vErrs) {
				actual := NewValidationFailedErrors(vErrs)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}

func TestAppendFieldErrors(t *testing.T) {
	type Widget struct {
		Name string `json:"name" validate:"required"`
		Cost string `json:"cost" validate:"required"`
	}

	widget := Widget{Name: "Bolt", Cost: ""}

	expected := &ExceptionErrors{
		HttpStatusCode: 422,
		GlobalMessage:  "validation failed",
		ErrItems: []*ExceptionError{
			{Message: "Cost is required", Type: ERROR_TYPE_VALIDATION_ERROR, ErrorSubcode: SUBCODE_VALIDATION_FAILED},
			{Message: "a", Type: "b", ErrorSubcode: 1},
		},
	}

	validate, _ := validation.GetValidator()
	err := validate.Struct(widget)
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		actual := NewValidationFailedErrors(vErrs)
		actual = actual.Append(&ExceptionError{Message: "a", Type: "b", ErrorSubcode: 1})
		assert.Equal(t, expected, actual)
	}
}
