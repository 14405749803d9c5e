// Package validation constructs the shared go-playground/validator
// instance used to validate inbound request bodies before they reach the
// application layer.
package validation

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// GetValidator returns the process-wide *validator.Validate, constructing
// it on first use. It currently registers no custom tags beyond the
// library's defaults; object-id shape checks happen when the request DTOs'
// bson.ObjectID fields are decoded, and enum checks (system importance,
// property type) are made by the application services.
func GetValidator() (*validator.Validate, error) {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance, nil
}
