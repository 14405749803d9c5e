// Package errs defines the service-level error taxonomy used throughout the
// domain and application layers. Every error that should be interpreted by
// the HTTP boundary (see internal/http) is a *ServiceError with one of the
// Kind values below; anything else is treated as an unexpected failure and
// mapped to a 500.
package errs

import (
	"errors"
	"fmt"
)

// Kind enumerates the taxonomy from the property-propagation and
// hierarchy-integrity specification. Each Kind maps to exactly one HTTP
// status at the boundary.
type Kind string

const (
	KindMissing                Kind = "missing"
	KindDuplicate               Kind = "duplicate"
	KindChildrenExist           Kind = "children-exist"
	KindPartOfCategory          Kind = "part-of-category"
	KindPartOfItem              Kind = "part-of-item"
	KindPartOfCatalogueItem     Kind = "part-of-catalogue-item"
	KindLeafParent              Kind = "leaf-parent"
	KindNonLeafCategoryForItem  Kind = "non-leaf-category-for-item"
	KindInvalidAction           Kind = "invalid-action"
	KindDuplicatePropertyName   Kind = "duplicate-property-name"
	KindInvalidPropertyType     Kind = "invalid-property-type"
	KindMissingMandatoryProperty Kind = "missing-mandatory-property"
	KindInvalidObjectID         Kind = "invalid-object-id"
	KindDatabaseIntegrity       Kind = "database-integrity"
)

// ServiceError is the concrete error type raised by the domain and
// application layers. Details carries structured context (entity id, field
// name, ...) that callers may use for logging without parsing Message.
type ServiceError struct {
	Kind    Kind
	Message string
	Details map[string]any
}

func (e *ServiceError) Error() string {
	return e.Message
}

// New creates a ServiceError of the given Kind with a formatted message.
func New(kind Kind, format string, args ...any) *ServiceError {
	return &ServiceError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithDetail attaches a key/value pair to the error and returns it for
// chaining at the call site.
func (e *ServiceError) WithDetail(key string, value any) *ServiceError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// As reports whether err is (or wraps) a *ServiceError and, if so, returns it.
func As(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// Is reports whether err is a *ServiceError of the given Kind.
func Is(err error, kind Kind) bool {
	se, ok := As(err)
	return ok && se.Kind == kind
}

// Missing is a convenience constructor for the frequent "entity not found"
// case.
func Missing(entity, id string) *ServiceError {
	return New(KindMissing, "no %s found with ID: %s", entity, id)
}

// Duplicate is a convenience constructor for sibling/global slug collisions.
func Duplicate(entity, code string) *ServiceError {
	return New(KindDuplicate, "a %s with code '%s' already exists", entity, code)
}

// ChildrenExist is a convenience constructor for blocked deletes/updates.
func ChildrenExist(entity string) *ServiceError {
	return New(KindChildrenExist, "%s has children and cannot be modified or deleted", entity)
}
