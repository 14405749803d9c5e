// Package response renders service-layer results and errors into the HTTP
// response shapes §6/§7 define.
package response

import (
	"net/http"

	"github.com/facilityinv/catalogue-api/internal/errs"
	"github.com/facilityinv/catalogue-api/pkg/exception"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorBody is the error response shape: a single detail string, or a
// structured array under detail for input-schema validation failures.
type ErrorBody struct {
	Detail any `json:"detail"`
}

// statusForKind maps each errs.Kind to the HTTP status §7 assigns it.
func statusForKind(kind errs.Kind) int {
	switch kind {
	case errs.KindMissing, errs.KindInvalidObjectID:
		return http.StatusNotFound
	case errs.KindDuplicate, errs.KindChildrenExist, errs.KindPartOfCategory,
		errs.KindPartOfItem, errs.KindPartOfCatalogueItem, errs.KindLeafParent,
		errs.KindNonLeafCategoryForItem:
		return http.StatusConflict
	case errs.KindInvalidAction, errs.KindInvalidPropertyType, errs.KindMissingMandatoryProperty,
		errs.KindDuplicatePropertyName:
		return http.StatusUnprocessableEntity
	case errs.KindDatabaseIntegrity:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// RenderError writes err to c in the shape §7 specifies: a *errs.ServiceError
// maps to its Kind's status with a plain detail string; a
// validator.ValidationErrors maps to 422 with a structured detail array;
// anything else is an unexpected failure mapped to 500.
func RenderError(c *gin.Context, err error) {
	if se, ok := errs.As(err); ok {
		c.JSON(statusForKind(se.Kind), ErrorBody{Detail: se.Message})
		return
	}

	var vErrs validator.ValidationErrors
	if ok := asValidationErrors(err, &vErrs); ok {
		failed := exception.NewValidationFailedErrors(vErrs)
		c.JSON(http.StatusUnprocessableEntity, ErrorBody{Detail: failed.ErrItems})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorBody{Detail: "internal server error"})
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = ve
	return true
}
