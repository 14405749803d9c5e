// Package controllers holds the gin handlers for the core route surface
// (§6): one handler per operation, delegating to the application-layer
// service ports and rendering results/errors through internal/http/response.
package controllers

import (
	"net/http"

	"github.com/facilityinv/catalogue-api/internal/http/request"
	"github.com/facilityinv/catalogue-api/internal/http/response"
	"github.com/facilityinv/catalogue-api/internal/http/validation"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// bindJSON decodes c's JSON body into dst and runs it through the
// process-wide validator, rendering a 422 and returning false on either
// failure so the caller can return early.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.ErrorBody{Detail: err.Error()})
		return false
	}
	v, err := validation.GetValidator()
	if err != nil {
		response.RenderError(c, err)
		return false
	}
	if err := v.Struct(dst); err != nil {
		response.RenderError(c, err)
		return false
	}
	return true
}

// idParam parses the path's :id param as an object id, rendering a 404 and
// returning false on failure.
func idParam(c *gin.Context, name string) (bson.ObjectID, bool) {
	id, err := request.ObjectIDParam(c.Param(name))
	if err != nil {
		response.RenderError(c, err)
		return bson.ObjectID{}, false
	}
	return id, true
}
