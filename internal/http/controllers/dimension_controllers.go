package controllers

import (
	"net/http"

	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/http/requests"
	"github.com/facilityinv/catalogue-api/internal/http/response"
	"github.com/gin-gonic/gin"
)

// UnitController serves /v1/units.
type UnitController struct {
	service ports.UnitService
}

// NewUnitController constructs a UnitController.
func NewUnitController(service ports.UnitService) *UnitController {
	return &UnitController{service: service}
}

// Create handles POST /v1/units.
//
//	@Summary	Create a unit
//	@Tags		units
//	@Accept		json
//	@Produce	json
//	@Param		body	body		requests.ValueBody	true	"Unit"
//	@Success	201		{object}	entities.Unit
//	@Router		/v1/units [post]
func (h *UnitController) Create(c *gin.Context) {
	var body requests.ValueBody
	if !bindJSON(c, &body) {
		return
	}
	unit, err := h.service.Create(c.Request.Context(), body.Value)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, unit)
}

// List handles GET /v1/units.
//
//	@Summary	List units
//	@Tags		units
//	@Produce	json
//	@Success	200	{array}	entities.Unit
//	@Router		/v1/units [get]
func (h *UnitController) List(c *gin.Context) {
	units, err := h.service.List(c.Request.Context())
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

// Delete handles DELETE /v1/units/{id}.
//
//	@Summary	Delete a unit
//	@Tags		units
//	@Param		id	path	string	true	"Unit id"
//	@Success	204
//	@Router		/v1/units/{id} [delete]
func (h *UnitController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.RenderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UsageStatusController serves /v1/usage-statuses.
type UsageStatusController struct {
	service ports.UsageStatusService
}

// NewUsageStatusController constructs a UsageStatusController.
func NewUsageStatusController(service ports.UsageStatusService) *UsageStatusController {
	return &UsageStatusController{service: service}
}

// Create handles POST /v1/usage-statuses.
//
//	@Summary	Create a usage status
//	@Tags		usage-statuses
//	@Accept		json
//	@Produce	json
//	@Param		body	body		requests.ValueBody	true	"Usage status"
//	@Success	201		{object}	entities.UsageStatus
//	@Router		/v1/usage-statuses [post]
func (h *UsageStatusController) Create(c *gin.Context) {
	var body requests.ValueBody
	if !bindJSON(c, &body) {
		return
	}
	status, err := h.service.Create(c.Request.Context(), body.Value)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, status)
}

// List handles GET /v1/usage-statuses.
//
//	@Summary	List usage statuses
//	@Tags		usage-statuses
//	@Produce	json
//	@Success	200	{array}	entities.UsageStatus
//	@Router		/v1/usage-statuses [get]
func (h *UsageStatusController) List(c *gin.Context) {
	statuses, err := h.service.List(c.Request.Context())
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// Delete handles DELETE /v1/usage-statuses/{id}.
//
//	@Summary	Delete a usage status
//	@Tags		usage-statuses
//	@Param		id	path	string	true	"Usage status id"
//	@Success	204
//	@Router		/v1/usage-statuses/{id} [delete]
func (h *UsageStatusController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.RenderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ManufacturerController serves /v1/manufacturers.
type ManufacturerController struct {
	service ports.ManufacturerService
}

// NewManufacturerController constructs a ManufacturerController.
func NewManufacturerController(service ports.ManufacturerService) *ManufacturerController {
	return &ManufacturerController{service: service}
}

// Create handles POST /v1/manufacturers.
//
//	@Summary	Create a manufacturer
//	@Tags		manufacturers
//	@Accept		json
//	@Produce	json
//	@Param		body	body		requests.ManufacturerBody	true	"Manufacturer"
//	@Success	201		{object}	entities.Manufacturer
//	@Router		/v1/manufacturers [post]
func (h *ManufacturerController) Create(c *gin.Context) {
	var body requests.ManufacturerBody
	if !bindJSON(c, &body) {
		return
	}
	manufacturer, err := h.service.Create(c.Request.Context(), body.ToInput())
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, manufacturer)
}

// List handles GET /v1/manufacturers.
//
//	@Summary	List manufacturers
//	@Tags		manufacturers
//	@Produce	json
//	@Success	200	{array}	entities.Manufacturer
//	@Router		/v1/manufacturers [get]
func (h *ManufacturerController) List(c *gin.Context) {
	manufacturers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, manufacturers)
}

// Get handles GET /v1/manufacturers/{id}.
//
//	@Summary	Get a manufacturer
//	@Tags		manufacturers
//	@Produce	json
//	@Param		id	path		string	true	"Manufacturer id"
//	@Success	200	{object}	entities.Manufacturer
//	@Router		/v1/manufacturers/{id} [get]
func (h *ManufacturerController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	manufacturer, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, manufacturer)
}

// Update handles PATCH /v1/manufacturers/{id}.
//
//	@Summary	Update a manufacturer
//	@Tags		manufacturers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Manufacturer id"
//	@Param		body	body		requests.UpdateManufacturerBody	true	"Patch"
//	@Success	200		{object}	entities.Manufacturer
//	@Router		/v1/manufacturers/{id} [patch]
func (h *ManufacturerController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var body requests.UpdateManufacturerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RenderError(c, err)
		return
	}
	manufacturer, err := h.service.Update(c.Request.Context(), id, body.ToInput())
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, manufacturer)
}

// Delete handles DELETE /v1/manufacturers/{id}.
//
//	@Summary	Delete a manufacturer
//	@Tags		manufacturers
//	@Param		id	path	string	true	"Manufacturer id"
//	@Success	204
//	@Router		/v1/manufacturers/{id} [delete]
func (h *ManufacturerController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.RenderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
