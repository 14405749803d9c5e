package controllers

import (
	"net/http"

	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/http/request"
	"github.com/facilityinv/catalogue-api/internal/http/requests"
	"github.com/facilityinv/catalogue-api/internal/http/response"
	"github.com/gin-gonic/gin"
)

// SystemController serves /v1/systems. It mirrors
// CatalogueCategoryController's tree operations minus anything
// property-related, since systems carry no Property schema.
type SystemController struct {
	service ports.SystemService
}

// NewSystemController constructs a SystemController.
func NewSystemController(service ports.SystemService) *SystemController {
	return &SystemController{service: service}
}

// Create handles POST /v1/systems.
//
//	@Summary	Create a system
//	@Tags		systems
//	@Accept		json
//	@Produce	json
//	@Param		body	body		requests.CreateSystemBody	true	"System"
//	@Success	201		{object}	entities.System
//	@Router		/v1/systems [post]
func (h *SystemController) Create(c *gin.Context) {
	var body requests.CreateSystemBody
	if !bindJSON(c, &body) {
		return
	}
	system, err := h.service.Create(c.Request.Context(), body.ToInput())
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, system)
}

// List handles GET /v1/systems.
//
//	@Summary	List systems
//	@Tags		systems
//	@Produce	json
//	@Param		parent_id	query		string	false	"parent id filter, or the literal \"null\" for roots"
//	@Success	200			{array}		entities.System
//	@Router		/v1/systems [get]
func (h *SystemController) List(c *gin.Context) {
	parentID, rootsOnly, invalid := request.TreeFilter(c.Query("parent_id"))
	if invalid {
		c.JSON(http.StatusOK, []any{})
		return
	}
	systems, err := h.service.List(c.Request.Context(), parentID, rootsOnly)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, systems)
}

// Get handles GET /v1/systems/{id}.
//
//	@Summary	Get a system
//	@Tags		systems
//	@Produce	json
//	@Param		id	path		string	true	"System id"
//	@Success	200	{object}	entities.System
//	@Router		/v1/systems/{id} [get]
func (h *SystemController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	system, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, system)
}

// Breadcrumbs handles GET /v1/systems/{id}/breadcrumbs.
//
//	@Summary	Get a system's breadcrumb trail
//	@Tags		systems
//	@Produce	json
//	@Param		id	path		string	true	"System id"
//	@Success	200	{object}	breadcrumb.Trail
//	@Router		/v1/systems/{id}/breadcrumbs [get]
func (h *SystemController) Breadcrumbs(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	trail, err := h.service.Breadcrumbs(c.Request.Context(), id)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, trail)
}

// Update handles PATCH /v1/systems/{id}.
//
//	@Summary	Update a system
//	@Tags		systems
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"System id"
//	@Param		body	body		requests.UpdateSystemBody	true	"Patch"
//	@Success	200		{object}	entities.System
//	@Router		/v1/systems/{id} [patch]
func (h *SystemController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	raw, err := requests.RawBody(c)
	if err != nil {
		response.RenderError(c, err)
		return
	}

	var patch ports.UpdateSystemInput
	if _, err := requests.Decode(raw, "name", &patch.Name); err != nil {
		response.RenderError(c, err)
		return
	}
	if _, present := raw["parent_id"]; present {
		patch.ParentSet = true
		if _, err := requests.Decode(raw, "parent_id", &patch.ParentID); err != nil {
			response.RenderError(c, err)
			return
		}
	}
	if _, err := requests.Decode(raw, "importance", &patch.Importance); err != nil {
		response.RenderError(c, err)
		return
	}
	if _, err := requests.Decode(raw, "description", &patch.Description); err != nil {
		response.RenderError(c, err)
		return
	}
	if _, err := requests.Decode(raw, "location", &patch.Location); err != nil {
		response.RenderError(c, err)
		return
	}
	if _, err := requests.Decode(raw, "owner", &patch.Owner); err != nil {
		response.RenderError(c, err)
		return
	}

	system, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, system)
}

// Delete handles DELETE /v1/systems/{id}.
//
//	@Summary	Delete a system
//	@Tags		systems
//	@Param		id	path	string	true	"System id"
//	@Success	204
//	@Router		/v1/systems/{id} [delete]
func (h *SystemController) Delete(c *gin.Context) {
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
