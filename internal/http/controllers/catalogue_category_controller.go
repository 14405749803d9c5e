package controllers

import (
	"net/http"

	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/http/request"
	"github.com/facilityinv/catalogue-api/internal/http/requests"
	"github.com/facilityinv/catalogue-api/internal/http/response"
	"github.com/gin-gonic/gin"
)

// CatalogueCategoryController serves /v1/catalogue-categories.
type CatalogueCategoryController struct {
	service ports.CatalogueCategoryService
}

// NewCatalogueCategoryController constructs a CatalogueCategoryController.
func NewCatalogueCategoryController(service ports.CatalogueCategoryService) *CatalogueCategoryController {
	return &CatalogueCategoryController{service: service}
}

// Create handles POST /v1/catalogue-categories.
//
//	@Summary	Create a catalogue category
//	@Tags		catalogue-categories
//	@Accept		json
//	@Produce	json
//	@Param		body	body		requests.CreateCategoryBody	true	"Category"
//	@Success	201		{object}	entities.CatalogueCategory
//	@Router		/v1/catalogue-categories [post]
func (h *CatalogueCategoryController) Create(c *gin.Context) {
	var body requests.CreateCategoryBody
	if !bindJSON(c, &body) {
		return
	}
	category, err := h.service.Create(c.Request.Context(), body.ToInput())
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// List handles GET /v1/catalogue-categories.
//
//	@Summary	List catalogue categories
//	@Tags		catalogue-categories
//	@Produce	json
//	@Param		parent_id	query		string	false	"parent id filter, or the literal \"null\" for roots"
//	@Success	200			{array}		entities.CatalogueCategory
//	@Router		/v1/catalogue-categories [get]
func (h *CatalogueCategoryController) List(c *gin.Context) {
	parentID, rootsOnly, invalid := request.TreeFilter(c.Query("parent_id"))
	if invalid {
		c.JSON(http.StatusOK, []any{})
		return
	}
	categories, err := h.service.List(c.Request.Context(), parentID, rootsOnly)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Get handles GET /v1/catalogue-categories/{id}.
//
//	@Summary	Get a catalogue category
//	@Tags		catalogue-categories
//	@Produce	json
//	@Param		id	path		string	true	"Category id"
//	@Success	200	{object}	entities.CatalogueCategory
//	@Router		/v1/catalogue-categories/{id} [get]
func (h *CatalogueCategoryController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	category, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Breadcrumbs handles GET /v1/catalogue-categories/{id}/breadcrumbs.
//
//	@Summary	Get a catalogue category's breadcrumb trail
//	@Tags		catalogue-categories
//	@Produce	json
//	@Param		id	path		string	true	"Category id"
//	@Success	200	{object}	breadcrumb.Trail
//	@Router		/v1/catalogue-categories/{id}/breadcrumbs [get]
func (h *CatalogueCategoryController) Breadcrumbs(c *gin.Context) {
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

// Update handles PATCH /v1/catalogue-categories/{id}.
//
//	@Summary	Update a catalogue category
//	@Tags		catalogue-categories
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Category id"
//	@Param		body	body		requests.UpdateCategoryBody	true	"Patch"
//	@Success	200		{object}	entities.CatalogueCategory
//	@Router		/v1/catalogue-categories/{id} [patch]
func (h *CatalogueCategoryController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	raw, err := requests.RawBody(c)
	if err != nil {
		response.RenderError(c, err)
		return
	}

	var patch ports.UpdateCategoryInput
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
	if _, err := requests.Decode(raw, "is_leaf", &patch.IsLeaf); err != nil {
		response.RenderError(c, err)
		return
	}
	if _, present := raw["properties"]; present {
		var props []requests.PropertyBody
		if _, err := requests.Decode(raw, "properties", &props); err != nil {
			response.RenderError(c, err)
			return
		}
		patch.PropertiesSet = true
		patch.Properties = requests.PropertiesToInput(props)
	}

	category, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /v1/catalogue-categories/{id}.
//
//	@Summary	Delete a catalogue category
//	@Tags		catalogue-categories
//	@Param		id	path	string	true	"Category id"
//	@Success	204
//	@Router		/v1/catalogue-categories/{id} [delete]
func (h *CatalogueCategoryController) Delete(c *gin.Context) {
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

// AddProperty handles POST /v1/catalogue-categories/{id}/properties.
//
//	@Summary	Add a property to a catalogue category, propagating it into existing catalogue items and items
//	@Tags		catalogue-categories
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Category id"
//	@Param		body	body		requests.AddPropertyBody	true	"Property"
//	@Success	200		{object}	entities.CatalogueCategory
//	@Router		/v1/catalogue-categories/{id}/properties [post]
func (h *CatalogueCategoryController) AddProperty(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var body requests.AddPropertyBody
	if !bindJSON(c, &body) {
		return
	}

	var defaultValue *ports.PropertyValueInput
	if body.DefaultValue != nil {
		defaultValue = &ports.PropertyValueInput{Value: *body.DefaultValue}
	}

	category, err := h.service.AddProperty(c.Request.Context(), id, body.PropertyBody.ToInput(), defaultValue)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// UpdateProperty handles PATCH
// /v1/catalogue-categories/{id}/properties/{pid}.
//
//	@Summary	Rename or constrain a catalogue category's property, propagating a rename into existing catalogue items and items
//	@Tags		catalogue-categories
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Category id"
//	@Param		pid		path		string							true	"Property id"
//	@Param		body	body		requests.PropertyPatchBody		true	"Patch"
//	@Success	200		{object}	entities.CatalogueCategory
//	@Router		/v1/catalogue-categories/{id}/properties/{pid} [patch]
func (h *CatalogueCategoryController) UpdateProperty(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	propertyID, ok := idParam(c, "pid")
	if !ok {
		return
	}

	raw, err := requests.RawBody(c)
	if err != nil {
		response.RenderError(c, err)
		return
	}

	var patch ports.PropertyPatch
	if _, err := requests.Decode(raw, "name", &patch.Name); err != nil {
		response.RenderError(c, err)
		return
	}
	if _, present := raw["allowed_values"]; present {
		patch.AllowedValuesSet = true
		var av *requests.AllowedValuesBody
		if _, err := requests.Decode(raw, "allowed_values", &av); err != nil {
			response.RenderError(c, err)
			return
		}
		if av != nil {
			patch.AllowedValues = &ports.AllowedValuesInput{Type: av.Type, Values: av.Values}
		}
	}

	category, err := h.service.UpdateProperty(c.Request.Context(), id, propertyID, patch)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}
