package controllers

import (
	"net/http"

	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/http/request"
	"github.com/facilityinv/catalogue-api/internal/http/requests"
	"github.com/facilityinv/catalogue-api/internal/http/response"
	"github.com/gin-gonic/gin"
)

// CatalogueItemController serves /v1/catalogue-items.
type CatalogueItemController struct {
	service ports.CatalogueItemService
}

// NewCatalogueItemController constructs a CatalogueItemController.
func NewCatalogueItemController(service ports.CatalogueItemService) *CatalogueItemController {
	return &CatalogueItemController{service: service}
}

// Create handles POST /v1/catalogue-items.
//
//	@Summary	Create a catalogue item
//	@Tags		catalogue-items
//	@Accept		json
//	@Produce	json
//	@Param		body	body		requests.CreateCatalogueItemBody	true	"Catalogue item"
//	@Success	201		{object}	entities.CatalogueItem
//	@Router		/v1/catalogue-items [post]
func (h *CatalogueItemController) Create(c *gin.Context) {
	var body requests.CreateCatalogueItemBody
	if !bindJSON(c, &body) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), body.ToInput())
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// List handles GET /v1/catalogue-items.
//
//	@Summary	List catalogue items
//	@Tags		catalogue-items
//	@Produce	json
//	@Param		catalogue_category_id	query		string	true	"Category id"
//	@Success	200						{array}		entities.CatalogueItem
//	@Router		/v1/catalogue-items [get]
func (h *CatalogueItemController) List(c *gin.Context) {
	categoryID, present, valid := request.FilterObjectID(c.Query("catalogue_category_id"))
	if !present || !valid {
		// No filter, or an unparsable one: §4.1's permissive-filter rule
		// treats both as "no matches" rather than an error.
		c.JSON(http.StatusOK, []any{})
		return
	}
	items, err := h.service.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get handles GET /v1/catalogue-items/{id}.
//
//	@Summary	Get a catalogue item
//	@Tags		catalogue-items
//	@Produce	json
//	@Param		id	path		string	true	"Catalogue item id"
//	@Success	200	{object}	entities.CatalogueItem
//	@Router		/v1/catalogue-items/{id} [get]
func (h *CatalogueItemController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Update handles PATCH /v1/catalogue-items/{id}.
//
//	@Summary	Update a catalogue item
//	@Tags		catalogue-items
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string								true	"Catalogue item id"
//	@Param		body	body		requests.UpdateCatalogueItemBody	true	"Patch"
//	@Success	200		{object}	entities.CatalogueItem
//	@Router		/v1/catalogue-items/{id} [patch]
func (h *CatalogueItemController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	raw, err := requests.RawBody(c)
	if err != nil {
		response.RenderError(c, err)
		return
	}

	var patch ports.UpdateCatalogueItemInput
	for _, f := range []struct {
		key string
		dst any
	}{
		{"catalogue_category_id", &patch.CatalogueCategoryID},
		{"manufacturer_id", &patch.ManufacturerID},
		{"name", &patch.Name},
		{"description", &patch.Description},
		{"cost", &patch.Cost},
		{"days_to_replace", &patch.DaysToReplace},
		{"days_to_rework", &patch.DaysToRework},
		{"drawing_number", &patch.DrawingNumber},
		{"drawing_link", &patch.DrawingLink},
		{"model_number", &patch.ModelNumber},
		{"notes", &patch.Notes},
		{"is_obsolete", &patch.IsObsolete},
		{"obsolete_reason", &patch.ObsoleteReason},
		{"obsolete_replacement_catalogue_item_id", &patch.ObsoleteReplacementCatalogueItemID},
	} {
		if _, err := requests.Decode(raw, f.key, f.dst); err != nil {
			response.RenderError(c, err)
			return
		}
	}
	if _, present := raw["properties"]; present {
		var props []requests.PropertyValueBody
		if _, err := requests.Decode(raw, "properties", &props); err != nil {
			response.RenderError(c, err)
			return
		}
		patch.PropertiesSet = true
		patch.Properties = requests.PropertyValuesToInput(props)
	}

	item, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/catalogue-items/{id}.
//
//	@Summary	Delete a catalogue item
//	@Tags		catalogue-items
//	@Param		id	path	string	true	"Catalogue item id"
//	@Success	204
//	@Router		/v1/catalogue-items/{id} [delete]
func (h *CatalogueItemController) Delete(c *gin.Context) {
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
