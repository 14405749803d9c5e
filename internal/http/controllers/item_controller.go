package controllers

import (
	"net/http"

	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/http/request"
	"github.com/facilityinv/catalogue-api/internal/http/requests"
	"github.com/facilityinv/catalogue-api/internal/http/response"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ItemController serves /v1/items.
type ItemController struct {
	service ports.ItemService
}

// NewItemController constructs an ItemController.
func NewItemController(service ports.ItemService) *ItemController {
	return &ItemController{service: service}
}

// Create handles POST /v1/items.
//
//	@Summary	Create an item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		body	body		requests.CreateItemBody	true	"Item"
//	@Success	201		{object}	entities.Item
//	@Router		/v1/items [post]
func (h *ItemController) Create(c *gin.Context) {
	var body requests.CreateItemBody
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

// List handles GET /v1/items, filtered by catalogue_item_id and/or
// system_id.
//
//	@Summary	List items
//	@Tags		items
//	@Produce	json
//	@Param		catalogue_item_id	query		string	false	"Catalogue item id filter"
//	@Param		system_id			query		string	false	"System id filter"
//	@Success	200					{array}		entities.Item
//	@Router		/v1/items [get]
func (h *ItemController) List(c *gin.Context) {
	var catalogueItemID, systemID *bson.ObjectID

	if id, present, valid := request.FilterObjectID(c.Query("catalogue_item_id")); present {
		if !valid {
			c.JSON(http.StatusOK, []any{})
			return
		}
		catalogueItemID = &id
	}
	if id, present, valid := request.FilterObjectID(c.Query("system_id")); present {
		if !valid {
			c.JSON(http.StatusOK, []any{})
			return
		}
		systemID = &id
	}

	items, err := h.service.List(c.Request.Context(), catalogueItemID, systemID)
	if err != nil {
		response.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get handles GET /v1/items/{id}.
//
//	@Summary	Get an item
//	@Tags		items
//	@Produce	json
//	@Param		id	path		string	true	"Item id"
//	@Success	200	{object}	entities.Item
//	@Router		/v1/items/{id} [get]
func (h *ItemController) Get(c *gin.Context) {
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

// Update handles PATCH /v1/items/{id}.
//
//	@Summary	Update an item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Item id"
//	@Param		body	body		requests.UpdateItemBody	true	"Patch"
//	@Success	200		{object}	entities.Item
//	@Router		/v1/items/{id} [patch]
func (h *ItemController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	raw, err := requests.RawBody(c)
	if err != nil {
		response.RenderError(c, err)
		return
	}

	var patch ports.UpdateItemInput
	for _, f := range []struct {
		key string
		dst any
	}{
		{"system_id", &patch.SystemID},
		{"usage_status_id", &patch.UsageStatusID},
		{"purchase_order_number", &patch.PurchaseOrderNumber},
		{"warranty_end_date", &patch.WarrantyEndDate},
		{"asset_number", &patch.AssetNumber},
		{"serial_number", &patch.SerialNumber},
		{"delivered_date", &patch.DeliveredDate},
		{"is_defective", &patch.IsDefective},
		{"notes", &patch.Notes},
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

// Delete handles DELETE /v1/items/{id}.
//
//	@Summary	Delete an item
//	@Tags		items
//	@Param		id	path	string	true	"Item id"
//	@Success	204
//	@Router		/v1/items/{id} [delete]
func (h *ItemController) Delete(c *gin.Context) {
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
