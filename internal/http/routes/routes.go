// Package routes mounts the §6 route surface onto a *gin.Engine.
package routes

import (
	"github.com/facilityinv/catalogue-api/config"
	"github.com/facilityinv/catalogue-api/internal/http/controllers"
	"github.com/facilityinv/catalogue-api/internal/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers bundles every handler New routes needs, one field per
// aggregate, so callers build their dependency graph once in cmd/serve.go
// and hand the result here.
type Controllers struct {
	CatalogueCategories *controllers.CatalogueCategoryController
	Systems             *controllers.SystemController
	CatalogueItems      *controllers.CatalogueItemController
	Items               *controllers.ItemController
	Units               *controllers.UnitController
	UsageStatuses       *controllers.UsageStatusController
	Manufacturers       *controllers.ManufacturerController
}

// New builds the gin engine and mounts every route in the §6 surface under
// /v1, guarded by the bearer-auth middleware, plus the swagger UI.
func New(ctrl Controllers, auth *config.Auth) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) { c.Status(200) })

	v1 := r.Group("/v1")
	v1.Use(middleware.BearerAuth(auth))

	categories := v1.Group("/catalogue-categories")
	{
		categories.POST("", ctrl.CatalogueCategories.Create)
		categories.GET("", ctrl.CatalogueCategories.List)
		categories.GET("/:id", ctrl.CatalogueCategories.Get)
		categories.GET("/:id/breadcrumbs", ctrl.CatalogueCategories.Breadcrumbs)
		categories.PATCH("/:id", ctrl.CatalogueCategories.Update)
		categories.DELETE("/:id", ctrl.CatalogueCategories.Delete)
		categories.POST("/:id/properties", ctrl.CatalogueCategories.AddProperty)
		categories.PATCH("/:id/properties/:pid", ctrl.CatalogueCategories.UpdateProperty)
	}

	systems := v1.Group("/systems")
	{
		systems.POST("", ctrl.Systems.Create)
		systems.GET("", ctrl.Systems.List)
		systems.GET("/:id", ctrl.Systems.Get)
		systems.GET("/:id/breadcrumbs", ctrl.Systems.Breadcrumbs)
		systems.PATCH("/:id", ctrl.Systems.Update)
		systems.DELETE("/:id", ctrl.Systems.Delete)
	}

	catalogueItems := v1.Group("/catalogue-items")
	{
		catalogueItems.POST("", ctrl.CatalogueItems.Create)
		catalogueItems.GET("", ctrl.CatalogueItems.List)
		catalogueItems.GET("/:id", ctrl.CatalogueItems.Get)
		catalogueItems.PATCH("/:id", ctrl.CatalogueItems.Update)
		catalogueItems.DELETE("/:id", ctrl.CatalogueItems.Delete)
	}

	items := v1.Group("/items")
	{
		items.POST("", ctrl.Items.Create)
		items.GET("", ctrl.Items.List)
		items.GET("/:id", ctrl.Items.Get)
		items.PATCH("/:id", ctrl.Items.Update)
		items.DELETE("/:id", ctrl.Items.Delete)
	}

	units := v1.Group("/units")
	{
		units.POST("", ctrl.Units.Create)
		units.GET("", ctrl.Units.List)
		units.DELETE("/:id", ctrl.Units.Delete)
	}

	usageStatuses := v1.Group("/usage-statuses")
	{
		usageStatuses.POST("", ctrl.UsageStatuses.Create)
		usageStatuses.GET("", ctrl.UsageStatuses.List)
		usageStatuses.DELETE("/:id", ctrl.UsageStatuses.Delete)
	}

	manufacturers := v1.Group("/manufacturers")
	{
		manufacturers.POST("", ctrl.Manufacturers.Create)
		manufacturers.GET("", ctrl.Manufacturers.List)
		manufacturers.GET("/:id", ctrl.Manufacturers.Get)
		manufacturers.PATCH("/:id", ctrl.Manufacturers.Update)
		manufacturers.DELETE("/:id", ctrl.Manufacturers.Delete)
	}

	return r
}
