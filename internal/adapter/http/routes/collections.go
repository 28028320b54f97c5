package routes

import (
	"cms_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSuppliers = "/suppliers"
	PathWorks     = "/works"
)

func addCollectionRoutes(rg *gin.RouterGroup, supplierHandler *handlers.SupplierHandler, workHandler *handlers.WorkHandler) {
	suppliers := rg.Group(PathSuppliers)
	{
		suppliers.POST("", supplierHandler.CreateSupplier)
		suppliers.GET("", supplierHandler.ListSuppliers)
		suppliers.GET("/:id", supplierHandler.GetSupplier)
		suppliers.PUT("/:id", supplierHandler.UpdateSupplier)
		suppliers.DELETE("/:id", supplierHandler.DeleteSupplier)
	}

	works := rg.Group(PathWorks)
	{
		works.POST("", workHandler.CreateWork)
		works.GET("", workHandler.ListWorks)
		works.GET("/:id", workHandler.GetWork)
		works.PUT("/:id", workHandler.UpdateWork)
		works.DELETE("/:id", workHandler.DeleteWork)
	}
}
