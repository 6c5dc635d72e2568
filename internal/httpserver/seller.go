package httpserver

import (
	"net/http"

	catalogsvc "shoemarket/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

func sellerProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListBySeller(c.Request.Context(), currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Products retrieved successfully", nonNilProducts(products))
	}
}

func createProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, err)
			return
		}
		product, err := svc.Create(c.Request.Context(), currentUser(c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "Product created successfully", product)
	}
}

func updateProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, err)
			return
		}
		product, err := svc.Update(c.Request.Context(), c.Param("id"), currentUser(c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Product updated successfully", product)
	}
}

func deleteProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id"), currentUser(c)); err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Product deleted successfully", nil)
	}
}

func sellerDashboardHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Dashboard(c.Request.Context(), currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Dashboard data retrieved", stats)
	}
}
