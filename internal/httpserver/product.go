package httpserver

import (
	"net/http"
	"strings"

	"shoemarket/internal/domain"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Products retrieved successfully", nonNilProducts(products))
	}
}

func getProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Product found", product)
	}
}

func productsByCategoryHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Products retrieved successfully", nonNilProducts(products))
	}
}

func searchProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("q"))
		products, err := svc.Search(c.Request.Context(), query)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Search results", nonNilProducts(products))
	}
}

func categoriesHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, http.StatusOK, "Categories retrieved", svc.Categories())
	}
}

func nonNilProducts(products []domain.Product) []domain.Product {
	if products == nil {
		return []domain.Product{}
	}
	return products
}
