package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func getCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.GetOrCreate(c.Request.Context(), currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Cart retrieved", cart)
	}
}

func addCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, err)
			return
		}
		cart, err := svc.AddItem(c.Request.Context(), currentUser(c), req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Item added to cart", cart)
	}
}

func updateCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req quantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, err)
			return
		}
		cart, err := svc.UpdateItem(c.Request.Context(), currentUser(c), c.Param("id"), req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Cart updated", cart)
	}
}

func removeCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RemoveItem(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Item removed from cart", nil)
	}
}

func clearCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), currentUser(c)); err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Cart cleared", nil)
	}
}
