package httpserver

import (
	"net/http"

	"shoemarket/internal/domain"
	"github.com/gin-gonic/gin"
)

type createOrderRequest struct {
	ShippingAddress string `json:"shippingAddress" binding:"required"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

func createOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, err)
			return
		}
		order, err := svc.Create(c.Request.Context(), currentUser(c), req.ShippingAddress, req.PaymentMethod)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "Order created", order)
	}
}

func userOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListForBuyer(c.Request.Context(), currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Orders retrieved", nonNilOrders(orders))
	}
}

func sellerOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListForSeller(c.Request.Context(), currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Seller orders retrieved", nonNilOrders(orders))
	}
}

func getOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Get(c.Request.Context(), c.Param("id"), currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Order found", order)
	}
}

func updateOrderStatusHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, err)
			return
		}
		order, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), currentUser(c), req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Order status updated", order)
	}
}

func updatePaymentStatusHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req paymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, err)
			return
		}
		order, err := svc.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), req.PaymentStatus)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Payment status updated", order)
	}
}

func nonNilOrders(orders []domain.Order) []domain.Order {
	if orders == nil {
		return []domain.Order{}
	}
	return orders
}
