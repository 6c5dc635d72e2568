package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	products := api.Group("/products")
	products.GET("", listProductsHandler(deps.Catalog))
	products.GET("/categories", categoriesHandler(deps.Catalog))
	products.GET("/search", searchProductsHandler(deps.Catalog))
	products.GET("/category/:category", productsByCategoryHandler(deps.Catalog))
	products.GET("/:id", getProductHandler(deps.Catalog))

	authed := api.Group("", authMiddleware([]byte(deps.JWTSecret), deps.UserRepo))

	cart := authed.Group("/cart")
	cart.GET("", getCartHandler(deps.Cart))
	cart.POST("/items", addCartItemHandler(deps.Cart))
	cart.PUT("/items/:id", updateCartItemHandler(deps.Cart))
	cart.DELETE("/items/:id", removeCartItemHandler(deps.Cart))
	cart.DELETE("/clear", clearCartHandler(deps.Cart))

	orders := authed.Group("/orders")
	orders.POST("", createOrderHandler(deps.Orders))
	orders.GET("/user", userOrdersHandler(deps.Orders))
	orders.GET("/seller", sellerOrdersHandler(deps.Orders))
	orders.GET("/:id", getOrderHandler(deps.Orders))
	orders.PUT("/:id/status", updateOrderStatusHandler(deps.Orders))
	orders.PUT("/:id/payment", updatePaymentStatusHandler(deps.Orders))

	seller := authed.Group("/seller")
	seller.GET("/products", sellerProductsHandler(deps.Catalog))
	seller.POST("/products", createProductHandler(deps.Catalog))
	seller.PUT("/products/:id", updateProductHandler(deps.Catalog))
	seller.DELETE("/products/:id", deleteProductHandler(deps.Catalog))
	seller.GET("/dashboard", sellerDashboardHandler(deps.Catalog))

	profile := authed.Group("/user")
	profile.GET("/profile", getProfileHandler())
	profile.PUT("/profile", updateProfileHandler(deps.Users))

	return router
}

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags every request with an id for log correlation.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
