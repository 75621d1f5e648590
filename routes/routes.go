package routes

import (
	"net/http"
	"storefront-api/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint under /api plus the /ping probe.
func RegisterRoutes(
	r *gin.Engine,
	users *controllers.UserController,
	products *controllers.ProductController,
	reviews *controllers.ReviewController,
	orders *controllers.OrderController,
) {
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	api := r.Group("/api")

	api.GET("/users", users.List)
	api.GET("/users/:id", users.GetByID)
	api.POST("/users", users.Create)
	api.PUT("/users/:id", users.Update)
	api.DELETE("/users/:id", users.Delete)
	api.GET("/users/:id/orders", orders.ListByUser)

	api.GET("/products", products.List)
	api.GET("/products/:id", products.GetByID)
	api.POST("/products", products.Create)
	api.PUT("/products/:id", products.Update)
	api.DELETE("/products/:id", products.Delete)
	api.GET("/products/:id/reviews", reviews.ListByProduct)

	api.GET("/reviews", reviews.List)
	api.GET("/reviews/:id", reviews.GetByID)
	api.POST("/reviews", reviews.Create)
	api.PUT("/reviews/:id", reviews.Update)
	api.DELETE("/reviews/:id", reviews.Delete)

	api.GET("/orders", orders.List)
	api.GET("/orders/:id", orders.GetByID)
	api.POST("/orders", orders.Create)
	api.PUT("/orders/:id", orders.Update)
	api.DELETE("/orders/:id", orders.Delete)
}
