package controllers

import (
	"net/http"
	"storefront-api/models"
	"storefront-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderController handles HTTP requests for order operations.
type OrderController struct {
	orderService services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(svc services.OrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// List handles GET /api/orders
func (oc *OrderController) List(ctx *gin.Context) {
	orders, svcErr := oc.orderService.GetAll(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(orders, "Orders fetched"))
}

// GetByID handles GET /api/orders/:id
func (oc *OrderController) GetByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, Fail("Order not found"))
		return
	}

	order, svcErr := oc.orderService.GetByID(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(order, "Order fetched"))
}

// ListByUser handles GET /api/users/:id/orders
func (oc *OrderController) ListByUser(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, Fail("User not found"))
		return
	}

	orders, svcErr := oc.orderService.GetByUserID(ctx.Request.Context(), userID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(orders, "User orders fetched"))
}

// Create handles POST /api/orders
func (oc *OrderController) Create(ctx *gin.Context) {
	var req models.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, Fail("Invalid request", err.Error()))
		return
	}

	order, svcErr := oc.orderService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}

	ctx.Header("Location", "/api/orders/"+order.ID.String())
	ctx.JSON(http.StatusCreated, OK(order, "Order created"))
}

// Update handles PUT /api/orders/:id
func (oc *OrderController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, Fail("Order not found"))
		return
	}

	var req models.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, Fail("Invalid request", err.Error()))
		return
	}

	order, svcErr := oc.orderService.Update(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(order, "Order updated"))
}

// Delete handles DELETE /api/orders/:id
func (oc *OrderController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, Fail("Order not found"))
		return
	}

	if svcErr := oc.orderService.Delete(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(nil, "Order deleted"))
}
