package controllers

import (
	"net/http"
	"storefront-api/models"
	"storefront-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReviewController handles HTTP requests for review operations.
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController.
func NewReviewController(svc services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: svc}
}

// List handles GET /api/reviews
func (rc *ReviewController) List(ctx *gin.Context) {
	reviews, svcErr := rc.reviewService.GetAll(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(reviews, "Reviews fetched"))
}

// GetByID handles GET /api/reviews/:id
func (rc *ReviewController) GetByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, Fail("Review not found"))
		return
	}

	review, svcErr := rc.reviewService.GetByID(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(review, "Review fetched"))
}

// ListByProduct handles GET /api/products/:id/reviews
func (rc *ReviewController) ListByProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, Fail("Product not found"))
		return
	}

	reviews, svcErr := rc.reviewService.GetByProductID(ctx.Request.Context(), productID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(reviews, "Product reviews fetched"))
}

// Create handles POST /api/reviews
func (rc *ReviewController) Create(ctx *gin.Context) {
	var req models.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, Fail("Invalid request", err.Error()))
		return
	}

	review, svcErr := rc.reviewService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}

	ctx.Header("Location", "/api/reviews/"+review.ID.String())
	ctx.JSON(http.StatusCreated, OK(review, "Review created"))
}

// Update handles PUT /api/reviews/:id
func (rc *ReviewController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, Fail("Review not found"))
		return
	}

	var req models.UpdateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, Fail("Invalid request", err.Error()))
		return
	}

	review, svcErr := rc.reviewService.Update(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(review, "Review updated"))
}

// Delete handles DELETE /api/reviews/:id
func (rc *ReviewController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, Fail("Review not found"))
		return
	}

	if svcErr := rc.reviewService.Delete(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(nil, "Review deleted"))
}
