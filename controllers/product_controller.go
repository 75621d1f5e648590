package controllers

import (
	"net/http"
	"storefront-api/models"
	"storefront-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductController handles HTTP requests for product operations.
type ProductController struct {
	productService services.ProductService
}

// NewProductController creates a new ProductController.
func NewProductController(svc services.ProductService) *ProductController {
	return &ProductController{productService: svc}
}

// List handles GET /api/products
func (pc *ProductController) List(ctx *gin.Context) {
	products, svcErr := pc.productService.GetAll(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(products, "Products fetched"))
}

// GetByID handles GET /api/products/:id
func (pc *ProductController) GetByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, Fail("Product not found"))
		return
	}

	product, svcErr := pc.productService.GetByID(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(product, "Product fetched"))
}

// Create handles POST /api/products
func (pc *ProductController) Create(ctx *gin.Context) {
	var req models.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, Fail("Invalid request", err.Error()))
		return
	}

	product, svcErr := pc.productService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}

	ctx.Header("Location", "/api/products/"+product.ID.String())
	ctx.JSON(http.StatusCreated, OK(product, "Product created"))
}

// Update handles PUT /api/products/:id
func (pc *ProductController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, Fail("Product not found"))
		return
	}

	var req models.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, Fail("Invalid request", err.Error()))
		return
	}

	product, svcErr := pc.productService.Update(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(product, "Product updated"))
}

// Delete handles DELETE /api/products/:id
func (pc *ProductController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, Fail("Product not found"))
		return
	}

	if svcErr := pc.productService.Delete(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(nil, "Product deleted"))
}
