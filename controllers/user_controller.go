package controllers

import (
	"net/http"
	"storefront-api/models"
	"storefront-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserController handles HTTP requests for user operations.
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController.
func NewUserController(svc services.UserService) *UserController {
	return &UserController{userService: svc}
}

// List handles GET /api/users
func (uc *UserController) List(ctx *gin.Context) {
	users, svcErr := uc.userService.GetAll(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(users, "Users fetched"))
}

// GetByID handles GET /api/users/:id
func (uc *UserController) GetByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, Fail("User not found"))
		return
	}

	user, svcErr := uc.userService.GetByID(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(user, "User fetched"))
}

// Create handles POST /api/users
func (uc *UserController) Create(ctx *gin.Context) {
	var req models.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, Fail("Invalid request", err.Error()))
		return
	}

	user, svcErr := uc.userService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}

	ctx.Header("Location", "/api/users/"+user.ID.String())
	ctx.JSON(http.StatusCreated, OK(user, "User created"))
}

// Update handles PUT /api/users/:id
func (uc *UserController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, Fail("User not found"))
		return
	}

	var req models.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, Fail("Invalid request", err.Error()))
		return
	}

	user, svcErr := uc.userService.Update(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(user, "User updated"))
}

// Delete handles DELETE /api/users/:id
func (uc *UserController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, Fail("User not found"))
		return
	}

	if svcErr := uc.userService.Delete(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, Fail(svcErr.Message))
		return
	}
	ctx.JSON(http.StatusOK, OK(nil, "User deleted"))
}
