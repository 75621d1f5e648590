package services

import (
	"context"
	"errors"
	"storefront-api/models"
	"storefront-api/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductService defines the interface for product business logic.
type ProductService interface {
	GetAll(ctx context.Context) ([]models.ProductResponse, *ServiceError)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProductResponse, *ServiceError)
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.ProductResponse, *ServiceError)
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.ProductResponse, *ServiceError)
	Delete(ctx context.Context, id uuid.UUID) *ServiceError
}

type productServiceImpl struct {
	repo     repository.ProductRepository
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(repo repository.ProductRepository, userRepo repository.UserRepository, logger *zap.Logger) ProductService {
	return &productServiceImpl{repo: repo, userRepo: userRepo, logger: logger}
}

func (s *productServiceImpl) GetAll(ctx context.Context) ([]models.ProductResponse, *ServiceError) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch products"}
	}
	out := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, products[i].ToResponse())
	}
	return out, nil
}

func (s *productServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.ProductResponse, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to fetch product", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch product"}
	}
	resp := product.ToResponse()
	return &resp, nil
}

// Create validates the owning user and the non-negativity of stock and
// price before inserting.
func (s *productServiceImpl) Create(ctx context.Context, req *models.CreateProductRequest) (*models.ProductResponse, *ServiceError) {
	exists, err := s.userRepo.Exists(ctx, req.UserID)
	if err != nil {
		s.logger.Error("User existence check failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create product"}
	}
	if !exists {
		return nil, &ServiceError{StatusCode: 400, Message: "User not found"}
	}

	if req.Stock < 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Stock cannot be negative"}
	}
	if req.Price < 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Price cannot be negative"}
	}

	product := &models.Product{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create product"}
	}

	s.logger.Info("Product created", zap.String("id", product.ID.String()), zap.String("name", product.Name))
	resp := product.ToResponse()
	return &resp, nil
}

// Update applies a partial patch; price and stock are re-validated only
// when supplied.
func (s *productServiceImpl) Update(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.ProductResponse, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to fetch product", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update product"}
	}

	if req.Stock != nil && *req.Stock < 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Stock cannot be negative"}
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Price cannot be negative"}
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update product"}
	}

	resp := product.ToResponse()
	return &resp, nil
}

// Delete removes the product. Referencing reviews or order items block
// the delete at the database level.
func (s *productServiceImpl) Delete(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to delete product", zap.String("id", id.String()), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete product"}
	}
	s.logger.Info("Product deleted", zap.String("id", id.String()))
	return nil
}
