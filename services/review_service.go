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

// ReviewService defines the interface for review business logic.
type ReviewService interface {
	GetAll(ctx context.Context) ([]models.ReviewResponse, *ServiceError)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ReviewResponse, *ServiceError)
	GetByProductID(ctx context.Context, productID uuid.UUID) ([]models.ReviewResponse, *ServiceError)
	Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, *ServiceError)
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateReviewRequest) (*models.ReviewResponse, *ServiceError)
	Delete(ctx context.Context, id uuid.UUID) *ServiceError
}

type reviewServiceImpl struct {
	repo        repository.ReviewRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

// NewReviewService creates a new ReviewService.
func NewReviewService(
	repo repository.ReviewRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	logger *zap.Logger,
) ReviewService {
	return &reviewServiceImpl{repo: repo, userRepo: userRepo, productRepo: productRepo, logger: logger}
}

func (s *reviewServiceImpl) GetAll(ctx context.Context) ([]models.ReviewResponse, *ServiceError) {
	reviews, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list reviews", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch reviews"}
	}
	return toReviewResponses(reviews), nil
}

func (s *reviewServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.ReviewResponse, *ServiceError) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Review not found"}
		}
		s.logger.Error("Failed to fetch review", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch review"}
	}
	resp := review.ToResponse()
	return &resp, nil
}

// GetByProductID returns every review for the product, in storage order.
func (s *reviewServiceImpl) GetByProductID(ctx context.Context, productID uuid.UUID) ([]models.ReviewResponse, *ServiceError) {
	reviews, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to list product reviews", zap.String("product_id", productID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch reviews"}
	}
	return toReviewResponses(reviews), nil
}

// Create validates that both referenced rows exist and that the rating is
// within [1,5].
func (s *reviewServiceImpl) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, *ServiceError) {
	exists, err := s.userRepo.Exists(ctx, req.UserID)
	if err != nil {
		s.logger.Error("User existence check failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create review"}
	}
	if !exists {
		return nil, &ServiceError{StatusCode: 400, Message: "User not found"}
	}

	exists, err = s.productRepo.Exists(ctx, req.ProductID)
	if err != nil {
		s.logger.Error("Product existence check failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create review"}
	}
	if !exists {
		return nil, &ServiceError{StatusCode: 400, Message: "Product not found"}
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, &ServiceError{StatusCode: 400, Message: "Rating must be between 1 and 5"}
	}

	review := &models.Review{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		s.logger.Error("Failed to create review", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create review"}
	}

	s.logger.Info("Review created", zap.String("id", review.ID.String()), zap.String("product_id", review.ProductID.String()))
	resp := review.ToResponse()
	return &resp, nil
}

// Update applies a partial patch; the rating range is re-validated only
// when a rating is supplied.
func (s *reviewServiceImpl) Update(ctx context.Context, id uuid.UUID, req *models.UpdateReviewRequest) (*models.ReviewResponse, *ServiceError) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Review not found"}
		}
		s.logger.Error("Failed to fetch review", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update review"}
	}

	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return nil, &ServiceError{StatusCode: 400, Message: "Rating must be between 1 and 5"}
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.repo.Update(ctx, review); err != nil {
		s.logger.Error("Failed to update review", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update review"}
	}

	resp := review.ToResponse()
	return &resp, nil
}

func (s *reviewServiceImpl) Delete(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Review not found"}
		}
		s.logger.Error("Failed to delete review", zap.String("id", id.String()), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete review"}
	}
	s.logger.Info("Review deleted", zap.String("id", id.String()))
	return nil
}

func toReviewResponses(reviews []models.Review) []models.ReviewResponse {
	out := make([]models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, reviews[i].ToResponse())
	}
	return out
}
