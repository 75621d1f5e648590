package services

import (
	"context"
	"errors"
	"fmt"
	"storefront-api/models"
	"storefront-api/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderService defines the interface for order business logic.
type OrderService interface {
	GetAll(ctx context.Context) ([]models.OrderResponse, *ServiceError)
	GetByID(ctx context.Context, id uuid.UUID) (*models.OrderResponse, *ServiceError)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.OrderResponse, *ServiceError)
	Create(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderResponse, *ServiceError)
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateOrderRequest) (*models.OrderResponse, *ServiceError)
	Delete(ctx context.Context, id uuid.UUID) *ServiceError
}

type orderServiceImpl struct {
	repo        repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	repo repository.OrderRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{repo: repo, userRepo: userRepo, productRepo: productRepo, logger: logger}
}

func (s *orderServiceImpl) GetAll(ctx context.Context) ([]models.OrderResponse, *ServiceError) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}
	return toOrderResponses(orders), nil
}

func (s *orderServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.OrderResponse, *ServiceError) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to fetch order", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch order"}
	}
	resp := order.ToResponse()
	return &resp, nil
}

func (s *orderServiceImpl) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.OrderResponse, *ServiceError) {
	orders, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list user orders", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}
	return toOrderResponses(orders), nil
}

// Create builds the order from its line items. Per item, in input order:
// the product must exist, its stock must cover the requested quantity and
// the quantity must be positive. The current product price is snapshotted
// into the line item so later price changes leave placed orders alone,
// the stock is decremented and the total accumulated. The order, its
// items and every stock decrement are persisted in a single transaction;
// a failed item means nothing is written. The initial status is always
// Pending regardless of input.
//
// Stock checks run before the transaction and there is no row locking, so
// two concurrent orders for the same product can both pass the check.
func (s *orderServiceImpl) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderResponse, *ServiceError) {
	exists, err := s.userRepo.Exists(ctx, req.UserID)
	if err != nil {
		s.logger.Error("User existence check failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create order"}
	}
	if !exists {
		return nil, &ServiceError{StatusCode: 400, Message: "User not found"}
	}

	if len(req.Items) == 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Order must contain at least one item"}
	}

	order := &models.Order{
		UserID: req.UserID,
		Status: models.OrderStatusPending,
	}

	// Each product is fetched once so repeated line items for the same
	// product see the already-decremented stock.
	products := make(map[uuid.UUID]*models.Product)
	touched := make([]*models.Product, 0, len(req.Items))
	var total float64

	for _, item := range req.Items {
		product, ok := products[item.ProductID]
		if !ok {
			p, err := s.productRepo.FindByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, &ServiceError{StatusCode: 400, Message: fmt.Sprintf("Product not found: %s", item.ProductID)}
				}
				s.logger.Error("Failed to fetch product", zap.String("product_id", item.ProductID.String()), zap.Error(err))
				return nil, &ServiceError{StatusCode: 500, Message: "Failed to create order"}
			}
			product = p
			products[item.ProductID] = product
			touched = append(touched, product)
		}

		if product.Stock < item.Quantity {
			return nil, &ServiceError{
				StatusCode: 400,
				Message: fmt.Sprintf("Insufficient stock for %s (available: %d, requested: %d)",
					product.Name, product.Stock, item.Quantity),
			}
		}

		if item.Quantity <= 0 {
			return nil, &ServiceError{StatusCode: 400, Message: "Quantity must be greater than zero"}
		}

		orderItem := models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		}

		total += orderItem.UnitPrice * float64(orderItem.Quantity)
		order.Items = append(order.Items, orderItem)
		product.Stock -= item.Quantity
	}

	order.TotalPrice = total

	if err := s.repo.CreateWithStockUpdates(ctx, order, touched); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create order"}
	}

	s.logger.Info("Order created",
		zap.String("id", order.ID.String()),
		zap.String("user_id", order.UserID.String()),
		zap.Float64("total_price", order.TotalPrice),
		zap.Int("items", len(order.Items)),
	)

	resp := order.ToResponse()
	return &resp, nil
}

// Update changes the status only. Membership in the enum is the sole
// check; any status may follow any other.
func (s *orderServiceImpl) Update(ctx context.Context, id uuid.UUID, req *models.UpdateOrderRequest) (*models.OrderResponse, *ServiceError) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to fetch order", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update order"}
	}

	if req.Status != nil {
		if !models.IsValidOrderStatus(*req.Status) {
			return nil, &ServiceError{StatusCode: 400, Message: fmt.Sprintf("Invalid status: %s", *req.Status)}
		}
		order.Status = *req.Status
	}

	if err := s.repo.Update(ctx, order); err != nil {
		s.logger.Error("Failed to update order", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update order"}
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to reload order", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update order"}
	}

	resp := updated.ToResponse()
	return &resp, nil
}

// Delete removes the order and its items. Stock decremented at creation
// is not restored.
func (s *orderServiceImpl) Delete(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to delete order", zap.String("id", id.String()), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete order"}
	}
	s.logger.Info("Order deleted", zap.String("id", id.String()))
	return nil
}

func toOrderResponses(orders []models.Order) []models.OrderResponse {
	out := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, orders[i].ToResponse())
	}
	return out
}
