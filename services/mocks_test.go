package services_test

import (
	"context"
	"storefront-api/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repositories used by the service tests. They mirror the
// persistence contract: Create assigns IDs and timestamps, Update keeps
// created_at and bumps updated_at, reads hand out copies so callers
// cannot mutate the store without going through Update.

type memUserRepo struct {
	users map[uuid.UUID]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]models.User)}
}

func (m *memUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := u
	return &cp, nil
}

func (m *memUserRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.users[id]
	return ok, nil
}

func (m *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) Create(_ context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.users[user.ID] = *user
	return nil
}

func (m *memUserRepo) Update(_ context.Context, user *models.User) error {
	stored, ok := m.users[user.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.CreatedAt = stored.CreatedAt
	user.UpdatedAt = time.Now()
	m.users[user.ID] = *user
	return nil
}

func (m *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	return nil
}

type memProductRepo struct {
	products map[uuid.UUID]models.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]models.Product)}
}

func (m *memProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := p
	return &cp, nil
}

func (m *memProductRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.products[id]
	return ok, nil
}

func (m *memProductRepo) Create(_ context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	m.products[product.ID] = *product
	return nil
}

func (m *memProductRepo) Update(_ context.Context, product *models.Product) error {
	stored, ok := m.products[product.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	product.CreatedAt = stored.CreatedAt
	product.UpdatedAt = time.Now()
	m.products[product.ID] = *product
	return nil
}

func (m *memProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memProductRepo) stockOf(id uuid.UUID) int {
	return m.products[id].Stock
}

type memReviewRepo struct {
	reviews map[uuid.UUID]models.Review
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{reviews: make(map[uuid.UUID]models.Review)}
}

func (m *memReviewRepo) FindAll(_ context.Context) ([]models.Review, error) {
	out := make([]models.Review, 0, len(m.reviews))
	for _, r := range m.reviews {
		out = append(out, r)
	}
	return out, nil
}

func (m *memReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Review, error) {
	r, ok := m.reviews[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := r
	return &cp, nil
}

func (m *memReviewRepo) FindByProductID(_ context.Context, productID uuid.UUID) ([]models.Review, error) {
	var out []models.Review
	for _, r := range m.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReviewRepo) Create(_ context.Context, review *models.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now
	m.reviews[review.ID] = *review
	return nil
}

func (m *memReviewRepo) Update(_ context.Context, review *models.Review) error {
	stored, ok := m.reviews[review.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	review.CreatedAt = stored.CreatedAt
	review.UpdatedAt = time.Now()
	m.reviews[review.ID] = *review
	return nil
}

func (m *memReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.reviews[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.reviews, id)
	return nil
}

type memOrderRepo struct {
	orders      map[uuid.UUID]models.Order
	productRepo *memProductRepo
	createCalls int
}

func newMemOrderRepo(productRepo *memProductRepo) *memOrderRepo {
	return &memOrderRepo{orders: make(map[uuid.UUID]models.Order), productRepo: productRepo}
}

func (m *memOrderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := o
	cp.Items = append([]models.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (m *memOrderRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrderRepo) CreateWithStockUpdates(_ context.Context, order *models.Order, products []*models.Product) error {
	m.createCalls++
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
		order.Items[i].OrderID = order.ID
		order.Items[i].CreatedAt = now
		order.Items[i].UpdatedAt = now
	}
	m.orders[order.ID] = *order
	for _, p := range products {
		stored := m.productRepo.products[p.ID]
		stored.Stock = p.Stock
		stored.UpdatedAt = now
		m.productRepo.products[p.ID] = stored
	}
	return nil
}

func (m *memOrderRepo) Update(_ context.Context, order *models.Order) error {
	stored, ok := m.orders[order.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.CreatedAt = stored.CreatedAt
	order.UpdatedAt = time.Now()
	cp := *order
	cp.Items = stored.Items
	m.orders[order.ID] = cp
	return nil
}

func (m *memOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.orders[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.orders, id)
	return nil
}
