package models

import (
	"time"

	"github.com/google/uuid"
)

// Order status constants.
const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// ValidOrderStatuses lists every status an order may hold.
var ValidOrderStatuses = []string{OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled}

// IsValidOrderStatus reports whether s is one of the known order statuses.
func IsValidOrderStatus(s string) bool {
	for _, v := range ValidOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"type:varchar(256);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"type:varchar(50);not null" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Referencing rows block deletion; there is no cascade from a user.
	Products []Product `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	Orders   []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
}

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Price       float64   `gorm:"not null;check:price >= 0" json:"price"`
	Stock       int       `gorm:"not null;check:stock >= 0" json:"stock"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Reviews    []Review    `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
	OrderItems []OrderItem `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
}

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"not null" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Order struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TotalPrice float64   `gorm:"not null;check:total_price >= 0" json:"total_price"`
	Status     string    `gorm:"type:varchar(50);not null;default:'Pending';check:status IN ('Pending','Completed','Cancelled')" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Items are owned exclusively by the order and go away with it.
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Quantity  int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	// UnitPrice is the product price captured at order-creation time.
	UnitPrice float64   `gorm:"not null;check:unit_price >= 0" json:"unit_price"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
