package services_test

import (
	"context"
	"testing"

	"storefront-api/models"
	"storefront-api/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newProductServiceFixture() (services.ProductService, *memProductRepo, *memUserRepo) {
	logger, _ := zap.NewDevelopment()
	userRepo := newMemUserRepo()
	productRepo := newMemProductRepo()
	return services.NewProductService(productRepo, userRepo, logger), productRepo, userRepo
}

func TestCreateProduct(t *testing.T) {
	svc, _, userRepo := newProductServiceFixture()
	ownerID := seedUser(t, userRepo)

	resp, svcErr := svc.Create(context.Background(), &models.CreateProductRequest{
		UserID:      ownerID,
		Name:        "Keyboard",
		Description: "Mechanical, tenkeyless",
		Price:       49.90,
		Stock:       12,
	})

	assert.Nil(t, svcErr)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, ownerID, resp.UserID)
	assert.Equal(t, "Keyboard", resp.Name)
	assert.InDelta(t, 49.90, resp.Price, 1e-9)
	assert.Equal(t, 12, resp.Stock)
}

func TestCreateProduct_OwnerMissing(t *testing.T) {
	svc, productRepo, _ := newProductServiceFixture()

	resp, svcErr := svc.Create(context.Background(), &models.CreateProductRequest{
		UserID: uuid.New(), Name: "Orphan", Description: "d", Price: 1, Stock: 1,
	})

	assert.Nil(t, resp)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Equal(t, "User not found", svcErr.Message)
	assert.Len(t, productRepo.products, 0)
}

func TestCreateProduct_NegativePriceOrStock(t *testing.T) {
	svc, productRepo, userRepo := newProductServiceFixture()
	ownerID := seedUser(t, userRepo)

	resp, svcErr := svc.Create(context.Background(), &models.CreateProductRequest{
		UserID: ownerID, Name: "Bad", Description: "d", Price: -1, Stock: 1,
	})
	assert.Nil(t, resp)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Equal(t, "Price cannot be negative", svcErr.Message)

	resp, svcErr = svc.Create(context.Background(), &models.CreateProductRequest{
		UserID: ownerID, Name: "Bad", Description: "d", Price: 1, Stock: -1,
	})
	assert.Nil(t, resp)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Equal(t, "Stock cannot be negative", svcErr.Message)

	assert.Len(t, productRepo.products, 0)
}

func TestCreateProduct_ZeroPriceAndStockAllowed(t *testing.T) {
	svc, _, userRepo := newProductServiceFixture()
	ownerID := seedUser(t, userRepo)

	resp, svcErr := svc.Create(context.Background(), &models.CreateProductRequest{
		UserID: ownerID, Name: "Freebie", Description: "d", Price: 0, Stock: 0,
	})

	assert.Nil(t, svcErr)
	assert.InDelta(t, 0, resp.Price, 1e-9)
	assert.Equal(t, 0, resp.Stock)
}

func TestUpdateProduct_PartialPatch(t *testing.T) {
	svc, _, userRepo := newProductServiceFixture()
	ownerID := seedUser(t, userRepo)

	created, svcErr := svc.Create(context.Background(), &models.CreateProductRequest{
		UserID: ownerID, Name: "Mouse", Description: "Wireless", Price: 19.90, Stock: 5,
	})
	assert.Nil(t, svcErr)

	newPrice := 24.90
	resp, svcErr := svc.Update(context.Background(), created.ID, &models.UpdateProductRequest{Price: &newPrice})

	assert.Nil(t, svcErr)
	assert.InDelta(t, 24.90, resp.Price, 1e-9)
	assert.Equal(t, "Mouse", resp.Name)
	assert.Equal(t, "Wireless", resp.Description)
	assert.Equal(t, 5, resp.Stock)
	assert.Equal(t, created.CreatedAt, resp.CreatedAt)
}

func TestUpdateProduct_NegativeValuesRejected(t *testing.T) {
	svc, _, userRepo := newProductServiceFixture()
	ownerID := seedUser(t, userRepo)

	created, svcErr := svc.Create(context.Background(), &models.CreateProductRequest{
		UserID: ownerID, Name: "Hub", Description: "d", Price: 39.90, Stock: 3,
	})
	assert.Nil(t, svcErr)

	negStock := -2
	resp, svcErr := svc.Update(context.Background(), created.ID, &models.UpdateProductRequest{Stock: &negStock})
	assert.Nil(t, resp)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Equal(t, "Stock cannot be negative", svcErr.Message)

	unchanged, svcErr := svc.GetByID(context.Background(), created.ID)
	assert.Nil(t, svcErr)
	assert.Equal(t, 3, unchanged.Stock)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	svc, _, _ := newProductServiceFixture()
	name := "nope"

	resp, svcErr := svc.Update(context.Background(), uuid.New(), &models.UpdateProductRequest{Name: &name})

	assert.Nil(t, resp)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Equal(t, "Product not found", svcErr.Message)
}

func TestDeleteProduct(t *testing.T) {
	svc, productRepo, userRepo := newProductServiceFixture()
	ownerID := seedUser(t, userRepo)
	productID := seedProduct(t, productRepo, ownerID, "Desk", 120.00, 2)

	assert.Nil(t, svc.Delete(context.Background(), productID))

	svcErr := svc.Delete(context.Background(), productID)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Equal(t, "Product not found", svcErr.Message)
}
