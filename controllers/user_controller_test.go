package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-api/controllers"
	"storefront-api/models"
	"storefront-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// mockUserService returns canned values.
type mockUserService struct {
	users []models.UserResponse
	user  *models.UserResponse
	err   *services.ServiceError
}

func (m *mockUserService) GetAll(_ context.Context) ([]models.UserResponse, *services.ServiceError) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

func (m *mockUserService) GetByID(_ context.Context, _ uuid.UUID) (*models.UserResponse, *services.ServiceError) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserService) Create(_ context.Context, _ *models.CreateUserRequest) (*models.UserResponse, *services.ServiceError) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserService) Update(_ context.Context, _ uuid.UUID, _ *models.UpdateUserRequest) (*models.UserResponse, *services.ServiceError) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserService) Delete(_ context.Context, _ uuid.UUID) *services.ServiceError {
	return m.err
}

func setupUserRouter(svc services.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := controllers.NewUserController(svc)
	r.GET("/api/users", c.List)
	r.GET("/api/users/:id", c.GetByID)
	r.POST("/api/users", c.Create)
	r.PUT("/api/users/:id", c.Update)
	r.DELETE("/api/users/:id", c.Delete)
	return r
}

func sampleUserResponse() *models.UserResponse {
	return &models.UserResponse{
		ID:        uuid.New(),
		Username:  "alice",
		Email:     "alice@example.com",
		Role:      "admin",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) controllers.Response {
	t.Helper()
	var body controllers.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListUsers(t *testing.T) {
	svc := &mockUserService{users: []models.UserResponse{*sampleUserResponse()}}
	r := setupUserRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.True(t, body.Success)
	assert.Equal(t, "Users fetched", body.Message)
	assert.NotNil(t, body.Data)
}

func TestGetUser_MalformedID(t *testing.T) {
	r := setupUserRouter(&mockUserService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/users/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeEnvelope(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "User not found", body.Message)
}

func TestGetUser_NotFound(t *testing.T) {
	svc := &mockUserService{err: &services.ServiceError{StatusCode: 404, Message: "User not found"}}
	r := setupUserRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/users/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeEnvelope(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "User not found", body.Message)
}

func TestCreateUser_SetsLocationHeader(t *testing.T) {
	user := sampleUserResponse()
	r := setupUserRouter(&mockUserService{user: user})

	payload, _ := json.Marshal(gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "s3cret",
		"role":     "admin",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/users/"+user.ID.String(), w.Header().Get("Location"))
	body := decodeEnvelope(t, w)
	assert.True(t, body.Success)
	assert.Equal(t, "User created", body.Message)
	assert.NotNil(t, body.Data)
}

func TestCreateUser_InvalidPayload(t *testing.T) {
	r := setupUserRouter(&mockUserService{})

	// email is required but absent
	payload, _ := json.Marshal(gin.H{"username": "alice", "password": "pw", "role": "admin"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeEnvelope(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "Invalid request", body.Message)
	assert.NotEmpty(t, body.Errors)
	assert.Empty(t, w.Header().Get("Location"))
}

func TestCreateUser_Conflict(t *testing.T) {
	svc := &mockUserService{err: &services.ServiceError{StatusCode: 409, Message: "Email is already in use"}}
	r := setupUserRouter(svc)

	payload, _ := json.Marshal(gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "pw",
		"role":     "customer",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeEnvelope(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "Email is already in use", body.Message)
	assert.Empty(t, w.Header().Get("Location"))
}

func TestUpdateUser(t *testing.T) {
	user := sampleUserResponse()
	r := setupUserRouter(&mockUserService{user: user})

	payload, _ := json.Marshal(gin.H{"role": "customer"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/users/"+user.ID.String(), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.True(t, body.Success)
	assert.Equal(t, "User updated", body.Message)
}

func TestDeleteUser(t *testing.T) {
	r := setupUserRouter(&mockUserService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/users/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.True(t, body.Success)
	assert.Equal(t, "User deleted", body.Message)
	assert.Nil(t, body.Data)
}
