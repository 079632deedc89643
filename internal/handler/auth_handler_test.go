package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reseldor/content-api/internal/domain"
	"github.com/reseldor/content-api/internal/dto"
	"github.com/reseldor/content-api/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	registered map[string]bool
}

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{registered: make(map[string]bool)}
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*service.AuthResponse, error) {
	if m.registered[req.Email] {
		return nil, domain.ErrEmailTaken
	}
	m.registered[req.Email] = true
	return &service.AuthResponse{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
		User: dto.UserResponse{
			ID:    "user-123",
			Email: req.Email,
			Role:  string(domain.RoleUser),
		},
	}, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*service.AuthResponse, error) {
	if req.Password != "correct-password" {
		return nil, domain.ErrInvalidCredentials
	}
	return &service.AuthResponse{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
		User: dto.UserResponse{
			ID:    "user-123",
			Email: req.Email,
			Role:  string(domain.RoleUser),
		},
	}, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken != "valid-refresh-token" {
		return "", domain.ErrInvalidToken
	}
	return "new-access-token", nil
}

func (m *MockAuthService) Logout(ctx context.Context, userID string) error {
	return nil
}

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	users map[string]*domain.User
}

func NewMockUserService() *MockUserService {
	return &MockUserService{users: make(map[string]*domain.User)}
}

func (m *MockUserService) AddUser(user *domain.User) {
	m.users[user.ID] = user
}

func (m *MockUserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == req.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	now := time.Now()
	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleUser
	}
	user := &domain.User{
		ID:        "user-new",
		Email:     req.Email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (m *MockUserService) List(ctx context.Context, page, limit int) (*domain.PaginatedResult[*domain.User], error) {
	all := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		all = append(all, u)
	}
	return domain.NewPaginatedResult(all, len(all), page, limit), nil
}

func (m *MockUserService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = domain.Role(*req.Role)
	}
	return user, nil
}

func (m *MockUserService) Delete(ctx context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func setupAuthRouter(h *AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/register", h.Register)
	router.POST("/auth/login", h.Login)
	router.POST("/auth/refresh", h.Refresh)
	return router
}

func TestAuthHandler_Register(t *testing.T) {
	handler := NewAuthHandler(NewMockAuthService(), NewMockUserService())
	router := setupAuthRouter(handler)

	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
	}{
		{
			name:       "valid registration",
			body:       map[string]string{"email": "new@example.com", "password": "secret1"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "duplicate email",
			body:       map[string]string{"email": "new@example.com", "password": "secret1"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid email",
			body:       map[string]string{"email": "not-an-email", "password": "secret1"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password",
			body:       map[string]string{"email": "other@example.com", "password": "123"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing fields",
			body:       map[string]string{"email": "other@example.com"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body: %s", resp.Code, tt.wantStatus, resp.Body.String())
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	handler := NewAuthHandler(NewMockAuthService(), NewMockUserService())
	router := setupAuthRouter(handler)

	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
	}{
		{
			name:       "valid credentials",
			body:       map[string]string{"email": "user@example.com", "password": "correct-password"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password",
			body:       map[string]string{"email": "user@example.com", "password": "wrong"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing password",
			body:       map[string]string{"email": "user@example.com"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.Code, tt.wantStatus)
			}
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	handler := NewAuthHandler(NewMockAuthService(), NewMockUserService())
	router := setupAuthRouter(handler)

	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
	}{
		{
			name:       "valid refresh token",
			body:       map[string]string{"refreshToken": "valid-refresh-token"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid refresh token",
			body:       map[string]string{"refreshToken": "expired"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing token",
			body:       map[string]string{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.Code, tt.wantStatus)
			}
		})
	}
}
