package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCascadeRepository is a mock of the CascadeRepository interface
type MockCascadeRepository struct {
	mock.Mock
}

func (m *MockCascadeRepository) DeleteUserCascade(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCascadeRepository) DeletePostCascade(ctx context.Context, postID uint) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockCascadeRepository) DeleteCommentCascade(ctx context.Context, commentID uint) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func userServer(userRepo *MockUserRepository, cascade *MockCascadeRepository) *Server {
	return &Server{
		userService: service.NewUserService(userRepo, cascade),
	}
}

func TestGetUser(t *testing.T) {
	tests := []struct {
		name           string
		userIDParam    string
		mockSetup      func(*MockUserRepository)
		expectedStatus int
	}{
		{
			name:        "Success",
			userIDParam: "2",
			mockSetup: func(m *MockUserRepository) {
				m.On("GetByID", mock.Anything, uint(2)).Return(&models.User{ID: 2, Username: "bob"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid ID",
			userIDParam:    "abc",
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Not Found",
			userIDParam: "99",
			mockSetup: func(m *MockUserRepository) {
				m.On("GetByID", mock.Anything, uint(99)).Return(nil, models.NewNotFoundError("User", 99))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.mockSetup(mockRepo)

			app := authedApp(1)
			s := userServer(mockRepo, new(MockCascadeRepository))
			app.Get("/users/:id", s.GetUser)

			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.userIDParam, nil)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestGetUser_HidesEmailFromOthers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByID", mock.Anything, uint(2)).
		Return(&models.User{ID: 2, Username: "bob", Email: "bob@example.com"}, nil)

	app := authedApp(1)
	s := userServer(mockRepo, new(MockCascadeRepository))
	app.Get("/users/:id", s.GetUser)

	req := httptest.NewRequest(http.MethodGet, "/users/2", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var body map[string]map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	user := body["user"]
	assert.Equal(t, "bob", user["username"])
	_, hasEmail := user["email"]
	assert.False(t, hasEmail, "public projection must not carry the email")
}

func TestGetMyProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByID", mock.Anything, uint(1)).
		Return(&models.User{ID: 1, Username: "me", Email: "me@example.com"}, nil)

	app := authedApp(1)
	s := userServer(mockRepo, new(MockCascadeRepository))
	app.Get("/users/me", s.GetMyProfile)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDeleteUser(t *testing.T) {
	t.Run("Deleting Another Account", func(t *testing.T) {
		app := authedApp(1)
		s := userServer(new(MockUserRepository), new(MockCascadeRepository))
		app.Delete("/users/:id", s.DeleteUser)

		req := httptest.NewRequest(http.MethodDelete, "/users/2", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Own Account Cascades", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1, Username: "me"}, nil)
		cascade := new(MockCascadeRepository)
		cascade.On("DeleteUserCascade", mock.Anything, uint(1)).Return(nil)

		app := authedApp(1)
		s := userServer(mockRepo, cascade)
		app.Delete("/users/:id", s.DeleteUser)

		req := httptest.NewRequest(http.MethodDelete, "/users/1", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		cascade.AssertExpectations(t)
	})
}
