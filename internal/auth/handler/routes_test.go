package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/widyatama/credential-service/config"
	"github.com/widyatama/credential-service/internal/auth/handler"
	"github.com/widyatama/credential-service/internal/auth/service"
	"github.com/widyatama/credential-service/internal/mocks"
)

// TestRegisterRoutes verifies that all routes are mounted correctly.
func TestRegisterRoutes(t *testing.T) {
	// --- Setup ---
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)
	mockHasher := mocks.NewMockPasswordHasher(ctrl)
	mockNotifier := mocks.NewMockVerificationSender(ctrl)
	cfg := &config.Config{}
	userService := service.NewUserService(mockRepo, mockTokenService, mockHasher, mockNotifier, cfg)
	authHandler := handler.NewAuthHandler(userService, mockTokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/register"},
		{http.MethodPost, "/api/v1/login"},
		{http.MethodGet, "/api/v1/verify-email"},
		{http.MethodGet, "/api/v1/me"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			// We only care that the route exists. A 404 means it doesn't.
			// The actual handlers will return other codes (e.g., 400 Bad
			// Request for a missing body or token), which is fine here.
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}
