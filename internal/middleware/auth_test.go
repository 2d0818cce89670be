package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Zoh007/claims-management-system/internal/middleware"
	"github.com/Zoh007/claims-management-system/internal/service"
	"github.com/Zoh007/claims-management-system/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runAuthMiddleware(authSvc service.AuthService, authHeader string) (*httptest.ResponseRecorder, *gin.Context, bool) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/claims", http.NoBody)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	called := false
	middleware.AuthMiddleware(authSvc)(c)
	if !c.IsAborted() {
		called = true
	}
	return w, c, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Username: "analyst", IsAdmin: true}
	mockSvc.On("ValidateToken", "good-token").Return(claims, nil)

	_, c, called := runAuthMiddleware(mockSvc, "Bearer good-token")

	assert.True(t, called)
	gotID, err := middleware.GetUserID(c)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "analyst", middleware.GetUsername(c))
	assert.True(t, middleware.IsAdmin(c))
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)

	w, _, called := runAuthMiddleware(mockSvc, "")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSvc.AssertNotCalled(t, "ValidateToken", "")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)
	mockSvc.On("ValidateToken", "bad-token").Return(nil, assert.AnError)

	w, _, called := runAuthMiddleware(mockSvc, "Bearer bad-token")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)

	w, _, called := runAuthMiddleware(mockSvc, "Basic dXNlcjpwYXNz")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
