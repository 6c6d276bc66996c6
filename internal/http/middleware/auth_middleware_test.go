package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/you/authsvc/domain"
	"github.com/you/authsvc/internal/mocks"
)

func setupMiddlewareRouter(t *testing.T, tokenSvc domain.TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokenSvc), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		roleID, _ := c.Get("user_role_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "user_role_id": roleID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		setupMocks     func(*mocks.MockTokenService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "missing header",
			authHeader:     "",
			setupMocks:     func(tokenSvc *mocks.MockTokenService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Authorization header required",
		},
		{
			name:           "not a bearer token",
			authHeader:     "Basic dXNlcjpwdw==",
			setupMocks:     func(tokenSvc *mocks.MockTokenService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid authorization header format",
		},
		{
			name:       "expired token",
			authHeader: "Bearer expired",
			setupMocks: func(tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Token expired",
		},
		{
			name:           "tampered token",
			authHeader:     "Bearer garbage",
			setupMocks:     func(tokenSvc *mocks.MockTokenService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid token",
		},
		{
			name:       "malformed token",
			authHeader: "Bearer mangled",
			setupMocks: func(tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenMalformed
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			tt.setupMocks(tokenSvc)
			r := setupMiddlewareRouter(t, tokenSvc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status %d, want %d", w.Code, tt.expectedStatus)
			}

			var resp map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if resp["message"] != tt.expectedMsg {
				t.Errorf("message %q, want %q", resp["message"], tt.expectedMsg)
			}
			if resp["success"] != false {
				t.Error("rejected request must report success=false")
			}
		})
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
		if token != "good" {
			return nil, domain.ErrTokenInvalid
		}
		return &domain.TokenClaims{UserID: 1, Name: "Alice", Email: "a@x.com", Phone: "555", RoleID: 2}, nil
	}
	r := setupMiddlewareRouter(t, tokenSvc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["user_id"] != float64(1) {
		t.Errorf("user_id %v, want 1", resp["user_id"])
	}
	if resp["user_role_id"] != float64(2) {
		t.Errorf("user_role_id %v, want 2", resp["user_role_id"])
	}
}
