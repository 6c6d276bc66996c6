package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/authsvc/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc  domain.AuthService
	userRepo domain.UserRepository
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, userRepo domain.UserRepository) *AuthHandlers {
	return &AuthHandlers{
		authSvc:  authSvc,
		userRepo: userRepo,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	RoleID   uint   `json:"role_id" binding:"required"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SendOTPRequest represents an OTP issue request
type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest represents OTP verification request
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// RefreshRequest represents token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{
		"success": status < 400,
		"message": message,
		"data":    data,
	})
}

func userSummary(u *domain.User) gin.H {
	// The password hash never leaves the service
	return gin.H{
		"id":      u.ID,
		"name":    u.Name,
		"email":   u.Email,
		"phone":   u.Phone,
		"role_id": u.RoleID,
	}
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password, req.RoleID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respond(c, http.StatusBadRequest, "Name, email, phone, password and role are required", nil)
		case errors.Is(err, domain.ErrRoleNotAssignable):
			respond(c, http.StatusBadRequest, "RoleId 1 is not assignable", nil)
		case errors.Is(err, domain.ErrUserAlreadyExists):
			respond(c, http.StatusConflict, "User already exists", nil)
		case errors.Is(err, domain.ErrRoleNotFound):
			respond(c, http.StatusNotFound, "Role not found", nil)
		default:
			log.Printf("register: %v", err)
			respond(c, http.StatusInternalServerError, "Error creating user", nil)
		}
		return
	}

	respond(c, http.StatusCreated, "User created successfully", userSummary(user))
}

// Login handles password login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Email and Password are required", nil)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respond(c, http.StatusNotFound, "User not found", nil)
		case errors.Is(err, domain.ErrInvalidCredentials):
			respond(c, http.StatusUnauthorized, "Incorrect password", nil)
		default:
			log.Printf("login: %v", err)
			respond(c, http.StatusInternalServerError, "Error login user", nil)
		}
		return
	}

	data := userSummary(result.User)
	data["access_token"] = result.AccessToken
	data["refresh_token"] = result.RefreshToken
	data["expires_in"] = result.ExpiresIn
	respond(c, http.StatusOK, "User login successfully", data)
}

// SendOTP issues a fresh passcode for the user. The response never echoes
// the code.
func (h *AuthHandlers) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Email is required", nil)
		return
	}

	if err := h.authSvc.SendOTP(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respond(c, http.StatusNotFound, "User not found", nil)
		default:
			log.Printf("send otp: %v", err)
			respond(c, http.StatusInternalServerError, "Error sending otp", nil)
		}
		return
	}

	respond(c, http.StatusOK, "OTP sent successfully to your email", nil)
}

// VerifyOTP completes an OTP login and issues tokens
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Email and OTP are required", nil)
		return
	}

	result, err := h.authSvc.VerifyOTP(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respond(c, http.StatusNotFound, "User not found", nil)
		case errors.Is(err, domain.ErrOTPNotFound):
			respond(c, http.StatusNotFound, "OTP not found", nil)
		case errors.Is(err, domain.ErrOTPMismatch):
			respond(c, http.StatusBadRequest, "OTP Mismatched", nil)
		case errors.Is(err, domain.ErrOTPExpired):
			respond(c, http.StatusBadRequest, "OTP Expired", nil)
		default:
			log.Printf("verify otp: %v", err)
			respond(c, http.StatusInternalServerError, "Error verifying otp", nil)
		}
		return
	}

	data := userSummary(result.User)
	data["access_token"] = result.AccessToken
	data["refresh_token"] = result.RefreshToken
	data["expires_in"] = result.ExpiresIn
	respond(c, http.StatusOK, "OTP verified successfully", data)
}

// Refresh exchanges a valid refresh token for a new access token
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Refresh token is required", nil)
		return
	}

	accessToken, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenExpired),
			errors.Is(err, domain.ErrTokenMalformed):
			respond(c, http.StatusUnauthorized, "Invalid or expired refresh token", nil)
		default:
			log.Printf("refresh: %v", err)
			respond(c, http.StatusInternalServerError, "Error processing refresh token", nil)
		}
		return
	}

	respond(c, http.StatusOK, "Access token refreshed successfully", gin.H{
		"access_token": accessToken,
	})
}

// Me returns the authenticated user's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, ok := c.Get("user_id")
	if !ok {
		respond(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	user, err := h.userRepo.FindByID(c.Request.Context(), userID.(uint))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respond(c, http.StatusNotFound, "User not found", nil)
			return
		}
		log.Printf("me: %v", err)
		respond(c, http.StatusInternalServerError, "Error fetching profile", nil)
		return
	}

	respond(c, http.StatusOK, "Profile fetched successfully", userSummary(user))
}
