package handlers

import (
	"errors"
	"net/http"

	"moodsync-backend/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for signup, login and the legacy
// OTP flow
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents the request body for account creation
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req.Username, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			respondError(c, http.StatusBadRequest, "USERNAME_TAKEN", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "SIGNUP_FAILED", err.Error())
		return
	}

	respondCreated(c, user.Public())
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "LOGIN_FAILED", err.Error())
		return
	}

	respondOK(c, user.Public())
}

// SendOTPRequest represents the request body for requesting a passcode
type SendOTPRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Method     string `json:"method"`
}

// SendOTP handles POST /api/auth/send-otp. The code is returned directly
// in the response; there is no out-of-band delivery (demo mode).
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	method := req.Method
	if method == "" {
		method = "email"
	}

	code, err := h.authService.SendOTP(req.Identifier, method)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "OTP_FAILED", err.Error())
		return
	}

	respondOK(c, gin.H{
		"identifier": req.Identifier,
		"method":     method,
		"code":       code,
	})
}

// VerifyOTPRequest represents the request body for verifying a passcode
type VerifyOTPRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Code       string `json:"code" binding:"required"`
	Name       string `json:"name"`
}

// VerifyOTP handles POST /api/auth/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	profile, err := h.authService.VerifyOTP(req.Identifier, req.Code, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOTPNotFound):
			respondError(c, http.StatusBadRequest, "OTP_NOT_FOUND", err.Error())
		case errors.Is(err, service.ErrOTPExpired):
			respondError(c, http.StatusBadRequest, "OTP_EXPIRED", err.Error())
		case errors.Is(err, service.ErrOTPMismatch):
			respondError(c, http.StatusBadRequest, "OTP_MISMATCH", err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "VERIFY_FAILED", err.Error())
		}
		return
	}

	respondOK(c, gin.H{"user": profile})
}
