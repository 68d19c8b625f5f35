package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gravecare/internal/models/request_models"
	"gravecare/internal/services"
	"gravecare/pkg/utils"
)

type AuthController struct {
	authService services.AuthService
}

func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// callerID returns the authenticated user id set by the JWT middleware.
func callerID(c *gin.Context) string {
	if v, ok := c.Get("user_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func callerEmail(c *gin.Context) string {
	if v, ok := c.Get("user_email"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func callerIsAdmin(c *gin.Context) bool {
	v, ok := c.Get("user_role")
	if !ok {
		return false
	}
	s, ok := v.(string)
	return ok && s == "ADMIN"
}

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.authService.SignUp(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Authenticate and return a JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

// ForgotPassword godoc
// @Summary Request a password-reset OTP
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.ForgotPasswordRequest true "Email payload"
// @Success 200 {object} utils.APIResponse
// @Router /auth/forgot-password [post]
func (a *AuthController) ForgotPassword(c *gin.Context) {
	var req request_models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// Same response whether or not the account exists.
	utils.RespondSuccess(c, nil, "If the account exists, a reset code has been sent")
}

// VerifyOtp godoc
// @Summary Verify a password-reset OTP
// @Tags Auth
// @Router /auth/verify-otp [post]
func (a *AuthController) VerifyOtp(c *gin.Context) {
	var req request_models.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.authService.VerifyOtp(c.Request.Context(), req.Email, req.Otp); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Code verified")
}

// ResetPassword godoc
// @Summary Reset password with a verified OTP
// @Tags Auth
// @Router /auth/reset-password [post]
func (a *AuthController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.authService.ResetPassword(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password updated")
}

// ListUsers godoc
// @Summary List all users (admin)
// @Tags Auth
// @Security BearerAuth
// @Router /auth/users [get]
func (a *AuthController) ListUsers(c *gin.Context) {
	users, err := a.authService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "")
}

// AddAddress godoc
// @Summary Add an address to the authenticated user
// @Tags Auth
// @Security BearerAuth
// @Router /auth/addresses [post]
func (a *AuthController) AddAddress(c *gin.Context) {
	var req request_models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	address, err := a.authService.AddAddress(c.Request.Context(), callerID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, address, "Address saved")
}

func (a *AuthController) ListAddresses(c *gin.Context) {
	addresses, err := a.authService.ListAddresses(c.Request.Context(), callerID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, addresses, "")
}
