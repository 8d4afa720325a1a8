package handler

import (
	"net/http"

	"furls/dashboard/internal/auth"
	"furls/dashboard/internal/database"
	"furls/dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// APIKeyResponse carries the plugin API key.
type APIKeyResponse struct {
	APIKey string `json:"api_key" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
}

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates the user with default settings and an API key, and returns a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body service.RegisterInput true "Registration Info"
// @Success      201  {object}  service.AuthResult
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  InternalErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input service.RegisterInput
	if !bindJSON(c, &input) {
		return
	}

	result, err := service.NewIdentityService(database.DB).Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates with username or email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body service.LoginInput true "Login Info"
// @Success      200  {object}  service.AuthResult
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      500  {object}  InternalErrorResponse
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input service.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	result, err := service.NewIdentityService(database.DB).Login(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetMe godoc
// @Summary      Get current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.Account
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/me [get]
func GetMe(c *gin.Context) {
	user, err := service.NewIdentityService(database.DB).GetUser(c.Request.Context(), auth.MustUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.NewAccount(user))
}

// GetAPIKey godoc
// @Summary      Get the plugin API key
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  APIKeyResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "No key issued"
// @Router       /auth/api-key [get]
func GetAPIKey(c *gin.Context) {
	key, err := service.NewIdentityService(database.DB).GetAPIKey(c.Request.Context(), auth.MustUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, APIKeyResponse{APIKey: key})
}

// RegenerateAPIKey godoc
// @Summary      Regenerate the plugin API key
// @Description  Replaces the current key. The previous key stops working immediately.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  APIKeyResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/regenerate-api-key [post]
func RegenerateAPIKey(c *gin.Context) {
	key, err := service.NewIdentityService(database.DB).RegenerateAPIKey(c.Request.Context(), auth.MustUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, APIKeyResponse{APIKey: key})
}

// endregion
