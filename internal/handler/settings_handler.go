package handler

import (
	"errors"
	"io"
	"net/http"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/auth"
	"furls/dashboard/internal/database"
	"furls/dashboard/internal/logging"
	"furls/dashboard/internal/service"
	"furls/dashboard/internal/storage"

	"github.com/gin-gonic/gin"
)

// region --- Settings & Profile Handlers ---

// GetSettings godoc
// @Summary      Get settings
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.SettingsView
// @Router       /user/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := service.NewProfileService(database.DB).Settings(c.Request.Context(), auth.MustUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary      Update settings
// @Description  Only the fields present are changed.
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body service.SettingsUpdate true "Settings"
// @Success      200  {object}  service.SettingsView
// @Failure      400  {object}  ValidationErrorResponse
// @Router       /user/settings [put]
func UpdateSettings(c *gin.Context) {
	var input service.SettingsUpdate
	if !bindJSON(c, &input) {
		return
	}
	settings, err := service.NewProfileService(database.DB).UpdateSettings(c.Request.Context(), auth.MustUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body service.ProfileUpdate true "Profile"
// @Success      200  {object}  service.Account
// @Failure      400  {object}  ValidationErrorResponse
// @Router       /user/profile [put]
func UpdateProfile(c *gin.Context) {
	var input service.ProfileUpdate
	if !bindJSON(c, &input) {
		return
	}
	account, err := service.NewProfileService(database.DB).UpdateProfile(c.Request.Context(), auth.MustUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// UploadAvatar godoc
// @Summary      Upload an avatar
// @Description  PNG, JPEG, GIF or WebP up to 2 MiB. Returns 503 when object storage is not configured.
// @Tags         user
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Image"
// @Success      200  {object}  service.Account
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /user/avatar [post]
func UploadAvatar(c *gin.Context) {
	store := storage.Default
	if store == nil {
		respondError(c, apperr.Unavailable("Avatar uploads are not configured"))
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		respondError(c, apperr.Validation("Avatar file is required", apperr.FieldError{Field: "avatar", Message: "is required"}))
		return
	}
	if fileHeader.Size > storage.MaxAvatarBytes {
		respondError(c, apperr.Validation("Avatar too large", apperr.FieldError{Field: "avatar", Message: "must be at most 2 MiB"}))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, apperr.Internal("Failed to read avatar", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, storage.MaxAvatarBytes+1))
	if err != nil {
		respondError(c, apperr.Internal("Failed to read avatar", err))
		return
	}
	if _, _, err := storage.DetectImage(data); err != nil {
		msg := "must be a PNG, JPEG, GIF or WebP image"
		if !errors.Is(err, storage.ErrUnsupportedImage) {
			msg = "must be at most 2 MiB"
		}
		respondError(c, apperr.Validation("Invalid avatar", apperr.FieldError{Field: "avatar", Message: msg}))
		return
	}

	userID := auth.MustUserID(c)
	url, err := store.PutAvatar(c.Request.Context(), userID, data)
	if err != nil {
		respondError(c, apperr.Internal("Failed to store avatar", err))
		return
	}
	account, err := service.NewProfileService(database.DB).SetAvatar(c.Request.Context(), userID, url)
	if err != nil {
		respondError(c, err)
		return
	}
	logging.Ctx(c.Request.Context()).Info().Uint("user_id", userID).Str("url", url).Msg("avatar updated")
	c.JSON(http.StatusOK, account)
}

// endregion
