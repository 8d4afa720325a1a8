package handler

import (
	"net/http"
	"strconv"
	"time"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/auth"
	"furls/dashboard/internal/database"
	"furls/dashboard/internal/livecache"
	"furls/dashboard/internal/logging"
	"furls/dashboard/internal/metrics"
	"furls/dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// Live holds the most recent uploads for the legacy read endpoints.
var Live = livecache.New[service.UploadPayload](livecache.DefaultCapacity)

// LiveEntry is one entry of the legacy live feed.
type LiveEntry = livecache.Entry[service.UploadPayload]

// UploadResponse acknowledges a stored session.
type UploadResponse struct {
	Success   bool `json:"success" example:"true"`
	SessionID uint `json:"sessionId" example:"42"`
}

// region --- Plugin Handlers ---

// UploadStats godoc
// @Summary      Upload a finished session
// @Description  Stores one session and updates the owner's totals. Uploads are not deduplicated.
// @Tags         stats
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        input body service.UploadPayload true "Session telemetry"
// @Success      200  {object}  UploadResponse
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      413  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Failure      500  {object}  InternalErrorResponse
// @Router       /stats/upload [post]
func UploadStats(c *gin.Context) {
	var payload service.UploadPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		metrics.RecordUpload("invalid")
		respondBindError(c, err)
		return
	}

	userID := auth.MustUserID(c)
	session, err := service.NewIngestionService(database.DB).Upload(c.Request.Context(), userID, payload)
	if err != nil {
		if apperr.Is(err, apperr.KindValidation) {
			metrics.RecordUpload("invalid")
		} else {
			metrics.RecordUpload("error")
		}
		respondError(c, err)
		return
	}
	metrics.RecordUpload("stored")

	Live.Push(LiveEntry{
		UserID:     userID,
		Username:   c.GetString(auth.ContextUsername),
		SessionID:  session.ID,
		ReceivedAt: time.Now().UTC(),
		Payload:    payload,
	})

	logging.Ctx(c.Request.Context()).Info().
		Uint("user_id", userID).
		Uint("session_id", session.ID).
		Int("shots", session.Shots).
		Int("goals", session.Goals).
		Msg("session stored")

	c.JSON(http.StatusOK, UploadResponse{Success: true, SessionID: session.ID})
}

// GetPluginStatus godoc
// @Summary      Plugin connection status
// @Description  Reports whether the plugin uploaded recently. Accepts an API key or a bearer token.
// @Tags         stats
// @Produce      json
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Success      200  {object}  service.PluginStatus
// @Failure      401  {object}  ErrorResponse
// @Router       /stats/plugin-status [get]
func GetPluginStatus(c *gin.Context) {
	status, err := service.NewPluginStatusService(database.DB).Status(c.Request.Context(), auth.MustUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetLatestStats godoc
// @Summary      Latest uploaded payload
// @Description  Legacy feed of the last upload seen by this instance. Not persisted.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  livecache.Entry[service.UploadPayload]
// @Failure      404  {object}  ErrorResponse
// @Router       /stats/latest [get]
func GetLatestStats(c *gin.Context) {
	entry, ok := Live.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No stats received yet"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetRecentStats godoc
// @Summary      Recent uploaded payloads
// @Description  Legacy feed of recent uploads seen by this instance, newest first.
// @Tags         stats
// @Produce      json
// @Param        limit query int false "Maximum entries" default(20)
// @Success      200  {array}   livecache.Entry[service.UploadPayload]
// @Router       /stats/recent [get]
func GetRecentStats(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > livecache.DefaultCapacity {
		limit = livecache.DefaultCapacity
	}
	c.JSON(http.StatusOK, Live.Recent(limit))
}

// endregion
