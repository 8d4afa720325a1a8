package handler

import (
	"net/http"

	"furls/dashboard/internal/auth"
	"furls/dashboard/internal/database"
	"furls/dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- Public Handlers ---

// GetPublicProfile godoc
// @Summary      Public profile
// @Description  Private profiles, and friends-only profiles for non-friends, are 404. A bearer token is optional.
// @Tags         public
// @Produce      json
// @Param        username path      string  true  "Username"
// @Success      200      {object}  service.PublicProfile
// @Failure      404      {object}  ErrorResponse
// @Router       /public/profile/{username} [get]
func GetPublicProfile(c *gin.Context) {
	viewerID, _ := auth.UserID(c)
	profile, err := service.NewProfileService(database.DB).PublicProfile(c.Request.Context(), viewerID, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SearchPublicProfiles godoc
// @Summary      Search public profiles
// @Tags         public
// @Produce      json
// @Param        q    query     string  true  "Search text"
// @Success      200  {array}   service.UserSummary
// @Router       /public/search [get]
func SearchPublicProfiles(c *gin.Context) {
	results, err := service.NewProfileService(database.DB).SearchPublic(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetPublicLeaderboard godoc
// @Summary      Public leaderboard
// @Description  Global scope over public profiles.
// @Tags         public
// @Produce      json
// @Param        stat path      string  true  "accuracy, goals, shots or sessions"
// @Success      200  {array}   service.LeaderboardEntry
// @Failure      400  {object}  ValidationErrorResponse
// @Router       /public/leaderboard/{stat} [get]
func GetPublicLeaderboard(c *gin.Context) {
	metric, err := service.ParseMetric(c.Param("stat"))
	if err != nil {
		respondError(c, err)
		return
	}
	viewerID, _ := auth.UserID(c)
	board, err := service.NewLeaderboardService(database.DB).Leaderboard(c.Request.Context(), viewerID, service.ScopeGlobal, metric)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// endregion
