package handler

import (
	"net/http"

	"furls/dashboard/internal/auth"
	"furls/dashboard/internal/database"
	"furls/dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- User Stats Handlers ---

// GetHistory godoc
// @Summary      Session history
// @Description  The caller's sessions, newest first, without heatmap grids.
// @Tags         user-stats
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "Page size" default(20)
// @Param        offset query  int  false  "Rows to skip" default(0)
// @Success      200  {array}   service.SessionSummary
// @Failure      401  {object}  ErrorResponse
// @Router       /user/stats/history [get]
func GetHistory(c *gin.Context) {
	page := pageFromQuery(c)
	sessions, err := service.NewStatsService(database.DB).History(c.Request.Context(), auth.MustUserID(c), page.Limit, page.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetAllTimeStats godoc
// @Summary      All-time aggregates
// @Description  avg_accuracy is the mean of per-session accuracies.
// @Tags         user-stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.AllTimeStats
// @Failure      401  {object}  ErrorResponse
// @Router       /user/stats/alltime [get]
func GetAllTimeStats(c *gin.Context) {
	stats, err := service.NewStatsService(database.DB).AllTime(c.Request.Context(), auth.MustUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetSession godoc
// @Summary      One session with heatmaps
// @Tags         user-stats
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Session ID"
// @Success      200  {object}  service.SessionDetail
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /user/stats/session/{id} [get]
func GetSession(c *gin.Context) {
	sessionID, ok := idParam(c, "id")
	if !ok {
		return
	}
	detail, err := service.NewStatsService(database.DB).Session(c.Request.Context(), auth.MustUserID(c), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetFriendStats godoc
// @Summary      A friend's stats
// @Description  Requires an accepted friendship and a stats visibility other than private.
// @Tags         user-stats
// @Produce      json
// @Security     BearerAuth
// @Param        friendId path      int  true  "Friend's user ID"
// @Success      200      {object}  service.FriendStats
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Router       /user/stats/friend/{friendId} [get]
func GetFriendStats(c *gin.Context) {
	friendID, ok := idParam(c, "friendId")
	if !ok {
		return
	}
	stats, err := service.NewStatsService(database.DB).FriendStats(c.Request.Context(), auth.MustUserID(c), friendID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetLeaderboard godoc
// @Summary      Leaderboard
// @Tags         user-stats
// @Produce      json
// @Security     BearerAuth
// @Param        type query     string  false  "global or friends" default(global)
// @Param        stat query     string  false  "accuracy, goals, shots or sessions" default(accuracy)
// @Success      200  {array}   service.LeaderboardEntry
// @Failure      400  {object}  ValidationErrorResponse
// @Router       /user/stats/leaderboard [get]
func GetLeaderboard(c *gin.Context) {
	scope, err := service.ParseScope(c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	metric, err := service.ParseMetric(c.Query("stat"))
	if err != nil {
		respondError(c, err)
		return
	}
	board, err := service.NewLeaderboardService(database.DB).Leaderboard(c.Request.Context(), auth.MustUserID(c), scope, metric)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// GetHeatmap godoc
// @Summary      Shot and goal heatmaps
// @Description  10x10 grids summed over the most recent sessions.
// @Tags         user-stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.HeatmapResult
// @Router       /user/stats/heatmap [get]
func GetHeatmap(c *gin.Context) {
	result, err := service.NewStatsService(database.DB).Heatmap(c.Request.Context(), auth.MustUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// endregion
