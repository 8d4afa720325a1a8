package service

import (
	"context"
	"errors"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/config"
	"furls/dashboard/internal/heatmap"
	"furls/dashboard/internal/logging"
	"furls/dashboard/internal/models"

	"gorm.io/gorm"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	friendRecentLimit   = 10
)

// summaryColumns are the session columns without the heatmap grids.
var summaryColumns = []string{
	"id", "user_id", "played_at", "shots", "goals", "average_speed", "speed_samples",
	"boost_collected", "boost_used", "game_time", "possession_time", "team_possession_time",
	"opponent_possession_time", "playlist", "is_ranked", "mmr", "mmr_change", "created_at",
}

// StatsService answers the read side of a user's sessions.
type StatsService struct {
	DB *gorm.DB
	// HeatmapSessions bounds how many recent sessions feed the heatmap.
	HeatmapSessions int
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db, HeatmapSessions: config.Current().HeatmapSessions}
}

// AllTimeStats aggregates every session of a user. AvgAccuracy is the mean of
// per-session accuracies, not total goals over total shots.
type AllTimeStats struct {
	TotalSessions       int64   `json:"total_sessions"`
	TotalShots          int64   `json:"total_shots"`
	TotalGoals          int64   `json:"total_goals"`
	AvgAccuracy         float64 `json:"avg_accuracy"`
	AvgSpeed            float64 `json:"avg_speed"`
	TotalPlayTime       float64 `json:"total_play_time"`
	TotalBoostCollected float64 `json:"total_boost_collected"`
	TotalBoostUsed      float64 `json:"total_boost_used"`
}

// FriendStats is what a friend may see of another user's stats.
type FriendStats struct {
	User           UserSummary      `json:"user"`
	Stats          AllTimeStats     `json:"stats"`
	RecentSessions []SessionSummary `json:"recent_sessions"`
}

// HeatmapResult holds the summed grids of the most recent sessions.
type HeatmapResult struct {
	Shots    heatmap.Grid `json:"shots"`
	Goals    heatmap.Grid `json:"goals"`
	Sessions int          `json:"sessions"`
}

// History returns a page of the user's sessions, newest first, without grids.
func (s *StatsService) History(ctx context.Context, userID uint, limit, offset int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}
	return recentSessions(s.DB.WithContext(ctx), userID, limit, offset)
}

func recentSessions(db *gorm.DB, userID uint, limit, offset int) ([]SessionSummary, error) {
	var rows []models.Session
	err := db.Select(summaryColumns).
		Where("user_id = ?", userID).
		Order("played_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, apperr.From(err)
	}
	out := make([]SessionSummary, 0, len(rows))
	for i := range rows {
		out = append(out, summarizeSession(&rows[i]))
	}
	return out, nil
}

// AllTime computes the user's aggregates from the session rows.
func (s *StatsService) AllTime(ctx context.Context, userID uint) (*AllTimeStats, error) {
	return allTimeStats(s.DB.WithContext(ctx), userID)
}

func allTimeStats(db *gorm.DB, userID uint) (*AllTimeStats, error) {
	var stats AllTimeStats
	err := db.Raw(`
		SELECT
			COUNT(*) AS total_sessions,
			COALESCE(SUM(shots), 0) AS total_shots,
			COALESCE(SUM(goals), 0) AS total_goals,
			COALESCE(AVG(CASE WHEN shots > 0 THEN goals * 100.0 / shots ELSE 0 END), 0) AS avg_accuracy,
			COALESCE(AVG(average_speed), 0) AS avg_speed,
			COALESCE(SUM(game_time), 0) AS total_play_time,
			COALESCE(SUM(boost_collected), 0) AS total_boost_collected,
			COALESCE(SUM(boost_used), 0) AS total_boost_used
		FROM sessions
		WHERE user_id = ?`, userID).Scan(&stats).Error
	if err != nil {
		return nil, apperr.From(err)
	}
	stats.AvgAccuracy = round2(stats.AvgAccuracy)
	stats.AvgSpeed = round2(stats.AvgSpeed)
	return &stats, nil
}

// Session returns one of the user's sessions with decoded grids. Sessions of
// other users are reported as not found.
func (s *StatsService) Session(ctx context.Context, userID, sessionID uint) (*SessionDetail, error) {
	var row models.Session
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", sessionID, userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Session not found")
		}
		return nil, apperr.From(err)
	}

	shots, err := heatmap.Decode(row.ShotHeatmap)
	if err != nil {
		return nil, apperr.Internal("Stored shot heatmap is malformed", err)
	}
	goals, err := heatmap.Decode(row.GoalHeatmap)
	if err != nil {
		return nil, apperr.Internal("Stored goal heatmap is malformed", err)
	}
	if shots == nil {
		shots = [][]int64{}
	}
	if goals == nil {
		goals = [][]int64{}
	}
	return &SessionDetail{SessionSummary: summarizeSession(&row), ShotHeatmap: shots, GoalHeatmap: goals}, nil
}

// FriendStats returns another user's aggregates and recent sessions. It
// requires an accepted friendship and a stats visibility other than private.
func (s *StatsService) FriendStats(ctx context.Context, requesterID, friendID uint) (*FriendStats, error) {
	db := s.DB.WithContext(ctx)

	ok, err := areFriends(db, requesterID, friendID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbidden("Not friends with this user")
	}

	var friend models.User
	if err := db.First(&friend, friendID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Forbidden("Not friends with this user")
		}
		return nil, apperr.From(err)
	}
	settings, err := loadSettings(db, friendID)
	if err != nil {
		return nil, err
	}
	if settings.StatsVisibility == models.VisibilityPrivate {
		return nil, apperr.Forbidden("This user's stats are private")
	}

	stats, err := allTimeStats(db, friendID)
	if err != nil {
		return nil, err
	}
	recent, err := recentSessions(db, friendID, friendRecentLimit, 0)
	if err != nil {
		return nil, err
	}
	return &FriendStats{User: summarize(&friend), Stats: *stats, RecentSessions: recent}, nil
}

// Heatmap sums the shot and goal grids of the user's most recent sessions
// into fixed 10x10 grids. Cells outside the grid are dropped. A user with no
// sessions gets two zero grids.
func (s *StatsService) Heatmap(ctx context.Context, userID uint) (*HeatmapResult, error) {
	limit := s.HeatmapSessions
	if limit <= 0 {
		limit = 50
	}

	var rows []models.Session
	err := s.DB.WithContext(ctx).
		Select("id", "shot_heatmap", "goal_heatmap").
		Where("user_id = ?", userID).
		Order("played_at DESC").Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, apperr.From(err)
	}

	log := logging.Ctx(ctx)
	shotGrids := make([][][]int64, 0, len(rows))
	goalGrids := make([][][]int64, 0, len(rows))
	for _, row := range rows {
		shots, err := heatmap.Decode(row.ShotHeatmap)
		if err != nil {
			log.Warn().Err(err).Uint("session_id", row.ID).Msg("skipping malformed shot heatmap")
		} else {
			shotGrids = append(shotGrids, shots)
		}
		goals, err := heatmap.Decode(row.GoalHeatmap)
		if err != nil {
			log.Warn().Err(err).Uint("session_id", row.ID).Msg("skipping malformed goal heatmap")
		} else {
			goalGrids = append(goalGrids, goals)
		}
	}

	result := &HeatmapResult{
		Shots:    heatmap.Aggregate(shotGrids...),
		Goals:    heatmap.Aggregate(goalGrids...),
		Sessions: len(rows),
	}
	log.Debug().
		Uint("user_id", userID).
		Int("sessions", result.Sessions).
		Int64("shots", result.Shots.Total()).
		Int64("goals", result.Goals.Total()).
		Msg("heatmap aggregated")
	return result, nil
}
