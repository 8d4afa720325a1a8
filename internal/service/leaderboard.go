package service

import (
	"context"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/models"

	"gorm.io/gorm"
)

// Scope selects the leaderboard population.
type Scope string

const (
	ScopeGlobal  Scope = "global"
	ScopeFriends Scope = "friends"
)

// Metric selects what the leaderboard ranks by.
type Metric string

const (
	MetricAccuracy Metric = "accuracy"
	MetricGoals    Metric = "goals"
	MetricShots    Metric = "shots"
	MetricSessions Metric = "sessions"
)

const leaderboardLimit = 50

// ParseScope accepts "global" and "friends"; empty means global.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case "", ScopeGlobal:
		return ScopeGlobal, nil
	case ScopeFriends:
		return ScopeFriends, nil
	}
	return "", apperr.Validation("Invalid leaderboard type", apperr.FieldError{Field: "type", Message: "must be one of global, friends"})
}

// ParseMetric accepts accuracy, goals, shots and sessions; empty means accuracy.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case "":
		return MetricAccuracy, nil
	case MetricAccuracy, MetricGoals, MetricShots, MetricSessions:
		return Metric(s), nil
	}
	return "", apperr.Validation("Invalid leaderboard stat", apperr.FieldError{Field: "stat", Message: "must be one of accuracy, goals, shots, sessions"})
}

// orderBy ranks by the metric, then by user id so ties are stable.
func (m Metric) orderBy() string {
	switch m {
	case MetricGoals:
		return "total_goals DESC, id ASC"
	case MetricShots:
		return "total_shots DESC, id ASC"
	case MetricSessions:
		return "total_sessions DESC, id ASC"
	}
	return "(total_goals * 1.0) / total_shots DESC, id ASC"
}

// LeaderboardEntry is one ranked user.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	UserID        uint    `json:"user_id"`
	Username      string  `json:"username"`
	DisplayName   string  `json:"display_name"`
	AvatarURL     string  `json:"avatar_url"`
	TotalSessions int64   `json:"total_sessions"`
	TotalShots    int64   `json:"total_shots"`
	TotalGoals    int64   `json:"total_goals"`
	Accuracy      float64 `json:"accuracy"`
	Value         float64 `json:"value"`
	IsSelf        bool    `json:"is_self"`
}

// LeaderboardService ranks users from the denormalized counters.
type LeaderboardService struct {
	DB *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{DB: db}
}

// Leaderboard returns at most 50 users ranked by metric. The global scope
// holds users with a public profile; the friends scope holds the requester
// and everyone with an accepted edge to them. Users without shots are never
// ranked. requesterID may be 0 for the anonymous global board.
func (s *LeaderboardService) Leaderboard(ctx context.Context, requesterID uint, scope Scope, metric Metric) ([]LeaderboardEntry, error) {
	db := s.DB.WithContext(ctx)
	q := db.Model(&models.User{}).
		Select("id", "username", "display_name", "avatar_url", "total_sessions", "total_shots", "total_goals").
		Where("total_shots > 0")

	switch scope {
	case ScopeFriends:
		sent := db.Model(&models.Friendship{}).Select("friend_id").
			Where("user_id = ? AND status = ?", requesterID, models.StatusAccepted)
		received := db.Model(&models.Friendship{}).Select("user_id").
			Where("friend_id = ? AND status = ?", requesterID, models.StatusAccepted)
		q = q.Where("(id = ? OR id IN (?) OR id IN (?))", requesterID, sent, received)
	default:
		q = q.Where("(profile_visibility IS NULL OR profile_visibility = ?)", models.VisibilityPublic)
	}

	var users []models.User
	if err := q.Order(metric.orderBy()).Limit(leaderboardLimit).Find(&users).Error; err != nil {
		return nil, apperr.From(err)
	}

	out := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		e := LeaderboardEntry{
			Rank:          i + 1,
			UserID:        u.ID,
			Username:      u.Username,
			DisplayName:   u.DisplayName,
			AvatarURL:     u.AvatarURL,
			TotalSessions: u.TotalSessions,
			TotalShots:    u.TotalShots,
			TotalGoals:    u.TotalGoals,
			Accuracy:      accuracy(u.TotalGoals, u.TotalShots),
			IsSelf:        requesterID != 0 && u.ID == requesterID,
		}
		switch metric {
		case MetricGoals:
			e.Value = float64(u.TotalGoals)
		case MetricShots:
			e.Value = float64(u.TotalShots)
		case MetricSessions:
			e.Value = float64(u.TotalSessions)
		default:
			e.Value = e.Accuracy
		}
		out = append(out, e)
	}
	return out, nil
}
