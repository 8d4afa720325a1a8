package service

import (
	"math"
	"strings"
	"time"

	"furls/dashboard/internal/models"
)

// UserSummary is the public face of a user in lists and search results.
type UserSummary struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

func summarize(u *models.User) UserSummary {
	return UserSummary{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
}

// Account is what a user sees of their own record.
type Account struct {
	ID                uint              `json:"id"`
	Username          string            `json:"username"`
	Email             string            `json:"email"`
	DisplayName       string            `json:"display_name"`
	AvatarURL         string            `json:"avatar_url"`
	ProfileVisibility models.Visibility `json:"profile_visibility"`
	TotalSessions     int64             `json:"total_sessions"`
	TotalShots        int64             `json:"total_shots"`
	TotalGoals        int64             `json:"total_goals"`
	LastActiveAt      *time.Time        `json:"last_active_at"`
	CreatedAt         time.Time         `json:"created_at"`
}

// NewAccount builds the owner's view of u.
func NewAccount(u *models.User) Account {
	visibility := u.ProfileVisibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}
	return Account{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		DisplayName:       u.DisplayName,
		AvatarURL:         u.AvatarURL,
		ProfileVisibility: visibility,
		TotalSessions:     u.TotalSessions,
		TotalShots:        u.TotalShots,
		TotalGoals:        u.TotalGoals,
		LastActiveAt:      u.LastActiveAt,
		CreatedAt:         u.CreatedAt,
	}
}

// SessionSummary is one history row. Heatmap grids are only returned by the
// single-session lookup.
type SessionSummary struct {
	ID                     uint      `json:"id"`
	PlayedAt               time.Time `json:"played_at"`
	Shots                  int       `json:"shots"`
	Goals                  int       `json:"goals"`
	Accuracy               float64   `json:"accuracy"`
	AverageSpeed           float64   `json:"average_speed"`
	SpeedSamples           int       `json:"speed_samples"`
	BoostCollected         float64   `json:"boost_collected"`
	BoostUsed              float64   `json:"boost_used"`
	GameTime               float64   `json:"game_time"`
	PossessionTime         float64   `json:"possession_time"`
	TeamPossessionTime     float64   `json:"team_possession_time"`
	OpponentPossessionTime float64   `json:"opponent_possession_time"`
	Playlist               string    `json:"playlist"`
	IsRanked               bool      `json:"is_ranked"`
	MMR                    *float64  `json:"mmr"`
	MMRChange              *float64  `json:"mmr_change"`
}

func summarizeSession(s *models.Session) SessionSummary {
	return SessionSummary{
		ID:                     s.ID,
		PlayedAt:               s.PlayedAt,
		Shots:                  s.Shots,
		Goals:                  s.Goals,
		Accuracy:               accuracy(int64(s.Goals), int64(s.Shots)),
		AverageSpeed:           s.AverageSpeed,
		SpeedSamples:           s.SpeedSamples,
		BoostCollected:         s.BoostCollected,
		BoostUsed:              s.BoostUsed,
		GameTime:               s.GameTime,
		PossessionTime:         s.PossessionTime,
		TeamPossessionTime:     s.TeamPossessionTime,
		OpponentPossessionTime: s.OpponentPossessionTime,
		Playlist:               s.Playlist,
		IsRanked:               s.IsRanked,
		MMR:                    s.MMR,
		MMRChange:              s.MMRChange,
	}
}

// SessionDetail is a session with its decoded grids.
type SessionDetail struct {
	SessionSummary
	ShotHeatmap [][]int64 `json:"shot_heatmap"`
	GoalHeatmap [][]int64 `json:"goal_heatmap"`
}

// accuracy is goals/shots as a percentage rounded to two decimals, zero when
// there were no shots.
func accuracy(goals, shots int64) float64 {
	if shots <= 0 {
		return 0
	}
	return round2(float64(goals) / float64(shots) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// likePattern turns user input into a case-insensitive substring pattern with
// the LIKE wildcards escaped. Use with ESCAPE '\'.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + strings.ToLower(r.Replace(q)) + "%"
}

const searchLimit = 20
