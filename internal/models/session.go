package models

import (
	"time"

	"gorm.io/datatypes"
)

// Session is one uploaded unit of gameplay telemetry. Rows are immutable
// once written.
type Session struct {
	ID       uint      `gorm:"primaryKey"`
	UserID   uint      `gorm:"not null;index:idx_sessions_user_played,priority:1"`
	PlayedAt time.Time `gorm:"not null;index:idx_sessions_user_played,priority:2"`

	Shots        int     `gorm:"not null;default:0"`
	Goals        int     `gorm:"not null;default:0"`
	AverageSpeed float64 `gorm:"not null;default:0"`
	SpeedSamples int     `gorm:"not null;default:0"`

	BoostCollected float64 `gorm:"not null;default:0"`
	BoostUsed      float64 `gorm:"not null;default:0"`
	GameTime       float64 `gorm:"not null;default:0"`

	PossessionTime         float64 `gorm:"not null;default:0"`
	TeamPossessionTime     float64 `gorm:"not null;default:0"`
	OpponentPossessionTime float64 `gorm:"not null;default:0"`

	// Serialized [][]int64 grids, see package heatmap.
	ShotHeatmap datatypes.JSON
	GoalHeatmap datatypes.JSON

	Playlist  string   `gorm:"size:100"`
	IsRanked  bool     `gorm:"not null"`
	MMR       *float64 `gorm:"column:mmr"`
	MMRChange *float64 `gorm:"column:mmr_change"`

	CreatedAt time.Time
}
