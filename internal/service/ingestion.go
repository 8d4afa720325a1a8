package service

import (
	"context"
	"time"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/heatmap"
	"furls/dashboard/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UploadPayload is one finished match as sent by the plugin. Only shots and
// goals are required; zero is a valid value for both.
type UploadPayload struct {
	Shots *int `json:"shots" binding:"required,min=0" example:"10"`
	Goals *int `json:"goals" binding:"required,min=0" example:"4"`

	AverageSpeed   float64 `json:"averageSpeed,omitempty"`
	SpeedSamples   int     `json:"speedSamples,omitempty" binding:"min=0"`
	BoostCollected float64 `json:"boostCollected,omitempty"`
	BoostUsed      float64 `json:"boostUsed,omitempty"`
	GameTime       float64 `json:"gameTime,omitempty"`

	PossessionTime         float64 `json:"possessionTime,omitempty"`
	TeamPossessionTime     float64 `json:"teamPossessionTime,omitempty"`
	OpponentPossessionTime float64 `json:"opponentPossessionTime,omitempty"`

	ShotHeatmap [][]int64 `json:"shotHeatmap,omitempty"`
	GoalHeatmap [][]int64 `json:"goalHeatmap,omitempty"`

	Playlist  string     `json:"playlist,omitempty" binding:"max=100"`
	IsRanked  bool       `json:"isRanked,omitempty"`
	MMR       *float64   `json:"mmr,omitempty"`
	MMRChange *float64   `json:"mmrChange,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// IngestionService stores uploaded sessions.
type IngestionService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewIngestionService(db *gorm.DB) *IngestionService {
	return &IngestionService{DB: db, Now: time.Now}
}

// Upload inserts the session and applies its deltas to the owner's counters
// in one transaction. Counters are incremented in SQL so concurrent uploads
// never overwrite each other. Uploads are not deduplicated.
func (s *IngestionService) Upload(ctx context.Context, userID uint, p UploadPayload) (*models.Session, error) {
	var fields []apperr.FieldError
	if p.Shots == nil {
		fields = append(fields, apperr.FieldError{Field: "shots", Message: "is required"})
	} else if *p.Shots < 0 {
		fields = append(fields, apperr.FieldError{Field: "shots", Message: "must be at least 0"})
	}
	if p.Goals == nil {
		fields = append(fields, apperr.FieldError{Field: "goals", Message: "is required"})
	} else if *p.Goals < 0 {
		fields = append(fields, apperr.FieldError{Field: "goals", Message: "must be at least 0"})
	}
	if len(fields) > 0 {
		return nil, apperr.Validation("Validation failed", fields...)
	}

	shotGrid, err := heatmap.Encode(heatmap.Sanitize(p.ShotHeatmap))
	if err != nil {
		return nil, apperr.Validation("Invalid shotHeatmap", apperr.FieldError{Field: "shotHeatmap", Message: err.Error()})
	}
	goalGrid, err := heatmap.Encode(heatmap.Sanitize(p.GoalHeatmap))
	if err != nil {
		return nil, apperr.Validation("Invalid goalHeatmap", apperr.FieldError{Field: "goalHeatmap", Message: err.Error()})
	}

	now := s.Now().UTC()
	playedAt := now
	if p.Timestamp != nil && !p.Timestamp.IsZero() {
		playedAt = p.Timestamp.UTC()
	}

	session := models.Session{
		UserID:                 userID,
		PlayedAt:               playedAt,
		Shots:                  *p.Shots,
		Goals:                  *p.Goals,
		AverageSpeed:           p.AverageSpeed,
		SpeedSamples:           p.SpeedSamples,
		BoostCollected:         p.BoostCollected,
		BoostUsed:              p.BoostUsed,
		GameTime:               p.GameTime,
		PossessionTime:         p.PossessionTime,
		TeamPossessionTime:     p.TeamPossessionTime,
		OpponentPossessionTime: p.OpponentPossessionTime,
		ShotHeatmap:            datatypes.JSON(shotGrid),
		GoalHeatmap:            datatypes.JSON(goalGrid),
		Playlist:               p.Playlist,
		IsRanked:               p.IsRanked,
		MMR:                    p.MMR,
		MMRChange:              p.MMRChange,
		CreatedAt:              now,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		res := tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"total_sessions": gorm.Expr("total_sessions + ?", 1),
			"total_shots":    gorm.Expr("total_shots + ?", *p.Shots),
			"total_goals":    gorm.Expr("total_goals + ?", *p.Goals),
			"last_active_at": now,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("User not found")
		}
		return nil
	})
	if err != nil {
		return nil, apperr.From(err)
	}
	return &session, nil
}
