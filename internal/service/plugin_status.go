package service

import (
	"context"
	"fmt"
	"time"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/config"
	"furls/dashboard/internal/models"

	"gorm.io/gorm"
)

// PluginStatus tells the plugin and the dashboard whether uploads are
// arriving. Field names follow the plugin's camelCase.
type PluginStatus struct {
	Connected          bool       `json:"connected"`
	LastUpload         *time.Time `json:"lastUpload"`
	MinutesSinceUpload *int       `json:"minutesSinceUpload"`
	Message            string     `json:"message"`
}

// PluginStatusService derives the plugin connection state from the most
// recent upload.
type PluginStatusService struct {
	DB     *gorm.DB
	Window time.Duration
	Now    func() time.Time
}

func NewPluginStatusService(db *gorm.DB) *PluginStatusService {
	return &PluginStatusService{DB: db, Window: config.Current().PluginActiveWindow(), Now: time.Now}
}

// Status reports connected when the user's last upload is inside the window.
func (s *PluginStatusService) Status(ctx context.Context, userID uint) (*PluginStatus, error) {
	var rows []models.Session
	err := s.DB.WithContext(ctx).
		Select("id", "created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, apperr.From(err)
	}
	if len(rows) == 0 {
		return &PluginStatus{Message: "No sessions uploaded yet"}, nil
	}

	last := rows[0].CreatedAt.UTC()
	since := s.Now().Sub(last)
	if since < 0 {
		since = 0
	}
	minutes := int(since / time.Minute)
	status := &PluginStatus{LastUpload: &last, MinutesSinceUpload: &minutes}
	if since <= s.Window {
		status.Connected = true
		status.Message = "Plugin connected"
	} else {
		status.Message = fmt.Sprintf("No uploads in the last %d minutes", int(s.Window/time.Minute))
	}
	return status, nil
}
