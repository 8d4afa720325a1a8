package models

import "time"

// UserSettings is created with the user and only changed by its owner.
// The two visibility settings are independent: ProfileVisibility gates the
// public profile, StatsVisibility gates friend stats.
type UserSettings struct {
	ID                   uint       `gorm:"primaryKey"`
	UserID               uint       `gorm:"uniqueIndex;not null"`
	Theme                string     `gorm:"size:20;not null"`
	StatsVisibility      Visibility `gorm:"size:20;not null"`
	ProfileVisibility    Visibility `gorm:"size:20;not null"`
	NotificationsEnabled bool       `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// DefaultSettings returns the settings row created at registration.
func DefaultSettings(userID uint) UserSettings {
	return UserSettings{
		UserID:               userID,
		Theme:                "dark",
		StatsVisibility:      VisibilityPublic,
		ProfileVisibility:    VisibilityPublic,
		NotificationsEnabled: true,
	}
}
