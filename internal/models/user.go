package models

import (
	"time"

	"gorm.io/gorm"
)

// Visibility controls who may see a profile or its stats.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
	VisibilityPrivate Visibility = "private"
)

// Valid reports whether v is one of the known visibility values.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityFriends, VisibilityPrivate:
		return true
	}
	return false
}

// User represents a dashboard account. The Total* counters are denormalized
// from the user's sessions and only the ingestion path writes them.
type User struct {
	gorm.Model
	Username          string     `gorm:"size:30;uniqueIndex;not null"`
	Email             string     `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash      string     `gorm:"size:255;not null"`
	APIKey            *string    `gorm:"column:api_key;size:64;uniqueIndex"`
	DisplayName       string     `gorm:"size:100"`
	AvatarURL         string     `gorm:"size:512"`
	ProfileVisibility Visibility `gorm:"size:20;default:'public';index"`

	TotalSessions int64 `gorm:"not null;default:0"`
	TotalShots    int64 `gorm:"not null;default:0;index"`
	TotalGoals    int64 `gorm:"not null;default:0"`
	LastActiveAt  *time.Time

	Settings *UserSettings `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Sessions []Session     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

