package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/models"

	"gorm.io/gorm"
)

// ProfileService covers settings, profile edits and the public surface.
type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// SettingsView is the owner's settings.
type SettingsView struct {
	Theme                string            `json:"theme"`
	StatsVisibility      models.Visibility `json:"stats_visibility"`
	ProfileVisibility    models.Visibility `json:"profile_visibility"`
	NotificationsEnabled bool              `json:"notifications_enabled"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

func newSettingsView(s *models.UserSettings) SettingsView {
	return SettingsView{
		Theme:                s.Theme,
		StatsVisibility:      s.StatsVisibility,
		ProfileVisibility:    s.ProfileVisibility,
		NotificationsEnabled: s.NotificationsEnabled,
		UpdatedAt:            s.UpdatedAt,
	}
}

// SettingsUpdate is the body of PUT /user/settings. Absent fields are left alone.
type SettingsUpdate struct {
	Theme                *string            `json:"theme" binding:"omitempty,oneof=dark light system"`
	StatsVisibility      *models.Visibility `json:"stats_visibility" binding:"omitempty,visibility"`
	ProfileVisibility    *models.Visibility `json:"profile_visibility" binding:"omitempty,visibility"`
	NotificationsEnabled *bool              `json:"notifications_enabled"`
}

// ProfileUpdate is the body of PUT /user/profile.
type ProfileUpdate struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=100"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,url,max=512"`
}

// PublicProfile is a user as seen by someone else. Stats is nil when the
// owner's stats visibility hides them from the viewer.
type PublicProfile struct {
	UserSummary
	MemberSince  time.Time     `json:"member_since"`
	LastActiveAt *time.Time    `json:"last_active_at"`
	IsFriend     bool          `json:"is_friend"`
	Stats        *AllTimeStats `json:"stats"`
}

func loadSettings(db *gorm.DB, userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := db.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := models.DefaultSettings(userID)
		return &defaults, nil
	}
	if err != nil {
		return nil, apperr.From(err)
	}
	return &settings, nil
}

// Settings returns the user's settings.
func (s *ProfileService) Settings(ctx context.Context, userID uint) (*SettingsView, error) {
	settings, err := loadSettings(s.DB.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	v := newSettingsView(settings)
	return &v, nil
}

// UpdateSettings applies the present fields. The profile visibility is also
// written to the user row, in the same transaction, since the leaderboard and
// public search filter on it there.
func (s *ProfileService) UpdateSettings(ctx context.Context, userID uint, in SettingsUpdate) (*SettingsView, error) {
	if err := validateVisibility("stats_visibility", in.StatsVisibility); err != nil {
		return nil, err
	}
	if err := validateVisibility("profile_visibility", in.ProfileVisibility); err != nil {
		return nil, err
	}

	var settings models.UserSettings
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&settings).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings = models.DefaultSettings(userID)
			err = tx.Create(&settings).Error
		}
		if err != nil {
			return err
		}

		changes := map[string]interface{}{}
		if in.Theme != nil {
			changes["theme"] = *in.Theme
		}
		if in.StatsVisibility != nil {
			changes["stats_visibility"] = *in.StatsVisibility
		}
		if in.ProfileVisibility != nil {
			changes["profile_visibility"] = *in.ProfileVisibility
		}
		if in.NotificationsEnabled != nil {
			changes["notifications_enabled"] = *in.NotificationsEnabled
		}
		if len(changes) == 0 {
			return nil
		}
		if err := tx.Model(&settings).Updates(changes).Error; err != nil {
			return err
		}
		if in.ProfileVisibility != nil {
			res := tx.Model(&models.User{}).Where("id = ?", userID).Update("profile_visibility", *in.ProfileVisibility)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("User not found")
			}
		}
		return tx.Where("user_id = ?", userID).First(&settings).Error
	})
	if err != nil {
		return nil, apperr.From(err)
	}
	v := newSettingsView(&settings)
	return &v, nil
}

func validateVisibility(field string, v *models.Visibility) error {
	if v != nil && !v.Valid() {
		return apperr.Validation("Validation failed", apperr.FieldError{Field: field, Message: "must be one of public, friends, private"})
	}
	return nil
}

// UpdateProfile changes display name and avatar URL.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdate) (*Account, error) {
	changes := map[string]interface{}{}
	if in.DisplayName != nil {
		changes["display_name"] = strings.TrimSpace(*in.DisplayName)
	}
	if in.AvatarURL != nil {
		changes["avatar_url"] = strings.TrimSpace(*in.AvatarURL)
	}

	db := s.DB.WithContext(ctx)
	if len(changes) > 0 {
		res := db.Model(&models.User{}).Where("id = ?", userID).Updates(changes)
		if res.Error != nil {
			return nil, apperr.From(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, apperr.NotFound("User not found")
		}
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.From(err)
	}
	account := NewAccount(&user)
	return &account, nil
}

// SetAvatar stores the URL of a freshly uploaded avatar.
func (s *ProfileService) SetAvatar(ctx context.Context, userID uint, url string) (*Account, error) {
	return s.UpdateProfile(ctx, userID, ProfileUpdate{AvatarURL: &url})
}

// PublicProfile looks a user up by username for viewerID, which is 0 for
// anonymous callers. Private profiles, and friends-only profiles viewed by a
// non-friend, are reported as not found. Stats visibility is applied
// separately.
func (s *ProfileService) PublicProfile(ctx context.Context, viewerID uint, username string) (*PublicProfile, error) {
	db := s.DB.WithContext(ctx)
	notFound := apperr.NotFound("Profile not found")

	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperr.From(err)
	}
	settings, err := loadSettings(db, user.ID)
	if err != nil {
		return nil, err
	}

	self := viewerID != 0 && viewerID == user.ID
	friend, err := areFriends(db, viewerID, user.ID)
	if err != nil {
		return nil, err
	}
	if !visibleTo(profileVisibility(&user, settings), self, friend) {
		return nil, notFound
	}

	profile := &PublicProfile{
		UserSummary:  summarize(&user),
		MemberSince:  user.CreatedAt,
		LastActiveAt: user.LastActiveAt,
		IsFriend:     friend,
	}
	if visibleTo(settings.StatsVisibility, self, friend) {
		stats, err := allTimeStats(db, user.ID)
		if err != nil {
			return nil, err
		}
		profile.Stats = stats
	}
	return profile, nil
}

// profileVisibility prefers the user row, which is what the list queries use.
func profileVisibility(u *models.User, s *models.UserSettings) models.Visibility {
	if u.ProfileVisibility != "" {
		return u.ProfileVisibility
	}
	if s.ProfileVisibility != "" {
		return s.ProfileVisibility
	}
	return models.VisibilityPublic
}

func visibleTo(v models.Visibility, self, friend bool) bool {
	switch {
	case self:
		return true
	case v == models.VisibilityPrivate:
		return false
	case v == models.VisibilityFriends:
		return friend
	}
	return true
}

// SearchPublic finds public profiles by username or display name.
func (s *ProfileService) SearchPublic(ctx context.Context, query string) ([]UserSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []UserSummary{}, nil
	}
	pattern := likePattern(query)
	var users []models.User
	err := s.DB.WithContext(ctx).
		Where(`(LOWER(username) LIKE ? ESCAPE '\' OR LOWER(display_name) LIKE ? ESCAPE '\')`, pattern, pattern).
		Where("(profile_visibility IS NULL OR profile_visibility = ?)", models.VisibilityPublic).
		Order("username ASC").
		Limit(searchLimit).
		Find(&users).Error
	if err != nil {
		return nil, apperr.From(err)
	}
	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, summarize(&users[i]))
	}
	return out, nil
}
