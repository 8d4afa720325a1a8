package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"sync"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/logging"
	"furls/dashboard/internal/metrics"
	"furls/dashboard/internal/models"
	"furls/dashboard/internal/validation"
	"furls/dashboard/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// apiKeyBytes is the entropy of a generated API key before hex encoding.
const apiKeyBytes = 32

var passwordCost = bcrypt.DefaultCost

// IdentityService owns accounts and both credential spaces: passwords with
// bearer tokens for the dashboard, and API keys for the plugin.
type IdentityService struct {
	DB *gorm.DB
}

func NewIdentityService(db *gorm.DB) *IdentityService {
	return &IdentityService{DB: db}
}

// RegisterInput is the body of POST /auth/register.
type RegisterInput struct {
	Username    string `json:"username" binding:"required,username" example:"alice"`
	Email       string `json:"email" binding:"required,email,max=255" example:"alice@example.com"`
	Password    string `json:"password" binding:"required,min=6,max=72" example:"secret1"`
	DisplayName string `json:"displayName" binding:"max=100" example:"Alice"`
}

// LoginInput is the body of POST /auth/login. Username may also be an email.
type LoginInput struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User  Account `json:"user"`
	Token string  `json:"token"`
}

// NewAPIKey returns a random 64-character hex key.
func NewAPIKey() (string, error) {
	buf := make([]byte, apiKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Register creates the user together with its settings row and issues a
// bearer token.
func (s *IdentityService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	db := s.DB.WithContext(ctx)

	var taken int64
	if err := db.Model(&models.User{}).
		Where("username = ? OR email = ?", in.Username, in.Email).
		Count(&taken).Error; err != nil {
		return nil, apperr.From(err)
	}
	if taken > 0 {
		return nil, apperr.Conflict("Username or email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordCost)
	if err != nil {
		return nil, apperr.Internal("Failed to hash password", err)
	}
	key, err := NewAPIKey()
	if err != nil {
		return nil, apperr.Internal("Failed to generate API key", err)
	}

	user := models.User{
		Username:          in.Username,
		Email:             in.Email,
		PasswordHash:      string(hash),
		APIKey:            &key,
		DisplayName:       in.DisplayName,
		ProfileVisibility: models.VisibilityPublic,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Settings", "Sessions").Create(&user).Error; err != nil {
			return err
		}
		settings := models.DefaultSettings(user.ID)
		return tx.Create(&settings).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Username or email already exists")
		}
		return nil, apperr.From(err)
	}

	token, err := jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, apperr.Internal("Failed to generate token", err)
	}

	logging.Ctx(ctx).Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return &AuthResult{User: NewAccount(&user), Token: token}, nil
}

var (
	dummyHash     []byte
	dummyHashOnce sync.Once
)

// Login accepts a username or an email. Every failure is the same generic
// Unauthorized.
func (s *IdentityService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	login := strings.TrimSpace(in.Username)
	invalid := apperr.Unauthorized("Invalid credentials")

	var user models.User
	err := s.DB.WithContext(ctx).
		Where("username = ? OR email = ?", login, strings.ToLower(login)).
		First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.From(err)
		}
		// Spend the same time as a real comparison.
		dummyHashOnce.Do(func() {
			dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-password"), passwordCost)
		})
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		metrics.RecordAuthFailure("login")
		return nil, invalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		metrics.RecordAuthFailure("login")
		return nil, invalid
	}

	token, err := jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, apperr.Internal("Failed to generate token", err)
	}
	return &AuthResult{User: NewAccount(&user), Token: token}, nil
}

// GetUser loads a user by id.
func (s *IdentityService) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.From(err)
	}
	return &user, nil
}

// GetAPIKey returns the user's current key, or NotFound when none was issued.
func (s *IdentityService) GetAPIKey(ctx context.Context, userID uint) (string, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.APIKey == nil || *user.APIKey == "" {
		return "", apperr.NotFound("No API key issued")
	}
	return *user.APIKey, nil
}

// RegenerateAPIKey replaces the user's key in a single update. The old key
// stops working as soon as this returns.
func (s *IdentityService) RegenerateAPIKey(ctx context.Context, userID uint) (string, error) {
	key, err := NewAPIKey()
	if err != nil {
		return "", apperr.Internal("Failed to generate API key", err)
	}
	res := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("api_key", key)
	if res.Error != nil {
		return "", apperr.From(res.Error)
	}
	if res.RowsAffected == 0 {
		return "", apperr.NotFound("User not found")
	}
	logging.Ctx(ctx).Info().Uint("user_id", userID).Msg("api key regenerated")
	return key, nil
}

// AuthenticateAPIKey resolves a plugin key to its owner.
func (s *IdentityService) AuthenticateAPIKey(ctx context.Context, key string) (*models.User, error) {
	if key == "" {
		return nil, apperr.Unauthorized("API key required")
	}
	var user models.User
	if err := s.DB.WithContext(ctx).Where("api_key = ?", key).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("Invalid API key")
		}
		return nil, apperr.From(err)
	}
	return &user, nil
}
