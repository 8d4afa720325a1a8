package service

import (
	"context"
	"testing"

	"furls/dashboard/internal/config"
	"furls/dashboard/internal/database/dbtest"
	"furls/dashboard/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setup(t *testing.T) *gorm.DB {
	t.Helper()
	useTestConfig(t)
	return dbtest.New(t)
}

// useTestConfig installs a JWT secret and the cheapest bcrypt cost.
func useTestConfig(t *testing.T) {
	t.Helper()

	prevCfg := config.AppConfig
	cfg := *config.Current()
	cfg.JWTSecret = "test-secret"
	config.AppConfig = &cfg

	prevCost := passwordCost
	passwordCost = bcrypt.MinCost

	t.Cleanup(func() {
		config.AppConfig = prevCfg
		passwordCost = prevCost
	})
}

func register(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	res, err := NewIdentityService(db).Register(context.Background(), RegisterInput{
		Username: username,
		Email:    username + "@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	var u models.User
	if err := db.First(&u, res.User.ID).Error; err != nil {
		t.Fatalf("load %s: %v", username, err)
	}
	return &u
}

func upload(t *testing.T, db *gorm.DB, userID uint, shots, goals int) *models.Session {
	t.Helper()
	s, err := NewIngestionService(db).Upload(context.Background(), userID, UploadPayload{Shots: &shots, Goals: &goals})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	return s
}

func befriend(t *testing.T, db *gorm.DB, a, b *models.User) {
	t.Helper()
	svc := NewFriendshipService(db)
	req, err := svc.SendRequest(context.Background(), a.ID, b.Username)
	if err != nil {
		t.Fatalf("send request: %v", err)
	}
	if _, err := svc.Accept(context.Background(), b.ID, req.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
}

func ptr[T any](v T) *T { return &v }
