package database

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"furls/dashboard/internal/logging"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { logging.SetLogger(prev) })
	return &buf
}

func trace() (string, int64) { return "SELECT 1", 1 }

func TestGormLogger_LevelsFollowGorm(t *testing.T) {
	l := newGormLogger()
	ctx := context.Background()

	cases := []struct {
		name      string
		begin     time.Time
		err       error
		wantLevel string
	}{
		{"failed query", time.Now(), errors.New("syntax error"), `"level":"error"`},
		{"slow query", time.Now().Add(-time.Second), nil, `"level":"warn"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := captureLogs(t)
			l.Trace(ctx, tc.begin, trace, tc.err)
			if !strings.Contains(buf.String(), tc.wantLevel) {
				t.Errorf("expected %s, got %s", tc.wantLevel, buf.String())
			}
		})
	}
}

func TestGormLogger_Quiet(t *testing.T) {
	l := newGormLogger()
	ctx := context.Background()

	buf := captureLogs(t)
	l.Trace(ctx, time.Now(), trace, gorm.ErrRecordNotFound)
	l.Trace(ctx, time.Now(), trace, nil)
	l.Info(ctx, "migrating %s", "users")
	if buf.Len() != 0 {
		t.Errorf("expected no output at warn level, got %s", buf.String())
	}

	l.LogMode(logger.Silent).Trace(ctx, time.Now(), trace, errors.New("boom"))
	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %s", buf.String())
	}
}

func TestGormLogger_MessagesKeepLevel(t *testing.T) {
	l := newGormLogger()
	buf := captureLogs(t)
	l.Error(context.Background(), "failed to parse %s", "field")
	if !strings.Contains(buf.String(), `"level":"error"`) || !strings.Contains(buf.String(), "failed to parse field") {
		t.Errorf("unexpected output %s", buf.String())
	}
}
