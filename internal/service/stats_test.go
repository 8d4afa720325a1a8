package service

import (
	"context"
	"testing"
	"time"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/models"
)

func TestAllTime_PerSessionAverage(t *testing.T) {
	db := setup(t)
	alice := register(t, db, "alice")
	svc := NewStatsService(db)
	ctx := context.Background()

	upload(t, db, alice.ID, 10, 4)
	stats, err := svc.AllTime(ctx, alice.ID)
	if err != nil {
		t.Fatalf("AllTime: %v", err)
	}
	if stats.TotalSessions != 1 || stats.TotalShots != 10 || stats.TotalGoals != 4 || stats.AvgAccuracy != 40.0 {
		t.Errorf("after first upload: %+v", stats)
	}

	upload(t, db, alice.ID, 5, 5)
	stats, err = svc.AllTime(ctx, alice.ID)
	if err != nil {
		t.Fatalf("AllTime: %v", err)
	}
	if stats.TotalSessions != 2 || stats.TotalShots != 15 || stats.TotalGoals != 9 {
		t.Errorf("after second upload: %+v", stats)
	}
	// Pooled would be 60.0.
	if stats.AvgAccuracy != 70.0 {
		t.Errorf("AvgAccuracy = %v, want 70.0", stats.AvgAccuracy)
	}

	var u models.User
	db.First(&u, alice.ID)
	if u.TotalSessions != stats.TotalSessions || u.TotalShots != stats.TotalShots || u.TotalGoals != stats.TotalGoals {
		t.Errorf("counters %d/%d/%d disagree with sessions %+v", u.TotalSessions, u.TotalShots, u.TotalGoals, stats)
	}
}

func TestAllTime_ZeroShotSessionsCountAsZero(t *testing.T) {
	db := setup(t)
	alice := register(t, db, "alice")
	upload(t, db, alice.ID, 0, 0)
	upload(t, db, alice.ID, 4, 2)

	stats, err := NewStatsService(db).AllTime(context.Background(), alice.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stats.AvgAccuracy != 25.0 {
		t.Errorf("AvgAccuracy = %v, want 25.0", stats.AvgAccuracy)
	}
}

func TestAllTime_NoSessions(t *testing.T) {
	db := setup(t)
	alice := register(t, db, "alice")
	stats, err := NewStatsService(db).AllTime(context.Background(), alice.ID)
	if err != nil {
		t.Fatal(err)
	}
	if *stats != (AllTimeStats{}) {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestHistory_NewestFirstPaginated(t *testing.T) {
	db := setup(t)
	alice := register(t, db, "alice")
	svc := NewIngestionService(db)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		if _, err := svc.Upload(context.Background(), alice.ID, UploadPayload{Shots: ptr(i + 1), Goals: ptr(0), Timestamp: &at}); err != nil {
			t.Fatal(err)
		}
	}

	stats := NewStatsService(db)
	page, err := stats.History(context.Background(), alice.ID, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(page) != 2 || page[0].Shots != 5 || page[1].Shots != 4 {
		t.Errorf("first page = %+v", page)
	}
	page, _ = stats.History(context.Background(), alice.ID, 2, 4)
	if len(page) != 1 || page[0].Shots != 1 {
		t.Errorf("last page = %+v", page)
	}
}

func TestSession_OwnerOnly(t *testing.T) {
	db := setup(t)
	alice := register(t, db, "alice")
	bob := register(t, db, "bob")

	s, err := NewIngestionService(db).Upload(context.Background(), alice.ID, UploadPayload{
		Shots:       ptr(2),
		Goals:       ptr(1),
		ShotHeatmap: [][]int64{{1, 0}, {0, 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	svc := NewStatsService(db)

	detail, err := svc.Session(context.Background(), alice.ID, s.ID)
	if err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
	if detail.Accuracy != 50 || len(detail.ShotHeatmap) != 2 || detail.ShotHeatmap[1][1] != 1 {
		t.Errorf("detail = %+v", detail)
	}
	if detail.GoalHeatmap == nil {
		t.Error("absent grid should decode to an empty slice")
	}

	if _, err := svc.Session(context.Background(), bob.ID, s.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("other user's session: expected not found, got %v", err)
	}
}

func TestHeatmap_AggregatesRecentSessions(t *testing.T) {
	db := setup(t)
	alice := register(t, db, "alice")
	ingest := NewIngestionService(db)
	ctx := context.Background()

	grids := [][][]int64{
		{{1, 2}, {3}},
		{{0, 0, 5}},
		{{1}, nil, {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 9}},
	}
	for _, g := range grids {
		if _, err := ingest.Upload(ctx, alice.ID, UploadPayload{Shots: ptr(1), Goals: ptr(0), ShotHeatmap: g, GoalHeatmap: g}); err != nil {
			t.Fatal(err)
		}
	}

	res, err := NewStatsService(db).Heatmap(ctx, alice.ID)
	if err != nil {
		t.Fatal(err)
	}
	if res.Sessions != 3 {
		t.Errorf("Sessions = %d", res.Sessions)
	}
	if res.Shots[0][0] != 2 || res.Shots[0][1] != 2 || res.Shots[1][0] != 3 || res.Shots[0][2] != 5 {
		t.Errorf("unexpected shot grid %v", res.Shots)
	}
	// The 11th column is outside the grid.
	if res.Shots.Total() != 12 || res.Goals != res.Shots {
		t.Errorf("total = %d, goals equal shots = %v", res.Shots.Total(), res.Goals == res.Shots)
	}
}

func TestHeatmap_BoundedToRecentSessions(t *testing.T) {
	db := setup(t)
	alice := register(t, db, "alice")
	ingest := NewIngestionService(db)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		// Only the oldest session marks cell [9][9].
		cell := [][]int64{{1}}
		if i == 0 {
			cell = [][]int64{{1}, nil, nil, nil, nil, nil, nil, nil, nil, {0, 0, 0, 0, 0, 0, 0, 0, 0, 7}}
		}
		if _, err := ingest.Upload(ctx, alice.ID, UploadPayload{Shots: ptr(1), Goals: ptr(0), ShotHeatmap: cell, Timestamp: &at}); err != nil {
			t.Fatal(err)
		}
	}

	svc := NewStatsService(db)
	svc.HeatmapSessions = 3
	res, err := svc.Heatmap(ctx, alice.ID)
	if err != nil {
		t.Fatal(err)
	}
	if res.Sessions != 3 || res.Shots[0][0] != 3 || res.Shots[9][9] != 0 {
		t.Errorf("sessions=%d grid=%v", res.Sessions, res.Shots)
	}
}

func TestHeatmap_NoSessions(t *testing.T) {
	db := setup(t)
	alice := register(t, db, "alice")
	res, err := NewStatsService(db).Heatmap(context.Background(), alice.ID)
	if err != nil {
		t.Fatal(err)
	}
	if res.Shots.Total() != 0 || res.Goals.Total() != 0 || res.Sessions != 0 {
		t.Errorf("expected zero grids, got %+v", res)
	}
}

func TestFriendStats_Gates(t *testing.T) {
	db := setup(t)
	alice := register(t, db, "alice")
	bob := register(t, db, "bob")
	upload(t, db, bob.ID, 8, 2)
	svc := NewStatsService(db)
	ctx := context.Background()

	if _, err := svc.FriendStats(ctx, alice.ID, bob.ID); !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("strangers: expected forbidden, got %v", err)
	}

	// A pending request is not a friendship.
	req, err := NewFriendshipService(db).SendRequest(ctx, alice.ID, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.FriendStats(ctx, alice.ID, bob.ID); !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("pending: expected forbidden, got %v", err)
	}
	if _, err := NewFriendshipService(db).Accept(ctx, bob.ID, req.ID); err != nil {
		t.Fatal(err)
	}

	fs, err := svc.FriendStats(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("friends: %v", err)
	}
	if fs.User.Username != "bob" || fs.Stats.TotalShots != 8 || len(fs.RecentSessions) != 1 {
		t.Errorf("friend stats = %+v", fs)
	}

	if _, err := NewProfileService(db).UpdateSettings(ctx, bob.ID, SettingsUpdate{StatsVisibility: ptr(models.VisibilityPrivate)}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.FriendStats(ctx, alice.ID, bob.ID); !apperr.Is(err, apperr.KindForbidden) {
		t.Errorf("private stats: expected forbidden, got %v", err)
	}
}

func TestFriendStats_RecentCapped(t *testing.T) {
	db := setup(t)
	alice := register(t, db, "alice")
	bob := register(t, db, "bob")
	befriend(t, db, alice, bob)
	for i := 0; i < 12; i++ {
		upload(t, db, bob.ID, 1, 1)
	}
	fs, err := NewStatsService(db).FriendStats(context.Background(), bob.ID, alice.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(fs.RecentSessions) != 0 {
		t.Errorf("alice has no sessions, got %d", len(fs.RecentSessions))
	}
	fs, err = NewStatsService(db).FriendStats(context.Background(), alice.ID, bob.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(fs.RecentSessions) != 10 || fs.Stats.TotalSessions != 12 {
		t.Errorf("recent=%d total=%d", len(fs.RecentSessions), fs.Stats.TotalSessions)
	}
}
