package service

import (
	"context"
	"testing"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/models"
)

func usernames(entries []LeaderboardEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Username
	}
	return out
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseScopeAndMetric(t *testing.T) {
	if s, err := ParseScope(""); err != nil || s != ScopeGlobal {
		t.Errorf("ParseScope(\"\") = %q, %v", s, err)
	}
	if _, err := ParseScope("everyone"); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("ParseScope(everyone) err = %v", err)
	}
	if m, err := ParseMetric("sessions"); err != nil || m != MetricSessions {
		t.Errorf("ParseMetric(sessions) = %q, %v", m, err)
	}
	if _, err := ParseMetric("assists"); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("ParseMetric(assists) err = %v", err)
	}
}

func TestLeaderboard_GlobalScope(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	alice := register(t, db, "alice")
	bob := register(t, db, "bob")
	carol := register(t, db, "carol")
	dave := register(t, db, "dave")
	register(t, db, "erin") // no sessions at all

	upload(t, db, alice.ID, 10, 5) // 50%
	upload(t, db, bob.ID, 4, 3)    // 75%
	upload(t, db, carol.ID, 10, 9) // 90%, private
	upload(t, db, dave.ID, 0, 0)   // played, never shot

	if _, err := NewProfileService(db).UpdateSettings(ctx, carol.ID, SettingsUpdate{ProfileVisibility: ptr(models.VisibilityPrivate)}); err != nil {
		t.Fatal(err)
	}

	board, err := NewLeaderboardService(db).Leaderboard(ctx, alice.ID, ScopeGlobal, MetricAccuracy)
	if err != nil {
		t.Fatal(err)
	}
	if got := usernames(board); !equalNames(got, []string{"bob", "alice"}) {
		t.Fatalf("global accuracy = %v", got)
	}
	if board[0].Value != 75 || board[0].Rank != 1 || board[1].Accuracy != 50 || !board[1].IsSelf {
		t.Errorf("entries = %+v", board)
	}

	// Zero-shot users stay out even when ranking by sessions.
	board, _ = NewLeaderboardService(db).Leaderboard(ctx, alice.ID, ScopeGlobal, MetricSessions)
	for _, e := range board {
		if e.TotalShots == 0 {
			t.Errorf("zero-shot user %s ranked", e.Username)
		}
	}
}

func TestLeaderboard_FriendsScope(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	alice := register(t, db, "alice")
	bob := register(t, db, "bob")
	carol := register(t, db, "carol")
	dave := register(t, db, "dave")
	erin := register(t, db, "erin")

	for _, u := range []*models.User{alice, bob, carol, dave, erin} {
		upload(t, db, u.ID, 10, 1)
	}
	upload(t, db, carol.ID, 10, 1)

	befriend(t, db, alice, bob)   // alice sent
	befriend(t, db, carol, alice) // carol sent
	if _, err := NewFriendshipService(db).SendRequest(ctx, dave.ID, "alice"); err != nil {
		t.Fatal(err) // pending only
	}
	// Private profiles still appear among friends.
	if _, err := NewProfileService(db).UpdateSettings(ctx, bob.ID, SettingsUpdate{ProfileVisibility: ptr(models.VisibilityPrivate)}); err != nil {
		t.Fatal(err)
	}

	board, err := NewLeaderboardService(db).Leaderboard(ctx, alice.ID, ScopeFriends, MetricShots)
	if err != nil {
		t.Fatal(err)
	}
	// carol has 20 shots; alice and bob tie at 10 and fall back to id order.
	if got := usernames(board); !equalNames(got, []string{"carol", "alice", "bob"}) {
		t.Errorf("friends board = %v", got)
	}
}

func TestLeaderboard_TiesBreakByID(t *testing.T) {
	db := setup(t)
	var ids []uint
	for _, name := range []string{"zed", "amy", "kim"} {
		u := register(t, db, name)
		upload(t, db, u.ID, 4, 2)
		ids = append(ids, u.ID)
	}
	board, err := NewLeaderboardService(db).Leaderboard(context.Background(), 0, ScopeGlobal, MetricAccuracy)
	if err != nil {
		t.Fatal(err)
	}
	if len(board) != 3 {
		t.Fatalf("len = %d", len(board))
	}
	for i, e := range board {
		if e.UserID != ids[i] {
			t.Errorf("position %d: user %d, want %d", i, e.UserID, ids[i])
		}
		if e.IsSelf {
			t.Error("anonymous board has no self entry")
		}
	}
}

func TestLeaderboard_CappedAt50(t *testing.T) {
	db := setup(t)
	for i := 0; i < 55; i++ {
		u := models.User{
			Username:     "player" + string(rune('a'+i/26)) + string(rune('a'+i%26)),
			Email:        "p" + string(rune('a'+i/26)) + string(rune('a'+i%26)) + "@x.com",
			PasswordHash: "x",
			TotalShots:   int64(i + 1),
			TotalGoals:   1,
		}
		if err := db.Create(&u).Error; err != nil {
			t.Fatal(err)
		}
	}
	board, err := NewLeaderboardService(db).Leaderboard(context.Background(), 0, ScopeGlobal, MetricShots)
	if err != nil {
		t.Fatal(err)
	}
	if len(board) != 50 || board[0].TotalShots != 55 {
		t.Errorf("len=%d top=%d", len(board), board[0].TotalShots)
	}
}
