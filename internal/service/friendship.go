package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/logging"
	"furls/dashboard/internal/metrics"
	"furls/dashboard/internal/models"

	"gorm.io/gorm"
)

// Relation describes how a search result relates to the searcher.
type Relation string

const (
	RelationNone     Relation = "none"
	RelationFriends  Relation = "friends"
	RelationOutgoing Relation = "pending_outgoing"
	RelationIncoming Relation = "pending_incoming"
)

// FriendshipService implements the friend request lifecycle. Edges are
// directed from requester (user_id) to recipient (friend_id); declining and
// unfriending delete the row so a fresh request is possible right away.
type FriendshipService struct {
	DB *gorm.DB
}

func NewFriendshipService(db *gorm.DB) *FriendshipService {
	return &FriendshipService{DB: db}
}

// FriendRequestInput is the body of POST /friends/request.
type FriendRequestInput struct {
	Username string `json:"username" binding:"required" example:"bob"`
}

// FriendView is one accepted friend.
type FriendView struct {
	FriendshipID uint        `json:"friendship_id"`
	User         UserSummary `json:"user"`
	TotalShots   int64       `json:"total_shots"`
	TotalGoals   int64       `json:"total_goals"`
	Since        time.Time   `json:"since"`
}

// RequestView is one pending request, showing the other party.
type RequestView struct {
	ID        uint                    `json:"id"`
	User      UserSummary             `json:"user"`
	Status    models.FriendshipStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
}

// SearchResult is a user found by the friend search.
type SearchResult struct {
	UserSummary
	Relation Relation `json:"relation"`
}

// areFriends reports whether an accepted edge exists between a and b in
// either direction.
func areFriends(db *gorm.DB, a, b uint) (bool, error) {
	if a == 0 || b == 0 || a == b {
		return false, nil
	}
	var n int64
	err := db.Model(&models.Friendship{}).
		Where("status = ?", models.StatusAccepted).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", a, b, b, a).
		Count(&n).Error
	if err != nil {
		return false, apperr.From(err)
	}
	return n > 0, nil
}

// SendRequest creates a pending edge from requester to the named user.
func (s *FriendshipService) SendRequest(ctx context.Context, requesterID uint, targetUsername string) (*models.Friendship, error) {
	db := s.DB.WithContext(ctx)
	targetUsername = strings.TrimSpace(targetUsername)
	if targetUsername == "" {
		return nil, apperr.Validation("Username is required", apperr.FieldError{Field: "username", Message: "is required"})
	}

	var target models.User
	if err := db.Where("username = ?", targetUsername).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.From(err)
	}
	if target.ID == requesterID {
		return nil, apperr.Validation("Cannot send a friend request to yourself")
	}

	var existing int64
	err := db.Model(&models.Friendship{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", requesterID, target.ID, target.ID, requesterID).
		Count(&existing).Error
	if err != nil {
		return nil, apperr.From(err)
	}
	if existing > 0 {
		return nil, apperr.Conflict("A friendship or request already exists with this user")
	}

	edge := models.Friendship{UserID: requesterID, FriendID: target.ID, Status: models.StatusPending}
	if err := db.Omit("User", "Friend").Create(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("A friendship or request already exists with this user")
		}
		return nil, apperr.From(err)
	}

	metrics.RecordFriendAction("request")
	logging.Ctx(ctx).Info().Uint("user_id", requesterID).Uint("target_id", target.ID).Msg("friend request sent")
	return &edge, nil
}

// Accept moves a pending request addressed to recipientID to accepted.
func (s *FriendshipService) Accept(ctx context.Context, recipientID, requestID uint) (*models.Friendship, error) {
	db := s.DB.WithContext(ctx)
	res := db.Model(&models.Friendship{}).
		Where("id = ? AND friend_id = ? AND status = ?", requestID, recipientID, models.StatusPending).
		Update("status", models.StatusAccepted)
	if res.Error != nil {
		return nil, apperr.From(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Friend request not found")
	}

	var edge models.Friendship
	if err := db.First(&edge, requestID).Error; err != nil {
		return nil, apperr.From(err)
	}
	metrics.RecordFriendAction("accept")
	return &edge, nil
}

// Remove deletes an edge the caller is part of. It declines, cancels and
// unfriends alike.
func (s *FriendshipService) Remove(ctx context.Context, callerID, friendshipID uint) error {
	db := s.DB.WithContext(ctx)

	var edge models.Friendship
	if err := db.First(&edge, friendshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Friendship not found")
		}
		return apperr.From(err)
	}
	if !edge.Involves(callerID) {
		return apperr.NotFound("Friendship not found")
	}

	res := db.Delete(&models.Friendship{}, edge.ID)
	if res.Error != nil {
		return apperr.From(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Friendship not found")
	}

	metrics.RecordFriendAction("remove")
	logging.Ctx(ctx).Info().
		Uint("user_id", callerID).
		Uint("other_id", edge.Other(callerID)).
		Str("status", string(edge.Status)).
		Msg("friendship removed")
	return nil
}

// Friends lists accepted friends in both directions.
func (s *FriendshipService) Friends(ctx context.Context, userID uint) ([]FriendView, error) {
	var edges []models.Friendship
	err := s.DB.WithContext(ctx).
		Preload("User").Preload("Friend").
		Where("status = ? AND (user_id = ? OR friend_id = ?)", models.StatusAccepted, userID, userID).
		Order("updated_at DESC").Order("id DESC").
		Find(&edges).Error
	if err != nil {
		return nil, apperr.From(err)
	}

	out := make([]FriendView, 0, len(edges))
	for _, e := range edges {
		other := e.Friend
		if e.FriendID == userID {
			other = e.User
		}
		if other.ID == 0 {
			continue
		}
		out = append(out, FriendView{
			FriendshipID: e.ID,
			User:         summarize(&other),
			TotalShots:   other.TotalShots,
			TotalGoals:   other.TotalGoals,
			Since:        e.UpdatedAt,
		})
	}
	return out, nil
}

// IncomingRequests lists pending requests addressed to userID.
func (s *FriendshipService) IncomingRequests(ctx context.Context, userID uint) ([]RequestView, error) {
	var edges []models.Friendship
	err := s.DB.WithContext(ctx).
		Preload("User").
		Where("friend_id = ? AND status = ?", userID, models.StatusPending).
		Order("created_at DESC").Order("id DESC").
		Find(&edges).Error
	if err != nil {
		return nil, apperr.From(err)
	}
	out := make([]RequestView, 0, len(edges))
	for _, e := range edges {
		out = append(out, RequestView{ID: e.ID, User: summarize(&e.User), Status: e.Status, CreatedAt: e.CreatedAt})
	}
	return out, nil
}

// OutgoingRequests lists pending requests sent by userID.
func (s *FriendshipService) OutgoingRequests(ctx context.Context, userID uint) ([]RequestView, error) {
	var edges []models.Friendship
	err := s.DB.WithContext(ctx).
		Preload("Friend").
		Where("user_id = ? AND status = ?", userID, models.StatusPending).
		Order("created_at DESC").Order("id DESC").
		Find(&edges).Error
	if err != nil {
		return nil, apperr.From(err)
	}
	out := make([]RequestView, 0, len(edges))
	for _, e := range edges {
		out = append(out, RequestView{ID: e.ID, User: summarize(&e.Friend), Status: e.Status, CreatedAt: e.CreatedAt})
	}
	return out, nil
}

// Search finds users by username or display name substring. Privacy settings
// do not hide anyone from an authenticated searcher.
func (s *FriendshipService) Search(ctx context.Context, callerID uint, query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []SearchResult{}, nil
	}
	db := s.DB.WithContext(ctx)

	pattern := likePattern(query)
	var users []models.User
	err := db.
		Where(`(LOWER(username) LIKE ? ESCAPE '\' OR LOWER(display_name) LIKE ? ESCAPE '\')`, pattern, pattern).
		Where("id <> ?", callerID).
		Order("username ASC").
		Limit(searchLimit).
		Find(&users).Error
	if err != nil {
		return nil, apperr.From(err)
	}
	if len(users) == 0 {
		return []SearchResult{}, nil
	}

	ids := make([]uint, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	var edges []models.Friendship
	err = db.
		Where("(user_id = ? AND friend_id IN ?) OR (friend_id = ? AND user_id IN ?)", callerID, ids, callerID, ids).
		Find(&edges).Error
	if err != nil {
		return nil, apperr.From(err)
	}
	relations := make(map[uint]Relation, len(edges))
	for _, e := range edges {
		other := e.Other(callerID)
		switch {
		case e.Status == models.StatusAccepted:
			relations[other] = RelationFriends
		case e.UserID == callerID:
			relations[other] = RelationOutgoing
		default:
			relations[other] = RelationIncoming
		}
	}

	out := make([]SearchResult, 0, len(users))
	for i := range users {
		rel, ok := relations[users[i].ID]
		if !ok {
			rel = RelationNone
		}
		out = append(out, SearchResult{UserSummary: summarize(&users[i]), Relation: rel})
	}
	return out, nil
}
