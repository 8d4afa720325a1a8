package models

import "time"

// FriendshipStatus defines the state of a friendship edge.
type FriendshipStatus string

const (
	// StatusPending means a request has been sent but not answered.
	StatusPending FriendshipStatus = "pending"

	// StatusAccepted means both users are friends. Accepted edges are read in
	// both directions.
	StatusAccepted FriendshipStatus = "accepted"

	// StatusRejected is kept for schema compatibility. Declining deletes the
	// edge instead, so nothing writes this value.
	StatusRejected FriendshipStatus = "rejected"
)

// Friendship is a directed edge from the requester (UserID) to the recipient
// (FriendID). The pair is unique in that direction.
type Friendship struct {
	ID        uint             `gorm:"primaryKey"`
	UserID    uint             `gorm:"not null;uniqueIndex:idx_friendships_pair,priority:1"`
	FriendID  uint             `gorm:"not null;uniqueIndex:idx_friendships_pair,priority:2;index"`
	Status    FriendshipStatus `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User   User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Friend User `gorm:"foreignKey:FriendID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Other returns the id of the party that is not userID.
func (f *Friendship) Other(userID uint) uint {
	if f.UserID == userID {
		return f.FriendID
	}
	return f.UserID
}

// Involves reports whether userID is either party of the edge.
func (f *Friendship) Involves(userID uint) bool {
	return f.UserID == userID || f.FriendID == userID
}
