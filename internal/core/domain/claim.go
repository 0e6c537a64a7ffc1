package domain

import (
	"errors"
	"time"
)

// ClaimStatus represents the lifecycle state of a reward claim.
type ClaimStatus string

const (
	ClaimPending   ClaimStatus = "pending"
	ClaimApproved  ClaimStatus = "approved"
	ClaimRejected  ClaimStatus = "rejected"
	ClaimCompleted ClaimStatus = "completed"
)

var ErrClaimNotFound = errors.New("claim not found")
var ErrInvalidClaimStatus = errors.New("invalid claim status")
var ErrInsufficientPoints = errors.New("not enough points to claim this reward")
var ErrRewardIDRequired = errors.New("reward id is required")

// ParseClaimStatus validates a raw status string against the enum.
func ParseClaimStatus(s string) (ClaimStatus, error) {
	switch ClaimStatus(s) {
	case ClaimPending, ClaimApproved, ClaimRejected, ClaimCompleted:
		return ClaimStatus(s), nil
	}
	return "", ErrInvalidClaimStatus
}

// ClaimMeta is the attribute bag attached to a claim.
type ClaimMeta struct {
	ClaimedAt time.Time `json:"claimed_at" bson:"claimed_at"`
}

// Claim records a user redeeming a reward. UserID and RewardID never change
// after creation; only Status and Data may be updated, each update refreshing
// UpdatedAt. Claims are never deleted.
type Claim struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	UserID    string      `json:"user_id" bson:"user_id"`
	RewardID  string      `json:"reward_id" bson:"reward_id"`
	Status    ClaimStatus `json:"status" bson:"status"`
	Data      ClaimMeta   `json:"data" bson:"data"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}
