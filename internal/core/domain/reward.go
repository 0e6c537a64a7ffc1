package domain

import (
	"errors"
	"time"
)

var ErrRewardNotFound = errors.New("reward not found")
var ErrInvalidReward = errors.New("reward requires a title and a positive points cost")

// RewardData holds the display attributes of a catalog entry.
type RewardData struct {
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// Reward is a catalog entry users can redeem points for.
// Immutable after creation; Points is the cost and is always > 0.
type Reward struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	Title     string     `json:"title" bson:"title"`
	Points    int        `json:"points" bson:"points"`
	Data      RewardData `json:"data" bson:"data"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}
