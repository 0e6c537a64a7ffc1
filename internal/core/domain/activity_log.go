package domain

import (
	"errors"
	"time"
)

// LogAction enumerates the auditable actions.
type LogAction string

const (
	ActionRegister LogAction = "REGISTER"
	ActionLogin    LogAction = "LOGIN"
	ActionLogout   LogAction = "LOGOUT"
	ActionClaim    LogAction = "CLAIM"
	ActionUpdate   LogAction = "UPDATE"
)

// Machine-readable reason codes attached to log entries.
const (
	CodeUserRegister = "USER_REG"
	CodeUserLogin    = "USER_LOGIN"
	CodeUserLogout   = "USER_LOGOUT"
	CodeRewardClaim  = "RWD_CLM"
	CodeRewardUpdate = "RWD_UPD"
)

var ErrInvalidLogEntry = errors.New("log entry missing required fields")

// LogMeta is the structured payload of an activity log entry. All fields are
// optional; each action populates the identifiers relevant to it.
type LogMeta struct {
	UserID   string      `json:"user_id,omitempty" bson:"user_id,omitempty"`
	RewardID string      `json:"reward_id,omitempty" bson:"reward_id,omitempty"`
	ClaimID  string      `json:"claim_id,omitempty" bson:"claim_id,omitempty"`
	AdminID  string      `json:"admin_id,omitempty" bson:"admin_id,omitempty"`
	Status   ClaimStatus `json:"status,omitempty" bson:"status,omitempty"`
}

// ActivityLog is an append-only audit record. UserID is the actor: the
// claimant for CLAIM entries, the admin for UPDATE entries. Entries are never
// updated or deleted.
type ActivityLog struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"user_id" bson:"user_id"`
	Action      LogAction `json:"action" bson:"action"`
	Code        string    `json:"code" bson:"code"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Data        LogMeta   `json:"data" bson:"data"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
