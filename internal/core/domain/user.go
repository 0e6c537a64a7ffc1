package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// StartingPoints is the balance granted to every newly registered user.
const StartingPoints = 2450

// UserData is the mutable attribute bag attached to a user. IsAdmin is set
// once at registration; Points is mutated only by the claim transaction.
type UserData struct {
	IsAdmin bool `json:"is_admin" bson:"is_admin"`
	Points  int  `json:"points" bson:"points"`
}

// User models a registered account.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Fullname     string    `json:"fullname" bson:"fullname"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	PhoneNumber  string    `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Active       bool      `json:"active" bson:"active"`
	Data         UserData  `json:"data" bson:"data"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
