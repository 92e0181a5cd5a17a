package model

import "time"

// User is a registered account. The catalog UI has no account surface yet;
// the store keeps these for the session features that build on it.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
