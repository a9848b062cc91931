// Package models defines server-side data models persisted in the database
// and their wire projections.
package models

import "time"

// User is a registered account. Password holds a bcrypt hash.
type User struct {
	ID        int64
	Email     string
	Password  string
	IsActive  bool
	CreatedAt time.Time
}

// UserView is the public projection of a User. It never carries the password.
type UserView struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

func (u *User) Serialize() UserView {
	return UserView{
		ID:       u.ID,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}
