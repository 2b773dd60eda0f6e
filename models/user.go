package models

import (
	"time"
)

type Role string

const (
	AdminRole Role = "admin"
	UserRole  Role = "user"
)

// Action is a capability a caller may or may not hold. Authorization decisions
// go through User.Can instead of comparing role strings in every handler.
type Action string

const (
	ActionSubscribe     Action = "subscription:create"
	ActionUploadContent Action = "content:upload"
	ActionDeleteContent Action = "content:delete"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null" binding:"required,email"`
	Password  string    `json:"-" gorm:"not null"`
	Role      Role      `json:"role" gorm:"type:varchar(20);default:'user'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Can reports whether the user holds the given capability.
// Admins hold every capability; regular users can only subscribe.
func (u *User) Can(action Action) bool {
	if u == nil {
		return false
	}
	if u.Role == AdminRole {
		return true
	}
	return action == ActionSubscribe
}
