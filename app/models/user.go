package models

import "time"

// Role is the fixed classification assigned at signup. It never changes for
// the lifetime of the account.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleInstructor:
		return Role(s), true
	}
	return "", false
}

type User struct {
	UserID       int64     `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	Username     string    `gorm:"size:191;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Phone        string    `gorm:"size:32" json:"phone,omitempty"`
	Role         Role      `gorm:"size:32;not null;default:student" json:"role"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
