package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user can hold. Registration always produces a student; promotion to
// librarian happens only through the dashboard role-change operation.
const (
	RoleStudent   = "STUDENT"
	RoleLibrarian = "LIBRARIAN"
)

type User struct {
	ID            string     `gorm:"primaryKey;type:uuid" json:"id"`
	Name          string     `gorm:"not null" json:"name"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	EmailVerified *time.Time `json:"email_verified,omitempty"`
	Image         string     `json:"image,omitempty"`
	Password      string     `gorm:"column:password_hash;not null" json:"-"`
	Role          string     `gorm:"default:'STUDENT';not null" json:"role"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BeforeCreate sets a UUID if the caller did not supply one.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

func (User) TableName() string {
	return "users"
}

// IsLibrarian reports whether the user holds the librarian role.
func (u *User) IsLibrarian() bool {
	return u.Role == RoleLibrarian
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleLibrarian
}
