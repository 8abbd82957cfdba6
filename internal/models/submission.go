package models

import "time"

// Contact and Idea are append-only submission records, optionally tied to a
// user. They are never updated after creation.

type Contact struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      *string   `gorm:"index;type:uuid" json:"user_id,omitempty"`
	Email       string    `gorm:"not null" json:"email"`
	Subject     string    `json:"subject,omitempty"`
	Message     string    `gorm:"not null" json:"message"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

type Idea struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      *string   `gorm:"index;type:uuid" json:"user_id,omitempty"`
	Idea        string    `gorm:"not null" json:"idea"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}

func (Idea) TableName() string {
	return "ideas"
}
