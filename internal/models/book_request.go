package models

import "time"

// Book request statuses.
const (
	RequestPending  = "PENDING"
	RequestAccepted = "ACCEPTED"
	RequestDeclined = "DECLINED"
)

// BookRequest is a user-suggested acquisition.
type BookRequest struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"not null;index;type:uuid" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Author      string    `gorm:"not null" json:"author"`
	ISBN        *string   `json:"isbn,omitempty"`
	Status      string    `gorm:"default:'PENDING';not null" json:"status"`
	RequestedAt time.Time `gorm:"autoCreateTime" json:"requested_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (BookRequest) TableName() string {
	return "book_requests"
}

// ValidRequestStatus reports whether status is a known request status.
func ValidRequestStatus(status string) bool {
	switch status {
	case RequestPending, RequestAccepted, RequestDeclined:
		return true
	}
	return false
}
