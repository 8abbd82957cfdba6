package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BorrowPeriod is the initial loan period granted on creation.
const BorrowPeriod = 14 * 24 * time.Hour

// Extension bounds, in weeks, for a due-date extension.
const (
	MinExtensionWeeks = 1
	MaxExtensionWeeks = 4
)

// Borrow records one user holding one book. ReturnedAt is nil while the
// borrow is open. The borrows table carries a partial unique index on book_id
// WHERE returned_at IS NULL, so the database itself guarantees at most one
// open borrow per book even if two creates race.
type Borrow struct {
	ID         string     `gorm:"primaryKey;type:uuid" json:"id"`
	BookID     int64      `gorm:"not null;index" json:"book_id"`
	UserID     string     `gorm:"not null;index;type:uuid" json:"user_id"`
	BorrowedAt time.Time  `gorm:"autoCreateTime" json:"borrowed_at"`
	DueDate    time.Time  `gorm:"not null" json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`

	Book Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (b *Borrow) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

func (Borrow) TableName() string {
	return "borrows"
}

// IsOpen reports whether the borrow is still outstanding.
func (b *Borrow) IsOpen() bool {
	return b.ReturnedAt == nil
}

// IsOverdue reports whether the borrow is open and past due at the given
// instant. Overdue is never persisted; it is computed at read time.
func (b *Borrow) IsOverdue(now time.Time) bool {
	return b.IsOpen() && now.After(b.DueDate)
}

// ExtendDueDate pushes the due date forward by weeks*7 days from the current
// due date, not from now. It fails on an already-returned borrow or an
// out-of-range week count, leaving DueDate untouched.
func (b *Borrow) ExtendDueDate(weeks int) error {
	if weeks < MinExtensionWeeks || weeks > MaxExtensionWeeks {
		return ErrExtensionOutOfRange
	}
	if !b.IsOpen() {
		return ErrBorrowClosed
	}
	b.DueDate = b.DueDate.AddDate(0, 0, weeks*7)
	return nil
}

// MarkReturned closes the borrow at the given instant. A second call fails
// and leaves ReturnedAt untouched.
func (b *Borrow) MarkReturned(now time.Time) error {
	if !b.IsOpen() {
		return ErrBorrowClosed
	}
	b.ReturnedAt = &now
	return nil
}
