package models

import "time"

// Book is a catalog entry. Available is a denormalized flag that must stay
// consistent with the absence of an open borrow for the book; the borrow
// repository flips it inside the same transaction as the borrow write.
type Book struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Author      string     `gorm:"not null" json:"author"`
	ISBN        *string    `gorm:"uniqueIndex" json:"isbn,omitempty"`
	Description string     `json:"description,omitempty"`
	CoverImage  string     `json:"cover_image,omitempty"`
	Size        int        `json:"size"`
	Available   bool       `gorm:"default:true;not null" json:"available"`
	Language    string     `json:"language,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	AddedAt     time.Time  `gorm:"autoCreateTime" json:"added_at"`

	Categories []Category `gorm:"many2many:book_categories;constraint:OnDelete:CASCADE;" json:"categories,omitempty"`
}

func (Book) TableName() string {
	return "books"
}
