package models

type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Books []Book `gorm:"many2many:book_categories;" json:"books,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
