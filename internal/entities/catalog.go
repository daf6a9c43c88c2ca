package entities

import (
	"time"
)

// Category is a grouping label optionally attached to a book. Categories are
// seed data: the application exposes no create/update/delete path for them.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Book is a single catalog entry. Every form-backed column is nullable so a
// field left out of a submitted form is stored as NULL, matching the
// full-replace edit semantics: omitted fields do not retain prior values.
type Book struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         *string   `gorm:"size:512" json:"title,omitempty"`
	Hepburn       *string   `gorm:"size:512" json:"hepburn,omitempty"` // romanized title rendering
	Author        *string   `gorm:"size:256" json:"author,omitempty"`
	PublishedDate *string   `gorm:"size:64" json:"published_date,omitempty"`
	Release       *string   `gorm:"size:64" json:"release,omitempty"`
	URL           *string   `gorm:"size:2048" json:"url,omitempty"`
	Summary       *string   `gorm:"type:text" json:"summary,omitempty"`
	CategoryID    *uint     `gorm:"index" json:"category_id,omitempty"`
	Category      *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CategoryName returns the joined category display name, or "" when the book
// has no category or the reference is dangling. Value receiver so templates
// can call it on both Book values and pointers.
func (b Book) CategoryName() string {
	if b.Category == nil {
		return ""
	}
	return b.Category.Name
}

func (Category) TableName() string {
	return "categories"
}

func (Book) TableName() string {
	return "books"
}
