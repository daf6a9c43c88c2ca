// Package categories provides read access to the category reference data.
//
// Categories are seeded at startup and never mutated through the web UI, so
// the repository exposes lookups only.
package categories

import (
	"gorm.io/gorm"

	"github.com/yomu/bookshelf/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAllCategories returns all categories ordered by name for form dropdowns.
func (r *Repository) GetAllCategories() ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// GetCategoryByID retrieves a single category.
func (r *Repository) GetCategoryByID(id uint) (*entities.Category, error) {
	var category entities.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}
