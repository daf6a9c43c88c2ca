// Package books provides database operations for book catalog management.
//
// This package implements the BooksStore interface defined in internal/http/books.go.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	all, err := repo.GetAllBooks()
package books

import (
	"gorm.io/gorm"

	"github.com/yomu/bookshelf/internal/entities"
)

// formColumns are the columns the edit form replaces wholesale. Fields the
// submitted form omitted arrive as nil pointers and overwrite with NULL.
var formColumns = []string{
	"title", "hepburn", "author", "published_date",
	"release", "url", "summary", "category_id",
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAllBooks returns every book with its category resolved, ordered by
// insertion (id ascending).
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Category").Order("id ASC").Find(&books).Error
	return books, err
}

// GetBookByID retrieves a book with its category resolved. A dangling
// category reference leaves Category nil.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Category").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook inserts a new book. Nil fields are stored as NULL.
func (r *Repository) CreateBook(book *entities.Book) error {
	return r.db.Create(book).Error
}

// UpdateBook replaces all form-backed columns of an existing book. Updating
// an id that does not exist affects no rows and is not an error.
func (r *Repository) UpdateBook(book *entities.Book) error {
	return r.db.Model(&entities.Book{}).
		Where("id = ?", book.ID).
		Select(formColumns).
		Updates(book).Error
}

// DeleteBook removes a book by id. Deleting an absent id is a no-op.
func (r *Repository) DeleteBook(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}

// CountBooks returns the total number of books.
func (r *Repository) CountBooks() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}
