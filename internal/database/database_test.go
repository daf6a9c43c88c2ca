package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yomu/bookshelf/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestNewDatabase_SeedsCategories(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	var categories []entities.Category
	require.NoError(t, db.DB.Order("name ASC").Find(&categories).Error)

	require.Len(t, categories, len(defaultCategories))
	assert.Equal(t, "Biography", categories[0].Name)
	assert.Equal(t, "Technical", categories[len(categories)-1].Name)
}

func TestNewDatabase_SeedingIsIdempotent(t *testing.T) {
	dbPath := "./test_" + t.Name() + ".db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening the same file must not duplicate the seed rows.
	db, err = NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int64
	require.NoError(t, db.DB.Model(&entities.Category{}).Count(&count).Error)
	assert.Equal(t, int64(len(defaultCategories)), count)
}

func TestNewDatabase_MigratesBookSchema(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	title := "Migration Check"
	book := entities.Book{Title: &title}
	require.NoError(t, db.DB.Create(&book).Error)
	assert.NotZero(t, book.ID)
}

func TestDatabase_Close(t *testing.T) {
	dbPath := "./test_" + t.Name() + ".db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	assert.NoError(t, db.Close())

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping())
}
