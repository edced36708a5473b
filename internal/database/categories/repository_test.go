package categories

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rmaia/biblioteca/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_categories_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Category{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func TestRepository_GetAll(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.Create(&entities.Category{Name: "Romance"}).Error)
	require.NoError(t, db.Create(&entities.Category{Name: "Poesia"}).Error)

	categories, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Romance", categories[0].Name)
	assert.Equal(t, "Poesia", categories[1].Name)
}

func TestRepository_GetByName(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	created := entities.Category{Name: "Infantil"}
	require.NoError(t, db.Create(&created).Error)

	category, err := repo.GetByName("Infantil")
	require.NoError(t, err)
	assert.Equal(t, created.ID, category.ID)
}

func TestRepository_GetByName_DuplicateResolvesToLowestID(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	first := entities.Category{Name: "Conto"}
	require.NoError(t, db.Create(&first).Error)
	second := entities.Category{Name: "Conto"}
	require.NoError(t, db.Create(&second).Error)

	category, err := repo.GetByName("Conto")
	require.NoError(t, err)
	assert.Equal(t, first.ID, category.ID)
}

func TestRepository_GetByName_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetByName("Unknown")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
