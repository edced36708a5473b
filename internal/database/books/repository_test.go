package books

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
	dbPath := "./test_books_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Category{},
		&entities.Book{},
		&entities.Loan{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func createFixtures(t *testing.T, db *gorm.DB) (entities.Author, entities.Category) {
	t.Helper()
	author := entities.Author{Name: "Clarice Lispector"}
	require.NoError(t, db.Create(&author).Error)
	category := entities.Category{Name: "Romance"}
	require.NoError(t, db.Create(&category).Error)
	return author, category
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author, category := createFixtures(t, db)

	book := &entities.Book{
		Title:             "A Hora da Estrela",
		AuthorID:          author.ID,
		CategoryID:        category.ID,
		Year:              1977,
		AvailableQuantity: 3,
	}
	require.NoError(t, repo.Create(book))
	assert.NotZero(t, book.ID)

	got, err := repo.GetByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "A Hora da Estrela", got.Title)
	assert.Equal(t, "Clarice Lispector", got.Author.Name)
	assert.Equal(t, "Romance", got.Category.Name)
}

func TestRepository_GetAvailable_ExcludesOutOfStock(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author, category := createFixtures(t, db)

	inStock := &entities.Book{Title: "Em estoque", AuthorID: author.ID, CategoryID: category.ID, Year: 1950, AvailableQuantity: 2}
	outOfStock := &entities.Book{Title: "Esgotado", AuthorID: author.ID, CategoryID: category.ID, Year: 1950, AvailableQuantity: 0}
	require.NoError(t, repo.Create(inStock))
	require.NoError(t, repo.Create(outOfStock))

	available, err := repo.GetAvailable()
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, inStock.ID, available[0].ID)
}

func TestRepository_Update_WritesAllMutableColumns(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author, category := createFixtures(t, db)
	other := entities.Author{Name: "Jorge Amado"}
	require.NoError(t, db.Create(&other).Error)

	book := &entities.Book{Title: "Old", AuthorID: author.ID, CategoryID: category.ID, Year: 1937, AvailableQuantity: 7}
	require.NoError(t, repo.Create(book))

	err := repo.Update(book.ID, BookUpdate{
		Title:             "Capitães da Areia",
		AuthorID:          other.ID,
		CategoryID:        category.ID,
		AvailableQuantity: 6,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Capitães da Areia", got.Title)
	assert.Equal(t, other.ID, got.AuthorID)
	assert.Equal(t, 6, got.AvailableQuantity)
	assert.Equal(t, 1937, got.Year) // year is not part of the edit flow
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author, category := createFixtures(t, db)

	err := repo.Update(999, BookUpdate{Title: "x", AuthorID: author.ID, CategoryID: category.ID})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author, category := createFixtures(t, db)
	book := &entities.Book{Title: "To Delete", AuthorID: author.ID, CategoryID: category.ID, Year: 1900, AvailableQuantity: 1}
	require.NoError(t, repo.Create(book))

	require.NoError(t, repo.Delete(book.ID))

	_, err := repo.GetByID(book.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Delete_LeavesLoansDangling(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author, category := createFixtures(t, db)
	book := &entities.Book{Title: "Emprestado", AuthorID: author.ID, CategoryID: category.ID, Year: 1900, AvailableQuantity: 1}
	require.NoError(t, repo.Create(book))

	loan := entities.Loan{BookID: book.ID}
	require.NoError(t, db.Create(&loan).Error)

	require.NoError(t, repo.Delete(book.ID))

	// The loan row survives with its original book_id.
	var got entities.Loan
	require.NoError(t, db.First(&got, loan.ID).Error)
	assert.Equal(t, book.ID, got.BookID)
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Delete(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
