package reports

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rmaia/biblioteca/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_reports_" + t.Name() + ".db"

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

type fixture struct {
	romance entities.Category
	poesia  entities.Category
	machado entities.Author
	clarice entities.Author
}

func createFixtures(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		romance: entities.Category{Name: "Romance"},
		poesia:  entities.Category{Name: "Poesia"},
		machado: entities.Author{Name: "Machado de Assis"},
		clarice: entities.Author{Name: "Clarice Lispector"},
	}
	require.NoError(t, db.Create(&f.romance).Error)
	require.NoError(t, db.Create(&f.poesia).Error)
	require.NoError(t, db.Create(&f.machado).Error)
	require.NoError(t, db.Create(&f.clarice).Error)
	return f
}

func createBook(t *testing.T, db *gorm.DB, title string, author entities.Author, category entities.Category, year, quantity int) entities.Book {
	t.Helper()
	book := entities.Book{
		Title:             title,
		AuthorID:          author.ID,
		CategoryID:        category.ID,
		Year:              year,
		AvailableQuantity: quantity,
	}
	require.NoError(t, db.Create(&book).Error)
	return book
}

func TestRepository_Inventory_OrderedByTitle(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	f := createFixtures(t, db)
	createBook(t, db, "Dom Casmurro", f.machado, f.romance, 1899, 5)
	createBook(t, db, "A Hora da Estrela", f.clarice, f.romance, 1977, 3)

	rows, err := repo.Inventory()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A Hora da Estrela", rows[0].Title)
	assert.Equal(t, "Clarice Lispector", rows[0].Author)
	assert.Equal(t, "Dom Casmurro", rows[1].Title)
	assert.Equal(t, "Romance", rows[1].Category)
}

func TestRepository_BooksPublishedAfter(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	f := createFixtures(t, db)
	createBook(t, db, "Dom Casmurro", f.machado, f.romance, 1899, 5)
	createBook(t, db, "A Hora da Estrela", f.clarice, f.romance, 1977, 3)

	books, err := repo.BooksPublishedAfter(1950)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "A Hora da Estrela", books[0].Title)
}

func TestRepository_BooksPublishedAfter_ThresholdIsStrict(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	f := createFixtures(t, db)
	createBook(t, db, "No limiar", f.machado, f.romance, 1950, 1)

	books, err := repo.BooksPublishedAfter(1950)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestRepository_StockSummary(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	f := createFixtures(t, db)
	b1 := createBook(t, db, "Dom Casmurro", f.machado, f.romance, 1899, 5)
	createBook(t, db, "A Hora da Estrela", f.clarice, f.romance, 1977, 3)

	loanDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&entities.Loan{BookID: b1.ID, LoanDate: loanDate, Returned: false}).Error)
	require.NoError(t, db.Create(&entities.Loan{BookID: b1.ID, LoanDate: loanDate, Returned: true}).Error)

	summary, err := repo.StockSummary()
	require.NoError(t, err)
	assert.Equal(t, 8, summary.TotalStock)
	assert.Equal(t, 2, summary.TotalLoans)
	assert.Equal(t, 1, summary.ReturnedLoans)
}

func TestRepository_StockSummary_EmptyTablesYieldZeros(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	summary, err := repo.StockSummary()
	require.NoError(t, err)
	assert.Zero(t, summary.TotalStock)
	assert.Zero(t, summary.TotalLoans)
	assert.Zero(t, summary.ReturnedLoans)
}

func TestRepository_BooksPerCategory_MostPopulatedFirst(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	f := createFixtures(t, db)
	createBook(t, db, "Dom Casmurro", f.machado, f.romance, 1899, 5)
	createBook(t, db, "A Hora da Estrela", f.clarice, f.romance, 1977, 3)
	createBook(t, db, "Sentimento do Mundo", f.machado, f.poesia, 1940, 6)

	rows, err := repo.BooksPerCategory()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Romance", rows[0].Category)
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, "Poesia", rows[1].Category)
	assert.Equal(t, 1, rows[1].Count)
}
