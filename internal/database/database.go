package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rmaia/biblioteca/internal/entities"
)

var defaultAuthors = []string{
	"Machado de Assis",
	"Clarice Lispector",
	"Jorge Amado",
	"Cecília Meireles",
	"Carlos Drummond de Andrade",
	"Graciliano Ramos",
	"Monteiro Lobato",
	"Guimarães Rosa",
	"Rachel de Queiroz",
	"Lygia Fagundes Telles",
}

var defaultCategories = []string{
	"Romance",
	"Ficção Científica",
	"Fantasia",
	"Poesia",
	"Conto",
	"Infantil",
	"Suspense",
	"Crônica",
	"Biografia",
	"Literatura Brasileira",
}

type seedBook struct {
	Title    string
	Author   string
	Category string
	Year     int
	Quantity int
}

var defaultBooks = []seedBook{
	{"Dom Casmurro", "Machado de Assis", "Romance", 1899, 5},
	{"A Hora da Estrela", "Clarice Lispector", "Romance", 1977, 3},
	{"Capitães da Areia", "Jorge Amado", "Romance", 1937, 7},
	{"Ou Isto ou Aquilo", "Cecília Meireles", "Poesia", 1964, 4},
	{"Sentimento do Mundo", "Carlos Drummond de Andrade", "Poesia", 1940, 6},
	{"Vidas Secas", "Graciliano Ramos", "Romance", 1938, 2},
	{"Reinações de Narizinho", "Monteiro Lobato", "Infantil", 1931, 10},
	{"Grande Sertão: Veredas", "Guimarães Rosa", "Romance", 1956, 3},
	{"Memórias Póstumas de Brás Cubas", "Machado de Assis", "Romance", 1881, 5},
	{"O Quinze", "Rachel de Queiroz", "Romance", 1930, 4},
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens (or creates) the SQLite file, migrates the schema and
// seeds the reference data. Seeding only runs against empty tables, so a
// second startup is a no-op.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Category{},
		&entities.Book{},
		&entities.Loan{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seed(); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seed() error {
	if err := d.seedAuthors(); err != nil {
		return err
	}
	if err := d.seedCategories(); err != nil {
		return err
	}
	return d.seedBooks()
}

func (d *Database) seedAuthors() error {
	var count int64
	if err := d.DB.Model(&entities.Author{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	authors := make([]entities.Author, 0, len(defaultAuthors))
	for _, name := range defaultAuthors {
		authors = append(authors, entities.Author{Name: name})
	}
	if err := d.DB.Create(&authors).Error; err != nil {
		return fmt.Errorf("failed to seed authors: %w", err)
	}
	log.Printf("Seeded %d authors", len(authors))
	return nil
}

func (d *Database) seedCategories() error {
	var count int64
	if err := d.DB.Model(&entities.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := make([]entities.Category, 0, len(defaultCategories))
	for _, name := range defaultCategories {
		categories = append(categories, entities.Category{Name: name})
	}
	if err := d.DB.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	log.Printf("Seeded %d categories", len(categories))
	return nil
}

func (d *Database) seedBooks() error {
	var count int64
	if err := d.DB.Model(&entities.Book{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	authorIDs, err := d.authorIDsByName()
	if err != nil {
		return err
	}
	categoryIDs, err := d.categoryIDsByName()
	if err != nil {
		return err
	}

	books := make([]entities.Book, 0, len(defaultBooks))
	for _, b := range defaultBooks {
		authorID, ok := authorIDs[b.Author]
		if !ok {
			return fmt.Errorf("seed book %q references unknown author %q", b.Title, b.Author)
		}
		categoryID, ok := categoryIDs[b.Category]
		if !ok {
			return fmt.Errorf("seed book %q references unknown category %q", b.Title, b.Category)
		}
		books = append(books, entities.Book{
			Title:             b.Title,
			AuthorID:          authorID,
			CategoryID:        categoryID,
			Year:              b.Year,
			AvailableQuantity: b.Quantity,
		})
	}
	if err := d.DB.Create(&books).Error; err != nil {
		return fmt.Errorf("failed to seed books: %w", err)
	}
	log.Printf("Seeded %d books", len(books))
	return nil
}

// authorIDsByName maps author names to ids. Rows are scanned in descending
// id order so the lowest id wins when names are duplicated.
func (d *Database) authorIDsByName() (map[string]uint, error) {
	var authors []entities.Author
	if err := d.DB.Order("id DESC").Find(&authors).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(authors))
	for _, a := range authors {
		ids[a.Name] = a.ID
	}
	return ids, nil
}

func (d *Database) categoryIDsByName() (map[string]uint, error) {
	var categories []entities.Category
	if err := d.DB.Order("id DESC").Find(&categories).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(categories))
	for _, c := range categories {
		ids[c.Name] = c.ID
	}
	return ids, nil
}
