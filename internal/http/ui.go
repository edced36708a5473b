package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rmaia/biblioteca/internal/config"
	"github.com/rmaia/biblioteca/internal/session"
)

// BookOption is a selector entry: a book id with its display label.
type BookOption struct {
	ID    uint
	Label string
}

// UIController renders the single-page form UI. Every request re-queries the
// store so the page always reflects current committed state.
type UIController struct {
	books      BookStore
	authors    AuthorStore
	categories CategoryStore
	reports    ReportStore
	sessions   *session.Manager
}

func NewUIController(books BookStore, authors AuthorStore, categories CategoryStore, reports ReportStore, sessions *session.Manager) *UIController {
	return &UIController{
		books:      books,
		authors:    authors,
		categories: categories,
		reports:    reports,
		sessions:   sessions,
	}
}

// filterYear reads the min_year query parameter, falling back to the default
// and clamping to the supported range.
func filterYear(c *gin.Context) int {
	year, err := strconv.Atoi(c.DefaultQuery("min_year", strconv.Itoa(config.DefaultFilterYear)))
	if err != nil {
		return config.DefaultFilterYear
	}
	if year < config.MinFilterYear {
		return config.MinFilterYear
	}
	if year > config.MaxFilterYear {
		return config.MaxFilterYear
	}
	return year
}

// Page renders the reports and all form flows.
func (controller *UIController) Page(c *gin.Context) {
	inventory, err := controller.reports.Inventory()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading inventory: %s", err.Error())
		return
	}

	year := filterYear(c)
	filtered, err := controller.reports.BooksPublishedAfter(year)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading year filter: %s", err.Error())
		return
	}

	summary, err := controller.reports.StockSummary()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading summary: %s", err.Error())
		return
	}

	categoryCounts, err := controller.reports.BooksPerCategory()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading category counts: %s", err.Error())
		return
	}

	authors, err := controller.authors.GetAll()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading authors: %s", err.Error())
		return
	}

	categories, err := controller.categories.GetAll()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading categories: %s", err.Error())
		return
	}

	allBooks, err := controller.books.GetAll()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books: %s", err.Error())
		return
	}
	bookOptions := make([]BookOption, 0, len(allBooks))
	for _, b := range allBooks {
		bookOptions = append(bookOptions, BookOption{ID: b.ID, Label: bookLabel(b)})
	}

	available, err := controller.books.GetAvailable()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading available books: %s", err.Error())
		return
	}
	availableOptions := make([]BookOption, 0, len(available))
	for _, b := range available {
		availableOptions = append(availableOptions, BookOption{ID: b.ID, Label: availableBookLabel(b)})
	}

	stagedAuthor, hasStagedAuthor := controller.sessions.StagedAuthor(c.Request)
	stagedBook, hasStagedBook := controller.sessions.StagedBook(c.Request)
	flashInfo, flashWarning := controller.sessions.PopFlashes(c.Request)

	c.HTML(http.StatusOK, "index", gin.H{
		"Inventory":       inventory,
		"FilterYear":      year,
		"MinFilterYear":   config.MinFilterYear,
		"MaxFilterYear":   config.MaxFilterYear,
		"FilteredBooks":   filtered,
		"Summary":         summary,
		"CategoryCounts":  categoryCounts,
		"Authors":         authors,
		"Categories":      categories,
		"BookOptions":     bookOptions,
		"AvailableBooks":  availableOptions,
		"StagedAuthor":    stagedAuthor,
		"HasStagedAuthor": hasStagedAuthor,
		"StagedBook":      stagedBook,
		"HasStagedBook":   hasStagedBook,
		"FlashInfo":       flashInfo,
		"FlashWarning":    flashWarning,
		"Error":           c.Query("error"),
		"CSRFField":       CSRFTokenField(c),
	})
}
