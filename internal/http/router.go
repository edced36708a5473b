package http

import (
	"html/template"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CSRF must run before the session middleware so that the session
	// context is layered on top of CSRF's request replacement.
	if len(cfg.CSRFSecret) > 0 {
		router.Use(CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}
	if cfg.Sessions != nil {
		router.Use(cfg.Sessions.LoadSave())
	}

	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	router.Static("/static", cfg.StaticPath)

	health := NewHealthController(cfg.Database, cfg.Version)
	uiController := NewUIController(cfg.Books, cfg.Authors, cfg.Categories, cfg.Reports, cfg.Sessions)
	booksController := NewBooksController(cfg.Books, cfg.Authors, cfg.Categories, cfg.Sessions)
	loansController := NewLoansController(cfg.Loans, cfg.Sessions)
	authorsController := NewAuthorsController(cfg.Authors, cfg.Sessions)
	reportsController := NewReportsController(cfg.Books, cfg.Reports)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Page UI
	router.GET("/", uiController.Page)

	// Form flows
	router.POST("/books", booksController.Insert)
	router.POST("/books/load", booksController.Load)
	router.POST("/books/save", booksController.Save)
	router.POST("/books/delete", booksController.Delete)
	router.POST("/loans", loansController.Register)
	router.POST("/authors/load", authorsController.Load)
	router.POST("/authors/save", authorsController.Save)

	// Report downloads
	router.GET("/reports/inventory.csv", reportsController.DownloadInventoryCSV)
	router.GET("/reports/categories.csv", reportsController.DownloadCategoriesCSV)

	// JSON API
	router.GET("/api/books", reportsController.GetAllBooks)
	router.GET("/api/reports/summary", reportsController.GetSummary)
	router.GET("/api/reports/categories", reportsController.GetCategoryCounts)

	return router
}
