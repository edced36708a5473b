package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rmaia/biblioteca/internal/exporters"
)

// ReportsController serves the report data as JSON and CSV downloads.
type ReportsController struct {
	books   BookStore
	reports ReportStore
}

func NewReportsController(books BookStore, reports ReportStore) *ReportsController {
	return &ReportsController{books: books, reports: reports}
}

// GetAllBooks returns every book with author and category as JSON.
func (controller *ReportsController) GetAllBooks(c *gin.Context) {
	books, err := controller.books.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// GetSummary returns the stock and loan summary as JSON.
func (controller *ReportsController) GetSummary(c *gin.Context) {
	summary, err := controller.reports.StockSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetCategoryCounts returns the books-per-category report as JSON.
func (controller *ReportsController) GetCategoryCounts(c *gin.Context) {
	counts, err := controller.reports.BooksPerCategory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": counts})
}

// DownloadInventoryCSV sends the full inventory listing as a CSV attachment.
func (controller *ReportsController) DownloadInventoryCSV(c *gin.Context) {
	rows, err := controller.reports.Inventory()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading inventory: %s", err.Error())
		return
	}

	out, err := exporters.Inventory(rows)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error writing CSV: %s", err.Error())
		return
	}

	sendCSV(c, out)
}

// DownloadCategoriesCSV sends the books-per-category report as a CSV
// attachment.
func (controller *ReportsController) DownloadCategoriesCSV(c *gin.Context) {
	rows, err := controller.reports.BooksPerCategory()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading category counts: %s", err.Error())
		return
	}

	out, err := exporters.Categories(rows)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error writing CSV: %s", err.Error())
		return
	}

	sendCSV(c, out)
}

func sendCSV(c *gin.Context, out exporters.ReportCSV) {
	filename := fmt.Sprintf("%s-%s.csv", out.Name, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out.Data)
}
