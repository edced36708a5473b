// Package exporters renders report data into downloadable files.
package exporters

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rmaia/biblioteca/internal/database/reports"
)

// ReportCSV is a rendered CSV attachment: the file name stem and the payload.
type ReportCSV struct {
	Name string
	Data []byte
}

// Inventory renders the full inventory listing as CSV, one row per book.
func Inventory(rows []reports.InventoryRow) (ReportCSV, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)
	_ = writer.Write([]string{"title", "author", "category"})
	for _, row := range rows {
		_ = writer.Write([]string{row.Title, row.Author, row.Category})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return ReportCSV{}, err
	}
	return ReportCSV{Name: "inventory", Data: buf.Bytes()}, nil
}

// Categories renders the books-per-category report as CSV.
func Categories(rows []reports.CategoryCount) (ReportCSV, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)
	_ = writer.Write([]string{"category", "count"})
	for _, row := range rows {
		_ = writer.Write([]string{row.Category, strconv.Itoa(row.Count)})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return ReportCSV{}, err
	}
	return ReportCSV{Name: "categories", Data: buf.Bytes()}, nil
}
