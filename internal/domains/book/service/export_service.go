package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"safaia-backend/internal/domains/book/model"

	"github.com/xuri/excelize/v2"
)

// utf8BOM makes Excel open exported CSV files with the right encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// exportHeaders is the fixed column set of CSV and Excel exports. The
// site's back-office is Polish, so the headers are too.
var exportHeaders = []string{
	"Tytuł",
	"Slug",
	"Autor",
	"Kategoria",
	"Tagi",
	"Opis",
	"Cena",
	"ISBN",
	"Strony",
	"Rok",
	"Wymiary",
	"Oprawa",
	"Język",
	"Okładka",
	"Link zakupu",
	"Wyróżnione",
	"Nowość",
	"Polecane",
}

// ExportJSON serializes the full collection as indented JSON.
func (s *BookService) ExportJSON(ctx context.Context) ([]byte, error) {
	books, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(books, "", "  ")
}

// ExportCSV serializes the full collection as UTF-8 CSV with a BOM,
// one row per book.
func (s *BookService) ExportCSV(ctx context.Context) ([]byte, error) {
	books, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, b := range books {
		if err := w.Write(exportRow(b)); err != nil {
			return nil, fmt.Errorf("write csv row for %q: %w", b.Slug, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportExcel builds an XLSX workbook with the same column set as the
// CSV export.
func (s *BookService) ExportExcel(ctx context.Context) (*excelize.File, error) {
	books, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Katalog"
	f.SetSheetName("Sheet1", sheetName)

	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)
	}

	for i, b := range books {
		row := exportRow(b)
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, i+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return f, nil
}

func exportRow(b model.Book) []string {
	return []string{
		b.Title,
		b.Slug,
		b.Author.Name,
		b.Category,
		strings.Join(b.Tags, "; "),
		b.Description,
		b.Price.String(),
		b.ISBN,
		strconv.Itoa(b.Pages),
		strconv.Itoa(b.Year),
		b.Dimensions,
		b.Binding,
		b.Language,
		b.CoverImage,
		b.PurchaseLink,
		yesNo(b.Featured),
		yesNo(b.NewRelease),
		yesNo(b.Recommended),
	}
}

func yesNo(v bool) string {
	if v {
		return "Tak"
	}
	return "Nie"
}
