// Package export writes the fetched product list to an Excel workbook.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ebubekirbastama/trendyol-color-variants-viewer/internal/trendyol"
)

// DefaultFilename is where the workbook is written, next to the executable.
const DefaultFilename = "urunler.xlsx"

const sheetName = "Products"

// Headers is the column order of the exported workbook, one column per
// product attribute.
var Headers = []string{
	"ProductGroupID", "ProductID", "Barcode", "Product Name",
	"Price", "Price Text", "Currency", "Rating", "Review Count",
	"URL", "Image", "Big Image", "Labels",
}

// WriteXLSX writes one header row plus one row per record to path and
// returns how many product rows were written. An empty product list is a
// no-op: no file is written and no error is returned.
func WriteXLSX(path string, products []trendyol.Product) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return 0, fmt.Errorf("prepare sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &Headers); err != nil {
		return 0, fmt.Errorf("write header row: %w", err)
	}

	for i, p := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, fmt.Errorf("address row %d: %w", i+2, err)
		}
		row := []interface{}{
			p.GroupID, p.ProductID, p.Barcode, p.Name,
			p.Price, p.PriceText, p.Currency, p.Rating, p.ReviewCount,
			p.URL, p.Image, p.BigImage, strings.Join(p.Labels, ", "),
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return 0, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return 0, fmt.Errorf("save workbook %s: %w", path, err)
	}
	return len(products), nil
}
