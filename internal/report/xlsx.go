package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/paperscout/pkg/types"
)

// xlsxSheet is the worksheet all rows land on. Excelize creates it by
// default in new workbooks.
const xlsxSheet = "Sheet1"

var xlsxColumns = [...]string{"A", "B", "C", "D", "E", "F"}

// WriteXLSX writes records to an Excel workbook at path, with the same
// columns as the CSV export.
func WriteXLSX(records []types.Record, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for col, name := range Header() {
		cell := fmt.Sprintf("%s1", xlsxColumns[col])
		if err := f.SetCellValue(xlsxSheet, cell, name); err != nil {
			return fmt.Errorf("writing XLSX header: %w", err)
		}
	}

	for i, r := range records {
		for col, value := range Row(r) {
			cell := fmt.Sprintf("%s%d", xlsxColumns[col], i+2)
			if err := f.SetCellValue(xlsxSheet, cell, value); err != nil {
				return fmt.Errorf("writing XLSX row for %s: %w", r.PubmedID, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
