package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"billingdesk/internal/domain"
)

// WriteWorkbook renders the tenant views as an xlsx workbook, one sheet per
// tenant, with the same rows as the TSV export.
func WriteWorkbook(views []domain.TenantVendorView) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	for i := range views {
		view := &views[i]
		sheet := sheetName(view, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("renaming sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("creating sheet %s: %w", sheet, err)
			}
		}

		if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Customer", view.DisplayName}); err != nil {
			return nil, err
		}
		header := make([]interface{}, len(columns))
		for ci, c := range columns {
			header[ci] = c
		}
		if err := f.SetSheetRow(sheet, "A2", &header); err != nil {
			return nil, err
		}
		if err := f.SetRowStyle(sheet, 2, 2, headerStyle); err != nil {
			return nil, err
		}

		rowNum := 3
		for vi := range view.Vendors {
			vendor := &view.Vendors[vi]
			if err := setRow(f, sheet, rowNum, vendorRow(vendor)); err != nil {
				return nil, err
			}
			rowNum++
			for pi := range vendor.Products {
				if err := setRow(f, sheet, rowNum, productRow(&vendor.Products[pi])); err != nil {
					return nil, err
				}
				rowNum++
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, rowNum int, row []string) error {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

// sheetName keeps sheet titles unique and within the 31-char xlsx limit.
func sheetName(view *domain.TenantVendorView, index int) string {
	name := SanitizeFilename(view.DisplayName)
	if name == "" {
		name = view.TenantID
	}
	if len(name) > 27 {
		name = name[:27]
	}
	return fmt.Sprintf("%s_%d", name, index+1)
}
