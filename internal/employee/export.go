package employee

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Employees"

var exportHeaders = []string{"ID", "Name", "Email", "Role", "Department", "State"}

// WriteWorkbook renders rows as a single-sheet XLSX workbook.
func WriteWorkbook(w io.Writer, rows []ListRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return err
		}
		_ = f.SetCellStyle(exportSheet, cell, cell, headerStyle)
	}

	for i, r := range rows {
		values := []string{r.ID, r.EmployeeName, r.Email, deref(r.RoleName), deref(r.DepartmentName), deref(r.StateName)}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return err
			}
		}
	}

	_ = f.SetColWidth(exportSheet, "A", "A", 38)
	_ = f.SetColWidth(exportSheet, "B", "F", 24)

	_, err = f.WriteTo(w)
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
