// Package sheet reads and writes the Excel workbooks the console exchanges
// with users: cafe and employee exports and the bulk employee import.
package sheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cafeadmin/model"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

var (
	cafeHeader     = []any{"Name", "Description", "Number Of Employees", "Location"}
	employeeHeader = []any{"Employee ID", "Name", "Email Address", "Phone Number", "Gender", "Days Worked", "Café Name", "Start Date"}

	// ImportHeader is the first row expected in an import workbook.
	ImportHeader = []string{"Employee ID", "Name", "Email Address", "Phone Number", "Gender", "Date Of Joining"}
)

func WriteCafes(w io.Writer, cafes []model.Cafe) error {
	rows := make([][]any, 0, len(cafes))
	for _, c := range cafes {
		rows = append(rows, []any{c.Name, c.Description, c.EmployeeCount, c.Location})
	}
	return write(w, cafeHeader, rows)
}

func WriteEmployees(w io.Writer, employees []model.Employee) error {
	rows := make([][]any, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []any{
			e.EmployeeID, e.Name, e.EmailAddress, e.PhoneNumber,
			e.Gender.String(), e.NoOfDaysWorked, e.CafeName, model.DateOnly(e.StartDate),
		})
	}
	return write(w, employeeHeader, rows)
}

func write(w io.Writer, header []any, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Row is one data row of an import workbook with its 1-based sheet row number.
type Row struct {
	Line  int
	Draft model.EmployeeDraft
}

// ReadEmployees parses an import workbook. Blank rows are skipped; short rows
// are padded so validation reports what is missing.
func ReadEmployees(r io.Reader, cafeID string) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	// Raw values keep typed date cells as serial numbers instead of
	// whatever number format the author picked.
	lines, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheetName, err)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("workbook must have a header and at least one row of data")
	}

	var out []Row
	for i, line := range lines[1:] {
		cells := make([]string, len(ImportHeader))
		blank := true
		for j := range cells {
			if j < len(line) {
				cells[j] = strings.TrimSpace(line[j])
			}
			if cells[j] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		out = append(out, Row{
			Line: i + 2,
			Draft: model.EmployeeDraft{
				EmployeeID:    cells[0],
				Name:          cells[1],
				EmailAddress:  cells[2],
				PhoneNumber:   cells[3],
				Gender:        cells[4],
				CafeID:        cafeID,
				DateOfJoining: joinDate(cells[5]),
			},
		})
	}
	return out, nil
}

// joinDate turns an Excel date serial into the date picker format. Text is
// returned as is for validation to judge.
func joinDate(cell string) string {
	serial, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return cell
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return cell
	}
	return t.Format("2006-01-02")
}
