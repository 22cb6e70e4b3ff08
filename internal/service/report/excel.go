package report

import (
	"context"
	"fmt"

	"github.com/workpulse/attendance-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance"

// ExportXLSX implements report.ReportService.
func (s *ReportServiceImpl) ExportXLSX(ctx context.Context, filter report.ReportFilter) ([]byte, error) {
	data, err := s.Aggregate(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	header := []interface{}{"Employee"}
	if len(data.Employees) > 0 {
		for _, cell := range data.Employees[0].Days {
			header = append(header, cell.Date)
		}
	}
	header = append(header, "P", "A", "L", "HD", "WO", "H", "Working Days", "Present %")
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range data.Employees {
		values := []interface{}{row.FullName}
		for _, cell := range row.Days {
			values = append(values, cell.Code)
		}
		values = append(values,
			row.Present, row.Absent, row.Leave, row.HalfDay, row.WeeklyOff, row.Holiday,
			row.WorkingDays, row.PresentPercent,
		)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write employee row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
