package report

import "context"

// ReportService aggregates resolved days into per-employee and company
// rollups. Reads only; nothing a report does changes attendance state.
type ReportService interface {
	Aggregate(ctx context.Context, filter ReportFilter) (ReportResponse, error)

	// ExportXLSX renders the Aggregate output as a spreadsheet: one row per
	// employee, one column per day, counters and percentage at the end.
	ExportXLSX(ctx context.Context, filter ReportFilter) ([]byte, error)
}
