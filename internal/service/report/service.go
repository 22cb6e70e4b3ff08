package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	summaryRepo  attendance.DaySummaryRepository
	employeeRepo employee.EmployeeRepository
	resolver     attendance.Resolver

	now func() time.Time
}

func NewReportService(
	summaryRepo attendance.DaySummaryRepository,
	employeeRepo employee.EmployeeRepository,
	resolver attendance.Resolver,
) report.ReportService {
	return &ReportServiceImpl{
		summaryRepo:  summaryRepo,
		employeeRepo: employeeRepo,
		resolver:     resolver,
		now:          time.Now,
	}
}

// Aggregate implements report.ReportService.
func (s *ReportServiceImpl) Aggregate(ctx context.Context, filter report.ReportFilter) (report.ReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	if filter.CompanyID == "" {
		_, claims, err := jwtauth.FromContext(ctx)
		if err != nil {
			return report.ReportResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
		}
		companyID, ok := claims["company_id"].(string)
		if !ok || companyID == "" {
			return report.ReportResponse{}, fmt.Errorf("company_id claim is missing or invalid")
		}
		filter.CompanyID = companyID
	}

	from, _ := time.Parse("2006-01-02", filter.From)
	to, _ := time.Parse("2006-01-02", filter.To)
	from = attendance.DayKey(from)
	to = attendance.DayKey(to)

	// The future has no attendance; clamp the range to today.
	today := attendance.DayKey(s.now().UTC())
	if to.After(today) {
		to = today
	}
	if to.Before(from) {
		return report.ReportResponse{
			From: filter.From, To: filter.To,
			Employees: []report.EmployeeReport{},
		}, nil
	}

	employees, err := s.employeeRepo.ListActiveByCompanyID(ctx, filter.CompanyID)
	if err != nil {
		return report.ReportResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	totalDays := int(to.Sub(from).Hours()/24) + 1

	resp := report.ReportResponse{
		From:      from.Format("2006-01-02"),
		To:        to.Format("2006-01-02"),
		TotalDays: totalDays,
		Employees: make([]report.EmployeeReport, 0, len(employees)),
	}

	for _, emp := range employees {
		row, err := s.employeeRow(ctx, emp, from, to)
		if err != nil {
			return report.ReportResponse{}, err
		}

		resp.Totals.Present += row.Present
		resp.Totals.Absent += row.Absent
		resp.Totals.Leave += row.Leave
		resp.Totals.HalfDay += row.HalfDay
		resp.Totals.WeeklyOff += row.WeeklyOff
		resp.Totals.Holiday += row.Holiday

		resp.Employees = append(resp.Employees, row)
	}

	return resp, nil
}

func (s *ReportServiceImpl) employeeRow(ctx context.Context, emp employee.Employee, from, to time.Time) (report.EmployeeReport, error) {
	row := report.EmployeeReport{
		EmployeeID: emp.ID,
		FullName:   emp.FullName,
	}

	summaries, err := s.summaryRepo.ListByEmployeeAndRange(ctx, emp.ID, from, to)
	if err != nil {
		return report.EmployeeReport{}, fmt.Errorf("failed to list day summaries: %w", err)
	}
	byDay := make(map[string]attendance.DaySummary, len(summaries))
	for _, sum := range summaries {
		byDay[sum.Date.Format("2006-01-02")] = sum
	}

	totalDays := 0
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		totalDays++
		key := day.Format("2006-01-02")

		var code attendance.StatusCode
		var minutes int
		if sum, ok := byDay[key]; ok {
			code = sum.Code
			minutes = sum.WorkMinutes
		} else {
			// Day the sweep has not reached yet; derive it on the fly.
			res, rerr := s.resolver.Resolve(ctx, emp.ID, day)
			if rerr != nil {
				return report.EmployeeReport{}, fmt.Errorf("failed to resolve day %s: %w", key, rerr)
			}
			code = res.Code
			minutes = res.WorkMinutes()
		}

		switch code {
		case attendance.StatusPresent:
			row.Present++
		case attendance.StatusAbsent:
			row.Absent++
		case attendance.StatusLeave:
			row.Leave++
		case attendance.StatusHalfDay:
			row.HalfDay++
		case attendance.StatusWeeklyOff:
			row.WeeklyOff++
		case attendance.StatusHoliday:
			row.Holiday++
		}
		row.WorkMinutes += minutes
		row.Days = append(row.Days, report.DayCell{Date: key, Code: string(code)})
	}

	row.WorkingDays = totalDays - row.WeeklyOff - row.Holiday
	if row.WorkingDays > 0 {
		row.PresentPercent = math.Round(float64(row.Present)/float64(row.WorkingDays)*1000) / 10
	}

	return row, nil
}
