package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/handler/http/response"
	"github.com/workpulse/attendance-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	MyDays(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	Recompute(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	resolver          attendance.Resolver
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, resolver attendance.Resolver) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		resolver:          resolver,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ClockOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyDays implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyDays(w http.ResponseWriter, r *http.Request) {
	filter := attendance.MyDaysFilter{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	result, err := h.attendanceService.MyDays(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func dayParams(r *http.Request) (string, string, error) {
	employeeID := chi.URLParam(r, "employeeID")
	dateStr := chi.URLParam(r, "date")

	var errs validator.ValidationErrors
	if !validator.IsValidUUID(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeID",
			Message: "employeeID must be a valid UUID",
		})
	}
	if _, ok := validator.IsValidDate(dateStr); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}
	if len(errs) > 0 {
		return "", "", errs
	}
	return employeeID, dateStr, nil
}

// GetDay implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	employeeID, dateStr, err := dayParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	day, _ := validator.IsValidDate(dateStr)

	result, err := h.resolver.Resolve(r.Context(), employeeID, day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.NewDayResolutionResponse(result))
}

// Recompute implements AttendanceHandler.
func (h *attendanceHandlerImpl) Recompute(w http.ResponseWriter, r *http.Request) {
	employeeID, dateStr, err := dayParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	day, _ := validator.IsValidDate(dateStr)

	result, err := h.attendanceService.Recompute(r.Context(), employeeID, day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.NewDayResolutionResponse(result))
}
