package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iws-manager/iws-backend-go/internal/domain/absence"
	"github.com/iws-manager/iws-backend-go/internal/handler/http/response"
	"github.com/iws-manager/iws-backend-go/internal/pkg/validator"
	absenceService "github.com/iws-manager/iws-backend-go/internal/service/absence"
)

type AbsenceHandler interface {
	CreateAbsence(w http.ResponseWriter, r *http.Request)
	CreateBulkAbsences(w http.ResponseWriter, r *http.Request)
	GetAbsence(w http.ResponseWriter, r *http.Request)
	UpdateAbsence(w http.ResponseWriter, r *http.Request)
	DeleteAbsence(w http.ResponseWriter, r *http.Request)
	ListAbsences(w http.ResponseWriter, r *http.Request)
	CountAbsencesByType(w http.ResponseWriter, r *http.Request)
	ListAbsenceTypes(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService *absenceService.AbsenceService
}

func NewAbsenceHandler(service *absenceService.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: service}
}

// CreateAbsence implements AbsenceHandler.
func (h *AbsenceHandlerImpl) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateAbsenceDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAbsence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	day, err := h.absenceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence day created successfully", toAbsenceDayResponse(day))
}

// CreateBulkAbsences implements AbsenceHandler.
func (h *AbsenceHandlerImpl) CreateBulkAbsences(w http.ResponseWriter, r *http.Request) {
	var reqs []absence.CreateAbsenceDayRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		slog.Error("CreateBulkAbsences decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	days, err := h.absenceService.CreateBulk(r.Context(), reqs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]absenceDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, toAbsenceDayResponse(d))
	}
	response.Created(w, "Absence days created successfully", out)
}

// GetAbsence implements AbsenceHandler.
func (h *AbsenceHandlerImpl) GetAbsence(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	day, err := h.absenceService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toAbsenceDayResponse(day))
}

// UpdateAbsence implements AbsenceHandler.
func (h *AbsenceHandlerImpl) UpdateAbsence(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req absence.UpdateAbsenceDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAbsence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	day, err := h.absenceService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence day updated successfully", toAbsenceDayResponse(day))
}

// DeleteAbsence implements AbsenceHandler.
func (h *AbsenceHandlerImpl) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.absenceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence day deleted successfully", nil)
}

// ListAbsences implements AbsenceHandler.
func (h *AbsenceHandlerImpl) ListAbsences(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	employeeID, ok := validator.ParseID(query.Get("employee_id"))
	if !ok {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	filter := absence.Filter{EmployeeID: employeeID}
	if v := query.Get("start"); v != "" {
		filter.StartDate = &v
	}
	if v := query.Get("end"); v != "" {
		filter.EndDate = &v
	}
	if v := query.Get("year"); v != "" {
		year, ok := validator.IsValidYear(v)
		if !ok {
			response.BadRequest(w, "year must be a valid calendar year", nil)
			return
		}
		filter.Year = &year
	}
	if v := query.Get("absence_type_id"); v != "" {
		typeID, ok := validator.ParseID(v)
		if !ok {
			response.BadRequest(w, "absence_type_id must be a positive identifier", nil)
			return
		}
		filter.AbsenceTypeID = &typeID
	}

	days, err := h.absenceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]absenceDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, toAbsenceDayResponse(d))
	}
	response.Success(w, out)
}

// CountAbsencesByType implements AbsenceHandler.
func (h *AbsenceHandlerImpl) CountAbsencesByType(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	employeeID, ok := validator.ParseID(query.Get("employee_id"))
	if !ok {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	var year *int
	if v := query.Get("year"); v != "" {
		y, ok := validator.IsValidYear(v)
		if !ok {
			response.BadRequest(w, "year must be a valid calendar year", nil)
			return
		}
		year = &y
	}

	counts, err := h.absenceService.CountByType(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, counts)
}

// ListAbsenceTypes implements AbsenceHandler.
func (h *AbsenceHandlerImpl) ListAbsenceTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.absenceService.ListTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	type absenceTypeResponse struct {
		ID         int64   `json:"id"`
		Name       string  `json:"name"`
		Label      string  `json:"label"`
		Hours      int     `json:"hours"`
		IsHoliday  bool    `json:"is_holiday"`
		ShareOfDay float64 `json:"share_of_day"`
	}
	out := make([]absenceTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, absenceTypeResponse{
			ID:         t.ID,
			Name:       t.Name,
			Label:      t.Label,
			Hours:      t.Hours,
			IsHoliday:  t.IsHoliday,
			ShareOfDay: t.ShareOfDay,
		})
	}

	response.Success(w, out)
}

type absenceDayResponse struct {
	ID            int64  `json:"id"`
	AbsenceDate   string `json:"absence_date"`
	AbsenceTypeID int64  `json:"absence_type_id"`
	EmployeeID    int64  `json:"employee_id"`
	Version       int    `json:"version"`
}

func toAbsenceDayResponse(d absence.AbsenceDay) absenceDayResponse {
	return absenceDayResponse{
		ID:            d.ID,
		AbsenceDate:   d.AbsenceDate.Format("2006-01-02"),
		AbsenceTypeID: d.AbsenceTypeID,
		EmployeeID:    d.EmployeeID,
		Version:       d.Version,
	}
}
