package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iws-manager/iws-backend-go/internal/domain/calendar"
	"github.com/iws-manager/iws-backend-go/internal/handler/http/response"
	"github.com/iws-manager/iws-backend-go/internal/pkg/validator"
	calendarService "github.com/iws-manager/iws-backend-go/internal/service/calendar"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	GetCalendar(w http.ResponseWriter, r *http.Request)
	GetCalendarForYear(w http.ResponseWriter, r *http.Request)
	GetWeekends(w http.ResponseWriter, r *http.Request)

	ListHolidays(w http.ResponseWriter, r *http.Request)
	ListHolidaysInRange(w http.ResponseWriter, r *http.Request)
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	GetHoliday(w http.ResponseWriter, r *http.Request)
	UpdateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)

	ListStates(w http.ResponseWriter, r *http.Request)
	GetHolidaySelection(w http.ResponseWriter, r *http.Request)
	SaveHolidaySelection(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService *calendarService.CalendarService
}

func NewCalendarHandler(service *calendarService.CalendarService) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: service}
}

// GetCalendar implements CalendarHandler.
func (h *CalendarHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseRangeParams(w, r)
	if !ok {
		return
	}

	entries, err := h.calendarService.GetCalendar(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// GetCalendarForYear implements CalendarHandler.
func (h *CalendarHandlerImpl) GetCalendarForYear(w http.ResponseWriter, r *http.Request) {
	year, ok := parseYearParam(w, chi.URLParam(r, "year"))
	if !ok {
		return
	}

	entries, err := h.calendarService.GetCalendarForYear(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// GetWeekends implements CalendarHandler.
func (h *CalendarHandlerImpl) GetWeekends(w http.ResponseWriter, r *http.Request) {
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, ok := parseYearParam(w, yearStr)
		if !ok {
			return
		}
		entries, err := h.calendarService.GetWeekendsForYear(r.Context(), year)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, entries)
		return
	}

	start, end, ok := parseRangeParams(w, r)
	if !ok {
		return
	}

	entries, err := h.calendarService.GetWeekends(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ListHolidays implements CalendarHandler.
func (h *CalendarHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	orderParam := r.URL.Query().Get("order")
	if orderParam != "" && !validator.IsInSlice(orderParam, []string{"name", "sequence", "sequence-desc"}) {
		response.BadRequest(w, "order must be one of: name, sequence, sequence-desc", nil)
		return
	}

	order := calendar.HolidayOrderByName
	switch orderParam {
	case "sequence":
		order = calendar.HolidayOrderBySequence
	case "sequence-desc":
		order = calendar.HolidayOrderBySequenceDesc
	}

	holidays, err := h.calendarService.ListHolidays(r.Context(), order)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toHolidayResponses(holidays))
}

// ListHolidaysInRange implements CalendarHandler.
func (h *CalendarHandlerImpl) ListHolidaysInRange(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseRangeParams(w, r)
	if !ok {
		return
	}

	entries, err := h.calendarService.ListHolidaysBetween(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// CreateHoliday implements CalendarHandler.
func (h *CalendarHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	holiday, err := h.calendarService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Public holiday created successfully", toHolidayResponse(holiday))
}

// GetHoliday implements CalendarHandler.
func (h *CalendarHandlerImpl) GetHoliday(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	holiday, err := h.calendarService.GetHoliday(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toHolidayResponse(holiday))
}

// UpdateHoliday implements CalendarHandler.
func (h *CalendarHandlerImpl) UpdateHoliday(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req calendar.UpdateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	holiday, err := h.calendarService.UpdateHoliday(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Public holiday updated successfully", toHolidayResponse(holiday))
}

// DeleteHoliday implements CalendarHandler.
func (h *CalendarHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.calendarService.DeleteHoliday(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Public holiday deleted successfully", nil)
}

// ListStates implements CalendarHandler.
func (h *CalendarHandlerImpl) ListStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.calendarService.ListStates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	type stateResponse struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	out := make([]stateResponse, 0, len(states))
	for _, s := range states {
		out = append(out, stateResponse{ID: s.ID, Name: s.Name})
	}

	response.Success(w, out)
}

// GetHolidaySelection implements CalendarHandler.
func (h *CalendarHandlerImpl) GetHolidaySelection(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	selections, err := h.calendarService.GetHolidaySelection(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, selections)
}

// SaveHolidaySelection implements CalendarHandler.
func (h *CalendarHandlerImpl) SaveHolidaySelection(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req calendar.SaveSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveHolidaySelection decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.calendarService.SaveHolidaySelection(r.Context(), id, req.StateIDs); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday state selection saved successfully", nil)
}

type holidayResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Name        string `json:"name"`
	IsFixedDate bool   `json:"is_fixed_date"`
	SequenceNo  int    `json:"sequence_no"`
	Version     int    `json:"version"`
}

func toHolidayResponse(h calendar.PublicHoliday) holidayResponse {
	return holidayResponse{
		ID:          h.ID,
		Date:        h.Date.Format("2006-01-02"),
		Name:        h.Name,
		IsFixedDate: h.IsFixedDate,
		SequenceNo:  h.SequenceNo,
		Version:     h.Version,
	}
}

func toHolidayResponses(holidays []calendar.PublicHoliday) []holidayResponse {
	out := make([]holidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, toHolidayResponse(h))
	}
	return out
}
