package http

import (
	"net/http"
	"time"

	"github.com/iws-manager/iws-backend-go/internal/handler/http/response"
	"github.com/iws-manager/iws-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// parseIDParam reads the numeric {id} URL parameter. Writes a 400 and
// returns ok=false on malformed input.
func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := validator.ParseID(chi.URLParam(r, "id"))
	if !ok {
		response.BadRequest(w, "Invalid id parameter", nil)
		return 0, false
	}
	return id, true
}

// parseRangeParams reads the start/end query parameters as calendar dates.
func parseRangeParams(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	start, ok := validator.IsValidDate(startStr)
	if !ok {
		response.BadRequest(w, "start must be a YYYY-MM-DD date", nil)
		return time.Time{}, time.Time{}, false
	}
	end, ok := validator.IsValidDate(endStr)
	if !ok {
		response.BadRequest(w, "end must be a YYYY-MM-DD date", nil)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func parseYearParam(w http.ResponseWriter, yearStr string) (int, bool) {
	year, ok := validator.IsValidYear(yearStr)
	if !ok {
		response.BadRequest(w, "year must be a valid calendar year", nil)
		return 0, false
	}
	return year, true
}
