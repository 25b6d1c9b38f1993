package response

import (
	"errors"
	"net/http"

	"github.com/iws-manager/iws-backend-go/internal/domain/absence"
	"github.com/iws-manager/iws-backend-go/internal/domain/calendar"
	"github.com/iws-manager/iws-backend-go/internal/domain/employee"
	"github.com/iws-manager/iws-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Calendar domain errors
	case errors.Is(err, calendar.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Public holiday not found")
	case errors.Is(err, calendar.ErrStateNotFound):
		NotFound(w, "State not found")
	case errors.Is(err, calendar.ErrVersionConflict):
		Conflict(w, "Public holiday was modified by another user, refresh and retry")

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceDayNotFound):
		NotFound(w, "Absence day not found")
	case errors.Is(err, absence.ErrAbsenceTypeNotFound):
		NotFound(w, "Absence type not found")
	case errors.Is(err, absence.ErrAbsenceOnHoliday):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, absence.ErrDuplicateAbsence):
		Conflict(w, err.Error())
	case errors.Is(err, absence.ErrVersionConflict):
		Conflict(w, "Absence day was modified by another user, refresh and retry")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
