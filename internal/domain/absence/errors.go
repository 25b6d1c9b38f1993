package absence

import "errors"

var (
	ErrAbsenceDayNotFound  = errors.New("absence day not found")
	ErrAbsenceTypeNotFound = errors.New("absence type not found")
	ErrDuplicateAbsence    = errors.New("absence already exists for employee on this date")
	ErrAbsenceOnHoliday    = errors.New("cannot book absence on a public holiday")
	ErrVersionConflict     = errors.New("absence day was modified by another user")
)
