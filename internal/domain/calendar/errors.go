package calendar

import "errors"

var (
	ErrHolidayNotFound  = errors.New("public holiday not found")
	ErrStateNotFound    = errors.New("state not found")
	ErrInvalidDateRange = errors.New("start date cannot be after end date")
	ErrVersionConflict  = errors.New("public holiday was modified by another user")
)
