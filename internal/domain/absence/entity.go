package absence

import "time"

// AbsenceType is a category of absence (sick leave, vacation, ...).
// Reference data. ShareOfDay is the fraction of a working day the
// absence consumes, e.g. 0.5 for a half-day type.
type AbsenceType struct {
	ID         int64
	Name       string
	Label      string
	Hours      int
	IsHoliday  bool
	ShareOfDay float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AbsenceDay is one employee's absence on one calendar date.
//
// Invariants: at most one record per (employee, date), and the date must
// never be one classified as a public holiday.
type AbsenceDay struct {
	ID            int64
	AbsenceDate   time.Time
	AbsenceTypeID int64
	EmployeeID    int64
	Version       int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TypeCount is the per-type aggregation row for one employee.
type TypeCount struct {
	AbsenceTypeID int64  `json:"absence_type_id"`
	AbsenceType   string `json:"absence_type"`
	Count         int64  `json:"count"`
}
