package absence

import (
	"context"
	"time"
)

// AbsenceDayRepository - interface for the absence_days table
type AbsenceDayRepository interface {
	Create(ctx context.Context, day AbsenceDay) (AbsenceDay, error)
	GetByID(ctx context.Context, id int64) (AbsenceDay, error)
	// Update performs a compare-and-swap on the stored version.
	Update(ctx context.Context, day AbsenceDay) (AbsenceDay, error)
	Delete(ctx context.Context, id int64) error

	ListByEmployee(ctx context.Context, employeeID int64) ([]AbsenceDay, error)
	ListByEmployeeAndDateRange(ctx context.Context, employeeID int64, start, end time.Time) ([]AbsenceDay, error)
	ListByEmployeeAndType(ctx context.Context, employeeID, absenceTypeID int64) ([]AbsenceDay, error)
	ListByEmployeeAndYear(ctx context.Context, employeeID int64, year int) ([]AbsenceDay, error)

	// ExistsOnDate reports whether the employee already has an absence on
	// the date. excludeID > 0 leaves that record out of the check.
	ExistsOnDate(ctx context.Context, employeeID int64, date time.Time, excludeID int64) (bool, error)

	// CountByType aggregates absence days per type for one employee,
	// optionally restricted to a calendar year.
	CountByType(ctx context.Context, employeeID int64, year *int) ([]TypeCount, error)
}

// AbsenceTypeRepository - interface for the absence_types table
type AbsenceTypeRepository interface {
	GetByID(ctx context.Context, id int64) (AbsenceType, error)
	List(ctx context.Context) ([]AbsenceType, error)
}
