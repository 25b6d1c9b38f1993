package absence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iws-manager/iws-backend-go/internal/domain/absence"
	"github.com/iws-manager/iws-backend-go/internal/domain/calendar"
	"github.com/iws-manager/iws-backend-go/internal/domain/employee"
	"github.com/iws-manager/iws-backend-go/internal/pkg/database"
	"github.com/iws-manager/iws-backend-go/internal/pkg/validator"
	"github.com/iws-manager/iws-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// AbsenceService enforces the booking invariants in front of the absence
// store: one absence per employee per date, and never on a public holiday.
type AbsenceService struct {
	db          *database.DB
	absenceRepo absence.AbsenceDayRepository
	typeRepo    absence.AbsenceTypeRepository
	empRepo     employee.EmployeeRepository
	holidayRepo calendar.PublicHolidayRepository
}

func NewAbsenceService(
	db *database.DB,
	absenceRepo absence.AbsenceDayRepository,
	typeRepo absence.AbsenceTypeRepository,
	empRepo employee.EmployeeRepository,
	holidayRepo calendar.PublicHolidayRepository,
) *AbsenceService {
	return &AbsenceService{
		db:          db,
		absenceRepo: absenceRepo,
		typeRepo:    typeRepo,
		empRepo:     empRepo,
		holidayRepo: holidayRepo,
	}
}

// Create books an absence after the full validation pipeline: input check,
// holiday exclusion, duplicate check, reference resolution, persist. The
// whole pipeline runs in one transaction; the unique constraint on
// (employee_id, absence_date) backstops racing writers.
func (s *AbsenceService) Create(ctx context.Context, req absence.CreateAbsenceDayRequest) (absence.AbsenceDay, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceDay{}, err
	}

	var created absence.AbsenceDay
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.createInTx(txCtx, req)
		return err
	})
	if err != nil {
		return absence.AbsenceDay{}, err
	}

	return created, nil
}

// CreateBulk books a batch of absences in one transaction. Every entry
// runs the full validation pipeline; any failure rolls back the whole
// batch, so earlier entries of the batch count as duplicates for later
// ones.
func (s *AbsenceService) CreateBulk(ctx context.Context, reqs []absence.CreateAbsenceDayRequest) ([]absence.AbsenceDay, error) {
	if len(reqs) == 0 {
		return nil, validator.ValidationErrors{{Field: "absences", Message: "at least one absence is required"}}
	}
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, err
		}
	}

	var created []absence.AbsenceDay
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, req := range reqs {
			day, err := s.createInTx(txCtx, req)
			if err != nil {
				return err
			}
			created = append(created, day)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// createInTx runs the holiday, duplicate and reference checks and saves
// the absence. Must be called with a transaction-bound context.
func (s *AbsenceService) createInTx(txCtx context.Context, req absence.CreateAbsenceDayRequest) (absence.AbsenceDay, error) {
	date, _ := validator.IsValidDate(req.AbsenceDate)

	if err := s.checkNotHoliday(txCtx, date); err != nil {
		return absence.AbsenceDay{}, err
	}

	exists, err := s.absenceRepo.ExistsOnDate(txCtx, req.EmployeeID, date, 0)
	if err != nil {
		return absence.AbsenceDay{}, fmt.Errorf("failed to check for existing absence: %w", err)
	}
	if exists {
		return absence.AbsenceDay{}, fmt.Errorf("%w: employee %d on %s",
			absence.ErrDuplicateAbsence, req.EmployeeID, req.AbsenceDate)
	}

	emp, err := s.empRepo.GetByID(txCtx, req.EmployeeID)
	if err != nil {
		return absence.AbsenceDay{}, err
	}
	absenceType, err := s.typeRepo.GetByID(txCtx, req.AbsenceTypeID)
	if err != nil {
		return absence.AbsenceDay{}, err
	}

	return s.absenceRepo.Create(txCtx, absence.AbsenceDay{
		AbsenceDate:   date,
		AbsenceTypeID: absenceType.ID,
		EmployeeID:    emp.ID,
	})
}

// Update applies a partial update. Holiday and duplicate checks re-run
// only when their governing field actually changed from the stored value.
func (s *AbsenceService) Update(ctx context.Context, id int64, req absence.UpdateAbsenceDayRequest) (absence.AbsenceDay, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceDay{}, err
	}

	var updated absence.AbsenceDay
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.absenceRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		targetDate := existing.AbsenceDate
		dateChanged := false
		if req.AbsenceDate != nil {
			date, _ := validator.IsValidDate(*req.AbsenceDate)
			dateChanged = !sameDay(date, existing.AbsenceDate)
			targetDate = date
		}

		targetEmployee := existing.EmployeeID
		employeeChanged := false
		if req.EmployeeID != nil {
			employeeChanged = *req.EmployeeID != existing.EmployeeID
			targetEmployee = *req.EmployeeID
		}

		if dateChanged {
			if err := s.checkNotHoliday(txCtx, targetDate); err != nil {
				return err
			}
		}

		if dateChanged || employeeChanged {
			exists, err := s.absenceRepo.ExistsOnDate(txCtx, targetEmployee, targetDate, id)
			if err != nil {
				return fmt.Errorf("failed to check for existing absence: %w", err)
			}
			if exists {
				return fmt.Errorf("%w: employee %d on %s",
					absence.ErrDuplicateAbsence, targetEmployee, targetDate.Format("2006-01-02"))
			}
		}

		if employeeChanged {
			if _, err := s.empRepo.GetByID(txCtx, targetEmployee); err != nil {
				return err
			}
		}
		if req.AbsenceTypeID != nil {
			if _, err := s.typeRepo.GetByID(txCtx, *req.AbsenceTypeID); err != nil {
				return err
			}
			existing.AbsenceTypeID = *req.AbsenceTypeID
		}

		existing.AbsenceDate = targetDate
		existing.EmployeeID = targetEmployee

		updated, err = s.absenceRepo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return absence.AbsenceDay{}, err
	}

	return updated, nil
}

func (s *AbsenceService) GetByID(ctx context.Context, id int64) (absence.AbsenceDay, error) {
	return s.absenceRepo.GetByID(ctx, id)
}

func (s *AbsenceService) Delete(ctx context.Context, id int64) error {
	return s.absenceRepo.Delete(ctx, id)
}

// List applies the filter with the original precedence: date range first,
// then year, then absence type, then the plain employee listing.
func (s *AbsenceService) List(ctx context.Context, filter absence.Filter) ([]absence.AbsenceDay, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	switch {
	case filter.StartDate != nil && filter.EndDate != nil:
		start, _ := validator.IsValidDate(*filter.StartDate)
		end, _ := validator.IsValidDate(*filter.EndDate)
		if start.After(end) {
			return nil, calendar.ErrInvalidDateRange
		}
		return s.absenceRepo.ListByEmployeeAndDateRange(ctx, filter.EmployeeID, start, end)
	case filter.Year != nil:
		return s.absenceRepo.ListByEmployeeAndYear(ctx, filter.EmployeeID, *filter.Year)
	case filter.AbsenceTypeID != nil:
		return s.absenceRepo.ListByEmployeeAndType(ctx, filter.EmployeeID, *filter.AbsenceTypeID)
	default:
		return s.absenceRepo.ListByEmployee(ctx, filter.EmployeeID)
	}
}

// CountByType aggregates absence days per type for one employee,
// optionally restricted to one calendar year.
func (s *AbsenceService) CountByType(ctx context.Context, employeeID int64, year *int) ([]absence.TypeCount, error) {
	if employeeID <= 0 {
		return nil, validator.ValidationErrors{{Field: "employee_id", Message: "employee_id is required"}}
	}
	if year != nil && (*year < 1 || *year > 9999) {
		return nil, validator.ValidationErrors{{Field: "year", Message: "year must be a valid calendar year"}}
	}
	return s.absenceRepo.CountByType(ctx, employeeID, year)
}

func (s *AbsenceService) ListTypes(ctx context.Context) ([]absence.AbsenceType, error) {
	return s.typeRepo.List(ctx)
}

func (s *AbsenceService) checkNotHoliday(ctx context.Context, date time.Time) error {
	holiday, err := s.holidayRepo.FindByDate(ctx, date)
	if errors.Is(err, calendar.ErrHolidayNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check holiday calendar: %w", err)
	}
	return fmt.Errorf("%w: %s (%s)",
		absence.ErrAbsenceOnHoliday, date.Format("2006-01-02"), holiday.Name)
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
