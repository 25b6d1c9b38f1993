package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/iws-manager/iws-backend-go/internal/domain/calendar"
	"github.com/iws-manager/iws-backend-go/internal/pkg/database"
	"github.com/iws-manager/iws-backend-go/internal/pkg/validator"
	"github.com/iws-manager/iws-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// CalendarService combines the holiday store with the pure day
// classification and manages per-state holiday applicability.
type CalendarService struct {
	db               *database.DB
	holidayRepo      calendar.PublicHolidayRepository
	stateRepo        calendar.StateRepository
	stateHolidayRepo calendar.StateHolidayRepository
}

func NewCalendarService(
	db *database.DB,
	holidayRepo calendar.PublicHolidayRepository,
	stateRepo calendar.StateRepository,
	stateHolidayRepo calendar.StateHolidayRepository,
) *CalendarService {
	return &CalendarService{
		db:               db,
		holidayRepo:      holidayRepo,
		stateRepo:        stateRepo,
		stateHolidayRepo: stateHolidayRepo,
	}
}

// GetCalendar returns the labeled-day sequence for [start, end]: holidays
// by name, plain Saturdays and Sundays by weekday, workdays omitted.
// Fixed-date holidays stored under any year recur in the range.
func (s *CalendarService) GetCalendar(ctx context.Context, start, end time.Time) ([]calendar.DayEntry, error) {
	if start.After(end) {
		return nil, calendar.ErrInvalidDateRange
	}

	holidays, err := s.loadHolidaysForRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return Generate(holidays, start, end)
}

// loadHolidaysForRange combines the exact-date rows of the range with the
// fixed-date holidays stored under other years, deduplicated by id.
func (s *CalendarService) loadHolidaysForRange(ctx context.Context, start, end time.Time) ([]calendar.PublicHoliday, error) {
	holidays, err := s.holidayRepo.FindBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays for range: %w", err)
	}

	fixed, err := s.holidayRepo.FindAllFixedDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixed-date holidays: %w", err)
	}

	seen := make(map[int64]bool, len(holidays))
	for _, h := range holidays {
		seen[h.ID] = true
	}
	for _, h := range fixed {
		if seen[h.ID] {
			continue
		}
		holidays = append(holidays, h)
	}
	return holidays, nil
}

func (s *CalendarService) GetCalendarForYear(ctx context.Context, year int) ([]calendar.DayEntry, error) {
	start, end := YearRange(year)
	return s.GetCalendar(ctx, start, end)
}

// GetWeekends returns only the Saturday/Sunday overlay, independent of
// holiday status.
func (s *CalendarService) GetWeekends(ctx context.Context, start, end time.Time) ([]calendar.DayEntry, error) {
	return GenerateWeekends(start, end)
}

func (s *CalendarService) GetWeekendsForYear(ctx context.Context, year int) ([]calendar.DayEntry, error) {
	start, end := YearRange(year)
	return GenerateWeekends(start, end)
}

// ListHolidaysBetween returns the holiday-only view for a range, sorted by
// date, with the lowest-id holiday winning a shared date. Fixed-date
// holidays recur here the same way they do in the full calendar.
func (s *CalendarService) ListHolidaysBetween(ctx context.Context, start, end time.Time) ([]calendar.DayEntry, error) {
	if start.After(end) {
		return nil, calendar.ErrInvalidDateRange
	}

	holidays, err := s.loadHolidaysForRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	byDate := holidayNamesByDate(holidays, start, end)

	var entries []calendar.DayEntry
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if name, ok := byDate[d.Format(dayKeyFormat)]; ok {
			entries = append(entries, calendar.DayEntry{Date: d, Label: name})
		}
	}
	return entries, nil
}

func (s *CalendarService) CreateHoliday(ctx context.Context, req calendar.CreateHolidayRequest) (calendar.PublicHoliday, error) {
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return calendar.PublicHoliday{}, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}

	holiday := calendar.PublicHoliday{
		Date:        date,
		Name:        req.Name,
		IsFixedDate: req.IsFixedDate,
	}

	if req.SequenceNo != nil {
		holiday.SequenceNo = *req.SequenceNo
	} else {
		next, err := s.holidayRepo.NextSequenceNo(ctx)
		if err != nil {
			return calendar.PublicHoliday{}, fmt.Errorf("failed to compute next sequence number: %w", err)
		}
		holiday.SequenceNo = next
	}

	created, err := s.holidayRepo.Create(ctx, holiday)
	if err != nil {
		return calendar.PublicHoliday{}, fmt.Errorf("failed to create public holiday: %w", err)
	}
	return created, nil
}

func (s *CalendarService) GetHoliday(ctx context.Context, id int64) (calendar.PublicHoliday, error) {
	return s.holidayRepo.GetByID(ctx, id)
}

func (s *CalendarService) ListHolidays(ctx context.Context, order calendar.HolidayOrder) ([]calendar.PublicHoliday, error) {
	return s.holidayRepo.List(ctx, order)
}

func (s *CalendarService) UpdateHoliday(ctx context.Context, id int64, req calendar.UpdateHolidayRequest) (calendar.PublicHoliday, error) {
	existing, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return calendar.PublicHoliday{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Date != nil {
		date, ok := validator.IsValidDate(*req.Date)
		if !ok {
			return calendar.PublicHoliday{}, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
		}
		existing.Date = date
	}
	if req.IsFixedDate != nil {
		existing.IsFixedDate = *req.IsFixedDate
	}
	if req.SequenceNo != nil {
		existing.SequenceNo = *req.SequenceNo
	}

	updated, err := s.holidayRepo.Update(ctx, existing)
	if err != nil {
		return calendar.PublicHoliday{}, err
	}
	return updated, nil
}

func (s *CalendarService) DeleteHoliday(ctx context.Context, id int64) error {
	return s.holidayRepo.Delete(ctx, id)
}

func (s *CalendarService) ListStates(ctx context.Context) ([]calendar.State, error) {
	return s.stateRepo.List(ctx)
}

// GetHolidaySelection returns the full state catalog annotated with
// whether each state currently observes the holiday.
func (s *CalendarService) GetHolidaySelection(ctx context.Context, holidayID int64) ([]calendar.StateSelection, error) {
	if _, err := s.holidayRepo.GetByID(ctx, holidayID); err != nil {
		return nil, err
	}

	states, err := s.stateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}

	links, err := s.stateHolidayRepo.ListByHolidayID(ctx, holidayID)
	if err != nil {
		return nil, fmt.Errorf("failed to list state links: %w", err)
	}

	observed := make(map[int64]bool, len(links))
	for _, link := range links {
		if link.IsHoliday {
			observed[link.StateID] = true
		}
	}

	selections := make([]calendar.StateSelection, 0, len(states))
	for _, st := range states {
		selections = append(selections, calendar.StateSelection{
			StateID:   st.ID,
			StateName: st.Name,
			Selected:  observed[st.ID],
		})
	}
	return selections, nil
}

// SaveHolidaySelection atomically replaces the state links of a holiday:
// all existing rows are deleted, then one row per given state is inserted
// with the observed flag set.
func (s *CalendarService) SaveHolidaySelection(ctx context.Context, holidayID int64, stateIDs []int64) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.holidayRepo.GetByID(txCtx, holidayID); err != nil {
			return err
		}

		if err := s.stateHolidayRepo.DeleteByHolidayID(txCtx, holidayID); err != nil {
			return fmt.Errorf("failed to clear state links: %w", err)
		}

		links := make([]calendar.StateHoliday, 0, len(stateIDs))
		for _, stateID := range stateIDs {
			if _, err := s.stateRepo.GetByID(txCtx, stateID); err != nil {
				return err
			}
			links = append(links, calendar.StateHoliday{
				PublicHolidayID: holidayID,
				StateID:         stateID,
				IsHoliday:       true,
			})
		}

		if err := s.stateHolidayRepo.BulkInsert(txCtx, links); err != nil {
			return fmt.Errorf("failed to insert state links: %w", err)
		}
		return nil
	})
}
