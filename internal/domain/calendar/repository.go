package calendar

import (
	"context"
	"time"
)

// HolidayOrder selects the ordering of holiday listings.
type HolidayOrder string

const (
	HolidayOrderByName         HolidayOrder = "name"
	HolidayOrderBySequence     HolidayOrder = "sequence"
	HolidayOrderBySequenceDesc HolidayOrder = "sequence_desc"
)

// PublicHolidayRepository - interface for the public_holidays table
type PublicHolidayRepository interface {
	Create(ctx context.Context, holiday PublicHoliday) (PublicHoliday, error)
	GetByID(ctx context.Context, id int64) (PublicHoliday, error)
	List(ctx context.Context, order HolidayOrder) ([]PublicHoliday, error)
	// FindBetween returns holidays with start <= date <= end, ordered by
	// date then id so same-date duplicates resolve deterministically.
	FindBetween(ctx context.Context, start, end time.Time) ([]PublicHoliday, error)
	// FindByDate returns the lowest-id holiday on the date, if any.
	FindByDate(ctx context.Context, date time.Time) (PublicHoliday, error)
	// FindAllFixedDate returns every holiday that recurs yearly on its
	// month/day, regardless of the year it is stored under.
	FindAllFixedDate(ctx context.Context) ([]PublicHoliday, error)
	NextSequenceNo(ctx context.Context) (int, error)
	// Update performs a compare-and-swap on the stored version.
	Update(ctx context.Context, holiday PublicHoliday) (PublicHoliday, error)
	Delete(ctx context.Context, id int64) error
}

// StateRepository - interface for the states table
type StateRepository interface {
	GetByID(ctx context.Context, id int64) (State, error)
	List(ctx context.Context) ([]State, error)
}

// StateHolidayRepository - interface for the state_holidays join table
type StateHolidayRepository interface {
	ListByHolidayID(ctx context.Context, holidayID int64) ([]StateHoliday, error)
	DeleteByHolidayID(ctx context.Context, holidayID int64) error
	BulkInsert(ctx context.Context, links []StateHoliday) error
}
