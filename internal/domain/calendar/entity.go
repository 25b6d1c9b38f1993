package calendar

import "time"

// PublicHoliday is a named calendar date maintained by an administrator.
// IsFixedDate marks holidays that recur on the same month/day every year,
// as opposed to computed dates such as movable feasts.
type PublicHoliday struct {
	ID          int64
	Date        time.Time
	Name        string
	IsFixedDate bool
	SequenceNo  int
	Version     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// State is a selectable jurisdiction (federal state). Reference data,
// seeded at setup time.
type State struct {
	ID   int64
	Name string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StateHoliday links a PublicHoliday to a State. At most one link exists
// per (holiday, state) pair; a missing link means "not observed".
type StateHoliday struct {
	ID              int64
	PublicHolidayID int64
	StateID         int64
	IsHoliday       bool
}

// DayEntry is one labeled day in a generated calendar. Label is the
// holiday name, "Saturday" or "Sunday"; ordinary weekdays are omitted
// from generated sequences entirely.
type DayEntry struct {
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
}

// StateSelection is one row of the selection view for a holiday: the
// full state catalog annotated with whether the state observes it.
type StateSelection struct {
	StateID   int64  `json:"state_id"`
	StateName string `json:"state_name"`
	Selected  bool   `json:"selected"`
}
