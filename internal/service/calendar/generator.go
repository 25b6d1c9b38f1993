package calendar

import (
	"time"

	"github.com/iws-manager/iws-backend-go/internal/domain/calendar"
	"github.com/iws-manager/iws-backend-go/internal/pkg/validator"
)

const (
	labelSaturday = "Saturday"
	labelSunday   = "Sunday"
)

const dayKeyFormat = "2006-01-02"

// Generate classifies every date in [start, end] inclusive against the
// given holidays. Priority per date: holiday name, then "Saturday", then
// "Sunday"; ordinary weekdays are omitted. Fixed-date holidays recur on
// their month/day in every year of the range; an exact-date row on the
// same date wins over a projection, and within either group the holiday
// with the lowest id wins.
func Generate(holidays []calendar.PublicHoliday, start, end time.Time) ([]calendar.DayEntry, error) {
	if !validator.IsValidDateRange(start, end) {
		return nil, calendar.ErrInvalidDateRange
	}

	byDate := holidayNamesByDate(holidays, start, end)

	var entries []calendar.DayEntry
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if name, ok := byDate[d.Format(dayKeyFormat)]; ok {
			entries = append(entries, calendar.DayEntry{Date: d, Label: name})
			continue
		}
		switch d.Weekday() {
		case time.Saturday:
			entries = append(entries, calendar.DayEntry{Date: d, Label: labelSaturday})
		case time.Sunday:
			entries = append(entries, calendar.DayEntry{Date: d, Label: labelSunday})
		}
	}
	return entries, nil
}

// GenerateWeekends applies only the Saturday/Sunday rules, ignoring
// holidays entirely.
func GenerateWeekends(start, end time.Time) ([]calendar.DayEntry, error) {
	if !validator.IsValidDateRange(start, end) {
		return nil, calendar.ErrInvalidDateRange
	}

	var entries []calendar.DayEntry
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday:
			entries = append(entries, calendar.DayEntry{Date: d, Label: labelSaturday})
		case time.Sunday:
			entries = append(entries, calendar.DayEntry{Date: d, Label: labelSunday})
		}
	}
	return entries, nil
}

// holidayNamesByDate resolves the holiday name per date key. Exact dates
// go in first, then fixed-date holidays are projected onto every year of
// the range without displacing an exact entry.
func holidayNamesByDate(holidays []calendar.PublicHoliday, start, end time.Time) map[string]string {
	byDate := make(map[string]string, len(holidays))
	lowestID := make(map[string]int64, len(holidays))
	exact := make(map[string]bool, len(holidays))

	for _, h := range holidays {
		key := h.Date.Format(dayKeyFormat)
		if id, ok := lowestID[key]; ok && id <= h.ID {
			continue
		}
		byDate[key] = h.Name
		lowestID[key] = h.ID
		exact[key] = true
	}

	for _, h := range holidays {
		if !h.IsFixedDate {
			continue
		}
		for year := start.Year(); year <= end.Year(); year++ {
			d := time.Date(year, h.Date.Month(), h.Date.Day(), 0, 0, 0, 0, time.UTC)
			if d.Month() != h.Date.Month() {
				// Feb 29 projected into a non-leap year.
				continue
			}
			key := d.Format(dayKeyFormat)
			if exact[key] {
				continue
			}
			if id, ok := lowestID[key]; ok && id <= h.ID {
				continue
			}
			byDate[key] = h.Name
			lowestID[key] = h.ID
		}
	}
	return byDate
}

// YearRange returns the first and last day of a calendar year.
func YearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}
