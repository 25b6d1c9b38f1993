package calendar

import (
	"testing"
	"time"

	"github.com/iws-manager/iws-backend-go/internal/domain/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerate_HolidayWeekendAndWorkday(t *testing.T) {
	holidays := []calendar.PublicHoliday{
		{ID: 1, Date: date(2024, time.January, 1), Name: "New Year"},
	}

	// 2024-01-01 is a Monday; 01-06 Saturday, 01-07 Sunday.
	entries, err := Generate(holidays, date(2024, time.January, 1), date(2024, time.January, 7))
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, calendar.DayEntry{Date: date(2024, time.January, 1), Label: "New Year"}, entries[0])
	assert.Equal(t, calendar.DayEntry{Date: date(2024, time.January, 6), Label: "Saturday"}, entries[1])
	assert.Equal(t, calendar.DayEntry{Date: date(2024, time.January, 7), Label: "Sunday"}, entries[2])
}

func TestGenerate_HolidayBeatsWeekend(t *testing.T) {
	// 2024-01-06 is a Saturday.
	holidays := []calendar.PublicHoliday{
		{ID: 3, Date: date(2024, time.January, 6), Name: "Epiphany"},
	}

	entries, err := Generate(holidays, date(2024, time.January, 6), date(2024, time.January, 6))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "Epiphany", entries[0].Label)
}

func TestGenerate_FullYear(t *testing.T) {
	holidays := []calendar.PublicHoliday{
		{ID: 1, Date: date(2024, time.January, 1), Name: "New Year"},
		{ID: 2, Date: date(2024, time.December, 25), Name: "Christmas Day"},
	}

	start, end := YearRange(2024)
	entries, err := Generate(holidays, start, end)
	require.NoError(t, err)

	// 2024 has 52 Saturdays and 52 Sundays; both holidays fall on weekdays.
	assert.Len(t, entries, 52+52+2)

	// No date may appear twice.
	seen := make(map[string]bool)
	for _, e := range entries {
		key := e.Date.Format("2006-01-02")
		assert.Falsef(t, seen[key], "date %s appears twice", key)
		seen[key] = true
	}

	// Ordinary weekday is omitted.
	assert.False(t, seen["2024-01-02"])
}

func TestGenerate_Deterministic(t *testing.T) {
	holidays := []calendar.PublicHoliday{
		{ID: 1, Date: date(2024, time.May, 1), Name: "Labour Day"},
	}
	start, end := YearRange(2024)

	first, err := Generate(holidays, start, end)
	require.NoError(t, err)
	second, err := Generate(holidays, start, end)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_InvalidRange(t *testing.T) {
	_, err := Generate(nil, date(2024, time.March, 2), date(2024, time.March, 1))
	assert.ErrorIs(t, err, calendar.ErrInvalidDateRange)
}

func TestGenerate_SameDateTieBreakLowestID(t *testing.T) {
	holidays := []calendar.PublicHoliday{
		{ID: 9, Date: date(2024, time.October, 3), Name: "Duplicate Entry"},
		{ID: 4, Date: date(2024, time.October, 3), Name: "Unity Day"},
	}

	entries, err := Generate(holidays, date(2024, time.October, 3), date(2024, time.October, 3))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "Unity Day", entries[0].Label)
}

func TestGenerate_FixedDateHolidayRecurs(t *testing.T) {
	// Stored under 2023, but fixed-date holidays follow their month/day
	// into every year of the range.
	holidays := []calendar.PublicHoliday{
		{ID: 1, Date: date(2023, time.January, 1), Name: "New Year", IsFixedDate: true},
	}

	entries, err := Generate(holidays, date(2024, time.January, 1), date(2024, time.January, 1))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, calendar.DayEntry{Date: date(2024, time.January, 1), Label: "New Year"}, entries[0])
}

func TestGenerate_FixedDateHolidayInEveryYear(t *testing.T) {
	holidays := []calendar.PublicHoliday{
		{ID: 1, Date: date(2023, time.May, 1), Name: "Labour Day", IsFixedDate: true},
	}

	entries, err := Generate(holidays, date(2023, time.May, 1), date(2025, time.May, 1))
	require.NoError(t, err)

	labelled := make(map[string]string)
	for _, e := range entries {
		labelled[e.Date.Format("2006-01-02")] = e.Label
	}
	assert.Equal(t, "Labour Day", labelled["2023-05-01"])
	assert.Equal(t, "Labour Day", labelled["2024-05-01"])
	assert.Equal(t, "Labour Day", labelled["2025-05-01"])
}

func TestGenerate_ExactDateBeatsFixedProjection(t *testing.T) {
	holidays := []calendar.PublicHoliday{
		{ID: 2, Date: date(2023, time.May, 1), Name: "May Day", IsFixedDate: true},
		{ID: 7, Date: date(2024, time.May, 1), Name: "Labour Day"},
	}

	entries, err := Generate(holidays, date(2024, time.May, 1), date(2024, time.May, 1))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "Labour Day", entries[0].Label)
}

func TestGenerate_LeapDayNotProjectedIntoCommonYear(t *testing.T) {
	holidays := []calendar.PublicHoliday{
		{ID: 1, Date: date(2024, time.February, 29), Name: "Leap Day", IsFixedDate: true},
	}

	// 2025 has no Feb 29; the projection must not spill onto Mar 1,
	// which stays an ordinary Saturday.
	entries, err := Generate(holidays, date(2025, time.February, 24), date(2025, time.March, 1))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, calendar.DayEntry{Date: date(2025, time.March, 1), Label: "Saturday"}, entries[0])
}

func TestGenerateWeekends_IgnoresHolidays(t *testing.T) {
	// Holidays play no role in the weekend overlay: 2024-01-06 stays
	// "Saturday" even though a holiday is stored on that date.
	entries, err := GenerateWeekends(date(2024, time.January, 1), date(2024, time.January, 7))
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "Saturday", entries[0].Label)
	assert.Equal(t, "Sunday", entries[1].Label)
}

func TestGenerateWeekends_InvalidRange(t *testing.T) {
	_, err := GenerateWeekends(date(2024, time.March, 2), date(2024, time.March, 1))
	assert.ErrorIs(t, err, calendar.ErrInvalidDateRange)
}

func TestYearRange(t *testing.T) {
	start, end := YearRange(2024)
	assert.Equal(t, date(2024, time.January, 1), start)
	assert.Equal(t, date(2024, time.December, 31), end)
}
