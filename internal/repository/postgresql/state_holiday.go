package postgresql

import (
	"context"

	"github.com/iws-manager/iws-backend-go/internal/domain/calendar"
	"github.com/iws-manager/iws-backend-go/internal/pkg/database"
)

type stateHolidayRepositoryImpl struct {
	db *database.DB
}

func NewStateHolidayRepository(db *database.DB) calendar.StateHolidayRepository {
	return &stateHolidayRepositoryImpl{db: db}
}

func (r *stateHolidayRepositoryImpl) ListByHolidayID(ctx context.Context, holidayID int64) ([]calendar.StateHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, public_holiday_id, state_id, is_holiday
		FROM state_holidays
		WHERE public_holiday_id = $1
	`

	rows, err := q.Query(ctx, query, holidayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []calendar.StateHoliday
	for rows.Next() {
		var sh calendar.StateHoliday
		if err := rows.Scan(&sh.ID, &sh.PublicHolidayID, &sh.StateID, &sh.IsHoliday); err != nil {
			return nil, err
		}
		links = append(links, sh)
	}
	return links, rows.Err()
}

func (r *stateHolidayRepositoryImpl) DeleteByHolidayID(ctx context.Context, holidayID int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM state_holidays WHERE public_holiday_id = $1`, holidayID)
	return err
}

func (r *stateHolidayRepositoryImpl) BulkInsert(ctx context.Context, links []calendar.StateHoliday) error {
	if len(links) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO state_holidays (public_holiday_id, state_id, is_holiday)
		VALUES ($1, $2, $3)
	`

	for _, link := range links {
		if _, err := q.Exec(ctx, query, link.PublicHolidayID, link.StateID, link.IsHoliday); err != nil {
			return err
		}
	}
	return nil
}
