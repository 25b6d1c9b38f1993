package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/iws-manager/iws-backend-go/internal/domain/calendar"
	"github.com/iws-manager/iws-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type publicHolidayRepositoryImpl struct {
	db *database.DB
}

func NewPublicHolidayRepository(db *database.DB) calendar.PublicHolidayRepository {
	return &publicHolidayRepositoryImpl{db: db}
}

const publicHolidayColumns = `id, holiday_date, name, is_fixed_date, sequence_no, version, created_at, updated_at`

func scanPublicHoliday(row pgx.Row) (calendar.PublicHoliday, error) {
	var h calendar.PublicHoliday
	err := row.Scan(
		&h.ID,
		&h.Date,
		&h.Name,
		&h.IsFixedDate,
		&h.SequenceNo,
		&h.Version,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	return h, err
}

func (r *publicHolidayRepositoryImpl) Create(ctx context.Context, holiday calendar.PublicHoliday) (calendar.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO public_holidays (holiday_date, name, is_fixed_date, sequence_no, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, NOW(), NOW())
		RETURNING id, version, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		holiday.Date, holiday.Name, holiday.IsFixedDate, holiday.SequenceNo,
	).Scan(&holiday.ID, &holiday.Version, &holiday.CreatedAt, &holiday.UpdatedAt)
	if err != nil {
		return calendar.PublicHoliday{}, err
	}

	return holiday, nil
}

func (r *publicHolidayRepositoryImpl) GetByID(ctx context.Context, id int64) (calendar.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + publicHolidayColumns + ` FROM public_holidays WHERE id = $1`

	holiday, err := scanPublicHoliday(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return calendar.PublicHoliday{}, calendar.ErrHolidayNotFound
	}
	if err != nil {
		return calendar.PublicHoliday{}, err
	}
	return holiday, nil
}

func (r *publicHolidayRepositoryImpl) List(ctx context.Context, order calendar.HolidayOrder) ([]calendar.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	orderBy := "name ASC"
	switch order {
	case calendar.HolidayOrderBySequence:
		orderBy = "sequence_no ASC"
	case calendar.HolidayOrderBySequenceDesc:
		orderBy = "sequence_no DESC"
	}

	query := `SELECT ` + publicHolidayColumns + ` FROM public_holidays ORDER BY ` + orderBy

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPublicHolidays(rows)
}

func (r *publicHolidayRepositoryImpl) FindBetween(ctx context.Context, start, end time.Time) ([]calendar.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + publicHolidayColumns + `
		FROM public_holidays
		WHERE holiday_date BETWEEN $1 AND $2
		ORDER BY holiday_date ASC, id ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPublicHolidays(rows)
}

func (r *publicHolidayRepositoryImpl) FindAllFixedDate(ctx context.Context) ([]calendar.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + publicHolidayColumns + `
		FROM public_holidays
		WHERE is_fixed_date = TRUE
		ORDER BY holiday_date ASC, id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPublicHolidays(rows)
}

func (r *publicHolidayRepositoryImpl) FindByDate(ctx context.Context, date time.Time) (calendar.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + publicHolidayColumns + `
		FROM public_holidays
		WHERE holiday_date = $1
		ORDER BY id ASC
		LIMIT 1
	`

	holiday, err := scanPublicHoliday(q.QueryRow(ctx, query, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return calendar.PublicHoliday{}, calendar.ErrHolidayNotFound
	}
	if err != nil {
		return calendar.PublicHoliday{}, err
	}
	return holiday, nil
}

func (r *publicHolidayRepositoryImpl) NextSequenceNo(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var next int
	err := q.QueryRow(ctx, `SELECT COALESCE(MAX(sequence_no), 0) + 1 FROM public_holidays`).Scan(&next)
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (r *publicHolidayRepositoryImpl) Update(ctx context.Context, holiday calendar.PublicHoliday) (calendar.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE public_holidays
		SET holiday_date = $1, name = $2, is_fixed_date = $3, sequence_no = $4,
		    version = version + 1, updated_at = NOW()
		WHERE id = $5 AND version = $6
		RETURNING version, updated_at
	`

	err := q.QueryRow(ctx, query,
		holiday.Date, holiday.Name, holiday.IsFixedDate, holiday.SequenceNo,
		holiday.ID, holiday.Version,
	).Scan(&holiday.Version, &holiday.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// Zero rows means either a stale version or a deleted row.
		if _, getErr := r.GetByID(ctx, holiday.ID); getErr != nil {
			return calendar.PublicHoliday{}, getErr
		}
		return calendar.PublicHoliday{}, calendar.ErrVersionConflict
	}
	if err != nil {
		return calendar.PublicHoliday{}, err
	}

	return holiday, nil
}

func (r *publicHolidayRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	// state_holidays rows cascade via their foreign key
	commandTag, err := q.Exec(ctx, `DELETE FROM public_holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return calendar.ErrHolidayNotFound
	}
	return nil
}

func collectPublicHolidays(rows pgx.Rows) ([]calendar.PublicHoliday, error) {
	var holidays []calendar.PublicHoliday
	for rows.Next() {
		h, err := scanPublicHoliday(rows)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
