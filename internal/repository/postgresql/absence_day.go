package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/iws-manager/iws-backend-go/internal/domain/absence"
	"github.com/iws-manager/iws-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type absenceDayRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceDayRepository(db *database.DB) absence.AbsenceDayRepository {
	return &absenceDayRepositoryImpl{db: db}
}

const absenceDayColumns = `id, absence_date, absence_type_id, employee_id, version, created_at, updated_at`

func scanAbsenceDay(row pgx.Row) (absence.AbsenceDay, error) {
	var d absence.AbsenceDay
	err := row.Scan(
		&d.ID,
		&d.AbsenceDate,
		&d.AbsenceTypeID,
		&d.EmployeeID,
		&d.Version,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

// uniqueViolation matches the (employee_id, absence_date) constraint that
// backstops the duplicate invariant under concurrent writers.
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *absenceDayRepositoryImpl) Create(ctx context.Context, day absence.AbsenceDay) (absence.AbsenceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absence_days (absence_date, absence_type_id, employee_id, version, created_at, updated_at)
		VALUES ($1, $2, $3, 1, NOW(), NOW())
		RETURNING id, version, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		day.AbsenceDate, day.AbsenceTypeID, day.EmployeeID,
	).Scan(&day.ID, &day.Version, &day.CreatedAt, &day.UpdatedAt)
	if uniqueViolation(err) {
		return absence.AbsenceDay{}, absence.ErrDuplicateAbsence
	}
	if err != nil {
		return absence.AbsenceDay{}, err
	}

	return day, nil
}

func (r *absenceDayRepositoryImpl) GetByID(ctx context.Context, id int64) (absence.AbsenceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + absenceDayColumns + ` FROM absence_days WHERE id = $1`

	day, err := scanAbsenceDay(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return absence.AbsenceDay{}, absence.ErrAbsenceDayNotFound
	}
	if err != nil {
		return absence.AbsenceDay{}, err
	}
	return day, nil
}

func (r *absenceDayRepositoryImpl) Update(ctx context.Context, day absence.AbsenceDay) (absence.AbsenceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absence_days
		SET absence_date = $1, absence_type_id = $2, employee_id = $3,
		    version = version + 1, updated_at = NOW()
		WHERE id = $4 AND version = $5
		RETURNING version, updated_at
	`

	err := q.QueryRow(ctx, query,
		day.AbsenceDate, day.AbsenceTypeID, day.EmployeeID,
		day.ID, day.Version,
	).Scan(&day.Version, &day.UpdatedAt)
	if uniqueViolation(err) {
		return absence.AbsenceDay{}, absence.ErrDuplicateAbsence
	}
	if errors.Is(err, pgx.ErrNoRows) {
		// Zero rows means either a stale version or a deleted row.
		if _, getErr := r.GetByID(ctx, day.ID); getErr != nil {
			return absence.AbsenceDay{}, getErr
		}
		return absence.AbsenceDay{}, absence.ErrVersionConflict
	}
	if err != nil {
		return absence.AbsenceDay{}, err
	}

	return day, nil
}

func (r *absenceDayRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM absence_days WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return absence.ErrAbsenceDayNotFound
	}
	return nil
}

func (r *absenceDayRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]absence.AbsenceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceDayColumns + `
		FROM absence_days
		WHERE employee_id = $1
		ORDER BY absence_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAbsenceDays(rows)
}

func (r *absenceDayRepositoryImpl) ListByEmployeeAndDateRange(ctx context.Context, employeeID int64, start, end time.Time) ([]absence.AbsenceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceDayColumns + `
		FROM absence_days
		WHERE employee_id = $1 AND absence_date BETWEEN $2 AND $3
		ORDER BY absence_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAbsenceDays(rows)
}

func (r *absenceDayRepositoryImpl) ListByEmployeeAndType(ctx context.Context, employeeID, absenceTypeID int64) ([]absence.AbsenceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceDayColumns + `
		FROM absence_days
		WHERE employee_id = $1 AND absence_type_id = $2
		ORDER BY absence_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, absenceTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAbsenceDays(rows)
}

func (r *absenceDayRepositoryImpl) ListByEmployeeAndYear(ctx context.Context, employeeID int64, year int) ([]absence.AbsenceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceDayColumns + `
		FROM absence_days
		WHERE employee_id = $1 AND EXTRACT(YEAR FROM absence_date) = $2
		ORDER BY absence_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAbsenceDays(rows)
}

func (r *absenceDayRepositoryImpl) ExistsOnDate(ctx context.Context, employeeID int64, date time.Time, excludeID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM absence_days
			WHERE employee_id = $1 AND absence_date = $2 AND id != $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *absenceDayRepositoryImpl) CountByType(ctx context.Context, employeeID int64, year *int) ([]absence.TypeCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT at.id, at.name, COUNT(ad.id)
		FROM absence_days ad
		INNER JOIN absence_types at ON ad.absence_type_id = at.id
		WHERE ad.employee_id = $1
	`
	args := []interface{}{employeeID}

	if year != nil {
		query += ` AND EXTRACT(YEAR FROM ad.absence_date) = $2`
		args = append(args, *year)
	}
	query += ` GROUP BY at.id, at.name ORDER BY at.name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []absence.TypeCount
	for rows.Next() {
		var c absence.TypeCount
		if err := rows.Scan(&c.AbsenceTypeID, &c.AbsenceType, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func collectAbsenceDays(rows pgx.Rows) ([]absence.AbsenceDay, error) {
	var days []absence.AbsenceDay
	for rows.Next() {
		d, err := scanAbsenceDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
