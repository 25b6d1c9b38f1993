package postgresql

import (
	"context"
	"errors"

	"github.com/iws-manager/iws-backend-go/internal/domain/absence"
	"github.com/iws-manager/iws-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type absenceTypeRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceTypeRepository(db *database.DB) absence.AbsenceTypeRepository {
	return &absenceTypeRepositoryImpl{db: db}
}

func (r *absenceTypeRepositoryImpl) GetByID(ctx context.Context, id int64) (absence.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, label, hours, is_holiday, share_of_day, created_at, updated_at
		FROM absence_types
		WHERE id = $1
	`

	var t absence.AbsenceType
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Label, &t.Hours, &t.IsHoliday, &t.ShareOfDay, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return absence.AbsenceType{}, absence.ErrAbsenceTypeNotFound
	}
	if err != nil {
		return absence.AbsenceType{}, err
	}
	return t, nil
}

func (r *absenceTypeRepositoryImpl) List(ctx context.Context) ([]absence.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, label, hours, is_holiday, share_of_day, created_at, updated_at
		FROM absence_types
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []absence.AbsenceType
	for rows.Next() {
		var t absence.AbsenceType
		if err := rows.Scan(&t.ID, &t.Name, &t.Label, &t.Hours, &t.IsHoliday, &t.ShareOfDay, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}
