package postgresql

import (
	"context"
	"errors"

	"github.com/iws-manager/iws-backend-go/internal/domain/calendar"
	"github.com/iws-manager/iws-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type stateRepositoryImpl struct {
	db *database.DB
}

func NewStateRepository(db *database.DB) calendar.StateRepository {
	return &stateRepositoryImpl{db: db}
}

func (r *stateRepositoryImpl) GetByID(ctx context.Context, id int64) (calendar.State, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM states WHERE id = $1`

	var s calendar.State
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return calendar.State{}, calendar.ErrStateNotFound
	}
	if err != nil {
		return calendar.State{}, err
	}
	return s, nil
}

func (r *stateRepositoryImpl) List(ctx context.Context) ([]calendar.State, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM states ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var states []calendar.State
	for rows.Next() {
		var s calendar.State
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, rows.Err()
}
