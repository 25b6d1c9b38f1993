package employee

import (
	"context"
	"errors"
	"time"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// Employee carries only what the absence core needs; full employee
// management lives outside this service and is reached by id.
type Employee struct {
	ID        int64
	FirstName string
	LastName  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeRepository resolves employee references.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (Employee, error)
}
