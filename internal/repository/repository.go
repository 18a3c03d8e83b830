package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"employee_api/internal/models"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Sentinel errors for constraint violations the service layer reacts to.
var (
	ErrEmailTaken  = errors.New("email already registered")
	ErrTokenExists = errors.New("token already exists for employee")
)

// Employees persists and looks up employee accounts.
// Lookups return (nil, nil) when nothing matches.
type Employees interface {
	Create(ctx context.Context, e models.Employee) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
	GetByID(ctx context.Context, id int) (*models.Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Tokens persists auth tokens, one per employee.
type Tokens interface {
	Create(ctx context.Context, t models.AuthToken) error
	GetByEmployee(ctx context.Context, employeeID int) (*models.AuthToken, error)
	GetByKey(ctx context.Context, key string) (*models.AuthToken, error)
}

type Repository struct {
	Employees Employees
	Tokens    Tokens
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Employees: NewEmployeeSQLite(db),
		Tokens:    NewTokenSQLite(db),
	}
}

// isUniqueViolation reports whether err comes from a UNIQUE or PRIMARY KEY constraint.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// connection without extended result codes
		return strings.Contains(se.Error(), "UNIQUE constraint failed")
	}
	return false
}
