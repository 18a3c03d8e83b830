package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"employee_api/internal/models"
)

type EmployeeSQLite struct {
	db *sql.DB
}

func NewEmployeeSQLite(db *sql.DB) *EmployeeSQLite {
	return &EmployeeSQLite{db: db}
}

// Ensure implementation of Employees interface at compile time.
var _ Employees = (*EmployeeSQLite)(nil)

const (
	insertEmployeeSQL      = `INSERT INTO employees (email, name, password_hash, created_at) VALUES (?, ?, ?, ?)`
	selectEmployeeColumns  = `SELECT id, email, name, password_hash, created_at FROM employees`
	selectEmployeeByEmail  = selectEmployeeColumns + ` WHERE email = ?`
	selectEmployeeByID     = selectEmployeeColumns + ` WHERE id = ?`
	existsEmployeeEmailSQL = `SELECT EXISTS(SELECT 1 FROM employees WHERE email = ?)`
)

// Create inserts a new employee and returns its ID.
// A duplicate email yields ErrEmailTaken.
func (r *EmployeeSQLite) Create(ctx context.Context, e models.Employee) (int, error) {
	res, err := r.db.ExecContext(ctx, insertEmployeeSQL, e.Email, e.Name, e.PasswordHash, e.CreatedAt.UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert employee %q: %w", e.Email, ErrEmailTaken)
		}
		return 0, fmt.Errorf("insert employee %q: %w", e.Email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for employee %q: %w", e.Email, err)
	}
	return int(lastID), nil
}

// GetByEmail fetches an employee by exact email. Returns (nil, nil) if not found.
func (r *EmployeeSQLite) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	e, err := scanEmployee(r.db.QueryRowContext(ctx, selectEmployeeByEmail, email))
	if err != nil {
		return nil, fmt.Errorf("select employee %q: %w", email, err)
	}
	return e, nil
}

// GetByID fetches an employee by primary key. Returns (nil, nil) if not found.
func (r *EmployeeSQLite) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	e, err := scanEmployee(r.db.QueryRowContext(ctx, selectEmployeeByID, id))
	if err != nil {
		return nil, fmt.Errorf("select employee id=%d: %w", id, err)
	}
	return e, nil
}

func (r *EmployeeSQLite) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsEmployeeEmailSQL, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check employee %q exists: %w", email, err)
	}
	return exists, nil
}

func scanEmployee(row *sql.Row) (*models.Employee, error) {
	var e models.Employee
	if err := row.Scan(&e.ID, &e.Email, &e.Name, &e.PasswordHash, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	e.CreatedAt = e.CreatedAt.UTC()
	return &e, nil
}
