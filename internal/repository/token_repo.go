package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"employee_api/internal/models"
)

type TokenSQLite struct {
	db *sql.DB
}

func NewTokenSQLite(db *sql.DB) *TokenSQLite {
	return &TokenSQLite{db: db}
}

var _ Tokens = (*TokenSQLite)(nil)

const (
	insertTokenSQL        = `INSERT INTO auth_tokens (key, employee_id, created_at) VALUES (?, ?, ?)`
	selectTokenColumns    = `SELECT key, employee_id, created_at FROM auth_tokens`
	selectTokenByEmployee = selectTokenColumns + ` WHERE employee_id = ?`
	selectTokenByKey      = selectTokenColumns + ` WHERE key = ?`
)

// Create stores t. If the employee already owns a token (or the key collides)
// it returns ErrTokenExists.
func (r *TokenSQLite) Create(ctx context.Context, t models.AuthToken) error {
	if _, err := r.db.ExecContext(ctx, insertTokenSQL, t.Key, t.EmployeeID, t.CreatedAt.UTC()); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert token for employee id=%d: %w", t.EmployeeID, ErrTokenExists)
		}
		return fmt.Errorf("insert token for employee id=%d: %w", t.EmployeeID, err)
	}
	return nil
}

// GetByEmployee returns the employee's token or (nil, nil).
func (r *TokenSQLite) GetByEmployee(ctx context.Context, employeeID int) (*models.AuthToken, error) {
	t, err := scanToken(r.db.QueryRowContext(ctx, selectTokenByEmployee, employeeID))
	if err != nil {
		return nil, fmt.Errorf("select token for employee id=%d: %w", employeeID, err)
	}
	return t, nil
}

// GetByKey returns the token with the given key or (nil, nil).
func (r *TokenSQLite) GetByKey(ctx context.Context, key string) (*models.AuthToken, error) {
	t, err := scanToken(r.db.QueryRowContext(ctx, selectTokenByKey, key))
	if err != nil {
		// never echo the key itself
		return nil, fmt.Errorf("select token by key: %w", err)
	}
	return t, nil
}

func scanToken(row *sql.Row) (*models.AuthToken, error) {
	var t models.AuthToken
	if err := row.Scan(&t.Key, &t.EmployeeID, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	t.CreatedAt = t.CreatedAt.UTC()
	return &t, nil
}
