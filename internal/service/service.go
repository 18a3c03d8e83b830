package service

import (
	"context"
	"time"

	"employee_api/internal/models"
	"employee_api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Registration creates and reads employee accounts.
type Registration interface {
	Create(ctx context.Context, in CreateEmployeeInput) (models.Employee, error)
	Get(ctx context.Context, id int) (models.Employee, error)
}

// Authorization exchanges credentials for tokens and resolves tokens back to employees.
type Authorization interface {
	ObtainToken(ctx context.Context, in CredentialsInput) (string, error)
	Authenticate(ctx context.Context, key string) (int, error)
}

// Service aggregates all sub-services.
type Service struct {
	Registration
	Authorization
}

// Options tunes the services. Zero values fall back to defaults.
type Options struct {
	BcryptCost int
	Now        func() time.Time
}

func (o Options) withDefaults() Options {
	if o.BcryptCost < bcrypt.MinCost || o.BcryptCost > bcrypt.MaxCost {
		o.BcryptCost = bcrypt.DefaultCost
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	return &Service{
		Registration:  NewEmployeeService(repos.Employees, opts),
		Authorization: NewAuthService(repos.Employees, repos.Tokens, opts),
	}
}
