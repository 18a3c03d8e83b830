package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"employee_api/internal/models"
	"employee_api/internal/repository"
)

// EmployeeService registers employees.
type EmployeeService struct {
	employees  repository.Employees
	bcryptCost int
	now        func() time.Time
}

func NewEmployeeService(repo repository.Employees, opts Options) *EmployeeService {
	opts = opts.withDefaults()
	return &EmployeeService{employees: repo, bcryptCost: opts.BcryptCost, now: opts.Now}
}

// Create validates the input, hashes the password and stores a new employee.
// Nothing is written when validation fails or the email is already taken.
func (s *EmployeeService) Create(ctx context.Context, in CreateEmployeeInput) (models.Employee, error) {
	in = in.normalized()
	if err := validateStruct(in); err != nil {
		return models.Employee{}, err
	}

	exists, err := s.employees.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return models.Employee{}, err
	}
	if exists {
		return models.Employee{}, fieldError(ErrDuplicateEmail, "email", msgDuplicateEmail)
	}

	hash, err := hashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return models.Employee{}, err
	}

	e := models.Employee{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	id, err := s.employees.Create(ctx, e)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			// lost a race with a concurrent registration
			return models.Employee{}, fieldError(ErrDuplicateEmail, "email", msgDuplicateEmail)
		}
		return models.Employee{}, err
	}
	e.ID = id
	return e, nil
}

// Get returns the employee with the given id.
func (s *EmployeeService) Get(ctx context.Context, id int) (models.Employee, error) {
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return models.Employee{}, err
	}
	if e == nil {
		return models.Employee{}, fmt.Errorf("employee id=%d: %w", id, ErrEmployeeNotFound)
	}
	return *e, nil
}
