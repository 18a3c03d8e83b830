package service

import (
	"context"
	"time"

	"employee_api/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// mockEmployees is a lightweight in-test mock for repository.Employees.
type mockEmployees struct {
	CreateFn        func(e models.Employee) (int, error)
	GetByEmailFn    func(email string) (*models.Employee, error)
	GetByIDFn       func(id int) (*models.Employee, error)
	ExistsByEmailFn func(email string) (bool, error)

	created  []models.Employee
	getCalls []string
}

func (m *mockEmployees) Create(_ context.Context, e models.Employee) (int, error) {
	m.created = append(m.created, e)
	return m.CreateFn(e)
}

func (m *mockEmployees) GetByEmail(_ context.Context, email string) (*models.Employee, error) {
	m.getCalls = append(m.getCalls, email)
	return m.GetByEmailFn(email)
}

func (m *mockEmployees) GetByID(_ context.Context, id int) (*models.Employee, error) {
	return m.GetByIDFn(id)
}

func (m *mockEmployees) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return m.ExistsByEmailFn(email)
}

// mockTokens keeps tokens in a map keyed by employee id.
type mockTokens struct {
	byEmployee map[int]models.AuthToken

	createErr  error
	getErr     error
	createCall int
}

func newMockTokens() *mockTokens {
	return &mockTokens{byEmployee: map[int]models.AuthToken{}}
}

func (m *mockTokens) Create(_ context.Context, t models.AuthToken) error {
	m.createCall++
	if m.createErr != nil {
		return m.createErr
	}
	m.byEmployee[t.EmployeeID] = t
	return nil
}

func (m *mockTokens) GetByEmployee(_ context.Context, employeeID int) (*models.AuthToken, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	t, ok := m.byEmployee[employeeID]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (m *mockTokens) GetByKey(_ context.Context, key string) (*models.AuthToken, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, t := range m.byEmployee {
		if t.Key == key {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

var fixedNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func testOptions() Options {
	return Options{BcryptCost: bcrypt.MinCost, Now: func() time.Time { return fixedNow }}
}

func mustHash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}
