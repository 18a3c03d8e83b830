package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"employee_api/internal/models"
	"employee_api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// tokenKeyBytes is the amount of randomness in a token key (40 hex chars).
const tokenKeyBytes = 20

// AuthService handles credential checks and token issuance.
type AuthService struct {
	employees  repository.Employees
	tokens     repository.Tokens
	bcryptCost int
	now        func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(employees repository.Employees, tokens repository.Tokens, opts Options) *AuthService {
	opts = opts.withDefaults()
	return &AuthService{
		employees:  employees,
		tokens:     tokens,
		bcryptCost: opts.BcryptCost,
		now:        opts.Now,
	}
}

// ObtainToken validates credentials and returns the employee's token,
// creating it on the first successful exchange.
func (s *AuthService) ObtainToken(ctx context.Context, in CredentialsInput) (string, error) {
	in = in.normalized()
	if err := validateStruct(in); err != nil {
		return "", err
	}

	e, err := s.employees.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if e == nil {
		// spend the same bcrypt work as a real check
		s.burnPasswordCheck(in.Password)
		return "", invalidCredentials(ErrEmployeeNotFound)
	}

	if err := verifyPassword(e.PasswordHash, in.Password); err != nil {
		return "", invalidCredentials(ErrInvalidPassword)
	}

	tok, err := s.tokenFor(ctx, e.ID)
	if err != nil {
		return "", err
	}
	return tok.Key, nil
}

// Authenticate resolves a token key to the owning employee id.
func (s *AuthService) Authenticate(ctx context.Context, key string) (int, error) {
	if key == "" {
		return 0, ErrInvalidToken
	}
	tok, err := s.tokens.GetByKey(ctx, key)
	if err != nil {
		return 0, err
	}
	if tok == nil {
		return 0, ErrInvalidToken
	}
	return tok.EmployeeID, nil
}

// tokenFor returns the existing token for employeeID or creates one.
func (s *AuthService) tokenFor(ctx context.Context, employeeID int) (*models.AuthToken, error) {
	tok, err := s.tokens.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if tok != nil {
		return tok, nil
	}

	key, err := generateKey()
	if err != nil {
		return nil, err
	}
	tok = &models.AuthToken{Key: key, EmployeeID: employeeID, CreatedAt: s.now().UTC()}
	if err := s.tokens.Create(ctx, *tok); err != nil {
		if !errors.Is(err, repository.ErrTokenExists) {
			return nil, err
		}
		// a concurrent exchange created it first
		existing, err := s.tokens.GetByEmployee(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("token for employee id=%d vanished after conflict", employeeID)
		}
		return existing, nil
	}
	return tok, nil
}

func (s *AuthService) burnPasswordCheck(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), s.bcryptCost)
	})
	_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
}

// helper: hash password safely
func hashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fieldError(ErrInvalidInput, "password", msgPasswordTooLong)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: random hex token key
func generateKey() (string, error) {
	b := make([]byte, tokenKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token key: %w", err)
	}
	return hex.EncodeToString(b), nil
}
