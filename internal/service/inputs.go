package service

import "strings"

// CreateEmployeeInput is the registration payload.
type CreateEmployeeInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"max=255"`
}

func (in CreateEmployeeInput) normalized() CreateEmployeeInput {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	return in
}

// CredentialsInput is the token exchange payload.
type CredentialsInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (in CredentialsInput) normalized() CredentialsInput {
	// passwords are compared verbatim
	in.Email = strings.TrimSpace(in.Email)
	return in
}
