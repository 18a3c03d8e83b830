package handlers

import (
	"context"
	"net/http"

	"employee_api/internal/models"
	"employee_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockRegistration struct {
	createResp models.Employee
	createErr  error
	getResp    models.Employee
	getErr     error

	lastCreate service.CreateEmployeeInput
	lastGetID  int
	createCall int
}

func (m *mockRegistration) Create(_ context.Context, in service.CreateEmployeeInput) (models.Employee, error) {
	m.createCall++
	m.lastCreate = in
	return m.createResp, m.createErr
}

func (m *mockRegistration) Get(_ context.Context, id int) (models.Employee, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}

type mockAuth struct {
	token    string
	tokenErr error
	authID   int
	authErr  error

	lastCredentials service.CredentialsInput
	lastKey         string
}

func (m *mockAuth) ObtainToken(_ context.Context, in service.CredentialsInput) (string, error) {
	m.lastCredentials = in
	return m.token, m.tokenErr
}

func (m *mockAuth) Authenticate(_ context.Context, key string) (int, error) {
	m.lastKey = key
	return m.authID, m.authErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Token "+token)
	}
	return h
}

func validationErr(field, msg string) error {
	fe := service.FieldErrors{}
	fe.Add(field, msg)
	return &service.ValidationError{Fields: fe, Err: service.ErrInvalidInput}
}
