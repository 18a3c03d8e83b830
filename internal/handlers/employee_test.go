package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"employee_api/internal/models"
	"employee_api/internal/service"
)

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return m
}

func TestCreateEmployee_Success(t *testing.T) {
	reg := &mockRegistration{createResp: models.Employee{
		ID: 1, Email: "joaosilva@host.com.br", Name: "João Silva", PasswordHash: "$2a$10$secret",
	}}
	r := newTestRouter(&service.Service{Registration: reg})

	w := postJSON(t, r, "/employee/create/", `{"email":"joaosilva@host.com.br","password":"senhateste","name":"João Silva"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	m := decode(t, w)
	if m["email"] != "joaosilva@host.com.br" || m["name"] != "João Silva" {
		t.Fatalf("unexpected body: %v", m)
	}
	for _, k := range []string{"password", "password_hash", "PasswordHash"} {
		if _, ok := m[k]; ok {
			t.Fatalf("response leaks %q: %v", k, m)
		}
	}
	if strings.Contains(w.Body.String(), "secret") {
		t.Fatalf("response leaks the hash: %s", w.Body.String())
	}

	if reg.lastCreate.Password != "senhateste" || reg.lastCreate.Email != "joaosilva@host.com.br" {
		t.Fatalf("service got %+v", reg.lastCreate)
	}
}

func TestCreateEmployee_FormEncoded(t *testing.T) {
	reg := &mockRegistration{createResp: models.Employee{Email: "a@b.co", Name: "A"}}
	r := newTestRouter(&service.Service{Registration: reg})

	form := url.Values{"email": {"a@b.co"}, "password": {"senhateste"}, "name": {"A"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/employee/create/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if reg.lastCreate.Email != "a@b.co" || reg.lastCreate.Password != "senhateste" {
		t.Fatalf("service got %+v", reg.lastCreate)
	}
}

func TestCreateEmployee_ValidationErrorIsFieldKeyed400(t *testing.T) {
	reg := &mockRegistration{createErr: validationErr("password", "Ensure this field has at least 6 characters.")}
	r := newTestRouter(&service.Service{Registration: reg})

	w := postJSON(t, r, "/employee/create/", `{"email":"a@b.co","password":"se"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var body map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body["password"]) != 1 {
		t.Fatalf("expected password error, got %v", body)
	}
}

func TestCreateEmployee_MalformedBody(t *testing.T) {
	reg := &mockRegistration{}
	r := newTestRouter(&service.Service{Registration: reg})

	w := postJSON(t, r, "/employee/create/", `{"email":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if _, ok := decode(t, w)[service.NonFieldErrors]; !ok {
		t.Fatalf("expected %s in body: %s", service.NonFieldErrors, w.Body.String())
	}
	if reg.createCall != 0 {
		t.Fatalf("service must not be called for an undecodable body")
	}
}

func TestCreateEmployee_EmptyBodyReachesValidation(t *testing.T) {
	reg := &mockRegistration{createErr: validationErr("email", "This field may not be blank.")}
	r := newTestRouter(&service.Service{Registration: reg})

	w := postJSON(t, r, "/employee/create/", ``)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if reg.createCall != 1 {
		t.Fatalf("expected service validation to run, calls=%d", reg.createCall)
	}
}

func TestCreateEmployee_InternalError(t *testing.T) {
	reg := &mockRegistration{createErr: errors.New("db down")}
	r := newTestRouter(&service.Service{Registration: reg})

	w := postJSON(t, r, "/employee/create/", `{"email":"a@b.co","password":"senhateste"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "db down") {
		t.Fatalf("internal error leaked: %s", w.Body.String())
	}
}

func TestObtainToken(t *testing.T) {
	cases := []struct {
		name      string
		auth      *mockAuth
		body      string
		wantCode  int
		wantToken string
	}{
		{
			name:      "success",
			auth:      &mockAuth{token: "tok123"},
			body:      `{"email":"a@b.co","password":"senhateste"}`,
			wantCode:  http.StatusOK,
			wantToken: "tok123",
		},
		{
			name:     "invalid credentials",
			auth:     &mockAuth{tokenErr: validationErr(service.NonFieldErrors, "Unable to authenticate with provided credentials")},
			body:     `{"email":"a@b.co","password":"wrong"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing field",
			auth:     &mockAuth{tokenErr: validationErr("password", "This field may not be blank.")},
			body:     `{"email":"joaosilva","password":""}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad body",
			auth:     &mockAuth{token: "never"},
			body:     `{"email":1}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "storage failure",
			auth:     &mockAuth{tokenErr: errors.New("db down")},
			body:     `{"email":"a@b.co","password":"senhateste"}`,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: tc.auth})

			w := postJSON(t, r, "/employee/token/", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.wantCode, w.Body.String())
			}

			m := decode(t, w)
			tok, ok := m["token"]
			if tc.wantToken == "" {
				if ok {
					t.Fatalf("token must be absent on failure, got %v", m)
				}
				return
			}
			if tok != tc.wantToken {
				t.Fatalf("token=%v, want %q", tok, tc.wantToken)
			}
		})
	}
}

func TestMe(t *testing.T) {
	auth := &mockAuth{authID: 7}
	reg := &mockRegistration{getResp: models.Employee{ID: 7, Email: "a@b.co", Name: "A", PasswordHash: "h"}}
	r := newTestRouter(&service.Service{Registration: reg, Authorization: auth})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/employee/me/", nil)
	req.Header = authHeader("good")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if reg.lastGetID != 7 || auth.lastKey != "good" {
		t.Fatalf("unexpected calls: getID=%d key=%q", reg.lastGetID, auth.lastKey)
	}
	m := decode(t, w)
	if m["email"] != "a@b.co" || m["name"] != "A" || len(m) != 2 {
		t.Fatalf("unexpected body: %v", m)
	}
}

func TestMe_EmployeeGone(t *testing.T) {
	auth := &mockAuth{authID: 7}
	reg := &mockRegistration{getErr: service.ErrEmployeeNotFound}
	r := newTestRouter(&service.Service{Registration: reg, Authorization: auth})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/employee/me/", nil)
	req.Header = authHeader("good")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK || decode(t, w)["status"] != "ok" {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
}
