package handlers

import (
	"errors"
	"net/http"

	"employee_api/internal/models"
	"employee_api/internal/service"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// CreateEmployeeRequest is the registration payload.
type CreateEmployeeRequest struct {
	Email    string `json:"email" form:"email" example:"joaosilva@host.com.br"`
	Password string `json:"password" form:"password" example:"senhateste"`
	Name     string `json:"name" form:"name" example:"João Silva"`
}

// TokenRequest is the credential exchange payload.
type TokenRequest struct {
	Email    string `json:"email" form:"email" example:"joaosilva@host.com.br"`
	Password string `json:"password" form:"password" example:"senhateste"`
}

// EmployeeResponse carries the non-secret employee fields.
type EmployeeResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenResponse carries the issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

func toEmployeeResponse(e models.Employee) EmployeeResponse {
	return EmployeeResponse{Email: e.Email, Name: e.Name}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Register employee
// @Tags         employee
// @Accept       json
// @Produce      json
// @Param        body  body      CreateEmployeeRequest  true  "Employee payload"
// @Success      201   {object}  EmployeeResponse
// @Failure      400   {object}  map[string][]string
// @Router       /employee/create/ [post]
func (h *Handler) createEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if ok := h.bindOrBadRequest(c, &req); !ok {
		return
	}

	e, err := h.services.Registration.Create(c.Request.Context(), service.CreateEmployeeInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.writeServiceError(c, "employee_create_failed", err, "email", req.Email)
		return
	}

	h.log.Infow("employee_created", "id", e.ID, "email", e.Email)
	c.JSON(http.StatusCreated, toEmployeeResponse(e))
}

// @Summary      Obtain auth token
// @Tags         employee
// @Accept       json
// @Produce      json
// @Param        body  body      TokenRequest  true  "Credentials"
// @Success      200   {object}  TokenResponse
// @Failure      400   {object}  map[string][]string
// @Router       /employee/token/ [post]
func (h *Handler) obtainToken(c *gin.Context) {
	var req TokenRequest
	if ok := h.bindOrBadRequest(c, &req); !ok {
		return
	}

	token, err := h.services.Authorization.ObtainToken(c.Request.Context(), service.CredentialsInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeServiceError(c, "employee_token_failed", err, "email", req.Email)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// @Summary      Current employee
// @Tags         employee
// @Produce      json
// @Success      200  {object}  EmployeeResponse
// @Failure      401  {object}  map[string]string
// @Router       /employee/me/ [get]
// @Security     TokenAuth
func (h *Handler) me(c *gin.Context) {
	id := c.GetInt(employeeIDKey)

	e, err := h.services.Registration.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
			return
		}
		h.writeServiceError(c, "employee_me_failed", err, "id", id)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(e))
}
