package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"employee_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	employeeIDKey   = "employeeId"
	requestIDKey    = "requestId"
	requestIDHeader = "X-Request-ID"

	errNoCredentials  = "Authentication credentials were not provided."
	errBadTokenHeader = "Invalid token header."
	errInvalidToken   = "Invalid token."
)

// tokenAuthMiddleware accepts "Authorization: Token <key>" (or "Bearer <key>")
// and stores the owning employee id in the gin context.
func (h *Handler) tokenAuthMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": errNoCredentials})
		return
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || (parts[0] != "Token" && parts[0] != "Bearer") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": errBadTokenHeader})
		return
	}

	employeeID, err := h.services.Authorization.Authenticate(c.Request.Context(), parts[1])
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": errInvalidToken})
			return
		}
		h.log.Errorw("token_auth_failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": errInternal})
		return
	}

	c.Set(employeeIDKey, employeeID)
	c.Next()
}

// requestLogger tags every request with an id and logs one line once it completes.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()

	reqID := c.GetHeader(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Set(requestIDKey, reqID)
	c.Header(requestIDHeader, reqID)

	c.Next()

	h.log.Infow("http_request",
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	)
}
