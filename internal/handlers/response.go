package handlers

import (
	"errors"
	"io"
	"net/http"

	"employee_api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInternal = "internal server error"
)

// bindOrBadRequest decodes the JSON or form body into dst and writes a 400 on failure.
// An empty body decodes to the zero value so field validation can report what is missing.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil && !errors.Is(err, io.EOF) {
		h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusBadRequest, gin.H{service.NonFieldErrors: []string{err.Error()}})
		return false
	}
	return true
}

// writeServiceError maps a service error to a response: validation failures
// become a field-keyed 400, anything else a logged 500.
func (h *Handler) writeServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		h.log.Infow(logKey, append([]interface{}{"err", err}, kv...)...)
		c.JSON(http.StatusBadRequest, verr.Fields)
		return
	}
	h.log.Errorw(logKey, append([]interface{}{"err", err}, kv...)...)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": errInternal})
}
