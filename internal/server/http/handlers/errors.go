package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/userservice/internal/domain/errors"
	"github.com/polkiloo/userservice/internal/server/http/dto"
)

const codeBadRequest = "BadRequest"

var now = time.Now

// writeError renders err as an ErrorResponse. Domain errors carry their own
// status and code; anything else is reported as an internal error.
func writeError(c *gin.Context, err error) {
	domainErr, ok := domainErrors.As(err)
	if !ok {
		_ = c.Error(err)
		abortWith(c, http.StatusInternalServerError, "InternalServerError", http.StatusText(http.StatusInternalServerError), nil)
		return
	}

	var fieldErrors []dto.FieldError
	if len(domainErr.Violations) > 0 {
		fieldErrors = make([]dto.FieldError, 0, len(domainErr.Violations))
		for _, v := range domainErr.Violations {
			fieldErrors = append(fieldErrors, dto.FieldError{
				ObjectName:     v.ObjectName,
				Field:          v.Field,
				RejectedValue:  v.RejectedValue,
				DefaultMessage: v.DefaultMessage,
				Code:           v.Code,
			})
		}
	}
	abortWith(c, domainErr.Kind.Status(), domainErr.Kind.Code(), domainErr.Message, fieldErrors)
}

func writeBadRequest(c *gin.Context, message string) {
	abortWith(c, http.StatusBadRequest, codeBadRequest, message, nil)
}

func abortWith(c *gin.Context, status int, code, message string, fieldErrors []dto.FieldError) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Timestamp: now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Request.URL.Path,
		ErrorCode: code,
		Errors:    fieldErrors,
	})
}
