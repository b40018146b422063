package middleware

import (
	"log/slog"
	"net/http"

	"court-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error when a handler aborted without
// writing, and logs recovery details so a paid booking is never lost silently.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		resp, cause, ok := lastPublicError(c)
		if ok && resp.Error.Code == httperr.CodeConfirmationError {
			slog.Error("booking needs manual recovery",
				"request_id", GetRequestID(c),
				"detail", resp.Detail,
				"error", cause)
		}

		if c.Writer.Written() {
			return
		}
		if ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		internalError(c)
	}
}

func lastPublicError(c *gin.Context) (httperr.Response, error, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		e := c.Errors[i]
		if !e.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := e.Meta.(httperr.Response); ok {
			return resp, e.Err, true
		}
	}
	return httperr.Response{}, nil, false
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))
				internalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

func internalError(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Code = httperr.CodeInternal
	resp.Error.Message = "Internal server error"
	c.JSON(http.StatusInternalServerError, resp)
}
