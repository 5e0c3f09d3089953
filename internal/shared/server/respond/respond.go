package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-web/internal/shared/telemetry"
)

// Error codes shared by handlers and middleware.
const (
	CodeNotFound      = "not_found"
	CodeInternalError = "internal_error"
	CodeRateLimited   = "rate_limited"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// JSON writes payload with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// OK writes a 200 JSON response.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}

// Error logs and aborts with the JSON error envelope.
func Error(c *gin.Context, status int, code, message string, details any) {
	logError(c, status, code, message)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Text logs and aborts with a plain-text body, for browser-facing routes.
func Text(c *gin.Context, status int, code, message string) {
	logError(c, status, code, message)

	c.Abort()
	c.String(status, message)
}

// Fail picks Text or Error depending on whether the caller serves a page.
func Fail(c *gin.Context, page bool, status int, code, message string, details any) {
	if page {
		Text(c, status, code, message)
		return
	}
	Error(c, status, code, message, details)
}

func logError(c *gin.Context, status int, code, message string) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if status < http.StatusInternalServerError {
		telemetry.Warn("http.error", fields)
		return
	}
	if len(c.Errors) > 0 {
		fields["errors"] = c.Errors.String()
	}
	telemetry.Error("http.error", fields)
}
