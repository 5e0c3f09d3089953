package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"portfolio-web/internal/shared/server/respond"
	"portfolio-web/internal/shared/telemetry"
)

const panicMessage = "Unexpected server error"

// Recovery turns a handler panic into a logged 500. Routes for which isPage
// reports true get a plain-text body; everything else gets the JSON envelope.
// A nil isPage treats every route as JSON.
func Recovery(isPage func(*gin.Context) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			telemetry.Error("http.panic", map[string]any{
				"request_id": RequestIDFromContext(c),
				"error":      rec,
				"stack":      string(debug.Stack()),
				"path":       c.Request.URL.Path,
				"route":      c.FullPath(),
				"method":     c.Request.Method,
			})
			page := isPage != nil && isPage(c)
			if c.Writer.Written() {
				// Part of the body is already out; only the connection can signal failure.
				c.Abort()
				return
			}
			respond.Fail(c, page, http.StatusInternalServerError, respond.CodeInternalError, panicMessage, nil)
		}()
		c.Next()
	}
}
