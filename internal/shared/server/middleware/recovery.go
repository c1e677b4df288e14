package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/server/respond"
	"portfolio-backend/internal/shared/telemetry"
)

// Recovery turns a handler panic into a 500 error envelope carrying the
// request id, so a failed import can be matched to its log line.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			metrics.IncPanic()
			reqID := RequestIDFromContext(c)
			fields := map[string]any{
				"request_id": reqID,
				"error":      fmt.Sprint(rec),
				"stack":      string(debug.Stack()),
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
			}
			if userID := UserIDFromContext(c); userID != "" {
				fields["user_id"] = userID
			}
			telemetry.Error("http.panic", fields)

			var details any
			if reqID != "" {
				details = gin.H{"requestId": reqID}
			}
			respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", details)
		}()
		c.Next()
	}
}
