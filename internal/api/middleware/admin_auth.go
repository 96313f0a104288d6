package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/terminalstudios/booking-service/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

const msgAdminTokenRequired = "admin token required"

// Logger is the logging interface the middleware expects
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth guards admin routes with a static token header.
// Comparison is constant time so the token cannot be probed byte by byte.
func AdminAuth(token string, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(adminTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				logger.Warn("%s %s - Rejected admin request", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgAdminTokenRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
