package middlware

import (
	"net/http"

	"github.com/ujwegh/gamemart/internal/app/handlers"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminUser = "admin"

// AdminMiddleware guards operator endpoints with HTTP Basic auth checked
// against a bcrypt hash. An empty hash disables the endpoints entirely.
type AdminMiddleware struct {
	passwordHash []byte
}

func NewAdminMiddleware(passwordHash string) AdminMiddleware {
	return AdminMiddleware{passwordHash: []byte(passwordHash)}
}

func (am AdminMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(am.passwordHash) == 0 {
			handlers.WriteJSONErrorResponse(w, "Admin access is disabled", http.StatusForbidden)
			return
		}
		user, password, ok := r.BasicAuth()
		if !ok || user != adminUser {
			w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
			handlers.WriteJSONErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if err := bcrypt.CompareHashAndPassword(am.passwordHash, []byte(password)); err != nil {
			logger.Log.Warn("admin authentication failed", zap.String("remote_addr", r.RemoteAddr))
			w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
			handlers.WriteJSONErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
