package middlware

import (
	"context"
	"net/http"
	"strings"
	"time"

	appContext "github.com/ujwegh/gamemart/internal/app/context"
	"github.com/ujwegh/gamemart/internal/app/handlers"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"github.com/ujwegh/gamemart/internal/app/service"
	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

type AuthMiddleware struct {
	tokenService   service.TokenService
	userService    service.UserService
	contextTimeout time.Duration
}

func NewAuthMiddleware(tokenService service.TokenService, userService service.UserService, contextTimeoutSec int) AuthMiddleware {
	return AuthMiddleware{
		tokenService:   tokenService,
		userService:    userService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// Authenticate resolves the bearer token to a stored user and puts it into
// the request context.
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), am.contextTimeout)
		defer cancel()

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			handlers.WriteJSONErrorResponse(w, "Unauthorized: Missing token", http.StatusUnauthorized)
			return
		}
		token := strings.TrimPrefix(authHeader, bearerPrefix)

		telegramID, err := am.tokenService.GetTelegramID(token)
		if err != nil {
			logger.Log.Warn("failed to parse token", zap.Error(err))
			handlers.WriteJSONErrorResponse(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		user, err := am.userService.GetByTelegramID(ctx, telegramID)
		if err != nil {
			logger.Log.Warn("failed to get user", zap.Int64("telegram_id", telegramID), zap.Error(err))
			handlers.WriteJSONErrorResponse(w, "Unauthorized: User not found", http.StatusUnauthorized)
			return
		}

		if err := appContext.GetContextError(ctx); err != nil {
			handlers.PrepareError(w, err)
			return
		}

		r = r.WithContext(appContext.WithUser(r.Context(), user))
		next.ServeHTTP(w, r)
	})
}
