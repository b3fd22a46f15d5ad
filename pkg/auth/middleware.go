package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/adhub/pkg/utils"
	"go.uber.org/zap"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

// AuthMiddleware rejects the request before the handler runs unless the
// bearer credential resolves to a user.
func AuthMiddleware(verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") || token == "" {
				utils.RespondWithCode(w, http.StatusUnauthorized, "unauthenticated", ErrUnauthenticated.Error())
				return
			}

			userID, err := verifier.Verify(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, ErrInvalidCredential), errors.Is(err, ErrUnauthenticated):
					utils.RespondWithCode(w, http.StatusUnauthorized, "invalid_credential", ErrInvalidCredential.Error())
				default:
					zap.L().Error("identity verification failed", zap.Error(err))
					utils.RespondWithError(w, http.StatusBadGateway, "Identity provider unavailable")
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}
