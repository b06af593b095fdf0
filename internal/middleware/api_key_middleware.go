package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v4"

	"github.com/elbarryamine/atikia-plugin-server/internal/repositories"
	"github.com/elbarryamine/atikia-plugin-server/internal/utils"
)

type contextKey string

const ContextKeyUserID = contextKey("userID")

/*
APIKeyAuth gates every plugin route. The bearer credential is a
long-lived API key looked up verbatim; there is no expiry or refresh.
On match the owning user ID is placed in the request context.
*/
func APIKeyAuth(keys repositories.PluginAPIKeyRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
				return
			}
			apiKey := strings.TrimPrefix(authHeader, "Bearer ")

			record, err := keys.GetByKey(r.Context(), apiKey)
			if errors.Is(err, pgx.ErrNoRows) {
				utils.RespondError(w, http.StatusUnauthorized, "Invalid API key")
				return
			}
			if err != nil {
				utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, record.UserID.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
