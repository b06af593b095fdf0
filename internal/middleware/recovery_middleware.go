package middleware

import (
	"fmt"
	"net/http"

	"github.com/elbarryamine/atikia-plugin-server/internal/utils"
)

// Recovery converts an unhandled panic into a 500 with a generic body.
// The panic value is logged server-side only.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				utils.RespondError(w, http.StatusInternalServerError, "Internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
