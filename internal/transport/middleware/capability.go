package middleware

import (
	"net/http"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/pkg/ctxutil"
)

// RequireCapability rejects requests whose role does not grant c with 403.
// It must run after Auth.
func RequireCapability(c domain.Capability) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := domain.Role(ctxutil.UserRoleFromCtx(r.Context()))
			if !role.Can(c) {
				writeError(w, http.StatusForbidden, "forbidden", "missing capability "+c.String())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
