package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/ideabank-backend/internal/auth"
	"github.com/heartmarshall/ideabank-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	Verify(ctx context.Context, token string) (auth.Identity, error)
}

// Auth requires a bearer credential. A missing credential is rejected with
// 401; one that fails verification with 400 invalid_token.
func Auth(verifier tokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}
			id, err := verifier.Verify(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_token", "invalid bearer token")
				return
			}
			recordSubject(r.Context(), id.SubjectID)
			ctx := ctxutil.WithUserID(r.Context(), id.SubjectID)
			ctx = ctxutil.WithUserRole(ctx, id.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
