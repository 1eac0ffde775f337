package playlists

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims mirrors the access tokens issued by the auth service.
type TokenClaims struct {
	UserID    string `json:"uid"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type ctxUserIDKey struct{}

// identityMiddleware resolves the acting user: a trusted gateway sets
// X-User-Id; direct callers present a Bearer access token instead.
func identityMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get("X-User-Id"))

			if userID == "" {
				auth := r.Header.Get("Authorization")
				if auth == "" {
					writeError(w, http.StatusUnauthorized, "missing user context")
					return
				}
				parts := strings.SplitN(auth, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
					writeError(w, http.StatusUnauthorized, "invalid Authorization header")
					return
				}

				claims := &TokenClaims{}
				token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
					return secret, nil
				})
				if err != nil || !token.Valid || claims.TokenType != "access" || claims.UserID == "" {
					writeError(w, http.StatusUnauthorized, "invalid token")
					return
				}
				userID = claims.UserID
			}

			ctx := context.WithValue(r.Context(), ctxUserIDKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userIDFromContext(r *http.Request) (string, bool) {
	v := r.Context().Value(ctxUserIDKey{})
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}
