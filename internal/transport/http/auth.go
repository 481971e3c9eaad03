package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type studentIDKey struct{}

// Authenticate resolves the calling student from a session JWT, supplied
// either as a bearer token or a "token" cookie, and stores the student ID
// in the request context. The payment handlers never trust a client-sent
// student ID.
func Authenticate(secret []byte, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			if c, err := r.Cookie("token"); err == nil {
				raw = c.Value
			}
		}
		if raw == "" {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing session token")
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid session token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid session token")
			return
		}
		studentID, _ := claims["id"].(string)
		if studentID == "" {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid session token")
			return
		}

		ctx := context.WithValue(r.Context(), studentIDKey{}, studentID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StudentIDFromContext returns the authenticated student ID, if any.
func StudentIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(studentIDKey{}).(string)
	return id, ok && id != ""
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
