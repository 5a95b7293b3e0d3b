package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	jwtutil "coursehub/app/jwt"
	"coursehub/app/models"
	"coursehub/app/services"
)

type ctxKey int

const PrincipalKey ctxKey = 1

// Auth resolves the request principal from a Bearer token. Role checks are
// separate wrappers composed on top of RequireAuth.
type Auth struct {
	Signer *jwtutil.Signer
	Users  *services.AuthService
}

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz == "" {
			deny(w, http.StatusForbidden, "token is missing")
			return
		}
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			deny(w, http.StatusUnauthorized, "invalid token")
			return
		}
		userID, err := a.Signer.Parse(parts[1])
		if err != nil {
			if errors.Is(err, jwtutil.ErrExpired) {
				deny(w, http.StatusUnauthorized, "token has expired")
				return
			}
			deny(w, http.StatusUnauthorized, "invalid token")
			return
		}
		// A decoded id whose user no longer exists is reported exactly like
		// a bad signature.
		u, err := a.Users.FindByID(userID)
		if err != nil {
			deny(w, http.StatusUnauthorized, "invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), PrincipalKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole enforces an exact role match on an already-authenticated
// request. At most one role constraint applies to any operation.
func (a *Auth) RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := GetPrincipal(r.Context())
			if u == nil {
				deny(w, http.StatusUnauthorized, "invalid token")
				return
			}
			if u.Role != role {
				deny(w, http.StatusForbidden, "access forbidden: "+string(role)+"s only")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"message":"` + msg + `"}`))
}
