package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pixiapp/pixi-go/internal/apperror"
	"github.com/pixiapp/pixi-go/internal/token"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller attached to the request context.
// It carries only the immutable token claims; handlers re-fetch the profile
// from the store when they need current data or the admin flag.
type Identity struct {
	UserID string
	Email  string
}

// TokenCheck returns middleware that extracts and verifies the bearer token.
// The token is read from the x-access-token header; the standard
// Authorization Bearer form is accepted as well. A missing token rejects with
// 403, a failed verification with 401.
func TokenCheck(codec *token.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r)
			if raw == "" {
				writeAuthError(w, apperror.New(apperror.NoToken, "no token provided"))
				return
			}

			claims, err := codec.Verify(raw)
			if err != nil {
				writeAuthError(w, apperror.From(err))
				return
			}

			ident := Identity{UserID: claims.UserID, Email: claims.Subject}
			ctx := context.WithValue(r.Context(), identityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the authenticated identity set by TokenCheck.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(identityKey).(Identity)
	return ident, ok
}

func extractToken(r *http.Request) string {
	if t := r.Header.Get("x-access-token"); t != "" {
		return t
	}
	if bearer, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		return bearer
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, ae *apperror.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ae.Status())
	json.NewEncoder(w).Encode(map[string]any{"success": false, "message": ae.Message})
}
