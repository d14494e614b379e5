package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pulsehr/attendance-backend-go/internal/domain/auth"
	"github.com/pulsehr/attendance-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose bearer token is missing, invalid,
// or not an access token. jwtauth.Verifier must run before it.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			switch {
			case err != nil:
				response.Unauthorized(w, err.Error())
			case token == nil, claims["type"] != "access":
				response.HandleError(w, auth.ErrInvalidToken)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
