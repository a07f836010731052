package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/talentbase/competency-backend-go/internal/domain/access"
	"github.com/talentbase/competency-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose token failed verification or whose
// claims do not form a complete caller identity. Runs after
// jwtauth.Verifier, which parses and verifies the token into the context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, access.ErrInvalidToken)
				return
			}

			if _, err := access.FromContext(r.Context()); err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
