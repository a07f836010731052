package middleware

import (
	"fmt"
	"net/http"

	"github.com/talentbase/competency-backend-go/internal/domain/access"
	"github.com/talentbase/competency-backend-go/internal/handler/http/response"
)

// Require gates a route on the operation's role allow-list.
func Require(permission access.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := access.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !access.Allowed(identity.Role, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but caller role is '%s'", permission, identity.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
