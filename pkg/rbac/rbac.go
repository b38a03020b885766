// Package rbac provides role-based access guards for routes.
package rbac

import (
	"net/http"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/middleware"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/response"
)

// HasRole allows access only to callers whose token carries one of roles.
// Requires middleware.Auth to have run already.
func HasRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := middleware.RoleFromCtx(r.Context())
			if !ok || !allowed[role] {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
