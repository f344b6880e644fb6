package auth

import (
	"log/slog"
	"net/http"
)

// RoleChecker answers role questions for the middleware layer.
type RoleChecker interface {
	HasAnyRole(userRole string, required []string) bool
	IsAdmin(userRole string) bool
}

type DefaultRoleChecker struct{}

func NewRoleChecker() RoleChecker {
	return &DefaultRoleChecker{}
}

func (c *DefaultRoleChecker) HasAnyRole(userRole string, required []string) bool {
	for _, r := range required {
		if userRole == r {
			return true
		}
	}
	return false
}

func (c *DefaultRoleChecker) IsAdmin(userRole string) bool {
	return userRole == RoleAdmin
}

type RBACAuthorization struct {
	checker RoleChecker
	logger  *slog.Logger
}

func NewRBACAuthorization(checker RoleChecker, logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{
		checker: checker,
		logger:  logger,
	}
}

// RequireRole gates a route to the given roles. Admin always passes: the
// admin dashboard manages every collection.
func (ra *RBACAuthorization) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				ra.logger.Warn("authorization check failed: user not found in context")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if ra.checker.IsAdmin(user.Role) || ra.checker.HasAnyRole(user.Role, roles) {
				next.ServeHTTP(w, r)
				return
			}

			ra.logger.WarnContext(r.Context(), "access denied: insufficient role",
				"user_id", user.ID,
				"user_role", user.Role,
				"required_roles", roles)
			http.Error(w, "Forbidden: insufficient role", http.StatusForbidden)
		})
	}
}

func (ra *RBACAuthorization) RequireHR() func(http.Handler) http.Handler {
	return ra.RequireRole(RoleHR)
}

func (ra *RBACAuthorization) RequireManager() func(http.Handler) http.Handler {
	return ra.RequireRole(RoleManager)
}

func (ra *RBACAuthorization) RequireApprover() func(http.Handler) http.Handler {
	return ra.RequireRole(RoleApprover)
}

func (ra *RBACAuthorization) RequireAdmin() func(http.Handler) http.Handler {
	return ra.RequireRole(RoleAdmin)
}
