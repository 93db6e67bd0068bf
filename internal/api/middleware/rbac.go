package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accesskeep/user-management-api/internal/api/metrics"
	"github.com/accesskeep/user-management-api/internal/core/domain"
)

// RBAC permits the request only when the authenticated account's role is in
// allowedRoles. It is a pure predicate over the context; Auth must run first.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, _ := c.Get(ContextAccountKey).(*domain.Account)
			if account == nil {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			if _, ok := allowed[account.Role]; !ok {
				metrics.AuthzDeniedTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}
