package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accesskeep/user-management-api/internal/api/metrics"
	"github.com/accesskeep/user-management-api/internal/core/domain"
)

// RestrictPeerAdminUpdate blocks an admin from modifying another admin
// through the user-update route. The target is fetched by the :id path
// parameter; a missing target is a 404 before any authorization decision.
// Superadmin routes never pass through this guard.
func RestrictPeerAdminUpdate(finder AccountFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			target, err := finder.FindByID(c.Request().Context(), c.Param("id"))
			if err != nil {
				if errors.Is(err, domain.ErrAccountNotFound) {
					return echo.NewHTTPError(http.StatusNotFound, "account not found")
				}
				return err
			}

			caller, _ := c.Get(ContextAccountKey).(*domain.Account)
			if caller == nil {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}

			if target.Role == domain.RoleAdmin && caller.Role == domain.RoleAdmin && caller.ID != target.ID {
				metrics.AuthzDeniedTotal.WithLabelValues("peer_admin").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "admins cannot modify other admins")
			}

			return next(c)
		}
	}
}
