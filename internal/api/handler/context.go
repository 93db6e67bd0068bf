package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accesskeep/user-management-api/internal/api/middleware"
	"github.com/accesskeep/user-management-api/internal/core/domain"
)

// currentAccount extracts the account injected by the Auth middleware.
// Presence proves the middleware ran; a protected handler reached without it
// is a routing bug and is rejected with 401 rather than dereferencing nil.
func currentAccount(c echo.Context) (*domain.Account, error) {
	account, _ := c.Get(middleware.ContextAccountKey).(*domain.Account)
	if account == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return account, nil
}
