package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/accesskeep/user-management-api/internal/core/domain"
	"github.com/accesskeep/user-management-api/internal/core/ports"
)

// AccountHandler handles the role-gated account management routes.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// CreateAdmin handles POST /add-admin (superadmin only).
//
// @Summary      Create an admin account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAccountRequest  true  "Admin details"
// @Success      201   {object}  response
// @Failure      400   {object}  response
// @Failure      403   {object}  response
// @Router       /add-admin [post]
func (h *AccountHandler) CreateAdmin(c echo.Context) error {
	return h.create(c, "Admin created successfully", h.service.CreateAdmin)
}

// CreateUser handles POST /add-user (admin only).
//
// @Summary      Create a user account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAccountRequest  true  "User details"
// @Success      201   {object}  response
// @Failure      400   {object}  response
// @Failure      403   {object}  response
// @Router       /add-user [post]
func (h *AccountHandler) CreateUser(c echo.Context) error {
	return h.create(c, "User created successfully", h.service.CreateUser)
}

func (h *AccountHandler) create(c echo.Context, message string, fn func(ctx context.Context, caller *domain.Account, in ports.CreateAccountInput) (*domain.Account, error)) error {
	caller, err := currentAccount(c)
	if err != nil {
		return err
	}

	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := fn(c.Request().Context(), caller, ports.CreateAccountInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, response{
		Success: true,
		Message: message,
		Data:    toAccountResponse(created),
	})
}

// MyUsers handles GET /my-users (admin only).
//
// @Summary      List accounts created by the caller
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Failure      403  {object}  response
// @Router       /my-users [get]
func (h *AccountHandler) MyUsers(c echo.Context) error {
	caller, err := currentAccount(c)
	if err != nil {
		return err
	}

	users, err := h.service.ListMyUsers(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response{
		Success: true,
		Message: "Users fetched successfully",
		Data:    toAccountListResponse(users),
	})
}

// List handles GET /getUsers?page=&limit= (admin and superadmin).
//
// @Summary      List accounts, paginated
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {object}  pagedResponse
// @Failure      403    {object}  response
// @Router       /getUsers [get]
func (h *AccountHandler) List(c echo.Context) error {
	caller, err := currentAccount(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListAccounts(c.Request().Context(), caller, page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pagedResponse{
		Success:     true,
		Message:     "Users fetched successfully",
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
		Data:        toAccountListResponse(result.Items),
	})
}

// Admins handles GET /getAdmins (superadmin only).
//
// @Summary      List all admin accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Failure      403  {object}  response
// @Router       /getAdmins [get]
func (h *AccountHandler) Admins(c echo.Context) error {
	caller, err := currentAccount(c)
	if err != nil {
		return err
	}

	admins, err := h.service.ListAdmins(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response{
		Success: true,
		Message: "Admins fetched successfully",
		Data:    toAccountListResponse(admins),
	})
}

// UpdateAdmin handles PUT /update-admin/:id (superadmin only).
//
// @Summary      Update an admin account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Admin id"
// @Param        body  body      updateAccountRequest  true  "Fields to update"
// @Success      200   {object}  response
// @Failure      403   {object}  response
// @Failure      404   {object}  response
// @Router       /update-admin/{id} [put]
func (h *AccountHandler) UpdateAdmin(c echo.Context) error {
	return h.update(c, domain.RoleAdmin, "Admin updated successfully")
}

// UpdateUser handles PUT /update-user/:id (admin only, ownership-guarded).
//
// @Summary      Update a user account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "User id"
// @Param        body  body      updateAccountRequest  true  "Fields to update"
// @Success      200   {object}  response
// @Failure      403   {object}  response
// @Failure      404   {object}  response
// @Router       /update-user/{id} [put]
func (h *AccountHandler) UpdateUser(c echo.Context) error {
	return h.update(c, domain.RoleUser, "User updated successfully")
}

func (h *AccountHandler) update(c echo.Context, targetRole domain.Role, message string) error {
	caller, err := currentAccount(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateAccount(c.Request().Context(), caller, c.Param("id"), targetRole, ports.UpdateAccountInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response{
		Success: true,
		Message: message,
		Data:    toAccountResponse(updated),
	})
}

// DeleteAdmin handles DELETE /delete-admin/:id (superadmin only).
//
// @Summary      Delete an admin account
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Admin id"
// @Success      200  {object}  response
// @Failure      403  {object}  response
// @Failure      404  {object}  response
// @Router       /delete-admin/{id} [delete]
func (h *AccountHandler) DeleteAdmin(c echo.Context) error {
	caller, err := currentAccount(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAdmin(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response{
		Success: true,
		Message: "Admin deleted successfully",
	})
}
