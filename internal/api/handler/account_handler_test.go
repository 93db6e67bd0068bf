package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/accesskeep/user-management-api/internal/api/middleware"
	"github.com/accesskeep/user-management-api/internal/core/domain"
	"github.com/accesskeep/user-management-api/internal/core/ports"
)

type stubAccountService struct {
	createAdminFn func(ctx context.Context, caller *domain.Account, in ports.CreateAccountInput) (*domain.Account, error)
	createUserFn  func(ctx context.Context, caller *domain.Account, in ports.CreateAccountInput) (*domain.Account, error)
	listMyUsersFn func(ctx context.Context, caller *domain.Account) ([]*domain.Account, error)
	listFn        func(ctx context.Context, caller *domain.Account, page, limit int) (*ports.AccountPage, error)
	listAdminsFn  func(ctx context.Context, caller *domain.Account) ([]*domain.Account, error)
	updateFn      func(ctx context.Context, caller *domain.Account, targetID string, targetRole domain.Role, in ports.UpdateAccountInput) (*domain.Account, error)
	deleteAdminFn func(ctx context.Context, caller *domain.Account, targetID string) error
}

func (s *stubAccountService) CreateAdmin(ctx context.Context, caller *domain.Account, in ports.CreateAccountInput) (*domain.Account, error) {
	return s.createAdminFn(ctx, caller, in)
}

func (s *stubAccountService) CreateUser(ctx context.Context, caller *domain.Account, in ports.CreateAccountInput) (*domain.Account, error) {
	return s.createUserFn(ctx, caller, in)
}

func (s *stubAccountService) ListMyUsers(ctx context.Context, caller *domain.Account) ([]*domain.Account, error) {
	return s.listMyUsersFn(ctx, caller)
}

func (s *stubAccountService) ListAccounts(ctx context.Context, caller *domain.Account, page, limit int) (*ports.AccountPage, error) {
	return s.listFn(ctx, caller, page, limit)
}

func (s *stubAccountService) ListAdmins(ctx context.Context, caller *domain.Account) ([]*domain.Account, error) {
	return s.listAdminsFn(ctx, caller)
}

func (s *stubAccountService) UpdateAccount(ctx context.Context, caller *domain.Account, targetID string, targetRole domain.Role, in ports.UpdateAccountInput) (*domain.Account, error) {
	return s.updateFn(ctx, caller, targetID, targetRole, in)
}

func (s *stubAccountService) DeleteAdmin(ctx context.Context, caller *domain.Account, targetID string) error {
	return s.deleteAdminFn(ctx, caller, targetID)
}

func newAuthedContext(e *echo.Echo, method, target, body string, caller *domain.Account) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != nil {
		c.Set(middleware.ContextAccountKey, caller)
	}
	return c, rec
}

func TestAccountHandler_CreateAdmin_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	superadmin := &domain.Account{ID: "root", Role: domain.RoleSuperadmin}
	stub := &stubAccountService{
		createAdminFn: func(ctx context.Context, caller *domain.Account, in ports.CreateAccountInput) (*domain.Account, error) {
			if caller.ID != "root" {
				t.Fatalf("unexpected caller: %+v", caller)
			}
			if in.Username != "alice" || in.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Account{ID: "adm-1", Username: in.Username, Email: in.Email, Role: domain.RoleAdmin, CreatedBy: caller.ID}, nil
		},
	}
	handler := NewAccountHandler(stub)

	c, rec := newAuthedContext(e, http.MethodPost, "/add-admin",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`, superadmin)
	if err := handler.CreateAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["message"] != "Admin created successfully" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["role"] != "admin" {
		t.Fatalf("unexpected data: %+v", data)
	}
}

func TestAccountHandler_CreateUser_MissingCaller(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAccountService{
		createUserFn: func(ctx context.Context, caller *domain.Account, in ports.CreateAccountInput) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAccountHandler(stub)

	c, _ := newAuthedContext(e, http.MethodPost, "/add-user",
		`{"username":"yuri","email":"yuri@example.com","password":"secret1"}`, nil)
	err := handler.CreateUser(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAccountHandler_List_PassesPagination(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	admin := &domain.Account{ID: "adm-x", Role: domain.RoleAdmin}
	stub := &stubAccountService{
		listFn: func(ctx context.Context, caller *domain.Account, page, limit int) (*ports.AccountPage, error) {
			if page != 2 || limit != 5 {
				t.Fatalf("expected page=2 limit=5, got %d %d", page, limit)
			}
			return &ports.AccountPage{
				Items:       []*domain.Account{{ID: "usr-1", Username: "yuri", Role: domain.RoleUser}},
				Total:       12,
				TotalPages:  3,
				CurrentPage: 2,
			}, nil
		},
	}
	handler := NewAccountHandler(stub)

	c, rec := newAuthedContext(e, http.MethodGet, "/getUsers?page=2&limit=5", "", admin)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["totalPages"] != float64(3) || resp["currentPage"] != float64(2) {
		t.Fatalf("unexpected pagination fields: %+v", resp)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("unexpected data: %+v", resp["data"])
	}
}

func TestAccountHandler_MyUsers_Success(t *testing.T) {
	e := echo.New()
	admin := &domain.Account{ID: "adm-x", Role: domain.RoleAdmin}
	stub := &stubAccountService{
		listMyUsersFn: func(ctx context.Context, caller *domain.Account) ([]*domain.Account, error) {
			return []*domain.Account{{ID: "usr-1", Username: "yuri", Role: domain.RoleUser, CreatedBy: "adm-x"}}, nil
		},
	}
	handler := NewAccountHandler(stub)

	c, rec := newAuthedContext(e, http.MethodGet, "/my-users", "", admin)
	if err := handler.MyUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("unexpected data: %+v", resp["data"])
	}
}

func TestAccountHandler_UpdateRoutesTargetRole(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	superadmin := &domain.Account{ID: "root", Role: domain.RoleSuperadmin}

	var gotRole domain.Role
	stub := &stubAccountService{
		updateFn: func(ctx context.Context, caller *domain.Account, targetID string, targetRole domain.Role, in ports.UpdateAccountInput) (*domain.Account, error) {
			gotRole = targetRole
			return &domain.Account{ID: targetID, Username: in.Username, Email: in.Email, Role: targetRole}, nil
		},
	}
	handler := NewAccountHandler(stub)

	c, _ := newAuthedContext(e, http.MethodPut, "/update-admin/adm-1",
		`{"username":"alice","email":"alice@example.com"}`, superadmin)
	c.SetParamNames("id")
	c.SetParamValues("adm-1")
	if err := handler.UpdateAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotRole != domain.RoleAdmin {
		t.Fatalf("expected admin target role, got %s", gotRole)
	}

	admin := &domain.Account{ID: "adm-x", Role: domain.RoleAdmin}
	c, _ = newAuthedContext(e, http.MethodPut, "/update-user/usr-1",
		`{"username":"yuri","email":"yuri@example.com"}`, admin)
	c.SetParamNames("id")
	c.SetParamValues("usr-1")
	if err := handler.UpdateUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotRole != domain.RoleUser {
		t.Fatalf("expected user target role, got %s", gotRole)
	}
}

func TestAccountHandler_DeleteAdmin_Success(t *testing.T) {
	e := echo.New()
	superadmin := &domain.Account{ID: "root", Role: domain.RoleSuperadmin}
	stub := &stubAccountService{
		deleteAdminFn: func(ctx context.Context, caller *domain.Account, targetID string) error {
			if targetID != "adm-1" {
				t.Fatalf("unexpected target: %s", targetID)
			}
			return nil
		},
	}
	handler := NewAccountHandler(stub)

	c, rec := newAuthedContext(e, http.MethodDelete, "/delete-admin/adm-1", "", superadmin)
	c.SetParamNames("id")
	c.SetParamValues("adm-1")
	if err := handler.DeleteAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Admin deleted successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAccountHandler_DeleteAdmin_NotFound(t *testing.T) {
	e := echo.New()
	superadmin := &domain.Account{ID: "root", Role: domain.RoleSuperadmin}
	stub := &stubAccountService{
		deleteAdminFn: func(ctx context.Context, caller *domain.Account, targetID string) error {
			return domain.ErrAccountNotFound
		},
	}
	handler := NewAccountHandler(stub)

	c, _ := newAuthedContext(e, http.MethodDelete, "/delete-admin/ghost", "", superadmin)
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	if err := handler.DeleteAdmin(c); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
