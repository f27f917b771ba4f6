package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/luxurydeals/catalog-console/internal/core/domain"
	"github.com/luxurydeals/catalog-console/internal/core/ports"
)

type stubIdentityStore struct {
	listAllFn func(ctx context.Context) ([]domain.Account, error)
	createFn  func(ctx context.Context, input ports.CreateAccountInput) (domain.Account, error)
	updateFn  func(ctx context.Context, id int, input ports.UpdateAccountInput) (domain.Account, error)
	removeFn  func(ctx context.Context, id int) error
}

func (s *stubIdentityStore) Seed(ctx context.Context) error { return nil }

func (s *stubIdentityStore) ListAll(ctx context.Context) ([]domain.Account, error) {
	return s.listAllFn(ctx)
}

func (s *stubIdentityStore) Create(ctx context.Context, input ports.CreateAccountInput) (domain.Account, error) {
	return s.createFn(ctx, input)
}

func (s *stubIdentityStore) Update(ctx context.Context, id int, input ports.UpdateAccountInput) (domain.Account, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubIdentityStore) Remove(ctx context.Context, id int) error {
	return s.removeFn(ctx, id)
}

func TestUserHandler_List_Sanitized(t *testing.T) {
	e := echo.New()
	stub := &stubIdentityStore{
		listAllFn: func(ctx context.Context) ([]domain.Account, error) {
			return []domain.Account{
				{ID: 1, Username: "admin", Password: "admin123", Role: domain.RoleAdmin},
				{ID: 2, Username: "sam", Password: "hunter2", Role: domain.RoleViewer},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if strings.Contains(rec.Body.String(), "admin123") || strings.Contains(rec.Body.String(), "hunter2") {
		t.Fatalf("secrets leaked into response: %s", rec.Body.String())
	}

	var resp struct {
		Users []domain.Account `json:"users"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Users) != 2 || resp.Users[1].Username != "sam" {
		t.Fatalf("unexpected users: %+v", resp.Users)
	}
}

func TestUserHandler_Create(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubIdentityStore{
		createFn: func(ctx context.Context, input ports.CreateAccountInput) (domain.Account, error) {
			if input.Username != "casey" || input.Role != domain.RoleEditor {
				t.Fatalf("unexpected input: %+v", input)
			}
			return domain.Account{ID: 3, Username: input.Username, Password: input.Password, Email: input.Email, Role: input.Role}, nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"username":"casey","password":"pw","email":"casey@example.com","role":"editor"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"password"`) {
		t.Fatalf("secret leaked into response: %s", rec.Body.String())
	}
}

func TestUserHandler_Create_UnknownRole(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubIdentityStore{
		createFn: func(ctx context.Context, input ports.CreateAccountInput) (domain.Account, error) {
			t.Fatalf("should not be called")
			return domain.Account{}, nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"username":"casey","password":"pw","role":"superuser"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Update_Partial(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubIdentityStore{
		updateFn: func(ctx context.Context, id int, input ports.UpdateAccountInput) (domain.Account, error) {
			if id != 2 {
				t.Fatalf("unexpected id: %d", id)
			}
			if input.Role == nil || *input.Role != domain.RoleEditor {
				t.Fatalf("expected role change, got %+v", input)
			}
			if input.Username != nil || input.Password != nil || input.Email != nil {
				t.Fatalf("unexpected fields set: %+v", input)
			}
			return domain.Account{ID: 2, Username: "sam", Role: domain.RoleEditor}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"role":"editor"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Update_NotFound(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubIdentityStore{
		updateFn: func(ctx context.Context, id int, input ports.UpdateAccountInput) (domain.Account, error) {
			return domain.Account{}, domain.ErrAccountNotFound
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"role":"viewer"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_Self(t *testing.T) {
	e := echo.New()
	stub := &stubIdentityStore{
		removeFn: func(ctx context.Context, id int) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", 1)
	c.SetParamNames("id")
	c.SetParamValues("1")

	_ = handler.Delete(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_Other(t *testing.T) {
	e := echo.New()
	removed := 0
	stub := &stubIdentityStore{
		removeFn: func(ctx context.Context, id int) error {
			removed = id
			return nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", 1)
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected id 2 removed, got %d", removed)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
