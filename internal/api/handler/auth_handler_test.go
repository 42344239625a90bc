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

	"github.com/lia-nails/salon-system/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password, role, employeeID string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password, role, employeeID string) (*domain.User, error) {
	return s.registerFn(ctx, email, password, role, employeeID)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newAuthContext(t *testing.T, target, payload string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, role, employeeID string) (*domain.User, error) {
			if email != "ana@lianails.com" || role != "staff" || employeeID != "emp_1" {
				t.Fatalf("unexpected args: %s %s %s", email, role, employeeID)
			}
			return &domain.User{ID: "u1", Email: email, Role: role, EmployeeID: employeeID}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/auth/register",
		`{"email":"ana@lianails.com","password":"Str0ng!pass","role":"staff","employee_id":"emp_1"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "ana@lianails.com" || resp["role"] != "staff" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password_hash"]; leaked {
		t.Fatalf("password hash must never be serialized")
	}
}

func TestAuthHandler_Register_EmailInUse(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, role, employeeID string) (*domain.User, error) {
			return nil, domain.ErrEmailInUse
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newAuthContext(t, "/auth/register",
		`{"email":"ana@lianails.com","password":"Str0ng!pass","role":"staff","employee_id":"emp_1"}`)

	err := handler.Register(c)
	if !errors.Is(err, domain.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestAuthHandler_Register_RejectsUnknownRole(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, role, employeeID string) (*domain.User, error) {
			t.Fatal("service must not be called for an invalid role")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newAuthContext(t, "/auth/register",
		`{"email":"ana@lianails.com","password":"Str0ng!pass","role":"superuser"}`)

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "tok123", &domain.User{ID: "u1", Email: email, Role: "admin"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/auth/login",
		`{"email":"owner@lianails.com","password":"Str0ng!pass"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.AccessToken != "tok123" {
		t.Fatalf("expected token in response, got %q", resp.AccessToken)
	}
	if resp.User.Email != "owner@lianails.com" || resp.User.Role != "admin" {
		t.Fatalf("unexpected user view: %+v", resp.User)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newAuthContext(t, "/auth/login",
		`{"email":"owner@lianails.com","password":"wrong"}`)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatal("service must not be called on a failed bind")
			return "", nil, nil
		},
	})

	c, _ := newAuthContext(t, "/auth/login", `{"email":"owner@lianails.com"}`)

	err := handler.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %v", err)
	}
}
