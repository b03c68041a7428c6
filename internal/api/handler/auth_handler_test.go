package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ticketly/ticketing-system/internal/core/domain"
	"github.com/ticketly/ticketing-system/internal/core/ports"
)

type stubAuthService struct {
	registered map[string]string
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{registered: make(map[string]string)}
}

func (s *stubAuthService) Register(_ context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if _, ok := s.registered[username]; ok {
		return nil, domain.ErrUserExists
	}
	s.registered[username] = password
	return &domain.User{ID: username, Username: username}, nil
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, error) {
	if pw, ok := s.registered[username]; !ok || pw != password {
		return "", domain.ErrInvalidCredentials
	}
	return "token-for-" + username, nil
}

func (s *stubAuthService) VerifyToken(tokenString string) (*ports.TokenClaims, error) {
	if !strings.HasPrefix(tokenString, "token-for-") {
		return nil, domain.ErrInvalidToken
	}
	return &ports.TokenClaims{Subject: strings.TrimPrefix(tokenString, "token-for-")}, nil
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h := NewAuthHandler(newStubAuthService())
	c, rec := newTestContext(t, http.MethodPost, "/auth/register", `{"username":"alice","password":"pw"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"username":"alice"`) {
		t.Fatalf("response missing user: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	svc := newStubAuthService()
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register", `{"username":"bob","password":"pw"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	c, _ = newTestContext(t, http.MethodPost, "/auth/register", `{"username":"bob","password":"other"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_MissingField(t *testing.T) {
	h := NewAuthHandler(newStubAuthService())
	c, _ := newTestContext(t, http.MethodPost, "/auth/register", `{"username":"carol"}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_UnknownField(t *testing.T) {
	h := NewAuthHandler(newStubAuthService())
	c, _ := newTestContext(t, http.MethodPost, "/auth/register", `{"username":"dan","password":"pw","role":"admin"}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError for unknown field, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := newStubAuthService()
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register", `{"username":"erin","password":"pw"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"erin","password":"pw"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"token":"token-for-erin"`) {
		t.Fatalf("response missing token: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	svc := newStubAuthService()
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register", `{"username":"frank","password":"pw"}`)
	_ = h.Register(c)

	c, _ = newTestContext(t, http.MethodPost, "/auth/login", `{"username":"frank","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
