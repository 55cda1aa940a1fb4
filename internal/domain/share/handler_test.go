package share

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func okNext(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestTokenGuard_ValidToken(t *testing.T) {
	svc := NewService(newMockShareRepo())
	h := NewHandler(svc)
	sc, _ := svc.CreateLink(context.Background(), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/share/"+sc.Token+"/overview", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues(sc.Token)

	if err := h.TokenGuard(okNext)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if c.Get("share_config") == nil {
		t.Error("expected share config on context")
	}
}

func TestTokenGuard_UnknownToken(t *testing.T) {
	svc := NewService(newMockShareRepo())
	h := NewHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/share/bogus/overview", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues("bogus")

	err := h.TokenGuard(okNext)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404 HTTPError, got %v", err)
	}
}

func TestTokenGuard_RevokedToken(t *testing.T) {
	svc := NewService(newMockShareRepo())
	h := NewHandler(svc)
	sc, _ := svc.CreateLink(context.Background(), nil)
	svc.RevokeLink(context.Background(), sc.ID)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/share/"+sc.Token+"/overview", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues(sc.Token)

	err := h.TokenGuard(okNext)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404 HTTPError, got %v", err)
	}
}
