package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *Service) {
	svc := newTestService()
	return NewHandler(svc, 5, 2), svc
}

func TestHandlerCreateMedication(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	body := `{"name":"Paracetamol","unit_price":2.5,"stock":100}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/medications", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateMedication(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var created Medication
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if created.Name != "Paracetamol" {
		t.Errorf("expected name 'Paracetamol', got %s", created.Name)
	}
}

func TestHandlerCreateMedication_Invalid(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	body := `{"unit_price":2.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/medications", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateMedication(c)
	if err == nil {
		t.Fatal("expected error for missing name")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 HTTPError, got %v", err)
	}
}

func TestHandlerGetMedication_NotFound(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/medications/00000000-0000-0000-0000-000000000001", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("00000000-0000-0000-0000-000000000001")

	err := h.GetMedication(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404 HTTPError, got %v", err)
	}
}

func TestHandlerGetMedication_BadID(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/medications/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.GetMedication(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 HTTPError, got %v", err)
	}
}

func TestHandlerAdjustStock(t *testing.T) {
	h, svc := newTestHandler()
	e := echo.New()

	m := &Medication{Name: "Ibuprofen", UnitPrice: 3, Stock: 10}
	svc.CreateMedication(context.Background(), m)

	body := `{"delta":-3}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/medications/"+m.ID.String()+"/stock", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(m.ID.String())

	if err := h.AdjustStock(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var updated Medication
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if updated.Stock != 7 {
		t.Errorf("expected stock 7, got %d", updated.Stock)
	}
}

func TestHandlerStockAlerts(t *testing.T) {
	h, svc := newTestHandler()
	e := echo.New()

	svc.CreateMedication(context.Background(), &Medication{Name: "Plenty", UnitPrice: 1, Stock: 50})
	svc.CreateMedication(context.Background(), &Medication{Name: "Low", UnitPrice: 1, Stock: 4})
	svc.CreateMedication(context.Background(), &Medication{Name: "Critical", UnitPrice: 1, Stock: 1})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/alerts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.StockAlerts(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var alerts []*StockAlert
	if err := json.Unmarshal(rec.Body.Bytes(), &alerts); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}
	if alerts[0].Name != "Critical" {
		t.Errorf("expected critical item first, got %s", alerts[0].Name)
	}
}
