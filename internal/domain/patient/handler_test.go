package patient

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
	return NewHandler(svc), svc
}

func TestHandlerCreatePatient(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	body := `{"full_name":"Amina Diallo","age":29,"gender":"female"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var created Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if created.Gender != GenderFemale {
		t.Errorf("expected gender female, got %s", created.Gender)
	}
}

func TestHandlerCreatePatient_InvalidGender(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	body := `{"full_name":"Amina Diallo","age":29,"gender":"robot"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreatePatient(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 HTTPError, got %v", err)
	}
}

func TestHandlerGetPatient_NotFound(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/00000000-0000-0000-0000-000000000001", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("00000000-0000-0000-0000-000000000001")

	err := h.GetPatient(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404 HTTPError, got %v", err)
	}
}

func TestHandlerAddVisit(t *testing.T) {
	h, svc := newTestHandler()
	e := echo.New()

	p := &Patient{FullName: "Kwame Mensah", Age: 41, Gender: GenderMale}
	svc.CreatePatient(context.Background(), p)

	body := `{"date":"2026-08-10T00:00:00Z","diagnosis":"Malaria"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients/"+p.ID.String()+"/visits", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())

	if err := h.AddVisit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var v Visit
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if v.PatientID != p.ID {
		t.Error("expected visit to be bound to the path patient")
	}
}
