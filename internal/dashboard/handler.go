package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/analytics"
	"github.com/clinicdesk/clinicdesk/internal/domain/billing"
	"github.com/clinicdesk/clinicdesk/internal/domain/expense"
	"github.com/clinicdesk/clinicdesk/internal/domain/inventory"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
)

// Snapshot sources. The dashboard reads whole collections and hands them to
// the pure analytics functions; it never mutates anything.

type PatientSource interface {
	Snapshot(ctx context.Context) ([]*patient.Patient, error)
}

type TransactionSource interface {
	Snapshot(ctx context.Context) ([]*billing.Transaction, error)
}

type ExpenseSource interface {
	Snapshot(ctx context.Context) ([]*expense.Expense, error)
}

type InventorySource interface {
	Catalog(ctx context.Context) ([]*inventory.Medication, error)
	StockAlerts(ctx context.Context, lowThreshold, criticalThreshold int) ([]*inventory.StockAlert, error)
}

type Handler struct {
	patients     PatientSource
	transactions TransactionSource
	expenses     ExpenseSource
	inventory    InventorySource

	lowThreshold      int
	criticalThreshold int

	// now is the clock boundary; overridable in tests.
	now func() time.Time
}

func NewHandler(patients PatientSource, transactions TransactionSource, expenses ExpenseSource, inv InventorySource, lowThreshold, criticalThreshold int) *Handler {
	return &Handler{
		patients:          patients,
		transactions:      transactions,
		expenses:          expenses,
		inventory:         inv,
		lowThreshold:      lowThreshold,
		criticalThreshold: criticalThreshold,
		now:               time.Now,
	}
}

// RegisterRoutes mounts the full dashboard. The same read-only set is
// mounted again under the share-token group, so both surfaces stay in sync.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard/overview", h.Overview)
	g.GET("/analytics/diagnoses", h.Diagnoses)
	g.GET("/analytics/medications", h.MedicationRanking)
	g.GET("/analytics/revenue", h.Revenue)
	g.GET("/analytics/demographics", h.DemographicsReport)
	g.GET("/reports/financial", h.FinancialReport)
}

// Overview is the landing dashboard: revenue rollup, today's financial
// summary, stock alerts and patient demographics in one response.
func (h *Handler) Overview(c echo.Context) error {
	ctx := c.Request().Context()
	now := h.now()

	txs, err := h.transactions.Snapshot(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	expenses, err := h.expenses.Snapshot(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	patients, err := h.patients.Snapshot(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	alerts, err := h.inventory.StockAlerts(ctx, h.lowThreshold, h.criticalThreshold)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"revenue":      analytics.RevenueRollup(txs, now),
		"today":        analytics.ExpenseRollup(expenses, txs, now, analytics.ScopeDay),
		"stock_alerts": alerts,
		"demographics": analytics.PatientDemographics(patients, now),
	})
}

func (h *Handler) Diagnoses(c echo.Context) error {
	patients, err := h.patients.Snapshot(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, analytics.DiagnosisFrequency(patients, h.now()))
}

func (h *Handler) MedicationRanking(c echo.Context) error {
	ctx := c.Request().Context()
	txs, err := h.transactions.Snapshot(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	catalog, err := h.inventory.Catalog(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, analytics.MedicationSalesRanking(txs, catalog, h.now()))
}

func (h *Handler) Revenue(c echo.Context) error {
	txs, err := h.transactions.Snapshot(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, analytics.RevenueRollup(txs, h.now()))
}

func (h *Handler) DemographicsReport(c echo.Context) error {
	patients, err := h.patients.Snapshot(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, analytics.PatientDemographics(patients, h.now()))
}

// FinancialReport summarizes one day or one month:
// GET /reports/financial?scope=day|month&date=YYYY-MM-DD (date defaults to
// today).
func (h *Handler) FinancialReport(c echo.Context) error {
	scope := analytics.ScopeKind(c.QueryParam("scope"))
	if scope == "" {
		scope = analytics.ScopeDay
	}
	if scope != analytics.ScopeDay && scope != analytics.ScopeMonth {
		return echo.NewHTTPError(http.StatusBadRequest, "scope must be day or month")
	}

	date := h.now()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		date = parsed
	}

	ctx := c.Request().Context()
	expenses, err := h.expenses.Snapshot(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	txs, err := h.transactions.Snapshot(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, analytics.ExpenseRollup(expenses, txs, date, scope))
}
