package printout

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/analytics"
	"github.com/clinicdesk/clinicdesk/internal/domain/billing"
	"github.com/clinicdesk/clinicdesk/internal/domain/expense"
)

type TransactionSource interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*billing.Transaction, error)
	TransactionsBetween(ctx context.Context, from, to time.Time) ([]*billing.Transaction, error)
}

type ExpenseSource interface {
	Snapshot(ctx context.Context) ([]*expense.Expense, error)
}

type Handler struct {
	renderer     *Renderer
	transactions TransactionSource
	expenses     ExpenseSource
}

func NewHandler(renderer *Renderer, transactions TransactionSource, expenses ExpenseSource) *Handler {
	return &Handler{renderer: renderer, transactions: transactions, expenses: expenses}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/transactions/:id/invoice", h.Invoice)
	api.GET("/reports/daily/print", h.DailyReport)
}

// Invoice returns a print-ready HTML invoice for one transaction.
func (h *Handler) Invoice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	t, err := h.transactions.GetTransaction(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "transaction not found")
	}
	html, err := h.renderer.RenderInvoice(t)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.HTMLBlob(http.StatusOK, html)
}

// DailyReport returns a print-ready end-of-day summary:
// GET /reports/daily/print?date=YYYY-MM-DD (defaults to today).
func (h *Handler) DailyReport(c echo.Context) error {
	date := time.Now()
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
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	txs, err := h.transactions.TransactionsBetween(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	summary := analytics.ExpenseRollup(expenses, txs, date, analytics.ScopeDay)
	html, err := h.renderer.RenderDailyReport(date, summary)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.HTMLBlob(http.StatusOK, html)
}
