package reporting

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// MeasureDefinition defines a reporting measure with its SQL query.
type MeasureDefinition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SQL         string   `json:"sql"`
	Parameters  []string `json:"parameters"`
}

// MeasureReport holds the results of evaluating a measure.
type MeasureReport struct {
	MeasureID   string                   `json:"measure_id"`
	MeasureName string                   `json:"measure_name"`
	GeneratedAt time.Time                `json:"generated_at"`
	Results     []map[string]interface{} `json:"results"`
	Parameters  map[string]string        `json:"parameters,omitempty"`
}

// PredefinedMeasures is the list of available reporting measures.
var PredefinedMeasures = []MeasureDefinition{
	{
		ID:          "patient-count",
		Name:        "Patient Count",
		Description: "Total registered patients and how many joined in the current month",
		SQL: `SELECT COUNT(*) AS total,
       COALESCE(SUM(CASE WHEN date_trunc('month', created_at) = date_trunc('month', NOW()) THEN 1 ELSE 0 END), 0) AS new_this_month
  FROM patient`,
		Parameters: []string{},
	},
	{
		ID:          "revenue-by-day",
		Name:        "Revenue by Day",
		Description: "Completed-transaction revenue per day over the last 30 days",
		SQL: `SELECT date_trunc('day', occurred_at)::date AS day,
       SUM(total_amount) AS revenue,
       COUNT(*) AS transactions
  FROM pos_transaction
 WHERE status = 'completed' AND occurred_at >= NOW() - INTERVAL '30 days'
 GROUP BY 1 ORDER BY 1`,
		Parameters: []string{},
	},
	{
		ID:          "expenses-by-category",
		Name:        "Expenses by Category",
		Description: "Expense totals per category for the current month",
		SQL: `SELECT category, SUM(amount) AS total, COUNT(*) AS entries
  FROM expense
 WHERE date_trunc('month', expense_date) = date_trunc('month', NOW())
 GROUP BY category ORDER BY total DESC`,
		Parameters: []string{},
	},
	{
		ID:          "top-medications",
		Name:        "Top Medications",
		Description: "Best-selling medications by quantity across all transactions",
		SQL: `SELECT COALESCE(m.name, i.name) AS medication,
       SUM(i.quantity) AS units_sold,
       SUM(i.line_total) AS revenue
  FROM pos_transaction_item i
  LEFT JOIN medication m ON m.id = i.medication_id
 GROUP BY 1 ORDER BY units_sold DESC LIMIT 10`,
		Parameters: []string{},
	},
	{
		ID:          "transaction-status-breakdown",
		Name:        "Transaction Status Breakdown",
		Description: "Count and value of transactions grouped by status",
		SQL: `SELECT status, COUNT(*) AS total, SUM(total_amount) AS value
  FROM pos_transaction
 GROUP BY status ORDER BY total DESC`,
		Parameters: []string{},
	},
}

// Handler provides HTTP handlers for the reporting API.
type Handler struct {
	pool *pgxpool.Pool
}

// NewHandler creates a new reporting handler.
func NewHandler(pool *pgxpool.Pool) *Handler {
	return &Handler{pool: pool}
}

// RegisterRoutes registers the reporting API routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/reports/measures", h.ListMeasures)
	api.GET("/reports/measures/:id/evaluate", h.EvaluateMeasure)
}

// ListMeasures returns all available measure definitions.
func (h *Handler) ListMeasures(c echo.Context) error {
	return c.JSON(http.StatusOK, PredefinedMeasures)
}

// EvaluateMeasure executes a measure's SQL and returns the results.
func (h *Handler) EvaluateMeasure(c echo.Context) error {
	measure := FindMeasure(c.Param("id"))
	if measure == nil {
		return echo.NewHTTPError(http.StatusNotFound, "measure not found")
	}

	params := map[string]string{}
	for _, p := range measure.Parameters {
		if v := c.QueryParam(p); v != "" {
			params[p] = v
		}
	}

	results, err := h.executeSQL(c.Request().Context(), measure.SQL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("query failed: %v", err))
	}

	report := MeasureReport{
		MeasureID:   measure.ID,
		MeasureName: measure.Name,
		GeneratedAt: time.Now(),
		Results:     results,
		Parameters:  params,
	}

	return c.JSON(http.StatusOK, report)
}

// executeSQL runs a SQL query and returns results as a slice of maps.
func (h *Handler) executeSQL(ctx context.Context, sql string) ([]map[string]interface{}, error) {
	rows, err := h.pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fieldDescs := rows.FieldDescriptions()
	var results []map[string]interface{}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}

		row := make(map[string]interface{}, len(fieldDescs))
		for i, fd := range fieldDescs {
			row[string(fd.Name)] = values[i]
		}
		results = append(results, row)
	}

	if results == nil {
		results = []map[string]interface{}{}
	}

	return results, nil
}

// FindMeasure looks up a measure by ID.
func FindMeasure(id string) *MeasureDefinition {
	for i := range PredefinedMeasures {
		if PredefinedMeasures[i].ID == id {
			return &PredefinedMeasures[i]
		}
	}
	return nil
}
