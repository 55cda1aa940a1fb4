package printout

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/clinicdesk/clinicdesk/internal/analytics"
	"github.com/clinicdesk/clinicdesk/internal/domain/billing"
)

// Renderer produces print-ready HTML documents from domain data. Formatting
// lives here so the analytics core stays free of display concerns.
type Renderer struct {
	clinicName string
	invoice    *template.Template
	daily      *template.Template
}

func NewRenderer(clinicName string) *Renderer {
	return &Renderer{
		clinicName: clinicName,
		invoice:    template.Must(template.New("invoice").Funcs(tmplFuncs).Parse(invoiceTmpl)),
		daily:      template.Must(template.New("daily").Funcs(tmplFuncs).Parse(dailyTmpl)),
	}
}

var tmplFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"date":  func(t time.Time) string { return t.Format("02 Jan 2006") },
	"datetime": func(t time.Time) string {
		return t.Format("02 Jan 2006 15:04")
	},
}

// RenderInvoice renders a printable invoice for one transaction.
func (r *Renderer) RenderInvoice(t *billing.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	err := r.invoice.Execute(&buf, struct {
		ClinicName  string
		Transaction *billing.Transaction
	}{r.clinicName, t})
	if err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderDailyReport renders the end-of-day financial summary.
func (r *Renderer) RenderDailyReport(date time.Time, s analytics.FinancialSummary) ([]byte, error) {
	var buf bytes.Buffer
	err := r.daily.Execute(&buf, struct {
		ClinicName string
		Date       time.Time
		Summary    analytics.FinancialSummary
	}{r.clinicName, date, s})
	if err != nil {
		return nil, fmt.Errorf("render daily report: %w", err)
	}
	return buf.Bytes(), nil
}

const invoiceTmpl = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Invoice {{.Transaction.ID}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
.total { font-weight: bold; }
</style>
</head>
<body>
<h1>{{.ClinicName}}</h1>
<h2>Invoice</h2>
<p>Reference: {{.Transaction.ID}}<br>
Date: {{datetime .Transaction.OccurredAt}}<br>
Status: {{.Transaction.Status}}</p>
<table>
<tr><th>Item</th><th>Qty</th><th>Unit Price</th><th>Total</th></tr>
{{range .Transaction.Items}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{money .UnitPrice}}</td><td>{{money .LineTotal}}</td></tr>
{{end}}<tr class="total"><td colspan="3">Total</td><td>{{money .Transaction.TotalAmount}}</td></tr>
</table>
</body>
</html>
`

const dailyTmpl = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Daily Report {{date .Date}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
.net { font-weight: bold; }
</style>
</head>
<body>
<h1>{{.ClinicName}}</h1>
<h2>Daily Financial Report for {{date .Date}}</h2>
<table>
<tr><td>Revenue ({{.Summary.TransactionCount}} transactions)</td><td>{{money .Summary.TotalRevenue}}</td></tr>
<tr><td>Expenses ({{.Summary.ExpenseCount}} entries)</td><td>{{money .Summary.TotalExpenses}}</td></tr>
<tr class="net"><td>Net Profit</td><td>{{money .Summary.NetProfit}}</td></tr>
</table>
{{if .Summary.ExpensesByCategory}}<h3>Expenses by Category</h3>
<table>
<tr><th>Category</th><th>Amount</th></tr>
{{range $cat, $amt := .Summary.ExpensesByCategory}}<tr><td>{{$cat}}</td><td>{{money $amt}}</td></tr>
{{end}}</table>
{{end}}</body>
</html>
`
