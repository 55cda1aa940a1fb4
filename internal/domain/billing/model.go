package billing

import (
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes patient-linked sales from walk-in/general sales.
type Kind string

const (
	KindPatient Kind = "patient"
	KindGeneral Kind = "general"
)

var validKinds = map[Kind]bool{
	KindPatient: true,
	KindGeneral: true,
}

// Status is the point-of-sale transaction lifecycle state. Only completed
// transactions count toward financial summaries and stock movement.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

var validStatuses = map[Status]bool{
	StatusCompleted: true,
	StatusPending:   true,
	StatusConfirmed: true,
}

// Transaction maps to the pos_transaction table.
type Transaction struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Kind        Kind       `db:"kind" json:"kind"`
	PatientID   *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	TotalAmount float64    `db:"total_amount" json:"total_amount"`
	Status      Status     `db:"status" json:"status"`
	OccurredAt  time.Time  `db:"occurred_at" json:"occurred_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`

	Items []*LineItem `db:"-" json:"items,omitempty"`
}

// LineItem maps to the pos_transaction_item table. MedicationID may be nil
// for free-form items; Name is captured at sale time so renamed or deleted
// catalog entries do not rewrite history.
type LineItem struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	TransactionID uuid.UUID  `db:"transaction_id" json:"transaction_id"`
	MedicationID  *uuid.UUID `db:"medication_id" json:"medication_id,omitempty"`
	Name          string     `db:"name" json:"name"`
	Quantity      int        `db:"quantity" json:"quantity"`
	UnitPrice     float64    `db:"unit_price" json:"unit_price"`
	LineTotal     float64    `db:"line_total" json:"line_total"`
}
