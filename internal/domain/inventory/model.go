package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Medication maps to the medication table (the clinic's drug/product catalog).
type Medication struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Category  *string   `db:"category" json:"category,omitempty"`
	UnitPrice float64   `db:"unit_price" json:"unit_price"`
	CostPrice *float64  `db:"cost_price" json:"cost_price,omitempty"`
	Stock     int       `db:"stock" json:"stock"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// StockLevel classifies how close a medication is to running out.
type StockLevel string

const (
	StockOK       StockLevel = "ok"
	StockLow      StockLevel = "low"
	StockCritical StockLevel = "critical"
)

// Level classifies the medication's current stock against the configured
// thresholds. Critical wins when the thresholds overlap.
func (m *Medication) Level(lowThreshold, criticalThreshold int) StockLevel {
	switch {
	case m.Stock <= criticalThreshold:
		return StockCritical
	case m.Stock <= lowThreshold:
		return StockLow
	default:
		return StockOK
	}
}

// StockAlert is a medication at or below a stock threshold.
type StockAlert struct {
	MedicationID uuid.UUID  `json:"medication_id"`
	Name         string     `json:"name"`
	Stock        int        `json:"stock"`
	Level        StockLevel `json:"level"`
}
