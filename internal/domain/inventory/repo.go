package inventory

import (
	"context"

	"github.com/google/uuid"
)

type MedicationRepository interface {
	Create(ctx context.Context, m *Medication) error
	GetByID(ctx context.Context, id uuid.UUID) (*Medication, error)
	Update(ctx context.Context, m *Medication) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Medication, int, error)
	// ListAll returns the full catalog snapshot for analytics and reports.
	ListAll(ctx context.Context) ([]*Medication, error)
	// AdjustStock changes stock by delta (negative to dispense) and returns
	// the updated row. The adjustment must never take stock below zero.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*Medication, error)
}
