package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

type Service struct {
	medications MedicationRepository
}

func NewService(meds MedicationRepository) *Service {
	return &Service{medications: meds}
}

func validateMedication(m *Medication) error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.UnitPrice < 0 {
		return fmt.Errorf("unit_price must be >= 0")
	}
	if m.CostPrice != nil && *m.CostPrice < 0 {
		return fmt.Errorf("cost_price must be >= 0")
	}
	if m.Stock < 0 {
		return fmt.Errorf("stock must be >= 0")
	}
	return nil
}

func (s *Service) CreateMedication(ctx context.Context, m *Medication) error {
	if err := validateMedication(m); err != nil {
		return err
	}
	return s.medications.Create(ctx, m)
}

func (s *Service) GetMedication(ctx context.Context, id uuid.UUID) (*Medication, error) {
	return s.medications.GetByID(ctx, id)
}

func (s *Service) UpdateMedication(ctx context.Context, m *Medication) error {
	if err := validateMedication(m); err != nil {
		return err
	}
	return s.medications.Update(ctx, m)
}

func (s *Service) DeleteMedication(ctx context.Context, id uuid.UUID) error {
	return s.medications.Delete(ctx, id)
}

func (s *Service) ListMedications(ctx context.Context, limit, offset int) ([]*Medication, int, error) {
	return s.medications.List(ctx, limit, offset)
}

func (s *Service) Catalog(ctx context.Context) ([]*Medication, error) {
	return s.medications.ListAll(ctx)
}

// AdjustStock applies a stock delta (positive restock, negative dispense).
func (s *Service) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*Medication, error) {
	if delta == 0 {
		return nil, fmt.Errorf("delta must be non-zero")
	}
	return s.medications.AdjustStock(ctx, id, delta)
}

// Dispense removes quantity units of stock for a sale. Fails when the
// medication is unknown or on-hand stock is insufficient.
func (s *Service) Dispense(ctx context.Context, id uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	_, err := s.medications.AdjustStock(ctx, id, -quantity)
	return err
}

// Restock adds quantity units back, the inverse of Dispense.
func (s *Service) Restock(ctx context.Context, id uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	_, err := s.medications.AdjustStock(ctx, id, quantity)
	return err
}

// StockAlerts returns every medication at or below the low threshold,
// critical items first, then by remaining stock ascending.
func (s *Service) StockAlerts(ctx context.Context, lowThreshold, criticalThreshold int) ([]*StockAlert, error) {
	meds, err := s.medications.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var critical, low []*StockAlert
	for _, m := range meds {
		switch m.Level(lowThreshold, criticalThreshold) {
		case StockCritical:
			critical = append(critical, &StockAlert{
				MedicationID: m.ID, Name: m.Name, Stock: m.Stock, Level: StockCritical,
			})
		case StockLow:
			low = append(low, &StockAlert{
				MedicationID: m.ID, Name: m.Name, Stock: m.Stock, Level: StockLow,
			})
		}
	}

	sort.SliceStable(critical, func(i, j int) bool { return critical[i].Stock < critical[j].Stock })
	sort.SliceStable(low, func(i, j int) bool { return low[i].Stock < low[j].Stock })

	alerts := make([]*StockAlert, 0, len(critical)+len(low))
	alerts = append(alerts, critical...)
	alerts = append(alerts, low...)
	return alerts, nil
}
