package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StockKeeper is the slice of the inventory service the point of sale needs:
// stock moves out when a sale completes and back in when one is voided.
type StockKeeper interface {
	Dispense(ctx context.Context, medicationID uuid.UUID, quantity int) error
	Restock(ctx context.Context, medicationID uuid.UUID, quantity int) error
}

type Service struct {
	transactions TransactionRepository
	stock        StockKeeper
}

func NewService(transactions TransactionRepository, stock StockKeeper) *Service {
	return &Service{transactions: transactions, stock: stock}
}

func validateTransaction(t *Transaction) error {
	if !validKinds[t.Kind] {
		return fmt.Errorf("invalid kind: %s (must be patient or general)", t.Kind)
	}
	if t.Kind == KindPatient && t.PatientID == nil {
		return fmt.Errorf("patient_id is required for patient transactions")
	}
	if !validStatuses[t.Status] {
		return fmt.Errorf("invalid status: %s (must be completed, pending or confirmed)", t.Status)
	}
	if t.TotalAmount < 0 {
		return fmt.Errorf("total_amount must be non-negative")
	}
	for i, li := range t.Items {
		if strings.TrimSpace(li.Name) == "" {
			return fmt.Errorf("item %d: name is required", i)
		}
		if li.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be positive", i)
		}
		if li.UnitPrice < 0 {
			return fmt.Errorf("item %d: unit_price must be non-negative", i)
		}
	}
	return nil
}

// CreateTransaction records a sale. Line totals and the transaction total
// are derived from the items when left zero. A sale created in completed
// status dispenses stock for every catalog-linked item; insufficient stock
// fails the whole sale.
func (s *Service) CreateTransaction(ctx context.Context, t *Transaction) error {
	if t.Status == "" {
		t.Status = StatusCompleted
	}
	if t.OccurredAt.IsZero() {
		t.OccurredAt = time.Now()
	}
	for _, li := range t.Items {
		if li.LineTotal == 0 {
			li.LineTotal = float64(li.Quantity) * li.UnitPrice
		}
	}
	if t.TotalAmount == 0 {
		for _, li := range t.Items {
			t.TotalAmount += li.LineTotal
		}
	}
	if err := validateTransaction(t); err != nil {
		return err
	}

	if t.Status == StatusCompleted {
		if err := s.dispenseItems(ctx, t.Items); err != nil {
			return err
		}
	}
	if err := s.transactions.Create(ctx, t); err != nil {
		if t.Status == StatusCompleted {
			s.restockItems(ctx, t.Items)
		}
		return err
	}
	return nil
}

func (s *Service) dispenseItems(ctx context.Context, items []*LineItem) error {
	for i, li := range items {
		if li.MedicationID == nil {
			continue
		}
		if err := s.stock.Dispense(ctx, *li.MedicationID, li.Quantity); err != nil {
			// Put back what was already taken so a failed sale is stock-neutral.
			s.restockItems(ctx, items[:i])
			return fmt.Errorf("item %q: %w", li.Name, err)
		}
	}
	return nil
}

func (s *Service) restockItems(ctx context.Context, items []*LineItem) {
	for _, li := range items {
		if li.MedicationID == nil {
			continue
		}
		s.stock.Restock(ctx, *li.MedicationID, li.Quantity)
	}
}

func (s *Service) GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.transactions.GetByID(ctx, id)
}

// UpdateStatus moves a transaction through its lifecycle. Entering completed
// dispenses stock; leaving completed restocks it.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if !validStatuses[status] {
		return fmt.Errorf("invalid status: %s", status)
	}
	t, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("transaction %s: %w", id, err)
	}
	if t.Status == status {
		return nil
	}

	if status == StatusCompleted {
		if err := s.dispenseItems(ctx, t.Items); err != nil {
			return err
		}
	} else if t.Status == StatusCompleted {
		s.restockItems(ctx, t.Items)
	}
	return s.transactions.UpdateStatus(ctx, id, status)
}

// VoidTransaction deletes a transaction; a completed one is restocked first.
func (s *Service) VoidTransaction(ctx context.Context, id uuid.UUID) error {
	t, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("transaction %s: %w", id, err)
	}
	if t.Status == StatusCompleted {
		s.restockItems(ctx, t.Items)
	}
	return s.transactions.Delete(ctx, id)
}

func (s *Service) ListTransactions(ctx context.Context, limit, offset int) ([]*Transaction, int, error) {
	return s.transactions.List(ctx, limit, offset)
}

// Snapshot returns every transaction with line items attached.
func (s *Service) Snapshot(ctx context.Context) ([]*Transaction, error) {
	return s.transactions.ListAll(ctx)
}

// TransactionsBetween returns transactions whose occurred_at falls in
// [from, to), oldest first.
func (s *Service) TransactionsBetween(ctx context.Context, from, to time.Time) ([]*Transaction, error) {
	return s.transactions.ListBetween(ctx, from, to)
}
