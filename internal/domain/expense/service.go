package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	expenses ExpenseRepository
}

func NewService(expenses ExpenseRepository) *Service {
	return &Service{expenses: expenses}
}

func validateExpense(e *Expense) error {
	if !validCategories[e.Category] {
		return fmt.Errorf("invalid category: %s", e.Category)
	}
	if !validPaymentMethods[e.PaymentMethod] {
		return fmt.Errorf("invalid payment_method: %s", e.PaymentMethod)
	}
	if e.Amount < 0 {
		return fmt.Errorf("amount must be non-negative")
	}
	return nil
}

func (s *Service) CreateExpense(ctx context.Context, e *Expense) error {
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	if e.PaymentMethod == "" {
		e.PaymentMethod = PaymentCash
	}
	if err := validateExpense(e); err != nil {
		return err
	}
	return s.expenses.Create(ctx, e)
}

func (s *Service) GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return s.expenses.GetByID(ctx, id)
}

func (s *Service) UpdateExpense(ctx context.Context, e *Expense) error {
	if err := validateExpense(e); err != nil {
		return err
	}
	return s.expenses.Update(ctx, e)
}

func (s *Service) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return s.expenses.Delete(ctx, id)
}

func (s *Service) ListExpenses(ctx context.Context, limit, offset int) ([]*Expense, int, error) {
	return s.expenses.List(ctx, limit, offset)
}

// Snapshot returns every expense for the financial rollups.
func (s *Service) Snapshot(ctx context.Context) ([]*Expense, error) {
	return s.expenses.ListAll(ctx)
}
