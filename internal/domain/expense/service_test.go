package expense

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockExpenseRepo struct {
	expenses map[uuid.UUID]*Expense
	order    []uuid.UUID
}

func newMockExpenseRepo() *mockExpenseRepo {
	return &mockExpenseRepo{expenses: make(map[uuid.UUID]*Expense)}
}

func (m *mockExpenseRepo) Create(_ context.Context, e *Expense) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	m.expenses[e.ID] = e
	m.order = append(m.order, e.ID)
	return nil
}

func (m *mockExpenseRepo) GetByID(_ context.Context, id uuid.UUID) (*Expense, error) {
	e, ok := m.expenses[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return e, nil
}

func (m *mockExpenseRepo) Update(_ context.Context, e *Expense) error {
	if _, ok := m.expenses[e.ID]; !ok {
		return fmt.Errorf("not found")
	}
	m.expenses[e.ID] = e
	return nil
}

func (m *mockExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.expenses, id)
	return nil
}

func (m *mockExpenseRepo) List(_ context.Context, limit, offset int) ([]*Expense, int, error) {
	all, _ := m.ListAll(context.Background())
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockExpenseRepo) ListAll(_ context.Context) ([]*Expense, error) {
	var result []*Expense
	for _, id := range m.order {
		if e, ok := m.expenses[id]; ok {
			result = append(result, e)
		}
	}
	return result, nil
}

func newTestService() *Service {
	return NewService(newMockExpenseRepo())
}

// -- Tests --

func TestCreateExpense(t *testing.T) {
	svc := newTestService()
	e := &Expense{Category: CategoryUtilities, Amount: 120, PaymentMethod: PaymentCash}
	if err := svc.CreateExpense(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
	if e.Date.IsZero() {
		t.Error("expected date to default to now")
	}
}

func TestCreateExpense_DefaultsPaymentToCash(t *testing.T) {
	svc := newTestService()
	e := &Expense{Category: CategorySupplies, Amount: 40}
	if err := svc.CreateExpense(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.PaymentMethod != PaymentCash {
		t.Errorf("expected cash, got %s", e.PaymentMethod)
	}
}

func TestCreateExpense_InvalidCategory(t *testing.T) {
	svc := newTestService()
	e := &Expense{Category: "entertainment", Amount: 40, PaymentMethod: PaymentCash}
	if err := svc.CreateExpense(context.Background(), e); err == nil {
		t.Error("expected error for unrecognized category")
	}
}

func TestCreateExpense_InvalidPaymentMethod(t *testing.T) {
	svc := newTestService()
	e := &Expense{Category: CategoryFood, Amount: 40, PaymentMethod: "barter"}
	if err := svc.CreateExpense(context.Background(), e); err == nil {
		t.Error("expected error for unrecognized payment method")
	}
}

func TestCreateExpense_NegativeAmount(t *testing.T) {
	svc := newTestService()
	e := &Expense{Category: CategoryFood, Amount: -5, PaymentMethod: PaymentCash}
	if err := svc.CreateExpense(context.Background(), e); err == nil {
		t.Error("expected error for negative amount")
	}
}

func TestSnapshotPreservesOrder(t *testing.T) {
	svc := newTestService()
	for _, cat := range []Category{CategoryStaff, CategoryTransport, CategoryOther} {
		svc.CreateExpense(context.Background(), &Expense{Category: cat, Amount: 10, PaymentMethod: PaymentCash})
	}
	all, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(all))
	}
	if all[0].Category != CategoryStaff || all[2].Category != CategoryOther {
		t.Error("expected snapshot to preserve insertion order")
	}
}
