package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TransactionRepository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Transaction, int, error)
	// ListAll returns every transaction with line items attached, the
	// snapshot the analytics functions consume.
	ListAll(ctx context.Context) ([]*Transaction, error)
	// ListBetween returns transactions whose occurred_at falls in [from, to).
	ListBetween(ctx context.Context, from, to time.Time) ([]*Transaction, error)
}
