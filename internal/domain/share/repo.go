package share

import (
	"context"

	"github.com/google/uuid"
)

type ShareRepository interface {
	Create(ctx context.Context, sc *ShareConfig) error
	GetByToken(ctx context.Context, token string) (*ShareConfig, error)
	List(ctx context.Context) ([]*ShareConfig, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	Touch(ctx context.Context, id uuid.UUID) error
}
