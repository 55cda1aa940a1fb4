package share

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	shares ShareRepository
}

func NewService(shares ShareRepository) *Service {
	return &Service{shares: shares}
}

// CreateLink mints a new active share link with a fresh token.
func (s *Service) CreateLink(ctx context.Context, label *string) (*ShareConfig, error) {
	sc := &ShareConfig{
		Token:  uuid.NewString(),
		Label:  label,
		Active: true,
	}
	if err := s.shares.Create(ctx, sc); err != nil {
		return nil, fmt.Errorf("create share link: %w", err)
	}
	return sc, nil
}

func (s *Service) ListLinks(ctx context.Context) ([]*ShareConfig, error) {
	return s.shares.List(ctx)
}

func (s *Service) RevokeLink(ctx context.Context, id uuid.UUID) error {
	return s.shares.Revoke(ctx, id)
}

// Resolve looks up an active share config by token and records the access.
// Unknown or revoked tokens return ok=false, never an error.
func (s *Service) Resolve(ctx context.Context, token string) (*ShareConfig, bool) {
	sc, err := s.shares.GetByToken(ctx, token)
	if err != nil || !sc.Active {
		return nil, false
	}
	// Access-time bookkeeping only; failure does not block the read.
	_ = s.shares.Touch(ctx, sc.ID)
	return sc, true
}
