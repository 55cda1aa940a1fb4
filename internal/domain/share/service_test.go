package share

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockShareRepo struct {
	byToken map[string]*ShareConfig
	byID    map[uuid.UUID]*ShareConfig
}

func newMockShareRepo() *mockShareRepo {
	return &mockShareRepo{
		byToken: make(map[string]*ShareConfig),
		byID:    make(map[uuid.UUID]*ShareConfig),
	}
}

func (m *mockShareRepo) Create(_ context.Context, sc *ShareConfig) error {
	sc.ID = uuid.New()
	sc.CreatedAt = time.Now()
	m.byToken[sc.Token] = sc
	m.byID[sc.ID] = sc
	return nil
}

func (m *mockShareRepo) GetByToken(_ context.Context, token string) (*ShareConfig, error) {
	sc, ok := m.byToken[token]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return sc, nil
}

func (m *mockShareRepo) List(_ context.Context) ([]*ShareConfig, error) {
	var result []*ShareConfig
	for _, sc := range m.byID {
		result = append(result, sc)
	}
	return result, nil
}

func (m *mockShareRepo) Revoke(_ context.Context, id uuid.UUID) error {
	sc, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("not found")
	}
	sc.Active = false
	return nil
}

func (m *mockShareRepo) Touch(_ context.Context, id uuid.UUID) error {
	if sc, ok := m.byID[id]; ok {
		now := time.Now()
		sc.LastAccessedAt = &now
	}
	return nil
}

// -- Tests --

func TestCreateLink(t *testing.T) {
	svc := NewService(newMockShareRepo())
	label := "Front desk tablet"
	sc, err := svc.CreateLink(context.Background(), &label)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Token == "" {
		t.Error("expected token to be set")
	}
	if !sc.Active {
		t.Error("expected new link to be active")
	}
}

func TestResolve(t *testing.T) {
	svc := NewService(newMockShareRepo())
	sc, _ := svc.CreateLink(context.Background(), nil)

	resolved, ok := svc.Resolve(context.Background(), sc.Token)
	if !ok {
		t.Fatal("expected token to resolve")
	}
	if resolved.ID != sc.ID {
		t.Error("expected same config")
	}
	if resolved.LastAccessedAt == nil {
		t.Error("expected access to be recorded")
	}
}

func TestResolve_UnknownToken(t *testing.T) {
	svc := NewService(newMockShareRepo())
	if _, ok := svc.Resolve(context.Background(), "nope"); ok {
		t.Error("expected unknown token to not resolve")
	}
}

func TestResolve_RevokedToken(t *testing.T) {
	svc := NewService(newMockShareRepo())
	sc, _ := svc.CreateLink(context.Background(), nil)
	if err := svc.RevokeLink(context.Background(), sc.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := svc.Resolve(context.Background(), sc.Token); ok {
		t.Error("expected revoked token to not resolve")
	}
}
