package share

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type shareRepoPG struct{ pool *pgxpool.Pool }

func NewShareRepoPG(pool *pgxpool.Pool) ShareRepository {
	return &shareRepoPG{pool: pool}
}

const shareCols = `id, token, label, active, created_at, last_accessed_at`

func scanShare(row pgx.Row) (*ShareConfig, error) {
	var sc ShareConfig
	err := row.Scan(&sc.ID, &sc.Token, &sc.Label, &sc.Active, &sc.CreatedAt, &sc.LastAccessedAt)
	return &sc, err
}

func (r *shareRepoPG) Create(ctx context.Context, sc *ShareConfig) error {
	sc.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO share_config (id, token, label, active)
		VALUES ($1,$2,$3,$4)`,
		sc.ID, sc.Token, sc.Label, sc.Active)
	return err
}

func (r *shareRepoPG) GetByToken(ctx context.Context, token string) (*ShareConfig, error) {
	return scanShare(r.pool.QueryRow(ctx,
		`SELECT `+shareCols+` FROM share_config WHERE token = $1`, token))
}

func (r *shareRepoPG) List(ctx context.Context) ([]*ShareConfig, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+shareCols+` FROM share_config ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list share configs: %w", err)
	}
	defer rows.Close()

	var configs []*ShareConfig
	for rows.Next() {
		sc, err := scanShare(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, sc)
	}
	return configs, rows.Err()
}

func (r *shareRepoPG) Revoke(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE share_config SET active = false WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("share config %s: not found", id)
	}
	return nil
}

func (r *shareRepoPG) Touch(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE share_config SET last_accessed_at = NOW() WHERE id = $1`, id)
	return err
}
