package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type medicationRepoPG struct{ pool *pgxpool.Pool }

func NewMedicationRepoPG(pool *pgxpool.Pool) MedicationRepository {
	return &medicationRepoPG{pool: pool}
}

const medCols = `id, name, category, unit_price, cost_price, stock, created_at, updated_at`

func scanMedication(row pgx.Row) (*Medication, error) {
	var m Medication
	err := row.Scan(&m.ID, &m.Name, &m.Category, &m.UnitPrice, &m.CostPrice,
		&m.Stock, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *medicationRepoPG) Create(ctx context.Context, m *Medication) error {
	m.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO medication (id, name, category, unit_price, cost_price, stock)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		m.ID, m.Name, m.Category, m.UnitPrice, m.CostPrice, m.Stock)
	return err
}

func (r *medicationRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Medication, error) {
	return scanMedication(r.pool.QueryRow(ctx, `SELECT `+medCols+` FROM medication WHERE id = $1`, id))
}

func (r *medicationRepoPG) Update(ctx context.Context, m *Medication) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE medication SET name=$2, category=$3, unit_price=$4, cost_price=$5, stock=$6, updated_at=NOW()
		WHERE id = $1`,
		m.ID, m.Name, m.Category, m.UnitPrice, m.CostPrice, m.Stock)
	return err
}

func (r *medicationRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM medication WHERE id = $1`, id)
	return err
}

func (r *medicationRepoPG) List(ctx context.Context, limit, offset int) ([]*Medication, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM medication`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count medications: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+medCols+` FROM medication ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list medications: %w", err)
	}
	defer rows.Close()

	var meds []*Medication
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, 0, err
		}
		meds = append(meds, m)
	}
	return meds, total, rows.Err()
}

func (r *medicationRepoPG) ListAll(ctx context.Context) ([]*Medication, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+medCols+` FROM medication ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list all medications: %w", err)
	}
	defer rows.Close()

	var meds []*Medication
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		meds = append(meds, m)
	}
	return meds, rows.Err()
}

func (r *medicationRepoPG) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*Medication, error) {
	// The stock >= 0 invariant is enforced in the WHERE clause so concurrent
	// dispenses cannot race the row below zero.
	row := r.pool.QueryRow(ctx, `
		UPDATE medication SET stock = stock + $2, updated_at = NOW()
		WHERE id = $1 AND stock + $2 >= 0
		RETURNING `+medCols, id, delta)
	m, err := scanMedication(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("medication %s: not found or insufficient stock", id)
	}
	return m, err
}
