package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type transactionRepoPG struct{ pool *pgxpool.Pool }

func NewTransactionRepoPG(pool *pgxpool.Pool) TransactionRepository {
	return &transactionRepoPG{pool: pool}
}

const txCols = `id, kind, patient_id, total_amount, status, occurred_at, created_at`
const itemCols = `id, transaction_id, medication_id, name, quantity, unit_price, line_total`

func scanTransaction(row pgx.Row) (*Transaction, error) {
	var t Transaction
	err := row.Scan(&t.ID, &t.Kind, &t.PatientID, &t.TotalAmount, &t.Status,
		&t.OccurredAt, &t.CreatedAt)
	return &t, err
}

func scanItem(row pgx.Row) (*LineItem, error) {
	var li LineItem
	err := row.Scan(&li.ID, &li.TransactionID, &li.MedicationID, &li.Name,
		&li.Quantity, &li.UnitPrice, &li.LineTotal)
	return &li, err
}

// Create inserts the transaction and its line items in one database
// transaction so a partial sale is never visible.
func (r *transactionRepoPG) Create(ctx context.Context, t *Transaction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	t.ID = uuid.New()
	_, err = tx.Exec(ctx, `
		INSERT INTO pos_transaction (id, kind, patient_id, total_amount, status, occurred_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		t.ID, t.Kind, t.PatientID, t.TotalAmount, t.Status, t.OccurredAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	for _, li := range t.Items {
		li.ID = uuid.New()
		li.TransactionID = t.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO pos_transaction_item (id, transaction_id, medication_id, name, quantity, unit_price, line_total)
			VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			li.ID, li.TransactionID, li.MedicationID, li.Name, li.Quantity, li.UnitPrice, li.LineTotal)
		if err != nil {
			return fmt.Errorf("insert line item: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func (r *transactionRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	t, err := scanTransaction(r.pool.QueryRow(ctx,
		`SELECT `+txCols+` FROM pos_transaction WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	t.Items, err = r.itemsFor(ctx, id)
	return t, err
}

func (r *transactionRepoPG) itemsFor(ctx context.Context, txID uuid.UUID) ([]*LineItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+itemCols+` FROM pos_transaction_item WHERE transaction_id = $1 ORDER BY id`, txID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*LineItem
	for rows.Next() {
		li, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

func (r *transactionRepoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE pos_transaction SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: not found", id)
	}
	return nil
}

func (r *transactionRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM pos_transaction WHERE id = $1`, id)
	return err
}

func (r *transactionRepoPG) List(ctx context.Context, limit, offset int) ([]*Transaction, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM pos_transaction`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+txCols+` FROM pos_transaction ORDER BY occurred_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []*Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		txs = append(txs, t)
	}
	return txs, total, rows.Err()
}

func (r *transactionRepoPG) ListAll(ctx context.Context) ([]*Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+txCols+` FROM pos_transaction ORDER BY occurred_at`)
	if err != nil {
		return nil, fmt.Errorf("list all transactions: %w", err)
	}
	defer rows.Close()

	var txs []*Transaction
	byID := make(map[uuid.UUID]*Transaction)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
		byID[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	irows, err := r.pool.Query(ctx, `SELECT `+itemCols+` FROM pos_transaction_item ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list all items: %w", err)
	}
	defer irows.Close()

	for irows.Next() {
		li, err := scanItem(irows)
		if err != nil {
			return nil, err
		}
		if t, ok := byID[li.TransactionID]; ok {
			t.Items = append(t.Items, li)
		}
	}
	return txs, irows.Err()
}

func (r *transactionRepoPG) ListBetween(ctx context.Context, from, to time.Time) ([]*Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+txCols+` FROM pos_transaction
		WHERE occurred_at >= $1 AND occurred_at < $2
		ORDER BY occurred_at`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list transactions between: %w", err)
	}
	defer rows.Close()

	var txs []*Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
