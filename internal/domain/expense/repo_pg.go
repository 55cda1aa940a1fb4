package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type expenseRepoPG struct{ pool *pgxpool.Pool }

func NewExpenseRepoPG(pool *pgxpool.Pool) ExpenseRepository {
	return &expenseRepoPG{pool: pool}
}

const expenseCols = `id, expense_date, category, amount, payment_method, note, created_at`

func scanExpense(row pgx.Row) (*Expense, error) {
	var e Expense
	err := row.Scan(&e.ID, &e.Date, &e.Category, &e.Amount, &e.PaymentMethod,
		&e.Note, &e.CreatedAt)
	return &e, err
}

func (r *expenseRepoPG) Create(ctx context.Context, e *Expense) error {
	e.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO expense (id, expense_date, category, amount, payment_method, note)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		e.ID, e.Date, e.Category, e.Amount, e.PaymentMethod, e.Note)
	return err
}

func (r *expenseRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return scanExpense(r.pool.QueryRow(ctx, `SELECT `+expenseCols+` FROM expense WHERE id = $1`, id))
}

func (r *expenseRepoPG) Update(ctx context.Context, e *Expense) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE expense SET expense_date=$2, category=$3, amount=$4, payment_method=$5, note=$6
		WHERE id = $1`,
		e.ID, e.Date, e.Category, e.Amount, e.PaymentMethod, e.Note)
	return err
}

func (r *expenseRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM expense WHERE id = $1`, id)
	return err
}

func (r *expenseRepoPG) List(ctx context.Context, limit, offset int) ([]*Expense, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM expense`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count expenses: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+expenseCols+` FROM expense ORDER BY expense_date DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, err
		}
		expenses = append(expenses, e)
	}
	return expenses, total, rows.Err()
}

func (r *expenseRepoPG) ListAll(ctx context.Context) ([]*Expense, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+expenseCols+` FROM expense ORDER BY expense_date`)
	if err != nil {
		return nil, fmt.Errorf("list all expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
