package postgres

import (
	"context"
	"time"

	"toolroom-backend/internal/domain"
	"toolroom-backend/internal/repository"
)

type transactionRepository struct {
	db DBTX
}

func NewTransactionRepository(db DBTX) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (tool_id, user_id, type, checkout_date, expected_return_date, actual_return_date, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, t.ToolID, t.UserID, t.Type, t.CheckoutDate,
		t.ExpectedReturnDate, t.ActualReturnDate, t.Notes, time.Now()).Scan(&t.ID)
	return translate(err, "transaction")
}

func (r *transactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	query := `SELECT id, tool_id, user_id, type, checkout_date, expected_return_date, actual_return_date, COALESCE(notes, ''), created_on
	          FROM transactions WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.ToolID, &t.UserID, &t.Type,
		&t.CheckoutDate, &t.ExpectedReturnDate, &t.ActualReturnDate, &t.Notes, &t.CreatedOn)
	if err != nil {
		return nil, translate(err, "transaction")
	}
	return t, nil
}

func (r *transactionRepository) Update(ctx context.Context, t *domain.Transaction) error {
	query := `UPDATE transactions SET expected_return_date=$1, actual_return_date=$2, notes=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, t.ExpectedReturnDate, t.ActualReturnDate, t.Notes, t.ID)
	if err != nil {
		return translate(err, "transaction")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundf("transaction %d", t.ID)
	}
	return nil
}

const recordColumns = `tx.id, tx.tool_id, tx.user_id, tx.type, tx.checkout_date,
	tx.expected_return_date, tx.actual_return_date, COALESCE(tx.notes, ''), tx.created_on,
	COALESCE(t.name, ''), COALESCE(t.asset_tag, ''), COALESCE(u.name, ''), COALESCE(u.email, '')`

const recordJoins = ` FROM transactions tx
	LEFT JOIN tools t ON tx.tool_id = t.id
	LEFT JOIN users u ON tx.user_id = u.id`

func (r *transactionRepository) queryRecords(ctx context.Context, query string, args ...any) ([]domain.TransactionRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		var rec domain.TransactionRecord
		if err := rows.Scan(&rec.ID, &rec.ToolID, &rec.UserID, &rec.Type, &rec.CheckoutDate,
			&rec.ExpectedReturnDate, &rec.ActualReturnDate, &rec.Notes, &rec.CreatedOn,
			&rec.ToolName, &rec.AssetTag, &rec.UserName, &rec.UserEmail); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *transactionRepository) List(ctx context.Context) ([]domain.TransactionRecord, error) {
	query := `SELECT ` + recordColumns + recordJoins + ` ORDER BY tx.created_on DESC`
	return r.queryRecords(ctx, query)
}

func (r *transactionRepository) Recent(ctx context.Context, limit int) ([]domain.TransactionRecord, error) {
	query := `SELECT ` + recordColumns + recordJoins + ` ORDER BY tx.created_on DESC LIMIT $1`
	return r.queryRecords(ctx, query, limit)
}

func (r *transactionRepository) ListOpenOverdue(ctx context.Context, now time.Time) ([]domain.TransactionRecord, error) {
	query := `SELECT ` + recordColumns + recordJoins + `
	          WHERE tx.type = 'checkout'
	            AND tx.actual_return_date IS NULL
	            AND tx.expected_return_date IS NOT NULL
	            AND tx.expected_return_date < $1
	          ORDER BY tx.expected_return_date`
	return r.queryRecords(ctx, query, now)
}

func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM transactions`).Scan(&count)
	return count, err
}
